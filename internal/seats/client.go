// Package seats talks to the seats.aero partner API. The pipeline treats it
// as an external collaborator: it either hands back a list of raw inventory
// records or fails with a classified error.
package seats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DeafMist/award-seat-radar/backend/internal/inventory"
)

// Error categories. ErrAuth and ErrRateLimited are permanent for a given
// key/window; ErrUnavailable is transient and worth retrying later.
var (
	ErrAuth        = errors.New("seats.aero authentication failed")
	ErrRateLimited = errors.New("seats.aero rate limit exceeded")
	ErrUnavailable = errors.New("seats.aero unavailable")
)

// Client wraps the partner API with helpers tailored to this project.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *slog.Logger
}

// SearchParams narrow an availability search.
type SearchParams struct {
	Origin      string
	Destination string
	StartDate   string // ISO date; empty means today
	Days        int    // window length when EndDate is empty; default 60
	EndDate     string
	Cabin       string
}

// New instantiates the client. Timeout bounds every request.
func New(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		log:     logger,
	}
}

// SearchAvailability queries award availability for a route and window.
// Client-side filters (airline, program, staleness, cost ceiling) are not
// part of the request; the API does not support them. Apply them with
// processing.Process.
func (c *Client) SearchAvailability(ctx context.Context, params SearchParams) ([]inventory.Record, error) {
	start := strings.TrimSpace(params.StartDate)
	if start == "" {
		start = time.Now().Format("2006-01-02")
	}
	end := strings.TrimSpace(params.EndDate)
	if end == "" {
		days := params.Days
		if days <= 0 {
			days = 60
		}
		startDate, err := time.Parse("2006-01-02", start)
		if err != nil {
			return nil, fmt.Errorf("invalid start date %q: %w", start, err)
		}
		end = startDate.AddDate(0, 0, days).Format("2006-01-02")
	}

	query := url.Values{}
	query.Set("origin_airport", strings.ToUpper(params.Origin))
	query.Set("destination_airport", strings.ToUpper(params.Destination))
	query.Set("start_date", start)
	query.Set("end_date", end)
	if params.Cabin != "" {
		query.Set("cabin", strings.ToLower(params.Cabin))
	}

	body, err := c.get(ctx, "/search", query)
	if err != nil {
		// Older deployments expose /availability instead.
		if errors.Is(err, ErrUnavailable) {
			if alt, altErr := c.get(ctx, "/availability", query); altErr == nil {
				body = alt
				err = nil
			}
		}
		if err != nil {
			return nil, err
		}
	}

	return extractRecords(body)
}

// GetRoutes lists the routes the API knows about, optionally filtered by
// origin.
func (c *Client) GetRoutes(ctx context.Context, origin string) ([]inventory.Record, error) {
	query := url.Values{}
	if origin != "" {
		query.Set("origin", strings.ToUpper(origin))
	}
	body, err := c.get(ctx, "/routes", query)
	if err != nil {
		return nil, err
	}
	return extractRecords(body)
}

// Health performs a cheap authenticated request to verify connectivity.
func (c *Client) Health(ctx context.Context) error {
	_, err := c.get(ctx, "/routes", url.Values{})
	return err
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values) ([]byte, error) {
	u := c.baseURL + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Partner-Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "award-seat-radar/1.0")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w (status %d), check SEATS_API_KEY", ErrAuth, res.StatusCode)
	case res.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case res.StatusCode >= 500:
		return nil, fmt.Errorf("%w (status %d)", ErrUnavailable, res.StatusCode)
	case res.StatusCode >= 400:
		data, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("seats.aero request failed (status %d): %s", res.StatusCode, strings.TrimSpace(string(data)))
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}
	return body, nil
}

// extractRecords tolerates the envelope variants the API has shipped over
// time: a bare array, or an object wrapping the list under data, results or
// flights.
func extractRecords(body []byte) ([]inventory.Record, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return nil, nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var list []inventory.Record
		if err := json.Unmarshal(body, &list); err != nil {
			return nil, fmt.Errorf("invalid API response: %w", err)
		}
		return list, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("invalid API response: %w", err)
	}

	for _, key := range []string{"data", "results", "flights"} {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		var list []inventory.Record
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("invalid %q list in API response: %w", key, err)
		}
		return list, nil
	}

	return nil, nil
}
