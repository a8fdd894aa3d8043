package seats_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/DeafMist/award-seat-radar/backend/internal/seats"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *seats.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return seats.New(srv.URL, "test-key", 5*time.Second, nil)
}

func TestSearchAvailabilitySendsAuthAndParams(t *testing.T) {
	var gotPath string
	var gotAuth string
	var gotQuery map[string]string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Partner-Authorization")
		gotQuery = map[string]string{}
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}
		w.Write([]byte(`{"data": [{"Origin": "GRU"}]}`))
	})

	records, err := client.SearchAvailability(context.Background(), seats.SearchParams{
		Origin:      "gru",
		Destination: "doh",
		StartDate:   "2026-06-01",
		Days:        30,
		Cabin:       "Business",
	})
	require.NoError(t, err)
	require.Len(t, records, 1)

	require.Equal(t, "/search", gotPath)
	require.Equal(t, "test-key", gotAuth)
	require.Equal(t, "GRU", gotQuery["origin_airport"])
	require.Equal(t, "DOH", gotQuery["destination_airport"])
	require.Equal(t, "2026-06-01", gotQuery["start_date"])
	require.Equal(t, "2026-07-01", gotQuery["end_date"])
	require.Equal(t, "business", gotQuery["cabin"])
}

func TestSearchAvailabilityFallsBackToAvailability(t *testing.T) {
	var paths []string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path == "/search" {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`[{"Origin": "GRU"}]`))
	})

	records, err := client.SearchAvailability(context.Background(), seats.SearchParams{
		Origin:      "GRU",
		Destination: "DOH",
		StartDate:   "2026-06-01",
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, []string{"/search", "/availability"}, paths)
}

func TestSearchAvailabilityInvalidStartDate(t *testing.T) {
	client := seats.New("http://unused.invalid", "k", time.Second, nil)

	_, err := client.SearchAvailability(context.Background(), seats.SearchParams{
		Origin:      "GRU",
		Destination: "DOH",
		StartDate:   "june first",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid start date")
}

func TestErrorClassification(t *testing.T) {
	cases := []struct {
		name   string
		status int
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, seats.ErrAuth},
		{"forbidden", http.StatusForbidden, seats.ErrAuth},
		{"rate limited", http.StatusTooManyRequests, seats.ErrRateLimited},
		{"server error", http.StatusInternalServerError, seats.ErrUnavailable},
		{"bad gateway", http.StatusBadGateway, seats.ErrUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			})

			_, err := client.GetRoutes(context.Background(), "GRU")
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestTransportErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	client := seats.New(srv.URL, "k", time.Second, nil)
	err := client.Health(context.Background())
	require.ErrorIs(t, err, seats.ErrUnavailable)
}

func TestClientErrorIsNotRetriable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("bad cabin"))
	})

	_, err := client.GetRoutes(context.Background(), "GRU")
	require.Error(t, err)
	require.NotErrorIs(t, err, seats.ErrUnavailable)
	require.Contains(t, err.Error(), "bad cabin")
}

func TestEnvelopeVariants(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{"bare array", `[{"Origin": "GRU"}, {"Origin": "GIG"}]`, 2},
		{"data envelope", `{"data": [{"Origin": "GRU"}]}`, 1},
		{"results envelope", `{"results": [{"Origin": "GRU"}]}`, 1},
		{"flights envelope", `{"flights": [{"Origin": "GRU"}]}`, 1},
		{"unknown envelope", `{"items": [{"Origin": "GRU"}]}`, 0},
		{"empty body", ``, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			})

			records, err := client.GetRoutes(context.Background(), "")
			require.NoError(t, err)
			require.Len(t, records, tc.want)
		})
	}
}

func TestMalformedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": "not a list"}`))
	})

	_, err := client.GetRoutes(context.Background(), "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid")
}

func TestHealth(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/routes", r.URL.Path)
		w.Write([]byte(`[]`))
	})

	require.NoError(t, client.Health(context.Background()))
}
