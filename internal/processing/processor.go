package processing

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DeafMist/award-seat-radar/backend/internal/dates"
	"github.com/DeafMist/award-seat-radar/backend/internal/inventory"
	"github.com/DeafMist/award-seat-radar/backend/internal/models"
)

// DefaultCabin is assumed when the caller does not request a cabin class.
const DefaultCabin = "business"

// Options are the client-side filters applied to raw search results. The
// upstream API supports none of these, so they run locally, in the order
// declared by filterRecord.
type Options struct {
	// MaxStalenessHours drops records last confirmed further back than this
	// many hours. Zero disables the check.
	MaxStalenessHours int
	// DirectOnly drops itineraries with stops.
	DirectOnly bool
	// Airline keeps only records whose resolved carrier name contains this
	// substring, case insensitive.
	Airline string
	// Program keeps only records whose program display name or raw source
	// code contains this substring, case insensitive.
	Program string
	// MaxCost drops records costing more miles than this. Zero disables.
	MaxCost int
	// Cabin selects which cost field to resolve. Defaults to DefaultCabin.
	Cabin string
	// Now anchors the staleness check; the zero value means time.Now().
	Now time.Time
}

type groupKey struct {
	origin  string
	dest    string
	airline string
	source  string
}

// Process filters raw inventory records, groups the survivors by route,
// carrier and program, and aggregates each group into one FlightBatch.
// Batch order follows the first occurrence of each group in the filtered
// stream; callers and tests rely on that.
func Process(records []inventory.Record, opts Options) []models.FlightBatch {
	if len(records) == 0 {
		return nil
	}

	cabin := opts.Cabin
	if cabin == "" {
		cabin = DefaultCabin
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	// Filter pass. Records without a resolvable route or a non-zero cost
	// never make it into a group.
	var order []groupKey
	groups := make(map[groupKey][]inventory.Record)

	for _, rec := range records {
		if !keepRecord(rec, opts, cabin, now) {
			continue
		}

		origin := rec.Origin()
		dest := rec.Destination()
		if origin == "" || dest == "" {
			continue
		}

		key := groupKey{
			origin:  origin,
			dest:    dest,
			airline: rec.Airline(),
			source:  rec.Source(),
		}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], rec)
	}

	var batches []models.FlightBatch
	for _, key := range order {
		if batch, ok := buildBatch(key, groups[key], cabin); ok {
			batches = append(batches, batch)
		}
	}
	return batches
}

// keepRecord applies the client-side filters in fixed order, short-circuiting
// on the first failure.
func keepRecord(rec inventory.Record, opts Options, cabin string, now time.Time) bool {
	// Staleness. An unparseable timestamp counts as fresh.
	if opts.MaxStalenessHours > 0 {
		if raw := rec.LastSeen(); raw != "" {
			if lastSeen := parseTimestamp(raw); !lastSeen.IsZero() {
				if now.Sub(lastSeen).Hours() > float64(opts.MaxStalenessHours) {
					return false
				}
			}
		}
	}

	if opts.DirectOnly && !rec.Direct() {
		return false
	}

	if opts.Airline != "" {
		airline := strings.ToLower(rec.Airline())
		if !strings.Contains(airline, strings.ToLower(opts.Airline)) {
			return false
		}
	}

	if opts.Program != "" {
		filter := strings.ToLower(opts.Program)
		name := strings.ToLower(rec.ProgramName())
		if !strings.Contains(name, filter) && !strings.Contains(rec.Source(), filter) {
			return false
		}
	}

	if opts.MaxCost > 0 && rec.Cost(cabin) > opts.MaxCost {
		return false
	}

	return true
}

// buildBatch aggregates one group. Groups whose records all lack a date or a
// non-zero cost produce no batch.
func buildBatch(key groupKey, recs []inventory.Record, cabin string) (models.FlightBatch, bool) {
	var dateSeats []dates.DateSeat
	var costs []int

	for _, rec := range recs {
		date := rec.Date()
		if date == "" {
			continue
		}
		cost := rec.Cost(cabin)
		if cost == 0 {
			// No cost-bearing availability for this cabin.
			continue
		}
		dateSeats = append(dateSeats, dates.DateSeat{Date: date, Seats: rec.Seats(cabin)})
		costs = append(costs, cost)
	}

	if len(dateSeats) == 0 {
		return models.FlightBatch{}, false
	}

	minCost, maxCost := costs[0], costs[0]
	for _, c := range costs[1:] {
		if c < minCost {
			minCost = c
		}
		if c > maxCost {
			maxCost = c
		}
	}

	costStr := formatCost(minCost)
	if maxCost != minCost {
		costStr += "-" + formatCost(maxCost)
	}

	notes := []string{
		"Encontrado via API Seats.aero",
		fmt.Sprintf("%d opções disponíveis", len(dateSeats)),
	}
	if maxCost != minCost {
		notes = append(notes, fmt.Sprintf("Variação de preço: %s-%s", formatCost(minCost), formatCost(maxCost)))
	}

	lo, hi := minCost, maxCost
	batch := models.FlightBatch{
		ID:            BatchID(key.origin, key.dest, key.airline, key.source),
		OriginCode:    key.origin,
		DestCode:      key.dest,
		Airline:       key.airline,
		Program:       inventory.ProgramName(key.source),
		Cost:          costStr,
		Cabin:         inventory.CabinName(cabin),
		MinCost:       &lo,
		MaxCost:       &hi,
		DatesOutbound: dateSeats,
		DatesInbound:  []dates.DateSeat{},
		Notes:         strings.Join(notes, " | "),
	}
	batch.EnrichAirportData()

	return batch, true
}

// BatchID hashes the grouping key into a deterministic identifier.
func BatchID(origin, dest, airline, source string) string {
	joined := strings.Join([]string{origin, dest, airline, source}, "|")
	if strings.Trim(joined, "|") == "" {
		return uuid.NewString()
	}
	s := sha1.Sum([]byte(joined))
	return hex.EncodeToString(s[:])
}

// formatCost renders a mileage cost the way alerts spell it: values from a
// thousand up collapse to integer thousands with a "k" suffix.
func formatCost(cost int) string {
	if cost >= 1000 {
		return fmt.Sprintf("%dk", cost/1000)
	}
	return fmt.Sprintf("%d", cost)
}

func parseTimestamp(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}

	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
	}

	for _, f := range formats {
		if ts, err := time.ParseInLocation(f, raw, time.Local); err == nil {
			return ts
		}
	}

	return time.Time{}
}
