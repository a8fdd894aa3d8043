package dates

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// NoDatesAvailable is returned by FormatByMonth for empty input.
const NoDatesAvailable = "Nenhuma data disponível"

// DateSeat pairs one ISO travel date with the seats available on it.
type DateSeat struct {
	Date  string `json:"date"`
	Seats int    `json:"seats"`
}

// Bucket groups the days of one calendar month.
// Month reads "Mai 2026"; Days reads "01 (9), 05 (7)".
type Bucket struct {
	Month string `json:"month"`
	Days  string `json:"days"`
}

// monthNames holds the abbreviated month names used in alert text,
// first letter uppercase, indexed by time.Month.
var monthNames = [13]string{
	"", "Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

type dayEntry struct {
	day   int
	seats int
}

type monthKey struct {
	year  int
	month time.Month
}

// BucketByMonth groups date/seat pairs into per-month buckets ordered by
// actual (year, month), earliest first, regardless of input order.
// Days inside a bucket are sorted chronologically and zero-padded.
// Entries whose date does not parse as YYYY-MM-DD are skipped.
func BucketByMonth(pairs []DateSeat) []Bucket {
	grouped := make(map[monthKey][]dayEntry)

	for _, p := range pairs {
		d, err := time.Parse("2006-01-02", strings.TrimSpace(p.Date))
		if err != nil {
			continue
		}
		key := monthKey{year: d.Year(), month: d.Month()}
		grouped[key] = append(grouped[key], dayEntry{day: d.Day(), seats: p.Seats})
	}

	if len(grouped) == 0 {
		return []Bucket{}
	}

	keys := make([]monthKey, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	buckets := make([]Bucket, 0, len(keys))
	for _, key := range keys {
		entries := grouped[key]
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].day < entries[j].day
		})

		parts := make([]string, 0, len(entries))
		for _, e := range entries {
			parts = append(parts, fmt.Sprintf("%02d (%d)", e.day, e.seats))
		}

		buckets = append(buckets, Bucket{
			Month: fmt.Sprintf("%s %d", monthNames[key.month], key.year),
			Days:  strings.Join(parts, ", "),
		})
	}

	return buckets
}

// FormatByMonth renders the bucketed dates as a single line:
// "Mai 2026: 01 (9), 05 (7) | Jun 2026: 10 (2)".
func FormatByMonth(pairs []DateSeat) string {
	buckets := BucketByMonth(pairs)
	if len(buckets) == 0 {
		return NoDatesAvailable
	}

	parts := make([]string, 0, len(buckets))
	for _, b := range buckets {
		parts = append(parts, b.Month+": "+b.Days)
	}
	return strings.Join(parts, " | ")
}
