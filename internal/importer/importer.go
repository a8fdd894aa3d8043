// Package importer parses the plain-text alert input format: one or more
// flight blocks of KEY: value lines, separated by "---" lines. It produces
// the same batch shape the search pipeline emits, so both feed the same
// renderer.
package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/DeafMist/award-seat-radar/backend/internal/dates"
	"github.com/DeafMist/award-seat-radar/backend/internal/models"
	"github.com/DeafMist/award-seat-radar/backend/internal/processing"
)

var requiredKeys = [...]string{
	"ROUTE", "AIRLINE", "PROGRAM", "COST", "CABIN", "NOTE", "DATES_OUT", "DATES_IN",
}

var (
	keyLine   = regexp.MustCompile(`^([A-Z_]+):\s*(.*)$`)
	monthLine = regexp.MustCompile(`^([A-Za-z]\w*)\s+(\d{4}):\s*(.+)$`)
	dayEntry  = regexp.MustCompile(`(\d+)\s*\((\d+)\)`)
)

// monthNumbers accepts Portuguese month abbreviations plus the English ones
// that differ, normalized to title case before lookup.
var monthNumbers = map[string]int{
	"Jan": 1, "Fev": 2, "Mar": 3, "Abr": 4, "Mai": 5, "Jun": 6,
	"Jul": 7, "Ago": 8, "Set": 9, "Out": 10, "Nov": 11, "Dez": 12,
	"Feb": 2, "Apr": 4, "May": 5, "Aug": 8, "Sep": 9, "Oct": 10, "Dec": 12,
}

// ParseBatch parses a whole input file: blocks separated by "---" lines,
// each block one flight. A malformed block fails the parse and names its
// ordinal position.
func ParseBatch(content string) ([]models.FlightBatch, error) {
	var batches []models.FlightBatch

	for i, block := range splitBlocks(content) {
		batch, err := ParseBlock(block)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i+1, err)
		}
		batches = append(batches, batch)
	}

	if len(batches) == 0 {
		return nil, fmt.Errorf("no flight blocks found in input")
	}
	return batches, nil
}

// ParseBlock parses a single KEY: value flight block.
func ParseBlock(content string) (models.FlightBatch, error) {
	fields := scanFields(content)

	var missing []string
	for _, key := range requiredKeys {
		if fields[key] == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return models.FlightBatch{}, fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}

	routeParts := strings.Fields(fields["ROUTE"])
	if len(routeParts) != 2 {
		return models.FlightBatch{}, fmt.Errorf("ROUTE must be exactly two IATA codes, got %q", fields["ROUTE"])
	}

	outbound, err := ParseDates(fields["DATES_OUT"])
	if err != nil {
		return models.FlightBatch{}, fmt.Errorf("DATES_OUT: %w", err)
	}
	inbound, err := ParseDates(fields["DATES_IN"])
	if err != nil {
		return models.FlightBatch{}, fmt.Errorf("DATES_IN: %w", err)
	}

	origin := strings.ToUpper(routeParts[0])
	dest := strings.ToUpper(routeParts[1])

	return models.FlightBatch{
		ID:            processing.BatchID(origin, dest, fields["AIRLINE"], strings.ToLower(fields["PROGRAM"])),
		OriginCode:    origin,
		DestCode:      dest,
		Airline:       fields["AIRLINE"],
		Program:       fields["PROGRAM"],
		Cost:          fields["COST"],
		Cabin:         fields["CABIN"],
		DatesOutbound: outbound,
		DatesInbound:  inbound,
		Notes:         fields["NOTE"],
	}, nil
}

// ParseDates parses either supported date grammar, auto-detected:
//
//	2026-02-15=9, 2026-02-18=4
//
// or
//
//	Mar 2026: 31 (1)
//	Abr 2026: 05 (5), 24 (7)
func ParseDates(raw string) ([]dates.DateSeat, error) {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, "\n") || monthLine.MatchString(raw) {
		return parseMonthBlock(raw)
	}
	return parseISOList(raw)
}

func parseISOList(raw string) ([]dates.DateSeat, error) {
	var out []dates.DateSeat

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		dateStr, seatsStr, found := strings.Cut(part, "=")
		if !found {
			return nil, fmt.Errorf("invalid date entry %q, expected YYYY-MM-DD=N", part)
		}
		dateStr = strings.TrimSpace(dateStr)
		seatsStr = strings.TrimSpace(seatsStr)

		if len(dateStr) != 10 || dateStr[4] != '-' || dateStr[7] != '-' {
			return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", dateStr)
		}

		seats, err := strconv.Atoi(seatsStr)
		if err != nil {
			return nil, fmt.Errorf("invalid seat count %q in entry %q", seatsStr, part)
		}
		if seats < 0 {
			return nil, fmt.Errorf("seat count cannot be negative: %d", seats)
		}

		out = append(out, dates.DateSeat{Date: dateStr, Seats: seats})
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no valid dates found")
	}
	return out, nil
}

func parseMonthBlock(raw string) ([]dates.DateSeat, error) {
	var out []dates.DateSeat

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := monthLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		monthToken, yearStr, daysStr := m[1], m[2], m[3]

		month, ok := monthNumbers[normalizeMonth(monthToken)]
		if !ok {
			return nil, fmt.Errorf("unknown month abbreviation %q", monthToken)
		}
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, fmt.Errorf("invalid year %q", yearStr)
		}

		entries := dayEntry.FindAllStringSubmatch(daysStr, -1)
		if len(entries) == 0 {
			return nil, fmt.Errorf("no day entries in line %q, expected DD (seats)", line)
		}
		for _, e := range entries {
			day, _ := strconv.Atoi(e[1])
			seats, _ := strconv.Atoi(e[2])
			out = append(out, dates.DateSeat{
				Date:  fmt.Sprintf("%04d-%02d-%02d", year, month, day),
				Seats: seats,
			})
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no valid dates found")
	}
	return out, nil
}

func normalizeMonth(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return ""
	}
	return strings.ToUpper(token[:1]) + token[1:]
}

func scanFields(content string) map[string]string {
	fields := make(map[string]string)
	current := ""

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			continue
		}

		if m := keyLine.FindStringSubmatch(trimmed); m != nil {
			current = m[1]
			fields[current] = m[2]
			continue
		}

		// Continuation line (multi-line date blocks).
		if current != "" && trimmed != "" {
			if fields[current] != "" {
				fields[current] += "\n"
			}
			fields[current] += trimmed
		}
	}

	for key, value := range fields {
		fields[key] = strings.TrimSpace(value)
	}
	return fields
}

func splitBlocks(content string) []string {
	var blocks []string

	lines := strings.Split(content, "\n")
	var current []string
	flush := func() {
		block := strings.TrimSpace(strings.Join(current, "\n"))
		if block != "" {
			blocks = append(blocks, block)
		}
		current = current[:0]
	}

	for _, line := range lines {
		if isDelimiter(line) {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return blocks
}

// isDelimiter recognizes a separator line: three or more dashes, nothing else.
func isDelimiter(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 3 {
		return false
	}
	return strings.Trim(trimmed, "-") == ""
}
