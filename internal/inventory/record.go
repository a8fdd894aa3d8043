package inventory

import (
	"strconv"
	"strings"
)

// Record is one raw award-availability entry as returned by the search API
// or synthesized by the offline importer. The upstream schema drifts: keys
// may be missing, nested under Route, or typed as strings instead of
// numbers. Every accessor resolves its field through a fixed fallback chain
// and never panics on absent or oddly typed values.
type Record map[string]any

// SafeInt coerces an arbitrary value to int. Floats truncate toward zero,
// strings are trimmed and parsed, anything else yields the default.
func SafeInt(value any, def int) int {
	switch v := value.(type) {
	case nil:
		return def
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float32:
		return int(v)
	case float64:
		return int(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return def
		}
		return parsed
	default:
		return def
	}
}

func (r Record) str(key string) string {
	if v, ok := r[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func (r Record) route() Record {
	if v, ok := r["Route"]; ok {
		if m, ok := v.(map[string]any); ok {
			return Record(m)
		}
		if m, ok := v.(Record); ok {
			return m
		}
	}
	return nil
}

// Source returns the lowercase mileage program code.
func (r Record) Source() string {
	return strings.ToLower(r.str("Source"))
}

// Origin resolves the origin IATA code, preferring the nested route object.
// Empty when the record carries no usable route.
func (r Record) Origin() string {
	if route := r.route(); route != nil {
		if v := route.str("OriginAirport"); v != "" {
			return strings.ToUpper(v)
		}
	}
	if v := r.str("OriginAirport"); v != "" {
		return strings.ToUpper(v)
	}
	return strings.ToUpper(r.str("Origin"))
}

// Destination resolves the destination IATA code, like Origin.
func (r Record) Destination() string {
	if route := r.route(); route != nil {
		if v := route.str("DestinationAirport"); v != "" {
			return strings.ToUpper(v)
		}
	}
	if v := r.str("DestinationAirport"); v != "" {
		return strings.ToUpper(v)
	}
	return strings.ToUpper(r.str("Destination"))
}

// Airline resolves the carrier display name. Priority: direct Airline field,
// Route.Airline, MarketingCarrier, OperatedBy, inference from the program
// code, title-cased program code, unknown-carrier label.
func (r Record) Airline() string {
	if v := r.str("Airline"); v != "" {
		return v
	}
	if route := r.route(); route != nil {
		if v := route.str("Airline"); v != "" {
			return v
		}
	}
	if v := r.str("MarketingCarrier"); v != "" {
		return v
	}
	if v := r.str("OperatedBy"); v != "" {
		return v
	}

	source := r.Source()
	if airline, ok := sourceAirlines[source]; ok {
		return airline
	}
	if source != "" {
		return titleCaser.String(source)
	}
	return UnknownAirline
}

// ProgramName returns the translated loyalty program display name.
func (r Record) ProgramName() string {
	return ProgramName(r.Source())
}

// Date resolves the travel date. Empty when no date field is present.
func (r Record) Date() string {
	if v := r.str("Date"); v != "" {
		return v
	}
	if v := r.str("DepartureDate"); v != "" {
		return v
	}
	return r.str("DepartDate")
}

// Seats resolves the available seat count for the requested cabin.
// RemainingSeats wins, then the per-cabin Availability map, then Seats.
// Unresolvable values default to 4.
func (r Record) Seats(cabin string) int {
	if v, ok := r["RemainingSeats"]; ok {
		return SafeInt(v, 4)
	}
	if v, ok := r["Availability"]; ok {
		if m, ok := v.(map[string]any); ok {
			return SafeInt(m[titleCaser.String(cabin)], 4)
		}
	}
	if v, ok := r["Seats"]; ok {
		return SafeInt(v, 4)
	}
	return 4
}

// Cost resolves the mileage cost for the requested cabin: the cabin-specific
// field first, then the generic fields in fixed order, first non-zero value
// wins. Zero means the record carries no usable cost.
func (r Record) Cost(cabin string) int {
	if cost := SafeInt(r[costFieldForCabin(cabin)], 0); cost != 0 {
		return cost
	}
	for _, field := range genericCostFields {
		if cost := SafeInt(r[field], 0); cost != 0 {
			return cost
		}
	}
	return 0
}

// Direct reports whether the itinerary has zero stops. An explicit Direct or
// Nonstop boolean wins, then a zero NumStops. Records with no stop signal at
// all count as direct.
func (r Record) Direct() bool {
	if v, ok := r["Direct"]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	if v, ok := r["Nonstop"]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	if v, ok := r["NumStops"]; ok {
		return SafeInt(v, 0) == 0
	}
	return true
}

// LastSeen returns the raw last-confirmation timestamp, if any.
func (r Record) LastSeen() string {
	if v := r.str("LastSeen"); v != "" {
		return v
	}
	if v := r.str("UpdatedAt"); v != "" {
		return v
	}
	return r.str("CreatedAt")
}
