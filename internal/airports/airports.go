package airports

import "strings"

// UnknownFlag is used for airports missing from the lookup table.
const UnknownFlag = "✈️"

// Info holds the presentation data for one airport.
type Info struct {
	City string
	Flag string
}

// table maps IATA codes to city and country flag. Immutable reference data;
// extend it here when a new route shows up in alerts.
var table = map[string]Info{
	"GRU": {City: "São Paulo", Flag: "🇧🇷"},
	"GIG": {City: "Rio de Janeiro", Flag: "🇧🇷"},
	"BSB": {City: "Brasília", Flag: "🇧🇷"},
	"CNF": {City: "Belo Horizonte", Flag: "🇧🇷"},
	"POA": {City: "Porto Alegre", Flag: "🇧🇷"},
	"REC": {City: "Recife", Flag: "🇧🇷"},
	"SSA": {City: "Salvador", Flag: "🇧🇷"},
	"FOR": {City: "Fortaleza", Flag: "🇧🇷"},
	"MIA": {City: "Miami", Flag: "🇺🇸"},
	"MCO": {City: "Orlando", Flag: "🇺🇸"},
	"JFK": {City: "Nova York", Flag: "🇺🇸"},
	"EWR": {City: "Nova York", Flag: "🇺🇸"},
	"LAX": {City: "Los Angeles", Flag: "🇺🇸"},
	"ORD": {City: "Chicago", Flag: "🇺🇸"},
	"IAH": {City: "Houston", Flag: "🇺🇸"},
	"YYZ": {City: "Toronto", Flag: "🇨🇦"},
	"YUL": {City: "Montreal", Flag: "🇨🇦"},
	"LIS": {City: "Lisboa", Flag: "🇵🇹"},
	"OPO": {City: "Porto", Flag: "🇵🇹"},
	"MAD": {City: "Madri", Flag: "🇪🇸"},
	"BCN": {City: "Barcelona", Flag: "🇪🇸"},
	"LHR": {City: "Londres", Flag: "🇬🇧"},
	"CDG": {City: "Paris", Flag: "🇫🇷"},
	"AMS": {City: "Amsterdã", Flag: "🇳🇱"},
	"FRA": {City: "Frankfurt", Flag: "🇩🇪"},
	"MUC": {City: "Munique", Flag: "🇩🇪"},
	"ZRH": {City: "Zurique", Flag: "🇨🇭"},
	"FCO": {City: "Roma", Flag: "🇮🇹"},
	"MXP": {City: "Milão", Flag: "🇮🇹"},
	"IST": {City: "Istambul", Flag: "🇹🇷"},
	"DOH": {City: "Doha", Flag: "🇶🇦"},
	"DXB": {City: "Dubai", Flag: "🇦🇪"},
	"AUH": {City: "Abu Dhabi", Flag: "🇦🇪"},
	"JNB": {City: "Joanesburgo", Flag: "🇿🇦"},
	"EZE": {City: "Buenos Aires", Flag: "🇦🇷"},
	"SCL": {City: "Santiago", Flag: "🇨🇱"},
	"LIM": {City: "Lima", Flag: "🇵🇪"},
	"BOG": {City: "Bogotá", Flag: "🇨🇴"},
	"MEX": {City: "Cidade do México", Flag: "🇲🇽"},
	"CUN": {City: "Cancún", Flag: "🇲🇽"},
	"NRT": {City: "Tóquio", Flag: "🇯🇵"},
	"HND": {City: "Tóquio", Flag: "🇯🇵"},
	"SIN": {City: "Singapura", Flag: "🇸🇬"},
	"HKG": {City: "Hong Kong", Flag: "🇭🇰"},
	"SYD": {City: "Sydney", Flag: "🇦🇺"},
}

// Lookup returns the city and flag for an IATA code, case insensitive.
// Unknown codes fall back to the code itself and a generic plane flag.
func Lookup(code string) Info {
	upper := strings.ToUpper(strings.TrimSpace(code))
	if info, ok := table[upper]; ok {
		return info
	}
	return Info{City: upper, Flag: UnknownFlag}
}
