package inventory

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UnknownAirline labels records whose carrier could not be resolved at all.
const UnknownAirline = "Companhia Desconhecida"

var titleCaser = cases.Title(language.Und)

// programNames maps seats.aero source codes to loyalty program display names.
// Immutable reference data.
var programNames = map[string]string{
	// Star Alliance
	"aeroplan":  "Air Canada Aeroplan",
	"united":    "United MileagePlus",
	"avianca":   "Avianca LifeMiles",
	"lifemiles": "Avianca LifeMiles",
	"ana":       "ANA Mileage Club",
	"asiana":    "Asiana Club",
	"lufthansa": "Lufthansa Miles & More",
	"sas":       "SAS EuroBonus",
	"eurobonus": "SAS EuroBonus",
	"singapore": "Singapore Airlines KrisFlyer",
	"thai":      "Thai Royal Orchid Plus",
	"turkish":   "Turkish Miles&Smiles",

	// OneWorld
	"aa":         "American AAdvantage",
	"aadvantage": "American AAdvantage",
	"ba":         "British Airways Executive Club",
	"club":       "British Airways Executive Club",
	"cathay":     "Cathay Pacific Asia Miles",
	"jal":        "JAL Mileage Bank",
	"qantas":     "Qantas Frequent Flyer",
	"qr":         "Qatar Privilege Club",
	"privilege":  "Qatar Privilege Club",

	// SkyTeam
	"delta":      "Delta SkyMiles",
	"flyingblue": "Flying Blue",
	"aeromexico": "Aeromexico Club Premier",
	"korean":     "Korean Air SKYPASS",

	// Others
	"alaska":     "Alaska Mileage Plan",
	"virgin":     "Virgin Atlantic Flying Club",
	"flyingclub": "Virgin Atlantic Flying Club",
	"velocity":   "Virgin Australia Velocity",
	"etihad":     "Etihad Guest",
	"emirates":   "Emirates Skywards",
	"tap":        "TAP Miles&Go",

	// South America
	"latam":  "LATAM Pass",
	"sms":    "Smiles",
	"smiles": "Smiles",
	"gol":    "Gol Smiles",
	"azul":   "Azul Fidelidade",
	"blue":   "Azul Fidelidade",
}

// sourceAirlines infers the operating carrier from the mileage program when
// the record carries no airline field. Multi-carrier programs get a combined
// label.
var sourceAirlines = map[string]string{
	"american":   "American Airlines",
	"aa":         "American Airlines",
	"aadvantage": "American Airlines",

	"alaska": "Alaska Airlines",

	"qatar":     "Qatar Airways",
	"qr":        "Qatar Airways",
	"privilege": "Qatar Airways",

	"united": "United Airlines",
	"delta":  "Delta Air Lines",

	"aeromexico": "Aeromexico",

	"british": "British Airways",
	"ba":      "British Airways",
	"club":    "British Airways",

	"iberia": "Iberia",
	"tap":    "TAP Air Portugal",

	"azul": "Azul",
	"blue": "Azul",

	"latam": "LATAM Airlines",
	"gol":   "Gol",

	"lufthansa": "Lufthansa",
	"turkish":   "Turkish Airlines",

	"sas":       "SAS Scandinavian Airlines",
	"eurobonus": "SAS Scandinavian Airlines",

	"air canada": "Air Canada",
	"aeroplan":   "Air Canada",

	"avianca":   "Avianca",
	"lifemiles": "Avianca",

	"virgin":     "Virgin Atlantic",
	"flyingclub": "Virgin Atlantic",

	"qantas":    "Qantas",
	"cathay":    "Cathay Pacific",
	"singapore": "Singapore Airlines",
	"ana":       "ANA",
	"jal":       "Japan Airlines",
	"korean":    "Korean Air",

	"flyingblue": "Air France / KLM",

	// Smiles books Gol plus partner carriers
	"smiles": "Gol / Parceiros Smiles",
}

// cabinCostFields maps a requested cabin to the cabin-specific mileage cost
// field of the source records.
var cabinCostFields = map[string]string{
	"economy":  "YMileageCost",
	"business": "JMileageCost",
	"first":    "FMileageCost",
}

// genericCostFields is the fallback order when the cabin-specific field is
// absent or zero.
var genericCostFields = [...]string{"MilesCost", "MileageCost", "Miles", "Cost"}

// cabinNames maps cabin codes to display labels.
var cabinNames = map[string]string{
	"economy":         "Econômica",
	"premium_economy": "Econômica Premium",
	"business":        "Executiva",
	"first":           "Primeira Classe",
}

// ProgramName translates a source code into the loyalty program display name.
// Unmapped codes are title-cased.
func ProgramName(source string) string {
	if name, ok := programNames[source]; ok {
		return name
	}
	return titleCaser.String(source)
}

// CabinName translates a cabin code into its display label. Unknown cabins
// are title-cased.
func CabinName(cabin string) string {
	if name, ok := cabinNames[cabin]; ok {
		return name
	}
	return titleCaser.String(cabin)
}

func costFieldForCabin(cabin string) string {
	if field, ok := cabinCostFields[cabin]; ok {
		return field
	}
	return "JMileageCost"
}
