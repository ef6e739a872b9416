package compliance

import "strings"

// schengenArea is the set of ISO-3166-1 alpha-2 codes in the Schengen area,
// including the four non-EU members (IS, LI, NO, CH). Bulgaria and Romania
// joined fully in 2024.
var schengenArea = map[string]struct{}{}

func init() {
	for _, c := range strings.Fields(schengenCodes) {
		schengenArea[c] = struct{}{}
	}
	for _, c := range strings.Fields(isoCodes) {
		isoAlpha2[c] = struct{}{}
	}
}

const schengenCodes = `
AT BE BG CH CZ DE DK EE ES FI FR GR HR HU IS IT
LI LT LU LV MT NL NO PL PT RO SE SI SK`

// IsSchengen reports whether the country code belongs to the Schengen area.
func IsSchengen(code string) bool {
	_, ok := schengenArea[code]
	return ok
}

// isoAlpha2 holds every assigned ISO-3166-1 alpha-2 code.
var isoAlpha2 = map[string]struct{}{}

const isoCodes = `
AD AE AF AG AI AL AM AO AQ AR AS AT AU AW AX AZ
BA BB BD BE BF BG BH BI BJ BL BM BN BO BQ BR BS BT BV BW BY BZ
CA CC CD CF CG CH CI CK CL CM CN CO CR CU CV CW CX CY CZ
DE DJ DK DM DO DZ EC EE EG EH ER ES ET
FI FJ FK FM FO FR GA GB GD GE GF GG GH GI GL GM GN GP GQ GR GS GT GU GW GY
HK HM HN HR HT HU ID IE IL IM IN IO IQ IR IS IT
JE JM JO JP KE KG KH KI KM KN KP KR KW KY KZ
LA LB LC LI LK LR LS LT LU LV LY
MA MC MD ME MF MG MH MK ML MM MN MO MP MQ MR MS MT MU MV MW MX MY MZ
NA NC NE NF NG NI NL NO NP NR NU NZ OM
PA PE PF PG PH PK PL PM PN PR PS PT PW PY QA
RE RO RS RU RW SA SB SC SD SE SG SH SI SJ SK SL SM SN SO SR SS ST SV SX SY SZ
TC TD TF TG TH TJ TK TL TM TN TO TR TT TV TW TZ
UA UG UM US UY UZ VA VC VE VG VI VN VU WF WS YE YT ZA ZM ZW`

// NormalizeCountry trims and upper-cases a country code and reports whether
// the result is an assigned ISO-3166-1 alpha-2 code.
func NormalizeCountry(s string) (string, bool) {
	code := strings.ToUpper(strings.TrimSpace(s))
	_, ok := isoAlpha2[code]
	return code, ok
}

// countryNames maps codes to display names for the countries that show up in
// compliance messages. Codes not listed here fall back to the raw code;
// messages stay readable either way.
var countryNames = map[string]string{
	"AT": "Austria", "BE": "Belgium", "BG": "Bulgaria", "CH": "Switzerland",
	"CZ": "Czechia", "DE": "Germany", "DK": "Denmark", "EE": "Estonia",
	"ES": "Spain", "FI": "Finland", "FR": "France", "GR": "Greece",
	"HR": "Croatia", "HU": "Hungary", "IS": "Iceland", "IT": "Italy",
	"LI": "Liechtenstein", "LT": "Lithuania", "LU": "Luxembourg",
	"LV": "Latvia", "MT": "Malta", "NL": "Netherlands", "NO": "Norway",
	"PL": "Poland", "PT": "Portugal", "RO": "Romania", "SE": "Sweden",
	"SI": "Slovenia", "SK": "Slovakia",

	// Common nomad destinations outside Schengen.
	"AE": "United Arab Emirates", "AR": "Argentina", "AU": "Australia",
	"BR": "Brazil", "CA": "Canada", "CO": "Colombia", "GB": "United Kingdom",
	"GE": "Georgia", "ID": "Indonesia", "IN": "India", "JP": "Japan",
	"KR": "South Korea", "MX": "Mexico", "MY": "Malaysia", "NZ": "New Zealand",
	"PH": "Philippines", "SG": "Singapore", "TH": "Thailand", "TR": "Turkey",
	"TW": "Taiwan", "US": "United States", "VN": "Vietnam",
}

// CountryName returns the display name for a code, or the code itself when
// no name is known.
func CountryName(code string) string {
	if name, ok := countryNames[code]; ok {
		return name
	}
	return code
}
