package category

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/charliearlie/football-iq/internal/names"
)

// Fixed lookup tables, keyed by normalized label. Global static
// configuration: built once, read-only afterwards.

// countryCodes maps country display names to ISO-3166 alpha-2 codes.
var countryCodes = map[string]string{
	"argentina":            "AR",
	"australia":            "AU",
	"austria":              "AT",
	"belgium":              "BE",
	"bosnia & herzegovina": "BA",
	"brazil":               "BR",
	"cameroon":             "CM",
	"canada":               "CA",
	"chile":                "CL",
	"colombia":             "CO",
	"croatia":              "HR",
	"czech republic":       "CZ",
	"denmark":              "DK",
	"ecuador":              "EC",
	"egypt":                "EG",
	"england":              "GB-ENG",
	"france":               "FR",
	"gabon":                "GA",
	"germany":              "DE",
	"ghana":                "GH",
	"greece":               "GR",
	"hungary":              "HU",
	"iceland":              "IS",
	"ireland":              "IE",
	"italy":                "IT",
	"ivory coast":          "CI",
	"jamaica":              "JM",
	"japan":                "JP",
	"mexico":               "MX",
	"morocco":              "MA",
	"netherlands":          "NL",
	"nigeria":              "NG",
	"norway":               "NO",
	"paraguay":             "PY",
	"peru":                 "PE",
	"poland":               "PL",
	"portugal":             "PT",
	"romania":              "RO",
	"scotland":             "GB-SCT",
	"senegal":              "SN",
	"serbia":               "RS",
	"slovakia":             "SK",
	"slovenia":             "SI",
	"south korea":          "KR",
	"spain":                "ES",
	"sweden":               "SE",
	"switzerland":          "CH",
	"turkey":               "TR",
	"ukraine":              "UA",
	"united states":        "US",
	"uruguay":              "UY",
	"wales":                "GB-WLS",
}

// trophyStatKeys maps trophy display labels to statistic keys. A player
// "has" the trophy when the cached value for the key is > 0.
var trophyStatKeys = map[string]string{
	"ballon d'or":          "ballon_dor",
	"bundesliga":           "bundesliga_titles",
	"champions league":     "champions_league_titles",
	"copa america":         "copa_america_titles",
	"copa del rey":         "copa_del_rey_titles",
	"europa league":        "europa_league_titles",
	"european championship": "euro_titles",
	"euros":                "euro_titles",
	"fa cup":               "fa_cup_titles",
	"golden boot":          "golden_boots",
	"la liga":              "la_liga_titles",
	"league cup":           "league_cup_titles",
	"ligue 1":              "ligue_1_titles",
	"premier league":       "premier_league_titles",
	"serie a":              "serie_a_titles",
	"world cup":            "world_cup_titles",
}

// statNameKeys maps singular stat names (as they appear in threshold
// expressions) to statistic keys.
var statNameKeys = map[string]string{
	"appearance":       "appearances",
	"assist":           "assists",
	"ballon d'or":      "ballon_dor",
	"cap":              "caps",
	"champions league": "champions_league_titles",
	"clean sheet":      "clean_sheets",
	"goal":             "goals",
	"golden boot":      "golden_boots",
	"hat-trick":        "hat_tricks",
	"international goal": "international_goals",
	"league title":     "league_titles",
	"trophy":           "trophies",
}

// CountryCode resolves a country display name to its ISO code.
func CountryCode(label string) (string, bool) {
	code, ok := countryCodes[names.Normalize(label)]
	return code, ok
}

// TrophyStatKey resolves a trophy label to its statistic key.
func TrophyStatKey(label string) (string, bool) {
	key, ok := trophyStatKeys[names.Normalize(label)]
	return key, ok
}

// statNameKey resolves a stat name, tolerating plural forms.
func statNameKey(name string) (string, bool) {
	n := names.Normalize(name)
	if key, ok := statNameKeys[n]; ok {
		return key, ok
	}
	if singular, found := strings.CutSuffix(n, "s"); found {
		if key, ok := statNameKeys[singular]; ok {
			return key, ok
		}
	}
	return "", false
}

var statExprRe = regexp.MustCompile(`^(\d+)\+\s*(.+)$`)

// ParseStatExpression parses a threshold expression of the form
// "<integer>+ <stat name>", e.g. "100+ Goals" or "5+ Ballon d'Ors".
func ParseStatExpression(label string) (threshold int, statKey string, ok bool) {
	m := statExprRe.FindStringSubmatch(strings.TrimSpace(label))
	if m == nil {
		return 0, "", false
	}
	threshold, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, "", false
	}
	statKey, ok = statNameKey(m[2])
	if !ok {
		return 0, "", false
	}
	return threshold, statKey, true
}
