package services

import (
	"math"
	"sort"
	"strings"

	"github.com/foxxcyber/recipe-feed/internal/models"
)

// Conversion is the result of converting a quantity to base units.
// Volume units populate Ml, weight units populate G, count units neither.
type Conversion struct {
	Ml *float64 `json:"ml,omitempty"`
	G  *float64 `json:"g,omitempty"`
}

// unitDef holds a canonical unit's conversion factor. Exactly one of
// toMl/toG is non-zero, except count units which have neither.
type unitDef struct {
	toMl float64
	toG  float64
}

// Canonical unit table. Volume base is ml, weight base is g.
// cup uses the 240 ml recipe convention rather than the 236.59 ml legal
// cup; downstream quantities are rounded to 2 decimals anyway.
var unitTable = map[string]unitDef{
	// Volume
	"tsp":   {toMl: 4.9289},
	"tbsp":  {toMl: 14.7868},
	"cup":   {toMl: 240},
	"ml":    {toMl: 1},
	"l":     {toMl: 1000},
	"pinch": {toMl: 0.36},

	// Weight
	"oz": {toG: 28.3495},
	"lb": {toG: 453.592},
	"g":  {toG: 1},
	"kg": {toG: 1000},

	// Count
	"clove": {},
	"piece": {},
}

// Synonym folding to canonical unit keys, case-insensitive
var unitSynonyms = map[string]string{
	"teaspoon":    "tsp",
	"teaspoons":   "tsp",
	"tsp":         "tsp",
	"tsps":        "tsp",
	"tablespoon":  "tbsp",
	"tablespoons": "tbsp",
	"tbsp":        "tbsp",
	"tbsps":       "tbsp",
	"tbs":         "tbsp",
	"cup":         "cup",
	"cups":        "cup",
	"c":           "cup",
	"ounce":       "oz",
	"ounces":      "oz",
	"oz":          "oz",
	"pound":       "lb",
	"pounds":      "lb",
	"lb":          "lb",
	"lbs":         "lb",
	"gram":        "g",
	"grams":       "g",
	"g":           "g",
	"kilogram":    "kg",
	"kilograms":   "kg",
	"kg":          "kg",
	"milliliter":  "ml",
	"milliliters": "ml",
	"millilitre":  "ml",
	"millilitres": "ml",
	"ml":          "ml",
	"liter":       "l",
	"liters":      "l",
	"litre":       "l",
	"litres":      "l",
	"l":           "l",
	"pinch":       "pinch",
	"pinches":     "pinch",
	"clove":       "clove",
	"cloves":      "clove",
	"piece":       "piece",
	"pieces":      "piece",
}

// CanonicalUnit folds a raw unit token to its canonical UnitSpec.
// Returns nil for tokens that are not known units.
func CanonicalUnit(rawUnitToken string) *models.UnitSpec {
	token := strings.ToLower(strings.TrimSpace(rawUnitToken))
	token = strings.TrimSuffix(token, ".")

	key, ok := unitSynonyms[token]
	if !ok {
		return nil
	}

	def := unitTable[key]
	spec := &models.UnitSpec{Key: key}
	if def.toMl != 0 {
		ml := def.toMl
		spec.ToMl = &ml
	}
	if def.toG != 0 {
		g := def.toG
		spec.ToG = &g
	}
	return spec
}

// ConvertUnit converts a quantity in the given unit to base units,
// rounded to 2 decimal places. Count units yield an empty Conversion;
// callers must not assume Ml or G is populated.
func ConvertUnit(quantity float64, unit models.UnitSpec) Conversion {
	var result Conversion
	if unit.ToMl != nil {
		ml := round2(quantity * *unit.ToMl)
		result.Ml = &ml
	}
	if unit.ToG != nil {
		g := round2(quantity * *unit.ToG)
		result.G = &g
	}
	return result
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// unitTokenAlternation builds the regex alternation of every unit synonym,
// longest first so "tablespoons" wins over "t"-prefixed shorter forms.
func unitTokenAlternation() string {
	tokens := make([]string, 0, len(unitSynonyms))
	for token := range unitSynonyms {
		tokens = append(tokens, token)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if len(tokens[i]) != len(tokens[j]) {
			return len(tokens[i]) > len(tokens[j])
		}
		return tokens[i] < tokens[j]
	})
	return strings.Join(tokens, "|")
}
