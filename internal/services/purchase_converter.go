package services

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/foxxcyber/recipe-feed/internal/models"
)

// Package-size tables: what a store actually sells, per inferred
// ingredient family. Sizes are ascending; rounding always picks the
// smallest size >= the recipe amount (under-buying is the failure mode
// to avoid), or the largest size when the amount exceeds the table.
type packageKind int

const (
	packageVolume    packageKind = iota // sizes in fl oz
	packageWeight                       // sizes in lb
	packageContainer                    // fixed-size containers (stock/broth)
	packageCount                        // sold by the piece
)

type packageDef struct {
	kind  packageKind
	unit  string
	sizes []float64
}

// Ordered inference rules over the ingredient name. Stock/broth precedes
// everything since "chicken stock" must not hit a meat-ish default, and
// oil precedes the staples so "olive oil" never reads as produce.
var packageRules = []struct {
	pattern *regexp.Regexp
	def     packageDef
}{
	{regexp.MustCompile(`\b(stock|broth|bouillon)\b`), packageDef{kind: packageContainer, unit: "container", sizes: []float64{32}}},
	{regexp.MustCompile(`\boil\b`), packageDef{kind: packageVolume, unit: "fl oz", sizes: []float64{8, 16, 32}}},
	{regexp.MustCompile(`\bvinegar\b`), packageDef{kind: packageVolume, unit: "fl oz", sizes: []float64{8, 16, 32}}},
	{regexp.MustCompile(`\b(flour|sugar|rice|pasta|spaghetti|oats?|cornmeal)\b`), packageDef{kind: packageWeight, unit: "lb", sizes: []float64{1, 2, 5, 10}}},
	{regexp.MustCompile(`\bbutter\b`), packageDef{kind: packageWeight, unit: "lb", sizes: []float64{0.5, 1}}},
	{regexp.MustCompile(`\b(salt|peppercorn|cumin|paprika|cinnamon|nutmeg|oregano|basil|thyme|spice|seasoning)s?\b`), packageDef{kind: packageWeight, unit: "lb", sizes: []float64{0.125, 0.25, 0.5}}},
	{regexp.MustCompile(`\b(canned|can of|tomato paste|tomato sauce|beans?|chickpeas?)\b`), packageDef{kind: packageWeight, unit: "lb", sizes: []float64{0.5, 1, 1.75}}},
}

// Default when no family rule matches: produce-style, sold by the piece
var defaultPackage = packageDef{kind: packageCount, unit: "item"}

// Recipe-unit factors to purchase base units: fl oz for volume, oz for
// weight. These are deliberately coarser than the ml/g table; shoppers
// buy in US retail sizes.
var volumeToFlOz = map[string]float64{
	"tsp":    0.1667,
	"tbsp":   0.5,
	"cup":    8,
	"fl oz":  1,
	"floz":   1,
	"pint":   16,
	"quart":  32,
	"gallon": 128,
	"ml":     0.033814,
	"l":      33.814,
	"pinch":  0.01,
}

var weightToOz = map[string]float64{
	"oz": 1,
	"lb": 16,
	"g":  0.0353,
	"kg": 35.274,
}

// Range strings resolve to their upper bound in the purchase path only:
// buying for "1 to 2 cups" means buying for 2.
var purchaseRangePattern = regexp.MustCompile(`^\s*(\d+(?:[./]\d+)?)\s*(?:-|to)\s*(\d+(?:[./]\d+)?)\s*$`)

// ToPurchaseQuantity converts a recipe quantity/unit for an ingredient
// into a store-buyable amount. Empty strings mean absent inputs. Returns
// nil only when there is nothing to buy (quantity parses to zero with no
// unit); any unrecognized unit passes through unprocessed instead of
// failing.
func ToPurchaseQuantity(recipeQuantity, recipeUnit, ingredientName string) *models.PurchaseQuantity {
	pkg := inferPackage(ingredientName)

	// No quantity and no unit: one default package of the family.
	if strings.TrimSpace(recipeQuantity) == "" && strings.TrimSpace(recipeUnit) == "" {
		return &models.PurchaseQuantity{
			Quantity:    "1",
			Unit:        pkg.unit,
			DisplayText: "1 " + pkg.unit,
		}
	}

	quantity := parsePurchaseQuantity(recipeQuantity)
	if quantity == 0 && strings.TrimSpace(recipeUnit) == "" {
		return nil // nothing to buy
	}

	unitKey, flOz, oz, convertible := toPurchaseBase(quantity, recipeUnit)

	switch pkg.kind {
	case packageContainer:
		if !convertible || flOz == 0 {
			break
		}
		containers := int(math.Ceil(flOz / pkg.sizes[0]))
		if containers < 1 {
			containers = 1
		}
		word := "container"
		if containers != 1 {
			word = "containers"
		}
		return &models.PurchaseQuantity{
			Quantity:    strconv.Itoa(containers),
			Unit:        pkg.unit,
			DisplayText: fmt.Sprintf("%d %s (%s fl oz each)", containers, word, formatAmount(pkg.sizes[0])),
		}

	case packageVolume:
		if !convertible || flOz == 0 {
			break
		}
		size := roundUpToSize(flOz, pkg.sizes)
		return &models.PurchaseQuantity{
			Quantity:    formatAmount(size),
			Unit:        pkg.unit,
			DisplayText: formatAmount(size) + " " + pkg.unit,
		}

	case packageWeight:
		if !convertible {
			break
		}
		// Volume-measured dry goods ("2 cups flour") reuse the fl oz
		// figure as ounces; close enough for package rounding.
		amountOz := oz
		if amountOz == 0 {
			amountOz = flOz
		}
		if amountOz == 0 {
			break
		}
		size := roundUpToSize(amountOz/16, pkg.sizes)
		return &models.PurchaseQuantity{
			Quantity:    formatAmount(size),
			Unit:        pkg.unit,
			DisplayText: formatAmount(size) + " " + pkg.unit,
		}
	}

	// Count-style: a unit with no conversion factor (or none at all)
	// buys ceil(quantity) of that unit. Pluralization is the display
	// layer's concern.
	if !convertible {
		unit := strings.TrimSpace(recipeUnit)
		if unit == "" || isCountUnit(unitKey) {
			n := math.Ceil(quantity)
			if n < 1 {
				n = 1
			}
			display := formatAmount(n)
			if unit != "" {
				display += " " + unit
			}
			return &models.PurchaseQuantity{
				Quantity:    formatAmount(n),
				Unit:        unit,
				DisplayText: display,
			}
		}

		// Unknown unit: pass the original through, best effort.
		return &models.PurchaseQuantity{
			Quantity:    strings.TrimSpace(recipeQuantity),
			Unit:        unit,
			DisplayText: strings.TrimSpace(strings.TrimSpace(recipeQuantity) + " " + unit),
		}
	}

	// Convertible unit but a count-style package family (produce bought
	// by weight, say): pass through the recipe amount unchanged.
	return &models.PurchaseQuantity{
		Quantity:    strings.TrimSpace(recipeQuantity),
		Unit:        strings.TrimSpace(recipeUnit),
		DisplayText: strings.TrimSpace(strings.TrimSpace(recipeQuantity) + " " + strings.TrimSpace(recipeUnit)),
	}
}

// inferPackage picks the package family for an ingredient name
func inferPackage(ingredientName string) packageDef {
	name := normalizeText(ingredientName)
	for _, rule := range packageRules {
		if rule.pattern.MatchString(name) {
			return rule.def
		}
	}
	return defaultPackage
}

// parsePurchaseQuantity parses a quantity string, resolving range forms
// to their upper bound before falling back to the additive parser.
func parsePurchaseQuantity(s string) float64 {
	if matches := purchaseRangePattern.FindStringSubmatch(s); matches != nil {
		if upper := ParseQuantity(matches[2]); upper != nil {
			return *upper
		}
	}
	if v := ParseQuantity(s); v != nil {
		return *v
	}
	return 0
}

// toPurchaseBase folds the recipe unit and converts the quantity to the
// purchase base units. convertible is false when the unit has no factor
// (count units and unknown tokens alike).
func toPurchaseBase(quantity float64, recipeUnit string) (unitKey string, flOz, oz float64, convertible bool) {
	token := strings.ToLower(strings.TrimSpace(recipeUnit))
	token = strings.TrimSuffix(token, ".")
	if canonical, ok := unitSynonyms[token]; ok {
		unitKey = canonical
	} else {
		unitKey = strings.TrimSuffix(token, "s")
	}

	if factor, ok := volumeToFlOz[unitKey]; ok {
		return unitKey, quantity * factor, 0, true
	}
	if factor, ok := weightToOz[unitKey]; ok {
		return unitKey, 0, quantity * factor, true
	}
	return unitKey, 0, 0, false
}

// roundUpToSize returns the smallest table entry >= amount: an amount
// landing exactly on a size buys that size, never the next one up. Beyond
// the table, the largest size wins.
func roundUpToSize(amount float64, sizes []float64) float64 {
	for _, size := range sizes {
		if amount <= size {
			return size
		}
	}
	return sizes[len(sizes)-1]
}

func isCountUnit(unitKey string) bool {
	switch unitKey {
	case "piece", "item", "each", "clove", "":
		return true
	}
	return false
}

// formatAmount renders sizes without trailing zeros ("8", "0.5", "1.75")
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
