package services

import (
	"regexp"
	"strings"

	"github.com/foxxcyber/recipe-feed/internal/models"
)

// Direct category-name hints, matched by substring against a lowercased
// hint string before any name-based rule runs. An unmapped hint falls
// through to the name cascade; it never short-circuits to Other. Kept as
// an ordered slice so hints containing several keywords ("dairy free
// snacks") classify the same way every run.
var categoryHints = []struct {
	keyword  string
	category models.GroceryCategory
}{
	{"produce", models.CategoryProduce},
	{"vegetable", models.CategoryProduce},
	{"fruit", models.CategoryProduce},
	{"dairy", models.CategoryDairyEggs},
	{"egg", models.CategoryDairyEggs},
	{"seafood", models.CategoryMeatSea},
	{"meat", models.CategoryMeatSea},
	{"poultry", models.CategoryMeatSea},
	{"fish", models.CategoryMeatSea},
	{"bakery", models.CategoryBakery},
	{"bread", models.CategoryBakery},
	{"pantry", models.CategoryPantry},
	{"canned", models.CategoryPantry},
	{"dry goods", models.CategoryPantry},
	{"baking", models.CategoryPantry},
	{"frozen", models.CategoryFrozen},
	{"beverage", models.CategoryBeverages},
	{"drink", models.CategoryBeverages},
	{"condiment", models.CategoryCondiments},
	{"sauce", models.CategoryCondiments},
	{"spice", models.CategorySpices},
	{"seasoning", models.CategorySpices},
	{"herb", models.CategorySpices},
	{"snack", models.CategorySnacks},
}

// herbWords is shared between the herb rule and the meat-rule guard
const herbWords = `basil|oregano|thyme|rosemary|cilantro|parsley|sage|dill|mint|tarragon|chive|bay lea`

// "chopped fresh basil" and friends must never be pulled into the meat
// rule via words like "ground"; the guard matches a prep verb or
// freshness adjective directly before a herb word.
var herbWithPrefixPattern = regexp.MustCompile(`\b(chopped|diced|minced|sliced|fresh|dried)\s+(` + herbWords + `)`)

// categoryRule is one entry of the ordered classification cascade
type categoryRule struct {
	pattern  *regexp.Regexp
	category models.GroceryCategory
	// guard, when set, vetoes the rule and lets the cascade continue
	guard *regexp.Regexp
}

// The cascade ordering is the disambiguation mechanism: many words are
// ambiguous across categories, and the first matching rule wins. Do not
// reorder entries without re-checking every comment below.
var categoryRules = []categoryRule{
	// Spice blends first: "chili powder" would otherwise hit the produce
	// pepper words, "curry paste" the condiment rule.
	{pattern: regexp.MustCompile(`\b(curry (powder|paste)|garam masala|chili powder|italian seasoning|taco seasoning|five[- ]spice|cajun|old bay|za'?atar|herbes? de provence|pumpkin pie spice|everything bagel)\b`), category: models.CategorySpices},
	// Named herbs before produce: "fresh basil" is an aisle-spice buy,
	// not Produce, in this product's store layout.
	{pattern: regexp.MustCompile(`\b(` + herbWords + `)`), category: models.CategorySpices},
	// Broad spice/herb words, before the meat rule so "ground coriander"
	// never matches meat via "ground".
	{pattern: regexp.MustCompile(`\b(salt|peppercorn|black pepper|white pepper|cayenne|cumin|coriander|paprika|turmeric|cinnamon|nutmeg|cardamom|allspice|fennel seed|mustard seed|sesame seed|red pepper flakes?|vanilla( extract)?|seasoning|spice)s?\b`), category: models.CategorySpices},
	// Stock/broth/bouillon before any meat word: "chicken broth" is a
	// Pantry item, not Meat & Seafood.
	{pattern: regexp.MustCompile(`\b(stock|broth|bouillon)\b`), category: models.CategoryPantry},
	// Grains, legumes, baking staples and canned goods.
	{pattern: regexp.MustCompile(`\b(flour|sugar|rice|pasta|spaghetti|noodle|bean|lentil|chickpea|oat|quinoa|couscous|barley|cereal|canned|baking (soda|powder)|yeast|cornstarch|corn starch|breadcrumb|panko|honey|maple syrup|molasses|cocoa|chocolate chip|tomato paste|coconut milk|peanut butter)s?\b`), category: models.CategoryPantry},
	// Oils, vinegars, sauces and condiments before produce: "olive oil"
	// must not land in Produce via "olive".
	{pattern: regexp.MustCompile(`\b(oil|vinegar|sauce|ketchup|mustard|mayonnaise|mayo|salsa|dressing|soy|tamari|fish sauce|worcestershire|tahini|pesto|relish|sriracha|hot sauce|bbq)\b`), category: models.CategoryCondiments},
	// Produce word list.
	{pattern: regexp.MustCompile(`\b(onion|garlic|tomato|potato|carrot|celery|pepper|spinach|kale|lettuce|broccoli|cauliflower|zucchini|cucumber|mushroom|avocado|apple|banana|lemon|lime|orange|berry|berries|strawberr|blueberr|grape|mango|pineapple|peach|pear|plum|cabbage|leek|shallot|scallion|green onion|ginger|squash|pumpkin|corn|pea|asparagus|eggplant|radish|beet|turnip|sweet potato|cherry|melon|watermelon|kiwi|apricot|fig|date|olive|jalapeno|cilantro root)(es|s)?\b`), category: models.CategoryProduce},
	// Dairy and eggs.
	{pattern: regexp.MustCompile(`\b(milk|cheese|cheddar|mozzarella|parmesan|feta|ricotta|butter|cream|yogurt|yoghurt|egg|sour cream|half[- ]and[- ]half|creme fraiche|ghee)s?\b`), category: models.CategoryDairyEggs},
	// Meat and poultry, guarded against herb-with-prep-verb names so the
	// guard (not ordering alone) protects lines the herb rules missed.
	{pattern: regexp.MustCompile(`\b(chicken|beef|pork|turkey|lamb|veal|duck|bacon|sausage|ham|steak|brisket|ribs?|meatball|ground (beef|pork|turkey|chicken|lamb)|chorizo|prosciutto|salami|pepperoni)\b`), category: models.CategoryMeatSea, guard: herbWithPrefixPattern},
	// Seafood joins the same aisle.
	{pattern: regexp.MustCompile(`\b(salmon|tuna|shrimp|prawn|fish|cod|tilapia|halibut|trout|crab|lobster|scallop|clam|mussel|oyster|anchov|sardine|calamari|squid)(es|s)?\b`), category: models.CategoryMeatSea},
	// Frozen before bakery: "frozen waffles" belong to the freezer aisle.
	{pattern: regexp.MustCompile(`\b(frozen|ice cream|popsicle|sorbet|gelato)\b`), category: models.CategoryFrozen},
	// Bakery.
	{pattern: regexp.MustCompile(`\b(bread|bagel|bun|roll|baguette|tortilla|pita|naan|croissant|muffin|cake|pie crust|brioche|ciabatta|sourdough|english muffin)s?\b`), category: models.CategoryBakery},
	// Beverages.
	{pattern: regexp.MustCompile(`\b(juice|soda|coffee|tea|sparkling water|water|wine|beer|cider|kombucha|lemonade)\b`), category: models.CategoryBeverages},
	// Snacks.
	{pattern: regexp.MustCompile(`\b(chips?|crackers?|popcorn|pretzels?|granola bars?|cookies?|candy|chocolate bar|trail mix|nuts?)\b`), category: models.CategorySnacks},
}

// Classify maps a category hint and/or ingredient name to a grocery
// category. It is a total function: any input, including empty strings,
// yields one of the fixed categories, with Other as the fallback.
func Classify(categoryHint, ingredientName string) models.GroceryCategory {
	if hint := normalizeText(categoryHint); hint != "" {
		for _, h := range categoryHints {
			if strings.Contains(hint, h.keyword) {
				return h.category
			}
		}
		// Unmapped hint: fall through to the name rules.
	}

	name := normalizeText(ingredientName)
	if name == "" {
		return models.CategoryOther
	}

	for _, rule := range categoryRules {
		if !rule.pattern.MatchString(name) {
			continue
		}
		if rule.guard != nil && rule.guard.MatchString(name) {
			continue
		}
		return rule.category
	}

	return models.CategoryOther
}

// GroupByCategory partitions shopping items by their classified category.
// The partition is stable: inside each bucket items keep their input
// order. Categories with no items are absent from the result, not present
// with an empty slice.
func GroupByCategory(items []models.ShoppingItem) map[models.GroceryCategory][]models.ShoppingItem {
	groups := make(map[models.GroceryCategory][]models.ShoppingItem)
	for _, item := range items {
		hint := ""
		if item.CategoryHint != nil {
			hint = *item.CategoryHint
		}
		category := Classify(hint, item.Name)
		groups[category] = append(groups[category], item)
	}
	return groups
}
