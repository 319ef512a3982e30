package models

// GroceryCategory is one of the fixed set of store aisle categories.
// Classification is total: every ingredient maps to exactly one category,
// with CategoryOther as the fallback.
type GroceryCategory string

const (
	CategoryProduce    GroceryCategory = "Produce"
	CategoryDairyEggs  GroceryCategory = "Dairy & Eggs"
	CategoryMeatSea    GroceryCategory = "Meat & Seafood"
	CategoryBakery     GroceryCategory = "Bakery"
	CategoryPantry     GroceryCategory = "Pantry & Canned Goods"
	CategoryFrozen     GroceryCategory = "Frozen Foods"
	CategoryBeverages  GroceryCategory = "Beverages"
	CategoryCondiments GroceryCategory = "Condiments & Sauces"
	CategorySpices     GroceryCategory = "Spices & Seasonings"
	CategorySnacks     GroceryCategory = "Snacks"
	CategoryOther      GroceryCategory = "Other"
)

// CategoryOrder is the store-walk ordering used when rendering grouped
// lists. Iterating this slice instead of the group map keeps output
// deterministic.
var CategoryOrder = []GroceryCategory{
	CategoryProduce,
	CategoryMeatSea,
	CategoryDairyEggs,
	CategoryBakery,
	CategoryFrozen,
	CategoryPantry,
	CategoryCondiments,
	CategorySpices,
	CategorySnacks,
	CategoryBeverages,
	CategoryOther,
}
