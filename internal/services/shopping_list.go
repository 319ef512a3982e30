package services

import (
	"github.com/foxxcyber/recipe-feed/internal/models"
)

// BuildBuyList derives a store-walk view of a shopping list: each item
// gets a purchase quantity and a grocery category, then items are grouped
// into aisle sections following models.CategoryOrder. Items keep their
// relative input order inside each section; empty sections are dropped.
func BuildBuyList(items []models.ShoppingItem) []models.BuyListSection {
	entries := make([]models.BuyListEntry, 0, len(items))
	for _, item := range items {
		hint := ""
		if item.CategoryHint != nil {
			hint = *item.CategoryHint
		}
		quantity := ""
		if item.Quantity != nil {
			quantity = *item.Quantity
		}
		unit := ""
		if item.Unit != nil {
			unit = *item.Unit
		}

		entries = append(entries, models.BuyListEntry{
			Item:     item,
			Category: Classify(hint, item.Name),
			Purchase: ToPurchaseQuantity(quantity, unit, item.Name),
		})
	}

	grouped := make(map[models.GroceryCategory][]models.BuyListEntry)
	for _, entry := range entries {
		grouped[entry.Category] = append(grouped[entry.Category], entry)
	}

	sections := make([]models.BuyListSection, 0, len(grouped))
	for _, category := range models.CategoryOrder {
		if bucket, ok := grouped[category]; ok {
			sections = append(sections, models.BuyListSection{
				Category: category,
				Entries:  bucket,
			})
		}
	}
	return sections
}
