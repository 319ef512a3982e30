package models

// ShoppingItem is one entry of a shopping list as stored by the list
// layer: the raw-ish quantity/unit strings plus the ingredient name and an
// optional category hint carried over from the source recipe.
type ShoppingItem struct {
	Name         string  `json:"name"`
	CategoryHint *string `json:"category_hint,omitempty"`
	Quantity     *string `json:"quantity,omitempty"`
	Unit         *string `json:"unit,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// BuyListEntry pairs a shopping item with its derived purchase quantity
type BuyListEntry struct {
	Item     ShoppingItem      `json:"item"`
	Category GroceryCategory   `json:"category"`
	Purchase *PurchaseQuantity `json:"purchase,omitempty"`
}

// BuyListSection is one aisle section of a rendered buy list
type BuyListSection struct {
	Category GroceryCategory `json:"category"`
	Entries  []BuyListEntry  `json:"entries"`
}
