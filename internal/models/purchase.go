package models

// PurchaseQuantity is a human-readable, store-buyable amount derived from
// a recipe quantity/unit. When a package-size table applies, Quantity is a
// rounded-up value from a discrete size list, never the raw recipe amount.
type PurchaseQuantity struct {
	Quantity    string `json:"quantity"`
	Unit        string `json:"unit"`
	DisplayText string `json:"display_text"`
}
