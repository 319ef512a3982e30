package models

// UnitSpec describes a canonical measurement unit. Exactly one of ToMl/ToG
// is set for volume/weight units; count units (clove, piece) have neither.
type UnitSpec struct {
	Key  string   `json:"key"`
	ToMl *float64 `json:"to_ml,omitempty"`
	ToG  *float64 `json:"to_g,omitempty"`
}

// IsVolume reports whether the unit converts to milliliters
func (u UnitSpec) IsVolume() bool {
	return u.ToMl != nil
}

// IsWeight reports whether the unit converts to grams
func (u UnitSpec) IsWeight() bool {
	return u.ToG != nil
}

// IsCount reports whether the unit is count-like (no ml/g factor)
func (u UnitSpec) IsCount() bool {
	return u.ToMl == nil && u.ToG == nil
}

// IngredientLine is the structured form of one raw ingredient string.
// It is derived entirely from RawText and never mutated after creation;
// re-normalizing produces a new record.
type IngredientLine struct {
	RawText      string    `json:"raw_text"`
	QuantityText string    `json:"quantity_text,omitempty"`
	Quantity     *float64  `json:"quantity,omitempty"`
	Unit         *UnitSpec `json:"unit,omitempty"`
	Name         string    `json:"name"`
	Notes        *string   `json:"notes,omitempty"`
	QuantityMl   *float64  `json:"quantity_ml,omitempty"`
	QuantityG    *float64  `json:"quantity_g,omitempty"`
}
