package services

import (
	"testing"
)

func TestToPurchaseQuantity(t *testing.T) {
	tests := []struct {
		name       string
		quantity   string
		unit       string
		ingredient string
		wantNil    bool
		display    string
	}{
		{
			name:       "small oil amount rounds to smallest bottle",
			quantity:   "2",
			unit:       "tbsp",
			ingredient: "olive oil",
			display:    "8 fl oz",
		},
		{
			name:       "oil amount exactly on a size buys that size",
			quantity:   "16",
			unit:       "fl oz",
			ingredient: "olive oil",
			display:    "16 fl oz",
		},
		{
			name:       "oil amount just over a size buys the next one",
			quantity:   "16.8",
			unit:       "fl oz",
			ingredient: "olive oil",
			display:    "32 fl oz",
		},
		{
			name:       "oil amount beyond the table buys the largest size",
			quantity:   "2",
			unit:       "gallons",
			ingredient: "vegetable oil",
			display:    "32 fl oz",
		},
		{
			name:       "broth buys whole containers",
			quantity:   "6",
			unit:       "cups",
			ingredient: "chicken broth",
			display:    "2 containers (32 fl oz each)",
		},
		{
			name:       "single container",
			quantity:   "1",
			unit:       "cup",
			ingredient: "chicken stock",
			display:    "1 container (32 fl oz each)",
		},
		{
			name:       "volume-measured flour buys by the pound",
			quantity:   "2",
			unit:       "cups",
			ingredient: "all-purpose flour",
			display:    "1 lb",
		},
		{
			name:       "metric butter",
			quantity:   "250",
			unit:       "g",
			ingredient: "butter",
			display:    "1 lb",
		},
		{
			name:       "spice buys the small jar",
			quantity:   "2.5",
			unit:       "tsp",
			ingredient: "paprika",
			display:    "0.125 lb",
		},
		{
			name:       "absent quantity and unit buys one default package",
			quantity:   "",
			unit:       "",
			ingredient: "flour",
			display:    "1 lb",
		},
		{
			name:       "zero with no unit means nothing to buy",
			quantity:   "0",
			unit:       "",
			ingredient: "salt",
			wantNil:    true,
		},
		{
			name:       "count units buy whole pieces",
			quantity:   "2",
			unit:       "cloves",
			ingredient: "garlic",
			display:    "2 cloves",
		},
		{
			name:       "bare quantity rounds up to whole items",
			quantity:   "1.5",
			unit:       "",
			ingredient: "onion",
			display:    "2",
		},
		{
			name:       "range resolves to its upper bound",
			quantity:   "1 to 2",
			unit:       "cups",
			ingredient: "canola oil",
			display:    "16 fl oz",
		},
		{
			name:       "hyphen range resolves to its upper bound",
			quantity:   "1-2",
			unit:       "",
			ingredient: "lemon",
			display:    "2",
		},
		{
			name:       "unknown unit passes through unchanged",
			quantity:   "3",
			unit:       "bunches",
			ingredient: "kale",
			display:    "3 bunches",
		},
		{
			name:       "convertible unit without a package family passes through",
			quantity:   "1",
			unit:       "lb",
			ingredient: "ground beef",
			display:    "1 lb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToPurchaseQuantity(tt.quantity, tt.unit, tt.ingredient)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("ToPurchaseQuantity(%q, %q, %q) = %+v, want nil",
						tt.quantity, tt.unit, tt.ingredient, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ToPurchaseQuantity(%q, %q, %q) = nil, want %q",
					tt.quantity, tt.unit, tt.ingredient, tt.display)
			}
			if got.DisplayText != tt.display {
				t.Errorf("DisplayText = %q, want %q", got.DisplayText, tt.display)
			}
		})
	}
}

func TestRoundUpToSize(t *testing.T) {
	sizes := []float64{8, 16, 32}

	tests := []struct {
		amount float64
		want   float64
	}{
		{0.5, 8},
		{8, 8},
		{8.01, 16},
		{16, 16},
		{16.8, 32},
		{32, 32},
		{100, 32},
	}

	for _, tt := range tests {
		if got := roundUpToSize(tt.amount, sizes); got != tt.want {
			t.Errorf("roundUpToSize(%v) = %v, want %v", tt.amount, got, tt.want)
		}
	}
}

func TestInferPackage(t *testing.T) {
	tests := []struct {
		ingredient string
		kind       packageKind
	}{
		{"chicken broth", packageContainer},
		{"olive oil", packageVolume},
		{"balsamic vinegar", packageVolume},
		{"white rice", packageWeight},
		{"unsalted butter", packageWeight},
		{"bananas", packageCount},
	}

	for _, tt := range tests {
		t.Run(tt.ingredient, func(t *testing.T) {
			if got := inferPackage(tt.ingredient); got.kind != tt.kind {
				t.Errorf("inferPackage(%q).kind = %v, want %v", tt.ingredient, got.kind, tt.kind)
			}
		})
	}
}
