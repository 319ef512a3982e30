package services

import (
	"testing"
)

func TestNormalizeLine(t *testing.T) {
	n := NewIngredientNormalizer()

	tests := []struct {
		name     string
		raw      string
		quantity *float64
		unitKey  string
		ml       *float64
		g        *float64
		itemName string
		notes    string
	}{
		{
			name:     "quantity unit name and notes",
			raw:      "1 1/2 cups finely chopped onions, divided",
			quantity: f(1.5),
			unitKey:  "cup",
			ml:       f(360),
			itemName: "finely chopped onions",
			notes:    "divided",
		},
		{
			name:     "no unit keeps descriptor in name",
			raw:      "2 large eggs, beaten",
			quantity: f(2),
			itemName: "large eggs",
			notes:    "beaten",
		},
		{
			name:     "abbreviated unit with trailing period",
			raw:      "1/2 tsp. vanilla extract",
			quantity: f(0.5),
			unitKey:  "tsp",
			ml:       f(2.46),
			itemName: "vanilla extract",
		},
		{
			name:     "count unit has no base quantities",
			raw:      "3 cloves garlic, minced",
			quantity: f(3),
			unitKey:  "clove",
			itemName: "garlic",
			notes:    "minced",
		},
		{
			name:     "unicode fraction",
			raw:      "½ cup milk",
			quantity: f(0.5),
			unitKey:  "cup",
			ml:       f(120),
			itemName: "milk",
		},
		{
			name:     "weight unit",
			raw:      "1 lb ground beef",
			quantity: f(1),
			unitKey:  "lb",
			g:        f(453.59),
			itemName: "ground beef",
		},
		{
			name:     "name only",
			raw:      "Salt to taste",
			itemName: "Salt to taste",
		},
		{
			name:     "no space after quantity falls back to name",
			raw:      "2eggs",
			itemName: "2eggs",
		},
		{
			name:     "extra commas stay in notes",
			raw:      "1 cup flour, sifted, plus more for dusting",
			quantity: f(1),
			unitKey:  "cup",
			ml:       f(240),
			itemName: "flour",
			notes:    "sifted, plus more for dusting",
		},
		{
			name:     "surrounding whitespace trimmed",
			raw:      "  2 tbsp olive oil  ",
			quantity: f(2),
			unitKey:  "tbsp",
			ml:       f(29.57),
			itemName: "olive oil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := n.NormalizeLine(tt.raw)

			if line.RawText != tt.raw {
				t.Errorf("RawText = %q, want %q", line.RawText, tt.raw)
			}
			if !floatPtrEq(line.Quantity, tt.quantity) {
				t.Errorf("Quantity = %v, want %v", fv(line.Quantity), fv(tt.quantity))
			}
			if tt.unitKey == "" {
				if line.Unit != nil {
					t.Errorf("Unit = %q, want none", line.Unit.Key)
				}
			} else if line.Unit == nil || line.Unit.Key != tt.unitKey {
				t.Errorf("Unit = %+v, want key %q", line.Unit, tt.unitKey)
			}
			if !floatPtrEq(line.QuantityMl, tt.ml) {
				t.Errorf("QuantityMl = %v, want %v", fv(line.QuantityMl), fv(tt.ml))
			}
			if !floatPtrEq(line.QuantityG, tt.g) {
				t.Errorf("QuantityG = %v, want %v", fv(line.QuantityG), fv(tt.g))
			}
			if line.Name != tt.itemName {
				t.Errorf("Name = %q, want %q", line.Name, tt.itemName)
			}
			if tt.notes == "" {
				if line.Notes != nil {
					t.Errorf("Notes = %q, want none", *line.Notes)
				}
			} else if line.Notes == nil || *line.Notes != tt.notes {
				t.Errorf("Notes = %v, want %q", line.Notes, tt.notes)
			}
		})
	}
}

func TestNormalizeLinesSkipsBlanks(t *testing.T) {
	n := NewIngredientNormalizer()

	lines := n.NormalizeLines([]string{"1 cup sugar", "", "   ", "2 eggs"})
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].Name != "sugar" {
		t.Errorf("lines[0].Name = %q, want %q", lines[0].Name, "sugar")
	}
	if lines[1].Name != "eggs" {
		t.Errorf("lines[1].Name = %q, want %q", lines[1].Name, "eggs")
	}
}

// f returns a pointer to v, for building expected values inline.
func f(v float64) *float64 { return &v }

func floatPtrEq(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func fv(p *float64) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
