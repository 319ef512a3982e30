package services

import (
	"math"
	"testing"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		isNil bool
	}{
		// Plain numbers
		{"2", 2, false},
		{"1.5", 1.5, false},
		{"10", 10, false},
		{"0", 0, false}, // a parsed zero is zero, not absent

		// ASCII fractions and mixed numbers
		{"1/2", 0.5, false},
		{"3/4", 0.75, false},
		{"1 1/2", 1.5, false},
		{"2 1/4", 2.25, false},
		{"1-1/2", 1.5, false},

		// Unicode vulgar fractions
		{"½", 0.5, false},
		{"¼", 0.25, false},
		{"¾", 0.75, false},
		{"⅓", 0.0, false}, // checked for rough value below
		{"1½", 1.5, false},
		{"1 ½", 1.5, false},

		// Absent / unparsable
		{"", 0, true},
		{"   ", 0, true},
		{"abc", 0, true},
		{"a pinch of", 0, true},
		{"0/0", 0, true}, // zero denominator never parses

		// Junk mixed with numbers: bad tokens are skipped, not errors
		{"about 2", 2, false},
		{"2 or so", 2, false},

		// Ranges sum both sides in this parser; the purchase path has
		// its own upper-bound resolution
		{"1 to 2", 3, false},
		{"1-2", 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseQuantity(tt.input)
			if tt.isNil {
				if got != nil {
					t.Fatalf("ParseQuantity(%q) = %v, want nil", tt.input, *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ParseQuantity(%q) = nil, want %v", tt.input, tt.want)
			}
			if tt.input == "⅓" {
				if math.Abs(*got-1.0/3.0) > 1e-9 {
					t.Fatalf("ParseQuantity(⅓) = %v, want 1/3", *got)
				}
				return
			}
			if math.Abs(*got-tt.want) > 1e-9 {
				t.Fatalf("ParseQuantity(%q) = %v, want %v", tt.input, *got, tt.want)
			}
		})
	}
}

func TestParseQuantityNegativeTokensSkipped(t *testing.T) {
	if got := ParseQuantity("-5"); got != nil {
		t.Fatalf("ParseQuantity(-5) = %v, want nil", *got)
	}
}
