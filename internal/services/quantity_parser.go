package services

import (
	"regexp"
	"strconv"
	"strings"
)

// Unicode vulgar fractions rewritten to their a/b textual form. The
// leading space keeps "1½" tokenizing as "1 1/2" instead of "11/2".
var vulgarFractions = map[string]string{
	"¼": " 1/4", // ¼
	"½": " 1/2", // ½
	"¾": " 3/4", // ¾
	"⅓": " 1/3", // ⅓
	"⅔": " 2/3", // ⅔
	"⅕": " 1/5", // ⅕
	"⅖": " 2/5", // ⅖
	"⅗": " 3/5", // ⅗
	"⅘": " 4/5", // ⅘
	"⅙": " 1/6", // ⅙
	"⅚": " 5/6", // ⅚
	"⅛": " 1/8", // ⅛
	"⅜": " 3/8", // ⅜
	"⅝": " 5/8", // ⅝
	"⅞": " 7/8", // ⅞
}

// Hyphens joining two numbers ("1-1/2", "1-2") become spaces before
// tokenizing
var numberHyphenPattern = regexp.MustCompile(`(\d)\s*-\s*(\d)`)

// ParseQuantity parses a free-form quantity string into a number.
// It accepts integers, decimals, ASCII fractions ("1/2"), mixed numbers
// ("1 1/2", "1-1/2") and unicode vulgar fraction glyphs. All parseable
// tokens are summed; unparsable tokens are skipped, never an error.
// Returns nil when nothing in the input parses as a quantity.
//
// Range strings like "1 to 2" sum both bounds here. The purchase-quantity
// path resolves ranges to their upper bound on its own; list-item
// normalization keeps this additive behavior.
func ParseQuantity(input string) *float64 {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil
	}

	for glyph, ascii := range vulgarFractions {
		s = strings.ReplaceAll(s, glyph, ascii)
	}
	s = numberHyphenPattern.ReplaceAllString(s, "$1 $2")

	total := 0.0
	matched := 0
	for _, token := range strings.Fields(s) {
		if v, ok := parseQuantityToken(token); ok {
			total += v
			matched++
		}
	}

	// Distinguish "absent" from a literal zero: only a zero that came
	// from at least one parsed token is returned as 0.
	if matched == 0 {
		return nil
	}
	return &total
}

// parseQuantityToken parses a single token as either "a/b" or a plain
// float. Negative values are rejected; quantities are never negative.
func parseQuantityToken(token string) (float64, bool) {
	if num, denom, ok := strings.Cut(token, "/"); ok {
		a, errA := strconv.ParseFloat(num, 64)
		b, errB := strconv.ParseFloat(denom, 64)
		if errA == nil && errB == nil && b != 0 && a >= 0 && b > 0 {
			return a / b, true
		}
		return 0, false
	}

	v, err := strconv.ParseFloat(token, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
