package services

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeText lowercases, strips diacritics and collapses whitespace so
// "Jalapeño  Peppers" and "jalapeno peppers" compare equal. Used for
// category matching and title comparison.
func normalizeText(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if stripped, _, err := transform.String(diacriticStripper, s); err == nil {
		s = stripped
	}
	return strings.Join(strings.Fields(s), " ")
}
