package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/foxxcyber/recipe-feed/internal/models"
)

// IngredientNormalizer turns raw ingredient lines into structured
// IngredientLine records. It is a best-effort heuristic parser: lines it
// cannot split still come back with the whole text as the name, never an
// error.
type IngredientNormalizer struct {
	linePattern *regexp.Regexp
}

// NewIngredientNormalizer creates a new normalizer instance
func NewIngredientNormalizer() *IngredientNormalizer {
	// One anchored pass over the trimmed line:
	//   ^(quantity chars)? (known unit token)?.? (rest)$
	// Quantity chars are digits, spaces, slashes, dots, hyphens and the
	// unicode vulgar-fraction glyphs. The unit group is the full synonym
	// alternation from the unit table, longest token first.
	pattern := fmt.Sprintf(
		`^([\d\s./\x{00BC}-\x{00BE}\x{2150}-\x{215E}-]+)?\s*(?i:(%s))?\b\.?\s*(.*)$`,
		unitTokenAlternation(),
	)
	return &IngredientNormalizer{
		linePattern: regexp.MustCompile(pattern),
	}
}

// NormalizeLine parses a single raw ingredient line
func (n *IngredientNormalizer) NormalizeLine(raw string) models.IngredientLine {
	line := models.IngredientLine{RawText: raw}

	trimmed := strings.TrimSpace(raw)
	matches := n.linePattern.FindStringSubmatch(trimmed)
	if matches == nil {
		// The optional groups make this unreachable in practice, but the
		// failure policy is: whole line becomes the name.
		line.Name = trimmed
		return line
	}

	quantityText := strings.TrimSpace(matches[1])
	unitToken := strings.ToLower(strings.TrimSpace(matches[2]))
	rest := strings.TrimSpace(matches[3])

	if quantityText != "" {
		line.QuantityText = quantityText
		line.Quantity = ParseQuantity(quantityText)
	}
	if unitToken != "" {
		line.Unit = CanonicalUnit(unitToken)
	}

	// First comma splits name from notes; any further commas stay inside
	// the notes text.
	name, notes, hasNotes := strings.Cut(rest, ",")
	line.Name = strings.TrimSpace(name)
	if hasNotes {
		if trimmedNotes := strings.TrimSpace(notes); trimmedNotes != "" {
			line.Notes = &trimmedNotes
		}
	}

	if line.Name == "" && line.Quantity == nil && line.Unit == nil {
		line.Name = trimmed
	}

	// Base-unit quantities only when both a numeric quantity and a
	// convertible unit exist.
	if line.Quantity != nil && line.Unit != nil {
		conv := ConvertUnit(*line.Quantity, *line.Unit)
		line.QuantityMl = conv.Ml
		line.QuantityG = conv.G
	}

	return line
}

// NormalizeLines parses a batch of raw lines, preserving input order.
// Blank lines are skipped.
func (n *IngredientNormalizer) NormalizeLines(raws []string) []models.IngredientLine {
	lines := make([]models.IngredientLine, 0, len(raws))
	for _, raw := range raws {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		lines = append(lines, n.NormalizeLine(raw))
	}
	return lines
}
