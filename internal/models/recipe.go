package models

import (
	"time"
)

// ParsedRecipe is the structured output of a recipe import, before
// persistence. Ingredients hold the normalized lines in source order.
type ParsedRecipe struct {
	Title       string           `json:"title"`
	Description *string          `json:"description,omitempty"`
	SourceURL   *string          `json:"source_url,omitempty"`
	Ingredients []IngredientLine `json:"ingredients"`
	Steps       []string         `json:"steps"`
}

// Recipe is a persisted recipe
type Recipe struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	SourceURL   *string   `json:"source_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// RecipeMatch is a nearest-neighbor or title-match result from the store
type RecipeMatch struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Distance *float64 `json:"distance,omitempty"`
}

// DuplicateCheck is the outcome of duplicate detection for a candidate
type DuplicateCheck struct {
	IsDuplicate  bool     `json:"is_duplicate"`
	MatchedID    *int     `json:"matched_id,omitempty"`
	MatchedTitle *string  `json:"matched_title,omitempty"`
	Distance     *float64 `json:"distance,omitempty"`
	MatchType    string   `json:"match_type,omitempty"` // "embedding", "title" or ""
	Confidence   string   `json:"confidence,omitempty"`
}
