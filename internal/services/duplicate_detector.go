package services

import (
	"context"
	"log"

	"github.com/agnivade/levenshtein"

	"github.com/foxxcyber/recipe-feed/internal/models"
)

// RecipeStore is the persistence boundary the detector consumes. The
// nearest-neighbor index itself lives behind this interface; the detector
// only interprets its results.
type RecipeStore interface {
	// NearestByEmbedding returns the single closest stored recipe by
	// vector distance, or nil when the store holds no embeddings.
	NearestByEmbedding(ctx context.Context, embedding []float32) (*models.RecipeMatch, error)
	// FindByExactTitle returns a recipe whose title matches
	// case-insensitively, or nil.
	FindByExactTitle(ctx context.Context, title string) (*models.RecipeMatch, error)
}

// DuplicateDetector decides whether a candidate recipe is already stored.
// Two independent signals, either sufficient: embedding distance under the
// configured threshold, or an exact case-insensitive title match.
type DuplicateDetector struct {
	store     RecipeStore
	threshold float64
}

// NewDuplicateDetector creates a detector. The threshold is tuned per
// embedding model/dimension and comes from configuration, not from here.
func NewDuplicateDetector(store RecipeStore, threshold float64) *DuplicateDetector {
	return &DuplicateDetector{store: store, threshold: threshold}
}

// FindDuplicate checks a candidate against the store. A nil or empty
// embedding (provider down, embeddings disabled) skips the vector check
// and relies on the title alone; store errors degrade the same way rather
// than failing the import.
func (d *DuplicateDetector) FindDuplicate(ctx context.Context, candidateEmbedding []float32, candidateTitle string) models.DuplicateCheck {
	var result models.DuplicateCheck

	if len(candidateEmbedding) > 0 {
		nearest, err := d.store.NearestByEmbedding(ctx, candidateEmbedding)
		if err != nil {
			log.Printf("Warning: nearest-embedding lookup failed, falling back to title match: %v", err)
		} else if nearest != nil && nearest.Distance != nil {
			result.Distance = nearest.Distance
			if *nearest.Distance < d.threshold {
				id := nearest.ID
				title := nearest.Title
				result.IsDuplicate = true
				result.MatchedID = &id
				result.MatchedTitle = &title
				result.MatchType = "embedding"
				result.Confidence = TitleMatchConfidence(candidateTitle, nearest.Title)
				return result
			}
		}
	}

	match, err := d.store.FindByExactTitle(ctx, candidateTitle)
	if err != nil {
		log.Printf("Warning: title lookup failed during duplicate check: %v", err)
		return result
	}
	if match != nil {
		id := match.ID
		title := match.Title
		result.IsDuplicate = true
		result.MatchedID = &id
		result.MatchedTitle = &title
		result.MatchType = "title"
		result.Confidence = "high"
	}

	return result
}

// TitleMatchConfidence grades how close two titles are once normalized,
// using edit distance relative to the longer title. Attached to embedding
// matches so reviewers can see whether the titles corroborate the vector
// signal.
func TitleMatchConfidence(a, b string) string {
	na, nb := normalizeText(a), normalizeText(b)
	if na == "" || nb == "" {
		return "none"
	}
	if na == nb {
		return "high"
	}

	longest := len(na)
	if len(nb) > longest {
		longest = len(nb)
	}
	distance := levenshtein.ComputeDistance(na, nb)
	similarity := 1.0 - float64(distance)/float64(longest)

	switch {
	case similarity >= 0.9:
		return "high"
	case similarity >= 0.7:
		return "medium"
	case similarity >= 0.5:
		return "low"
	default:
		return "none"
	}
}
