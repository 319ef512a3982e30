package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/foxxcyber/recipe-feed/internal/models"
)

const (
	importerTimeout   = 15 * time.Second
	maxImportBody     = 4 << 20 // 4 MB of HTML is plenty for a recipe page
	importerUserAgent = "recipe-feed-importer/1.0"
)

var (
	ErrNoRecipeFound = errors.New("no recipe found in page")
	ErrFetchFailed   = errors.New("failed to fetch recipe page")
)

// jsonLDPattern pulls the body of every application/ld+json script block
var jsonLDPattern = regexp.MustCompile(`(?is)<script[^>]*type\s*=\s*["']application/ld\+json["'][^>]*>(.*?)</script>`)

// RecipeSaver persists an imported recipe together with its embedding
// (nil embedding is allowed when the provider is unavailable).
type RecipeSaver interface {
	SaveRecipe(ctx context.Context, recipe models.ParsedRecipe, embedding []float32) (int, error)
}

// RecipeImporter drives the import pipeline: fetch, extract, normalize
// each ingredient line, embed, duplicate-check, persist.
type RecipeImporter struct {
	normalizer *IngredientNormalizer
	embedder   *EmbeddingService
	detector   *DuplicateDetector
	saver      RecipeSaver
	httpClient *http.Client
}

// ImportResult is the outcome of importing one recipe
type ImportResult struct {
	Recipe        models.ParsedRecipe   `json:"recipe"`
	Duplicate     models.DuplicateCheck `json:"duplicate"`
	SavedID       *int                  `json:"saved_id,omitempty"`
	EmbeddingUsed bool                  `json:"embedding_used"`
}

// NewRecipeImporter creates an importer. detector and saver may be nil
// for normalize-only (dry run) use.
func NewRecipeImporter(embedder *EmbeddingService, detector *DuplicateDetector, saver RecipeSaver) *RecipeImporter {
	return &RecipeImporter{
		normalizer: NewIngredientNormalizer(),
		embedder:   embedder,
		detector:   detector,
		saver:      saver,
		httpClient: &http.Client{Timeout: importerTimeout},
	}
}

// ImportFromURL fetches a recipe page and runs the full pipeline
func (im *RecipeImporter) ImportFromURL(ctx context.Context, pageURL string) (*ImportResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid recipe URL: %w", err)
	}
	req.Header.Set("User-Agent", importerUserAgent)

	resp, err := im.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d", ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImportBody))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	return im.ImportFromHTML(ctx, string(body), pageURL)
}

// ImportFromHTML extracts a recipe from raw HTML and runs the pipeline
func (im *RecipeImporter) ImportFromHTML(ctx context.Context, html, sourceURL string) (*ImportResult, error) {
	extracted, err := ExtractRecipeJSONLD(html)
	if err != nil {
		return nil, err
	}

	recipe := models.ParsedRecipe{
		Title:       extracted.Name,
		Steps:       extracted.Instructions,
		Ingredients: im.normalizer.NormalizeLines(extracted.Ingredients),
	}
	if extracted.Description != "" {
		desc := extracted.Description
		recipe.Description = &desc
	}
	if sourceURL != "" {
		src := sourceURL
		recipe.SourceURL = &src
	}

	return im.runPipeline(ctx, recipe)
}

// ImportFromText builds a recipe from a title plus free-form ingredient
// and step lines (pasted text, no HTML involved) and runs the pipeline
func (im *RecipeImporter) ImportFromText(ctx context.Context, title string, ingredientLines, steps []string) (*ImportResult, error) {
	recipe := models.ParsedRecipe{
		Title:       strings.TrimSpace(title),
		Steps:       steps,
		Ingredients: im.normalizer.NormalizeLines(ingredientLines),
	}
	return im.runPipeline(ctx, recipe)
}

// runPipeline embeds, duplicate-checks and persists a parsed recipe.
// Embedding failures degrade to title-only duplicate detection; they
// never fail the import.
func (im *RecipeImporter) runPipeline(ctx context.Context, recipe models.ParsedRecipe) (*ImportResult, error) {
	result := &ImportResult{Recipe: recipe}

	var embedding []float32
	if im.embedder != nil && im.embedder.Enabled() {
		var err error
		embedding, err = im.embedder.EmbedText(ctx, BuildEmbeddingText(recipe))
		if err != nil {
			log.Printf("Warning: embedding unavailable, duplicate check degrades to title match: %v", err)
			embedding = nil
		} else {
			result.EmbeddingUsed = true
		}
	}

	if im.detector != nil {
		result.Duplicate = im.detector.FindDuplicate(ctx, embedding, recipe.Title)
		if result.Duplicate.IsDuplicate {
			return result, nil
		}
	}

	if im.saver != nil {
		id, err := im.saver.SaveRecipe(ctx, recipe, embedding)
		if err != nil {
			return result, fmt.Errorf("failed to save recipe: %w", err)
		}
		result.SavedID = &id
	}

	return result, nil
}

// ExtractedRecipe is the raw schema.org recipe data before normalization
type ExtractedRecipe struct {
	Name         string
	Description  string
	Ingredients  []string
	Instructions []string
}

// ExtractRecipeJSONLD finds the first schema.org/Recipe object in the
// page's ld+json blocks. Handles bare objects, arrays and @graph wrappers;
// instruction entries may be plain strings, HowToStep objects or
// HowToSection groups.
func ExtractRecipeJSONLD(html string) (*ExtractedRecipe, error) {
	for _, match := range jsonLDPattern.FindAllStringSubmatch(html, -1) {
		var raw interface{}
		if err := json.Unmarshal([]byte(strings.TrimSpace(match[1])), &raw); err != nil {
			continue // broken block, keep scanning
		}
		if recipe := findRecipeNode(raw); recipe != nil {
			return recipe, nil
		}
	}
	return nil, ErrNoRecipeFound
}

// findRecipeNode walks a decoded ld+json value looking for @type Recipe
func findRecipeNode(node interface{}) *ExtractedRecipe {
	switch v := node.(type) {
	case []interface{}:
		for _, item := range v {
			if recipe := findRecipeNode(item); recipe != nil {
				return recipe
			}
		}
	case map[string]interface{}:
		if hasType(v, "Recipe") {
			return decodeRecipeNode(v)
		}
		if graph, ok := v["@graph"]; ok {
			return findRecipeNode(graph)
		}
	}
	return nil
}

func hasType(node map[string]interface{}, want string) bool {
	switch t := node["@type"].(type) {
	case string:
		return strings.EqualFold(t, want)
	case []interface{}:
		for _, item := range t {
			if s, ok := item.(string); ok && strings.EqualFold(s, want) {
				return true
			}
		}
	}
	return false
}

func decodeRecipeNode(node map[string]interface{}) *ExtractedRecipe {
	recipe := &ExtractedRecipe{
		Name:        stringField(node, "name"),
		Description: stringField(node, "description"),
	}

	if list, ok := node["recipeIngredient"].([]interface{}); ok {
		for _, item := range list {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				recipe.Ingredients = append(recipe.Ingredients, strings.TrimSpace(s))
			}
		}
	}

	recipe.Instructions = decodeInstructions(node["recipeInstructions"])
	return recipe
}

// decodeInstructions flattens recipeInstructions: strings, HowToStep
// objects ("text" field) and nested HowToSection itemListElement lists
func decodeInstructions(node interface{}) []string {
	var steps []string
	switch v := node.(type) {
	case string:
		if s := strings.TrimSpace(v); s != "" {
			steps = append(steps, s)
		}
	case []interface{}:
		for _, item := range v {
			steps = append(steps, decodeInstructions(item)...)
		}
	case map[string]interface{}:
		if text := stringField(v, "text"); text != "" {
			steps = append(steps, text)
		} else if nested, ok := v["itemListElement"]; ok {
			steps = append(steps, decodeInstructions(nested)...)
		}
	}
	return steps
}

func stringField(node map[string]interface{}, key string) string {
	if s, ok := node[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}
