package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pgvector/pgvector-go"

	"github.com/foxxcyber/recipe-feed/internal/models"
)

var (
	ErrRecipeNotFound = errors.New("recipe not found")
)

// SaveRecipe inserts a recipe with its ingredient lines, steps and
// (optional) embedding in a single transaction and returns the new ID
func (db *DB) SaveRecipe(ctx context.Context, recipe models.ParsedRecipe, embedding []float32) (int, error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var embeddingValue interface{}
	if len(embedding) > 0 {
		embeddingValue = pgvector.NewVector(embedding)
	}

	var recipeID int
	err = tx.QueryRow(ctx, `
		INSERT INTO recipes (title, description, source_url, embedding)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, recipe.Title, recipe.Description, recipe.SourceURL, embeddingValue).Scan(&recipeID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert recipe: %w", err)
	}

	for i, ing := range recipe.Ingredients {
		var unit *string
		if ing.Unit != nil {
			unit = &ing.Unit.Key
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO recipe_ingredients
				(recipe_id, position, raw_text, name, quantity_text, quantity, unit, quantity_ml, quantity_g, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`, recipeID, i, ing.RawText, ing.Name, nullIfEmpty(ing.QuantityText), ing.Quantity, unit, ing.QuantityMl, ing.QuantityG, ing.Notes)
		if err != nil {
			return 0, fmt.Errorf("failed to insert ingredient %d: %w", i, err)
		}
	}

	for i, step := range recipe.Steps {
		_, err = tx.Exec(ctx, `
			INSERT INTO recipe_steps (recipe_id, position, text)
			VALUES ($1, $2, $3)
		`, recipeID, i, step)
		if err != nil {
			return 0, fmt.Errorf("failed to insert step %d: %w", i, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit recipe: %w", err)
	}

	return recipeID, nil
}

// NearestByEmbedding returns the stored recipe closest to the given
// embedding by L2 distance, or nil when no recipe has an embedding yet
func (db *DB) NearestByEmbedding(ctx context.Context, embedding []float32) (*models.RecipeMatch, error) {
	var match models.RecipeMatch
	var distance float64

	err := db.Pool.QueryRow(ctx, `
		SELECT id, title, embedding <-> $1 AS distance
		FROM recipes
		WHERE embedding IS NOT NULL
		ORDER BY embedding <-> $1
		LIMIT 1
	`, pgvector.NewVector(embedding)).Scan(&match.ID, &match.Title, &distance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("nearest-embedding query failed: %w", err)
	}

	match.Distance = &distance
	return &match, nil
}

// FindByExactTitle returns a recipe whose title matches
// case-insensitively, or nil when none does
func (db *DB) FindByExactTitle(ctx context.Context, title string) (*models.RecipeMatch, error) {
	var match models.RecipeMatch

	err := db.Pool.QueryRow(ctx, `
		SELECT id, title
		FROM recipes
		WHERE LOWER(title) = LOWER($1)
		LIMIT 1
	`, title).Scan(&match.ID, &match.Title)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("title lookup failed: %w", err)
	}

	return &match, nil
}

// GetRecipe loads a persisted recipe header by ID
func (db *DB) GetRecipe(ctx context.Context, id int) (*models.Recipe, error) {
	var recipe models.Recipe

	err := db.Pool.QueryRow(ctx, `
		SELECT id, title, description, source_url, created_at
		FROM recipes
		WHERE id = $1
	`, id).Scan(&recipe.ID, &recipe.Title, &recipe.Description, &recipe.SourceURL, &recipe.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	return &recipe, nil
}

// GetRecipeIngredients loads the normalized ingredient lines of a recipe
// in source order
func (db *DB) GetRecipeIngredients(ctx context.Context, recipeID int) ([]models.IngredientLine, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT raw_text, name, quantity_text, quantity, unit, quantity_ml, quantity_g, notes
		FROM recipe_ingredients
		WHERE recipe_id = $1
		ORDER BY position
	`, recipeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []models.IngredientLine
	for rows.Next() {
		var line models.IngredientLine
		var quantityText, unit *string
		if err := rows.Scan(&line.RawText, &line.Name, &quantityText, &line.Quantity, &unit, &line.QuantityMl, &line.QuantityG, &line.Notes); err != nil {
			return nil, err
		}
		if quantityText != nil {
			line.QuantityText = *quantityText
		}
		if unit != nil {
			line.Unit = &models.UnitSpec{Key: *unit}
		}
		lines = append(lines, line)
	}

	return lines, rows.Err()
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
