package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/foxxcyber/recipe-feed/internal/config"
	"github.com/foxxcyber/recipe-feed/internal/database"
	"github.com/foxxcyber/recipe-feed/internal/services"
)

// SeedRecipe is one entry of the seed corpus file
type SeedRecipe struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	SourceURL   string   `json:"source_url,omitempty"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

func main() {
	// Command line flags
	seedFile := flag.String("file", "seed/recipes.json", "JSON corpus of recipes to import")
	dryRun := flag.Bool("dry-run", false, "Preview changes without writing to database")
	skipDuplicates := flag.Bool("skip-duplicates", true, "Skip recipes the duplicate detector flags")
	flag.Parse()

	// Load .env
	godotenv.Load()

	// Load config
	cfg := config.Load()

	corpus, err := loadCorpus(*seedFile)
	if err != nil {
		log.Fatalf("Failed to load seed file: %v", err)
	}
	log.Printf("Loaded %d recipes from %s", len(corpus), *seedFile)

	if *dryRun {
		previewCorpus(corpus)
		return
	}

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	embedder := services.NewEmbeddingService(
		cfg.EmbeddingAPIKey, cfg.EmbeddingBaseURL, cfg.EmbeddingModel, cfg.EmbeddingDimension,
	)
	if !embedder.Enabled() {
		log.Println("EMBEDDING_API_KEY not set, seeding without embeddings")
	}

	var detector *services.DuplicateDetector
	if *skipDuplicates {
		detector = services.NewDuplicateDetector(db, cfg.DuplicateThreshold)
	}
	importer := services.NewRecipeImporter(embedder, detector, db)

	ctx := context.Background()
	saved, skipped, failed := 0, 0, 0
	for _, seed := range corpus {
		result, err := importer.ImportFromText(ctx, seed.Title, seed.Ingredients, seed.Steps)
		if err != nil {
			log.Printf("Warning: failed to import %q: %v", seed.Title, err)
			failed++
			continue
		}
		if result.Duplicate.IsDuplicate {
			log.Printf("Skipping duplicate %q (match: %s)", seed.Title, result.Duplicate.MatchType)
			skipped++
			continue
		}
		saved++
	}

	log.Printf("Seeding complete: %d saved, %d duplicates skipped, %d failed", saved, skipped, failed)
}

func loadCorpus(path string) ([]SeedRecipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var corpus []SeedRecipe
	if err := json.Unmarshal(data, &corpus); err != nil {
		return nil, fmt.Errorf("invalid seed JSON: %w", err)
	}
	return corpus, nil
}

func previewCorpus(corpus []SeedRecipe) {
	normalizer := services.NewIngredientNormalizer()
	for _, seed := range corpus {
		fmt.Printf("%s (%d ingredients, %d steps)\n", seed.Title, len(seed.Ingredients), len(seed.Steps))
		for _, line := range normalizer.NormalizeLines(seed.Ingredients) {
			category := services.Classify("", line.Name)
			fmt.Printf("  - %-40s -> %s\n", line.Name, category)
		}
	}
}
