package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/foxxcyber/recipe-feed/internal/config"
	"github.com/foxxcyber/recipe-feed/internal/database"
	"github.com/foxxcyber/recipe-feed/internal/models"
	"github.com/foxxcyber/recipe-feed/internal/services"
)

func main() {
	// Command line flags
	pageURL := flag.String("url", "", "Recipe page URL to import")
	htmlFile := flag.String("file", "", "Local HTML file to import instead of fetching")
	dryRun := flag.Bool("dry-run", false, "Normalize and report without writing to the database")
	showBuyList := flag.Bool("buy-list", false, "Print the grouped buy-quantity view of the imported ingredients")
	flag.Parse()

	if *pageURL == "" && *htmlFile == "" {
		log.Fatal("Either -url or -file is required")
	}

	// Load .env file if it exists
	godotenv.Load()

	// Load configuration
	cfg := config.Load()

	ctx := context.Background()

	// Connect to database unless this is a dry run
	var db *database.DB
	if !*dryRun {
		var err error
		db, err = database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := database.RunMigrations(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	embedder := services.NewEmbeddingService(
		cfg.EmbeddingAPIKey, cfg.EmbeddingBaseURL, cfg.EmbeddingModel, cfg.EmbeddingDimension,
	)
	if !embedder.Enabled() {
		log.Println("EMBEDDING_API_KEY not set, duplicate detection will use title matching only")
	}

	var detector *services.DuplicateDetector
	var saver services.RecipeSaver
	if db != nil {
		detector = services.NewDuplicateDetector(db, cfg.DuplicateThreshold)
		saver = db
	}
	importer := services.NewRecipeImporter(embedder, detector, saver)

	// Run the import
	var result *services.ImportResult
	var err error
	if *htmlFile != "" {
		html, readErr := os.ReadFile(*htmlFile)
		if readErr != nil {
			log.Fatalf("Failed to read %s: %v", *htmlFile, readErr)
		}
		result, err = importer.ImportFromHTML(ctx, string(html), "")
	} else {
		result, err = importer.ImportFromURL(ctx, *pageURL)
	}
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	printResult(result, *showBuyList)
}

func printResult(result *services.ImportResult, showBuyList bool) {
	recipe := result.Recipe

	fmt.Printf("Recipe: %s\n", recipe.Title)
	if recipe.SourceURL != nil {
		fmt.Printf("Source: %s\n", *recipe.SourceURL)
	}
	fmt.Printf("Ingredients (%d):\n", len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		fmt.Printf("  - %s\n", formatIngredient(ing))
	}
	fmt.Printf("Steps: %d\n", len(recipe.Steps))

	if result.Duplicate.IsDuplicate {
		title := ""
		if result.Duplicate.MatchedTitle != nil {
			title = *result.Duplicate.MatchedTitle
		}
		fmt.Printf("\nDuplicate of stored recipe %q (match: %s", title, result.Duplicate.MatchType)
		if result.Duplicate.Distance != nil {
			fmt.Printf(", distance %.4f", *result.Duplicate.Distance)
		}
		fmt.Println(") - not saved")
	} else if result.SavedID != nil {
		fmt.Printf("\nSaved as recipe #%d\n", *result.SavedID)
	} else {
		fmt.Println("\nDry run - nothing saved")
	}

	if showBuyList {
		fmt.Println("\nBuy list:")
		for _, section := range services.BuildBuyList(toShoppingItems(recipe.Ingredients)) {
			fmt.Printf("  %s:\n", section.Category)
			for _, entry := range section.Entries {
				line := entry.Item.Name
				if entry.Purchase != nil {
					line = entry.Purchase.DisplayText + " " + line
				}
				fmt.Printf("    - %s\n", strings.TrimSpace(line))
			}
		}
	}
}

func formatIngredient(ing models.IngredientLine) string {
	parts := []string{}
	if ing.QuantityText != "" {
		parts = append(parts, ing.QuantityText)
	}
	if ing.Unit != nil {
		parts = append(parts, ing.Unit.Key)
	}
	parts = append(parts, ing.Name)
	s := strings.Join(parts, " ")
	if ing.QuantityMl != nil {
		s += fmt.Sprintf(" (%.2f ml)", *ing.QuantityMl)
	} else if ing.QuantityG != nil {
		s += fmt.Sprintf(" (%.2f g)", *ing.QuantityG)
	}
	if ing.Notes != nil {
		s += " [" + *ing.Notes + "]"
	}
	return s
}

func toShoppingItems(lines []models.IngredientLine) []models.ShoppingItem {
	items := make([]models.ShoppingItem, 0, len(lines))
	for _, ing := range lines {
		item := models.ShoppingItem{Name: ing.Name, Notes: ing.Notes}
		if ing.QuantityText != "" {
			qty := ing.QuantityText
			item.Quantity = &qty
		}
		if ing.Unit != nil {
			unit := ing.Unit.Key
			item.Unit = &unit
		}
		items = append(items, item)
	}
	return items
}
