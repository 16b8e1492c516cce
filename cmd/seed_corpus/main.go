package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pantrychef/backend/internal/corpus"
	"github.com/pantrychef/backend/internal/models"
	"github.com/pantrychef/backend/internal/service"
)

// seed_corpus builds the versioned corpus artifact from a raw recipe dump.
// Every recipe document is encoded through the same encoder the API uses at
// query time, then metadata and vectors are written together as one bundle.
// With -db-url it also seeds the pgvector table for the postgres backend.
func main() {
	var (
		inputPath  = flag.String("input", "data/recipes.json", "path to the raw recipes JSON file")
		bundlePath = flag.String("bundle", "data/corpus_bundle.json", "output path for the corpus bundle")
		version    = flag.String("version", "", "bundle version (defaults to a timestamp)")
		encoderURL = flag.String("encoder-url", os.Getenv("ENCODER_URL"), "encoder sidecar base URL")
		dbURL      = flag.String("db-url", os.Getenv("DATABASE_URL"), "optional postgres URL to seed the pgvector table")
		dim        = flag.Int("dim", 384, "expected embedding dimension")
	)
	flag.Parse()

	if *encoderURL == "" {
		log.Fatal("an encoder URL is required (-encoder-url or ENCODER_URL)")
	}
	if *version == "" {
		*version = time.Now().UTC().Format("20060102T150405Z")
	}

	data, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("Failed to read recipes: %v", err)
	}

	var recipes []models.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		log.Fatalf("Failed to decode recipes: %v", err)
	}
	if len(recipes) == 0 {
		log.Fatal("No recipes to seed")
	}

	encoder := service.NewEncoderClient(*encoderURL)
	ctx := context.Background()

	vectors := make([][]float32, len(recipes))
	for i := range recipes {
		recipes[i].Position = i

		vec, err := encoder.Encode(ctx, recipeDocument(&recipes[i]))
		if err != nil {
			log.Fatalf("Failed to encode recipe %d (%s): %v", i, recipes[i].Name, err)
		}
		if len(vec) != *dim {
			log.Fatalf("Recipe %d embedding has dimension %d, want %d", i, len(vec), *dim)
		}
		vectors[i] = vec
		recipes[i].Embedding = pgvector.NewVector(vec)

		if (i+1)%100 == 0 {
			log.Printf("Encoded %d/%d recipes", i+1, len(recipes))
		}
	}

	bundle := &corpus.Bundle{
		Version: *version,
		Dim:     *dim,
		Recipes: recipes,
		Vectors: vectors,
	}
	if err := corpus.SaveBundle(*bundlePath, bundle); err != nil {
		log.Fatalf("Failed to write bundle: %v", err)
	}
	log.Printf("Wrote bundle version %s with %d recipes to %s", *version, len(recipes), *bundlePath)

	if *dbURL != "" {
		if err := seedDatabase(*dbURL, *version, recipes); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
		log.Printf("Seeded pgvector table with %d recipes (version %s)", len(recipes), *version)
	}
}

// recipeDocument assembles the text the corpus was indexed on. The query
// builder produces text in the same space, which is what makes the distances
// meaningful.
func recipeDocument(r *models.Recipe) string {
	parts := []string{r.Name, strings.Join(r.Ingredients, " ")}
	if r.Course != "" {
		parts = append(parts, r.Course)
	}
	if r.Diet != "" {
		parts = append(parts, r.Diet)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// seedDatabase replaces the recipes table contents and records the bundle
// version so the server can verify the corpus at startup.
func seedDatabase(dbURL, version string, recipes []models.Recipe) error {
	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		return fmt.Errorf("failed to enable pgvector extension: %w", err)
	}
	if err := db.AutoMigrate(&models.Recipe{}, &models.CorpusMeta{}); err != nil {
		return fmt.Errorf("failed to migrate corpus tables: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM recipes").Error; err != nil {
			return err
		}
		if err := tx.CreateInBatches(recipes, 500).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM corpus_meta").Error; err != nil {
			return err
		}
		return tx.Create(&models.CorpusMeta{ID: 1, Version: version}).Error
	})
}
