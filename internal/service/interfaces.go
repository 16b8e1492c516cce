package service

import (
	"context"

	"github.com/pantrychef/backend/internal/models"
	"github.com/pantrychef/backend/internal/types"
)

// Encoder produces the fixed-dimension embedding for a piece of text. The
// corpus was indexed with the same embedding space, so a given encoder
// implementation must be deterministic for a fixed model.
type Encoder interface {
	Encode(ctx context.Context, text string) ([]float32, error)
}

// Hit is a nearest-neighbor match: the corpus position of the recipe and its
// distance from the query vector (lower = closer, never negative).
type Hit struct {
	Position int
	Distance float32
}

// NearestNeighborIndex retrieves the k corpus vectors closest to a query
// vector, ordered by ascending distance with ties in position order.
type NearestNeighborIndex interface {
	Search(ctx context.Context, vector []float32, k int) ([]Hit, error)
}

// RecipeSource resolves index positions back to corpus metadata.
type RecipeSource interface {
	Recipe(position int) (*models.Recipe, bool)
	Len() int
}

// TextGenerator produces free-form text from a prompt using a pretrained
// generative model with sampling.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// RecommendationServiceInterface defines the recommendation pipeline contract
type RecommendationServiceInterface interface {
	Recommend(ctx context.Context, req *types.RecommendRequest) (*types.Recommendation, error)
}

// NutritionServiceInterface defines the nutrition analysis contract
type NutritionServiceInterface interface {
	Analyze(ctx context.Context, ingredients []string) (map[string]float64, error)
}
