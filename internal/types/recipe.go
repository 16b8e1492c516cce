package types

import "github.com/pantrychef/backend/internal/models"

// Source tags distinguish corpus hits from fallback generations.
const (
	SourceRetrieved = "retrieved"
	SourceGenerated = "generated"
)

// ScoredRecipe is a corpus recipe augmented with its similarity score for the
// current request. Score is 1/(1+distance) and therefore in (0,1].
type ScoredRecipe struct {
	models.Recipe
	SimilarityScore float64 `json:"similarity_score"`
	Source          string  `json:"source"`
}

// GeneratedRecipe is the structured record parsed from the fallback
// generator's text output. It intentionally carries fewer fields than a
// corpus recipe; callers must treat the two shapes as distinct.
type GeneratedRecipe struct {
	RecipeName   string   `json:"recipe_name"`
	Servings     int      `json:"servings"`
	TotalTime    int      `json:"total_time"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	Source       string   `json:"source"`
}

// Recommendation is the outcome of a recommendation request. Exactly one of
// Retrieved and Generated is non-nil.
type Recommendation struct {
	Retrieved *ScoredRecipe
	Generated *GeneratedRecipe
}
