package types

// RecommendRequest represents the request body for a recipe recommendation
type RecommendRequest struct {
	Ingredients []string `json:"ingredients" binding:"required"`
	// PreferredCourse must be one of the allowed courses, otherwise it is ignored
	PreferredCourse string `json:"preferred_course"`
	PreferredDiet   string `json:"preferred_diet"`
	// MaxTotalTime caps prep+cook minutes when set
	MaxTotalTime *int `json:"max_total_time"`
	// NutritionPreferences holds qualitative bands such as "high-protein"
	NutritionPreferences []string `json:"nutrition_preferences"`
}

// NutritionRequest represents the request body for nutrition analysis
type NutritionRequest struct {
	Ingredients []string `json:"ingredients" binding:"required"`
}
