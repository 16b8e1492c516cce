package service

import (
	"strings"

	"github.com/pantrychef/backend/internal/types"
)

// nutritionBand couples a gram threshold with the nutrient it constrains.
// High bands are minimums, low bands are maximums.
type nutritionBand struct {
	nutrient  string
	threshold float64
	minimum   bool
}

var nutritionBands = map[string]nutritionBand{
	"high-protein": {"protein", 20, true},
	"low-protein":  {"protein", 10, false},
	"high-carb":    {"carbs", 60, true},
	"low-carb":     {"carbs", 30, false},
	"high-fat":     {"fat", 40, true},
	"low-fat":      {"fat", 10, false},
}

// FilterByDiet keeps candidates whose diet field contains any synonym of any
// requested diet (OR semantics). An empty criterion is the identity.
func FilterByDiet(candidates []types.ScoredRecipe, diets []string) []types.ScoredRecipe {
	if len(diets) == 0 {
		return candidates
	}
	filtered := make([]types.ScoredRecipe, 0, len(candidates))
	for _, candidate := range candidates {
		recipeDiet := strings.ToLower(candidate.Diet)
		for _, diet := range diets {
			if dietMatches(recipeDiet, strings.ToLower(diet)) {
				filtered = append(filtered, candidate)
				break
			}
		}
	}
	return filtered
}

func dietMatches(recipeDiet, requested string) bool {
	for _, syn := range ExpandDietSynonyms(requested) {
		if strings.Contains(recipeDiet, syn) {
			return true
		}
	}
	return false
}

// FilterByCourse keeps candidates whose course field contains the requested
// course. A course outside the allowed set skips the filter entirely instead
// of filtering to empty, so a typo never discards all results.
func FilterByCourse(candidates []types.ScoredRecipe, preferredCourse string) []types.ScoredRecipe {
	if preferredCourse == "" {
		return candidates
	}
	course := strings.ToLower(preferredCourse)
	if !IsAllowedCourse(course) {
		return candidates
	}
	filtered := make([]types.ScoredRecipe, 0, len(candidates))
	for _, candidate := range candidates {
		if strings.Contains(strings.ToLower(candidate.Course), course) {
			filtered = append(filtered, candidate)
		}
	}
	return filtered
}

// FilterByMaxTime keeps candidates whose prep+cook time does not exceed
// maxMinutes. A nil criterion is the identity.
func FilterByMaxTime(candidates []types.ScoredRecipe, maxMinutes *int) []types.ScoredRecipe {
	if maxMinutes == nil {
		return candidates
	}
	filtered := make([]types.ScoredRecipe, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.TotalTime() <= *maxMinutes {
			filtered = append(filtered, candidate)
		}
	}
	return filtered
}

// FilterByNutrition keeps candidates that satisfy every requested band (AND
// semantics). Candidates without nutrition data are excluded outright;
// unknown bands are ignored. An empty criterion is the identity.
func FilterByNutrition(candidates []types.ScoredRecipe, bands []string) []types.ScoredRecipe {
	if len(bands) == 0 {
		return candidates
	}
	filtered := make([]types.ScoredRecipe, 0, len(candidates))
	for _, candidate := range candidates {
		if len(candidate.Nutrition) == 0 {
			continue
		}
		if meetsAllBands(candidate.Nutrition, bands) {
			filtered = append(filtered, candidate)
		}
	}
	return filtered
}

func meetsAllBands(nutrition map[string]float64, bands []string) bool {
	for _, name := range bands {
		band, ok := nutritionBands[name]
		if !ok {
			continue
		}
		value := nutrition[band.nutrient]
		if band.minimum && value < band.threshold {
			return false
		}
		if !band.minimum && value > band.threshold {
			return false
		}
	}
	return true
}
