package service

import "strings"

// ExtractDietIntents scans free text case-insensitively for the allowed diet
// labels and returns every match. A query may legitimately claim several
// diets; downstream filtering keeps candidates matching at least one.
func ExtractDietIntents(query string) []string {
	lowered := strings.ToLower(query)
	var intents []string
	for _, diet := range AllowedDiets {
		if strings.Contains(lowered, diet) {
			intents = append(intents, diet)
		}
	}
	return intents
}

// BuildQueryString assembles the search string fed to the encoder: normalized
// ingredients space-joined, with optional course and diet hints appended.
// Course and diet influence retrieval only as embedding signal here; the hard
// constraints are applied later by the filter chain.
func BuildQueryString(normalizedIngredients []string, preferredCourse, preferredDiet string) string {
	parts := make([]string, 0, len(normalizedIngredients)+2)
	parts = append(parts, normalizedIngredients...)
	if preferredCourse != "" {
		parts = append(parts, preferredCourse)
	}
	if preferredDiet != "" {
		parts = append(parts, preferredDiet)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
