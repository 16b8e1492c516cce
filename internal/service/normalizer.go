package service

import "strings"

// canonicalIngredient maps every known surface form to its canonical name.
var canonicalIngredient = buildCanonicalLookup()

func buildCanonicalLookup() map[string]string {
	lookup := make(map[string]string)
	for canonical, surfaces := range ingredientSynonyms {
		for _, s := range surfaces {
			lookup[s] = canonical
		}
	}
	return lookup
}

// NormalizeIngredients lowercases and trims each token, folds known synonyms
// to their canonical names and removes duplicates while preserving first-seen
// order. Unknown tokens pass through verbatim, so the function is total and
// idempotent.
func NormalizeIngredients(ingredients []string) []string {
	normalized := make([]string, 0, len(ingredients))
	seen := make(map[string]struct{}, len(ingredients))
	for _, ingredient := range ingredients {
		token := strings.ToLower(strings.TrimSpace(ingredient))
		if token == "" {
			continue
		}
		if canonical, ok := canonicalIngredient[token]; ok {
			token = canonical
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		normalized = append(normalized, token)
	}
	return normalized
}
