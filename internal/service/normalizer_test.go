package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pantrychef/backend/internal/service"
)

func TestNormalizeIngredients(t *testing.T) {
	t.Run("lowercases and trims", func(t *testing.T) {
		got := service.NormalizeIngredients([]string{"  Paneer ", "RICE"})
		assert.Equal(t, []string{"paneer", "rice"}, got)
	})

	t.Run("folds synonyms to canonical names", func(t *testing.T) {
		got := service.NormalizeIngredients([]string{"tomatoes", "brinjal", "curd", "bell pepper"})
		assert.Equal(t, []string{"tomato", "eggplant", "yogurt", "capsicum"}, got)
	})

	t.Run("deduplicates preserving first-seen order", func(t *testing.T) {
		got := service.NormalizeIngredients([]string{"onions", "rice", "Onion", "shallots", "rice"})
		assert.Equal(t, []string{"onion", "rice"}, got)
	})

	t.Run("drops empty entries", func(t *testing.T) {
		got := service.NormalizeIngredients([]string{"", "  ", "garlic"})
		assert.Equal(t, []string{"garlic"}, got)
	})

	t.Run("unknown tokens pass through verbatim", func(t *testing.T) {
		got := service.NormalizeIngredients([]string{"dragon fruit"})
		assert.Equal(t, []string{"dragon fruit"}, got)
	})

	t.Run("is idempotent", func(t *testing.T) {
		input := []string{"Tomatoes", "chillies", "paneer", "tomato"}
		once := service.NormalizeIngredients(input)
		twice := service.NormalizeIngredients(once)
		assert.Equal(t, once, twice)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Empty(t, service.NormalizeIngredients(nil))
	})
}
