package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrychef/backend/internal/service"
	"github.com/pantrychef/backend/internal/types"
)

func TestBuildGenerationPrompt(t *testing.T) {
	t.Run("renders the labeled template", func(t *testing.T) {
		got := service.BuildGenerationPrompt("vegetarian", "main course", []string{"paneer", "spinach"})
		assert.Equal(t, "Diet: vegetarian\nCourse: main course\nIngredients: paneer, spinach\n", got)
	})

	t.Run("empty preferences render as empty labels", func(t *testing.T) {
		got := service.BuildGenerationPrompt("", "", []string{"rice"})
		assert.Equal(t, "Diet: \nCourse: \nIngredients: rice\n", got)
	})
}

func TestParseGeneratedRecipe(t *testing.T) {
	wellFormed := "Diet: vegetarian\nCourse: main course\nIngredients: paneer, spinach\n" +
		"RecipeName: Palak Paneer Express\n" +
		"Servings: 4\n" +
		"TotalTimeInMinutes: 35\n" +
		"RecipeIngredients: paneer, spinach, garlic, cream\n" +
		"RecipeInstructions: Blanch the spinach, blend, simmer with paneer.\n"

	t.Run("parses every labeled field", func(t *testing.T) {
		got, err := service.ParseGeneratedRecipe(wellFormed)
		require.NoError(t, err)
		assert.Equal(t, "Palak Paneer Express", got.RecipeName)
		assert.Equal(t, 4, got.Servings)
		assert.Equal(t, 35, got.TotalTime)
		assert.Equal(t, []string{"paneer", "spinach", "garlic", "cream"}, got.Ingredients)
		assert.Equal(t, "Blanch the spinach, blend, simmer with paneer.", got.Instructions)
		assert.Equal(t, types.SourceGenerated, got.Source)
	})

	t.Run("missing field is a parse error", func(t *testing.T) {
		_, err := service.ParseGeneratedRecipe("RecipeName: Something\nServings: 2\n")
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrGenerationParse)
	})

	t.Run("non-numeric servings is a parse error", func(t *testing.T) {
		text := "RecipeName: X\nServings: many\nTotalTimeInMinutes: 10\nRecipeIngredients: rice\nRecipeInstructions: Cook.\n"
		_, err := service.ParseGeneratedRecipe(text)
		assert.ErrorIs(t, err, service.ErrGenerationParse)
	})
}
