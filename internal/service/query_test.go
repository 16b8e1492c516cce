package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pantrychef/backend/internal/service"
)

func TestExtractDietIntents(t *testing.T) {
	t.Run("finds a single diet mention", func(t *testing.T) {
		got := service.ExtractDietIntents("paneer rice keto dinner")
		assert.Equal(t, []string{"keto"}, got)
	})

	t.Run("is case insensitive", func(t *testing.T) {
		got := service.ExtractDietIntents("something VEGAN tonight")
		assert.Equal(t, []string{"vegan"}, got)
	})

	t.Run("returns every mentioned diet", func(t *testing.T) {
		got := service.ExtractDietIntents("keto or vegan")
		assert.ElementsMatch(t, []string{"keto", "vegan"}, got)
	})

	t.Run("no mention yields no intents", func(t *testing.T) {
		assert.Empty(t, service.ExtractDietIntents("tomato onion rice"))
	})
}

func TestBuildQueryString(t *testing.T) {
	t.Run("joins ingredients with spaces", func(t *testing.T) {
		got := service.BuildQueryString([]string{"tomato", "onion"}, "", "")
		assert.Equal(t, "tomato onion", got)
	})

	t.Run("appends course and diet hints", func(t *testing.T) {
		got := service.BuildQueryString([]string{"paneer"}, "main course", "vegetarian")
		assert.Equal(t, "paneer main course vegetarian", got)
	})

	t.Run("omits empty hints", func(t *testing.T) {
		got := service.BuildQueryString([]string{"rice"}, "", "keto")
		assert.Equal(t, "rice keto", got)
	})
}
