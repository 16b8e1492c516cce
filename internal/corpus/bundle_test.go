package corpus_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrychef/backend/internal/corpus"
	"github.com/pantrychef/backend/internal/models"
)

func validBundle() *corpus.Bundle {
	return &corpus.Bundle{
		Version: "2024-01-15",
		Dim:     3,
		Recipes: []models.Recipe{
			{Position: 0, Name: "Masala Dosa"},
			{Position: 1, Name: "Dal Tadka"},
		},
		Vectors: [][]float32{
			{0.1, 0.2, 0.3},
			{0.4, 0.5, 0.6},
		},
	}
}

func TestBundleValidate(t *testing.T) {
	t.Run("accepts a consistent bundle", func(t *testing.T) {
		assert.NoError(t, validBundle().Validate())
	})

	t.Run("rejects a missing version", func(t *testing.T) {
		b := validBundle()
		b.Version = ""
		assert.Error(t, b.Validate())
	})

	t.Run("rejects a recipe and vector count mismatch", func(t *testing.T) {
		b := validBundle()
		b.Vectors = b.Vectors[:1]
		assert.Error(t, b.Validate())
	})

	t.Run("rejects non-contiguous positions", func(t *testing.T) {
		b := validBundle()
		b.Recipes[1].Position = 7
		assert.Error(t, b.Validate())
	})

	t.Run("rejects a vector with the wrong dimension", func(t *testing.T) {
		b := validBundle()
		b.Vectors[1] = []float32{0.4}
		assert.Error(t, b.Validate())
	})
}

func TestBundleRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bundle.json")

	require.NoError(t, corpus.SaveBundle(path, validBundle()))

	loaded, err := corpus.LoadBundle(path)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", loaded.Version)
	require.Len(t, loaded.Recipes, 2)
	assert.Equal(t, "Dal Tadka", loaded.Recipes[1].Name)
	assert.Equal(t, []float32{0.4, 0.5, 0.6}, loaded.Vectors[1])
}

func TestFromBundle(t *testing.T) {
	recipes, index, err := corpus.FromBundle(validBundle())
	require.NoError(t, err)

	assert.Equal(t, 2, recipes.Len())
	assert.Equal(t, "2024-01-15", recipes.Version())
	assert.Equal(t, 2, index.Len())

	r, ok := recipes.Recipe(1)
	require.True(t, ok)
	assert.Equal(t, "Dal Tadka", r.Name)

	_, ok = recipes.Recipe(5)
	assert.False(t, ok)
	_, ok = recipes.Recipe(-1)
	assert.False(t, ok)
}
