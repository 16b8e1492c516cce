package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrychef/backend/internal/service"
)

func TestPreprocessIngredients(t *testing.T) {
	t.Run("strips parentheticals and descriptors", func(t *testing.T) {
		processed, _ := service.PreprocessIngredients([]string{
			"2 onions (red), finely chopped",
		})
		require.Len(t, processed, 1)
		assert.Equal(t, "2 onions ,", processed[0])
	})

	t.Run("accumulates explicit quantities", func(t *testing.T) {
		_, total := service.PreprocessIngredients([]string{
			"200 grams paneer",
			"100 grams spinach",
			"garlic",
		})
		assert.Equal(t, 300.0, total)
	})

	t.Run("estimates unquantified salt from total weight", func(t *testing.T) {
		processed, total := service.PreprocessIngredients([]string{
			"200 grams rice",
			"salt to taste",
		})
		assert.Equal(t, 200.0, total)
		require.Len(t, processed, 3)
		assert.Equal(t, "10 grams salt", processed[2])
	})

	t.Run("drops entries that clean to empty", func(t *testing.T) {
		processed, _ := service.PreprocessIngredients([]string{"(optional)", "chopped"})
		assert.Empty(t, processed)
	})
}

func TestAnalyze(t *testing.T) {
	t.Run("aggregates nutrients across ingredients", func(t *testing.T) {
		var requests int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			assert.Equal(t, "test-id", r.URL.Query().Get("app_id"))
			assert.NotEmpty(t, r.URL.Query().Get("ingr"))
			json.NewEncoder(w).Encode(map[string]interface{}{
				"totalNutrients": map[string]interface{}{
					"ENERC_KCAL": map[string]float64{"quantity": 100},
					"PROCNT":     map[string]float64{"quantity": 5},
				},
			})
		}))
		defer server.Close()

		svc := service.NewNutritionService("test-id", "test-key", server.URL, nil)
		totals, err := svc.Analyze(context.Background(), []string{"100 grams rice", "50 grams dal"})
		require.NoError(t, err)
		assert.Equal(t, 2, requests)
		assert.Equal(t, 200.0, totals["Calories"])
		assert.Equal(t, 10.0, totals["Protein"])
		assert.Equal(t, 0.0, totals["Fat"])
	})

	t.Run("individual lookup failures contribute zeros", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream broken", http.StatusBadGateway)
		}))
		defer server.Close()

		svc := service.NewNutritionService("test-id", "test-key", server.URL, nil)
		totals, err := svc.Analyze(context.Background(), []string{"100 grams rice"})
		require.NoError(t, err)
		assert.Equal(t, 0.0, totals["Calories"])
	})

	t.Run("empty input is rejected", func(t *testing.T) {
		svc := service.NewNutritionService("test-id", "test-key", "http://unused", nil)
		_, err := svc.Analyze(context.Background(), nil)
		assert.ErrorIs(t, err, service.ErrNoIngredients)
	})
}
