package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pantrychef/backend/internal/api"
	"github.com/pantrychef/backend/internal/mocks"
	"github.com/pantrychef/backend/internal/models"
	"github.com/pantrychef/backend/internal/service"
	"github.com/pantrychef/backend/internal/types"
)

func setupRecommendTest(recommender *mocks.MockRecommendationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	v1 := router.Group("/api/v1")
	api.NewRecommendHandler(recommender).RegisterRoutes(v1)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestRecommendEndpoint(t *testing.T) {
	t.Run("returns a retrieved recipe with its score", func(t *testing.T) {
		recommender := new(mocks.MockRecommendationService)
		recommender.On("Recommend", mock.Anything, mock.Anything).Return(&types.Recommendation{
			Retrieved: &types.ScoredRecipe{
				Recipe:          models.Recipe{Name: "Palak Paneer", Course: "main course"},
				SimilarityScore: 0.82,
				Source:          types.SourceRetrieved,
			},
		}, nil)

		w := postJSON(setupRecommendTest(recommender), "/api/v1/recipes/recommend",
			`{"ingredients":["paneer","spinach"]}`)

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Recipes []map[string]interface{} `json:"recipes"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Recipes, 1)
		assert.Equal(t, "Palak Paneer", resp.Recipes[0]["recipe_name"])
		assert.Equal(t, "retrieved", resp.Recipes[0]["source"])
		assert.InDelta(t, 0.82, resp.Recipes[0]["similarity_score"].(float64), 1e-9)
	})

	t.Run("returns a generated recipe on fallback", func(t *testing.T) {
		recommender := new(mocks.MockRecommendationService)
		recommender.On("Recommend", mock.Anything, mock.Anything).Return(&types.Recommendation{
			Generated: &types.GeneratedRecipe{
				RecipeName: "Pantry Stir Fry",
				Servings:   2,
				TotalTime:  25,
				Source:     types.SourceGenerated,
			},
		}, nil)

		w := postJSON(setupRecommendTest(recommender), "/api/v1/recipes/recommend",
			`{"ingredients":["rice"]}`)

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Recipes []map[string]interface{} `json:"recipes"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Recipes, 1)
		assert.Equal(t, "generated", resp.Recipes[0]["source"])
	})

	t.Run("missing ingredients field is a 400", func(t *testing.T) {
		recommender := new(mocks.MockRecommendationService)
		w := postJSON(setupRecommendTest(recommender), "/api/v1/recipes/recommend", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty ingredients is a 400", func(t *testing.T) {
		recommender := new(mocks.MockRecommendationService)
		recommender.On("Recommend", mock.Anything, mock.Anything).Return(nil, service.ErrNoIngredients)

		w := postJSON(setupRecommendTest(recommender), "/api/v1/recipes/recommend",
			`{"ingredients":["  "]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("generation unavailable is a 503", func(t *testing.T) {
		recommender := new(mocks.MockRecommendationService)
		recommender.On("Recommend", mock.Anything, mock.Anything).Return(nil, service.ErrGenerationUnavailable)

		w := postJSON(setupRecommendTest(recommender), "/api/v1/recipes/recommend",
			`{"ingredients":["rice"]}`)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("unparseable generation is a 502", func(t *testing.T) {
		recommender := new(mocks.MockRecommendationService)
		recommender.On("Recommend", mock.Anything, mock.Anything).Return(nil, service.ErrGenerationParse)

		w := postJSON(setupRecommendTest(recommender), "/api/v1/recipes/recommend",
			`{"ingredients":["rice"]}`)
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestNutritionEndpoint(t *testing.T) {
	t.Run("returns aggregated nutrients", func(t *testing.T) {
		nutrition := new(mocks.MockNutritionService)
		nutrition.On("Analyze", mock.Anything, []string{"100 grams rice"}).Return(
			map[string]float64{"Calories": 130, "Protein": 2.7}, nil)

		gin.SetMode(gin.TestMode)
		router := gin.New()
		api.NewNutritionHandler(nutrition).RegisterRoutes(router.Group("/api/v1"))

		w := postJSON(router, "/api/v1/nutrition", `{"ingredients":["100 grams rice"]}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Nutrition map[string]float64 `json:"nutrition"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 130.0, resp.Nutrition["Calories"])
	})

	t.Run("empty ingredient list is a 400", func(t *testing.T) {
		nutrition := new(mocks.MockNutritionService)
		gin.SetMode(gin.TestMode)
		router := gin.New()
		api.NewNutritionHandler(nutrition).RegisterRoutes(router.Group("/api/v1"))

		w := postJSON(router, "/api/v1/nutrition", `{"ingredients":[]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
