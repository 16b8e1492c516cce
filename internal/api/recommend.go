package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pantrychef/backend/internal/service"
	"github.com/pantrychef/backend/internal/types"
)

// RecommendHandler handles recipe recommendation requests
type RecommendHandler struct {
	recommender service.RecommendationServiceInterface
}

// NewRecommendHandler creates a new RecommendHandler instance
func NewRecommendHandler(recommender service.RecommendationServiceInterface) *RecommendHandler {
	return &RecommendHandler{recommender: recommender}
}

// RegisterRoutes registers the recommendation routes
func (h *RecommendHandler) RegisterRoutes(router *gin.RouterGroup, extra ...gin.HandlerFunc) {
	recipes := router.Group("/recipes")
	handlers := append(extra, h.Recommend)
	recipes.POST("/recommend", handlers...)
}

// Recommend handles a recommendation request. The response carries a single
// recipe in a "recipes" list, tagged with its source so clients can tell a
// corpus hit from a generated fallback.
func (h *RecommendHandler) Recommend(c *gin.Context) {
	requestID := uuid.New().String()

	var req types.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.recommender.Recommend(c.Request.Context(), &req)
	if err != nil {
		log.Printf("[%s] recommendation failed: %v", requestID, err)
		switch {
		case errors.Is(err, service.ErrNoIngredients):
			c.JSON(http.StatusBadRequest, gin.H{"error": "at least one ingredient is required"})
		case errors.Is(err, service.ErrGenerationUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no matching recipes and generation is unavailable"})
		case errors.Is(err, service.ErrGenerationParse):
			c.JSON(http.StatusBadGateway, gin.H{"error": "generated recipe could not be parsed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to recommend a recipe"})
		}
		return
	}

	var recipes []interface{}
	if rec.Retrieved != nil {
		recipes = append(recipes, rec.Retrieved)
	} else {
		recipes = append(recipes, rec.Generated)
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}
