package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pantrychef/backend/internal/service"
	"github.com/pantrychef/backend/internal/types"
)

// NutritionHandler handles nutrition analysis requests
type NutritionHandler struct {
	nutrition service.NutritionServiceInterface
}

// NewNutritionHandler creates a new NutritionHandler instance
func NewNutritionHandler(nutrition service.NutritionServiceInterface) *NutritionHandler {
	return &NutritionHandler{nutrition: nutrition}
}

// RegisterRoutes registers the nutrition routes
func (h *NutritionHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/nutrition", h.Analyze)
}

// Analyze aggregates nutrition facts for a list of raw ingredient lines
func (h *NutritionHandler) Analyze(c *gin.Context) {
	requestID := uuid.New().String()

	var req types.NutritionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Ingredients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one ingredient is required"})
		return
	}

	totals, err := h.nutrition.Analyze(c.Request.Context(), req.Ingredients)
	if err != nil {
		log.Printf("[%s] nutrition analysis failed: %v", requestID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "nutrition lookup failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"nutrition": totals})
}
