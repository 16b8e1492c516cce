package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pantrychef/backend/internal/api"
	"github.com/pantrychef/backend/internal/middleware"
	"github.com/pantrychef/backend/internal/service"
)

// SetupRouter configures the application routes. The rate limiter is optional;
// without Redis the API still serves, just unthrottled.
func SetupRouter(
	recommender service.RecommendationServiceInterface,
	nutrition service.NutritionServiceInterface,
	limiter *middleware.RateLimiter,
) *gin.Engine {
	router := gin.Default()

	// CORS middleware
	router.Use(middleware.CORS())

	// Health check endpoint
	router.GET("/health", api.HealthCheck)
	router.GET("/api/health", api.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")

	recommendHandler := api.NewRecommendHandler(recommender)
	if limiter != nil {
		recommendHandler.RegisterRoutes(v1, limiter.RateLimitMiddleware())
	} else {
		recommendHandler.RegisterRoutes(v1)
	}

	if nutrition != nil {
		nutritionHandler := api.NewNutritionHandler(nutrition)
		nutritionHandler.RegisterRoutes(v1)
	}

	return router
}
