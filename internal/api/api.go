package api

import (
	"github.com/gin-gonic/gin"

	"github.com/pageza/mealdb-explorer/backend/internal/middleware"
	"github.com/pageza/mealdb-explorer/backend/internal/service"
)

// SetupAPI registers the health check and meal routes under /api.
// rateLimiter may be nil.
func SetupAPI(router *gin.Engine, meals service.IMealService, matcher service.IMatcherService, rateLimiter *middleware.RateLimiter) {
	v1 := router.Group("/api")
	{
		v1.GET("/health", HealthCheck)

		var mealHandler *MealHandler
		if rateLimiter != nil {
			mealHandler = NewMealHandlerWithRateLimit(meals, matcher, rateLimiter)
		} else {
			mealHandler = NewMealHandler(meals, matcher)
		}
		mealHandler.RegisterRoutes(v1)
	}
}
