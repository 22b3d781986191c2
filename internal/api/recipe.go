package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/pageza/mealdb-explorer/backend/internal/errors"
	"github.com/pageza/mealdb-explorer/backend/internal/logging"
	"github.com/pageza/mealdb-explorer/backend/internal/middleware"
	"github.com/pageza/mealdb-explorer/backend/internal/model"
	"github.com/pageza/mealdb-explorer/backend/internal/service"
)

// MealHandler serves the meal lookup and ingredient matching endpoints
type MealHandler struct {
	meals       service.IMealService
	matcher     service.IMatcherService
	rateLimiter *middleware.RateLimiter
}

// NewMealHandler creates a new MealHandler
func NewMealHandler(meals service.IMealService, matcher service.IMatcherService) *MealHandler {
	return &MealHandler{
		meals:   meals,
		matcher: matcher,
	}
}

// NewMealHandlerWithRateLimit creates a MealHandler whose matching endpoint
// is rate limited per client
func NewMealHandlerWithRateLimit(meals service.IMealService, matcher service.IMatcherService, rateLimiter *middleware.RateLimiter) *MealHandler {
	h := NewMealHandler(meals, matcher)
	h.rateLimiter = rateLimiter
	return h
}

func (h *MealHandler) RegisterRoutes(router *gin.RouterGroup) {
	meals := router.Group("/meals")
	{
		meals.GET("/search", h.SearchMeals)
		meals.GET("/random", h.GetRandomMeal)
		meals.GET("/categories", h.GetAllCategories)
		meals.GET("/category/:name", h.GetMealsByCategory)
		meals.GET("/popular", h.GetPopularMeals)
		meals.GET("/:id", h.GetMealByID)

		if h.rateLimiter != nil {
			meals.POST("/what-can-i-cook", h.rateLimiter.RateLimitMiddleware(), h.WhatCanICook)
		} else {
			meals.POST("/what-can-i-cook", h.WhatCanICook)
		}
	}

	if h.rateLimiter != nil {
		router.GET("/rate-limits/what-can-i-cook", h.GetRateLimitStatus)
	}
}

func (h *MealHandler) SearchMeals(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		respondError(c, apperrors.New(apperrors.ErrCodeInvalidRequest, "Query parameter 'name' is required"))
		return
	}
	logging.FromContext(c.Request.Context()).WithField("name", name).Info("searching meals")

	meals, err := h.meals.SearchMeals(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMealResponses(meals))
}

func (h *MealHandler) GetMealByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		respondError(c, apperrors.New(apperrors.ErrCodeInvalidRequest, "Meal id is required"))
		return
	}

	meal, err := h.meals.GetMealByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMealResponse(meal))
}

func (h *MealHandler) GetRandomMeal(c *gin.Context) {
	meal, err := h.meals.GetRandomMeal(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMealResponse(meal))
}

func (h *MealHandler) GetAllCategories(c *gin.Context) {
	categories, err := h.meals.GetAllCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCategoryResponses(categories))
}

func (h *MealHandler) GetMealsByCategory(c *gin.Context) {
	meals, err := h.meals.GetMealsByCategory(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMealResponses(meals))
}

func (h *MealHandler) GetPopularMeals(c *gin.Context) {
	meals, err := h.meals.GetPopularMeals(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMealResponses(meals))
}

func (h *MealHandler) WhatCanICook(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, matchRequestMessage(req), err))
		return
	}
	logging.FromContext(c.Request.Context()).WithField("ingredients", len(req.Ingredients)).Info("matching ingredients")

	var results []*model.MatchResult
	var err error
	if req.MinMatchPercentage != nil {
		results, err = h.matcher.FindMatchesWithThreshold(c.Request.Context(), req.Ingredients, *req.MinMatchPercentage)
	} else {
		results, err = h.matcher.FindMatches(c.Request.Context(), req.Ingredients)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMatchResponses(results))
}

func matchRequestMessage(req MatchRequest) string {
	switch {
	case len(req.Ingredients) == 0:
		return "Ingredients list cannot be empty"
	case req.MinMatchPercentage != nil && *req.MinMatchPercentage < 0:
		return "Minimum match percentage must not be negative"
	default:
		return "Malformed request body"
	}
}

// GetRateLimitStatus reports how many matching requests the caller has left
func (h *MealHandler) GetRateLimitStatus(c *gin.Context) {
	remaining, resetTime, err := h.rateLimiter.GetRemainingRequests(c.Request.Context(), c.ClientIP())
	if err != nil {
		respondError(c, apperrors.Wrap(apperrors.ErrCodeInternal, "Failed to check rate limit", err))
		return
	}

	cfg := h.rateLimiter.Config()
	c.JSON(http.StatusOK, RateLimitStatusResponse{
		Limit:     cfg.Limit,
		Remaining: remaining,
		ResetTime: resetTime.Unix(),
		Window:    cfg.Window.String(),
	})
}
