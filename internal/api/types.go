package api

import (
	"time"

	"github.com/pageza/mealdb-explorer/backend/internal/model"
)

// IngredientResponse is one ingredient line of a meal
type IngredientResponse struct {
	Name    string `json:"name"`
	Measure string `json:"measure"`
}

// MealResponse represents the response structure for meal endpoints
type MealResponse struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Category     string               `json:"category"`
	Area         string               `json:"area"`
	Instructions string               `json:"instructions"`
	ThumbnailURL string               `json:"thumbnailUrl"`
	YoutubeURL   string               `json:"youtubeUrl"`
	Ingredients  []IngredientResponse `json:"ingredients"`
	Tags         []string             `json:"tags"`
}

// CategoryResponse represents a meal category
type CategoryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Description  string `json:"description"`
}

// MatchResponse describes how well the submitted ingredients cover a meal
type MatchResponse struct {
	Meal                    MealResponse `json:"meal"`
	MatchPercentage         float64      `json:"matchPercentage"`
	MatchedIngredientsCount int          `json:"matchedIngredientsCount"`
	TotalIngredientsCount   int          `json:"totalIngredientsCount"`
	MatchedIngredients      []string     `json:"matchedIngredients"`
	MissingIngredients      []string     `json:"missingIngredients"`
}

// MatchRequest is the body of a what-can-i-cook request
type MatchRequest struct {
	Ingredients        []string `json:"ingredients" binding:"required,min=1"`
	MinMatchPercentage *float64 `json:"minMatchPercentage" binding:"omitempty,gte=0"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// RateLimitStatusResponse reports a client's standing against the match rate limit
type RateLimitStatusResponse struct {
	Limit     int    `json:"limit"`
	Remaining int    `json:"remaining"`
	ResetTime int64  `json:"reset_time"`
	Window    string `json:"window"`
}

func toMealResponse(meal *model.Meal) MealResponse {
	ingredients := make([]IngredientResponse, 0, len(meal.Ingredients))
	for _, ing := range meal.Ingredients {
		ingredients = append(ingredients, IngredientResponse{Name: ing.Name, Measure: ing.Measure})
	}
	tags := meal.Tags
	if tags == nil {
		tags = []string{}
	}

	return MealResponse{
		ID:           meal.ID,
		Name:         meal.Name,
		Category:     meal.Category,
		Area:         meal.Area,
		Instructions: meal.Instructions,
		ThumbnailURL: meal.ThumbnailURL,
		YoutubeURL:   meal.VideoURL,
		Ingredients:  ingredients,
		Tags:         tags,
	}
}

func toMealResponses(meals []*model.Meal) []MealResponse {
	out := make([]MealResponse, 0, len(meals))
	for _, meal := range meals {
		if meal != nil {
			out = append(out, toMealResponse(meal))
		}
	}
	return out
}

func toCategoryResponses(categories []model.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{
			ID:           c.ID,
			Name:         c.Name,
			ThumbnailURL: c.ThumbnailURL,
			Description:  c.Description,
		})
	}
	return out
}

func toMatchResponses(results []*model.MatchResult) []MatchResponse {
	out := make([]MatchResponse, 0, len(results))
	for _, r := range results {
		if r == nil || r.Meal == nil {
			continue
		}
		out = append(out, MatchResponse{
			Meal:                    toMealResponse(r.Meal),
			MatchPercentage:         r.MatchPercentage,
			MatchedIngredientsCount: r.MatchedCount,
			TotalIngredientsCount:   r.TotalCount,
			MatchedIngredients:      nonNil(r.MatchedIngredients),
			MissingIngredients:      nonNil(r.MissingIngredients),
		})
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
