package service

import (
	"context"

	"github.com/pageza/mealdb-explorer/backend/internal/mealdb"
	"github.com/pageza/mealdb-explorer/backend/internal/model"
)

// MealDB is the upstream recipe database the services read from.
// *mealdb.Client implements it.
type MealDB interface {
	SearchMeals(ctx context.Context, name string) ([]mealdb.MealDTO, error)
	LookupMeal(ctx context.Context, id string) (*mealdb.MealDTO, error)
	RandomMeal(ctx context.Context) (*mealdb.MealDTO, error)
	ListCategories(ctx context.Context) ([]mealdb.CategoryDTO, error)
	FilterByCategory(ctx context.Context, category string) ([]mealdb.MealDTO, error)
}

// MealCorpusProvider supplies the full set of meals used for ingredient matching
type MealCorpusProvider interface {
	GetAllMeals(ctx context.Context) model.MealCorpus
}

// IMealService defines the interface for meal lookups
type IMealService interface {
	MealCorpusProvider
	SearchMeals(ctx context.Context, name string) ([]*model.Meal, error)
	GetMealByID(ctx context.Context, id string) (*model.Meal, error)
	GetRandomMeal(ctx context.Context) (*model.Meal, error)
	GetAllCategories(ctx context.Context) ([]model.Category, error)
	GetMealsByCategory(ctx context.Context, category string) ([]*model.Meal, error)
	GetPopularMeals(ctx context.Context) ([]*model.Meal, error)
}

// IMatcherService defines the interface for ingredient matching
type IMatcherService interface {
	FindMatches(ctx context.Context, ingredients []string) ([]*model.MatchResult, error)
	FindMatchesWithThreshold(ctx context.Context, ingredients []string, minMatchPercentage float64) ([]*model.MatchResult, error)
}
