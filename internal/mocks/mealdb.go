package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/mealdb-explorer/backend/internal/mealdb"
)

// MockMealDB is a mock implementation of the upstream recipe database client
type MockMealDB struct {
	mock.Mock
}

// SearchMeals mocks the SearchMeals method
func (m *MockMealDB) SearchMeals(ctx context.Context, name string) ([]mealdb.MealDTO, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]mealdb.MealDTO), args.Error(1)
}

// LookupMeal mocks the LookupMeal method
func (m *MockMealDB) LookupMeal(ctx context.Context, id string) (*mealdb.MealDTO, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mealdb.MealDTO), args.Error(1)
}

// RandomMeal mocks the RandomMeal method
func (m *MockMealDB) RandomMeal(ctx context.Context) (*mealdb.MealDTO, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mealdb.MealDTO), args.Error(1)
}

// ListCategories mocks the ListCategories method
func (m *MockMealDB) ListCategories(ctx context.Context) ([]mealdb.CategoryDTO, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]mealdb.CategoryDTO), args.Error(1)
}

// FilterByCategory mocks the FilterByCategory method
func (m *MockMealDB) FilterByCategory(ctx context.Context, category string) ([]mealdb.MealDTO, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]mealdb.MealDTO), args.Error(1)
}
