package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/mealdb-explorer/backend/internal/model"
)

// MockMealService is a mock implementation of the meal service
type MockMealService struct {
	mock.Mock
}

// SearchMeals mocks the SearchMeals method
func (m *MockMealService) SearchMeals(ctx context.Context, name string) ([]*model.Meal, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Meal), args.Error(1)
}

// GetMealByID mocks the GetMealByID method
func (m *MockMealService) GetMealByID(ctx context.Context, id string) (*model.Meal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Meal), args.Error(1)
}

// GetRandomMeal mocks the GetRandomMeal method
func (m *MockMealService) GetRandomMeal(ctx context.Context) (*model.Meal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Meal), args.Error(1)
}

// GetAllCategories mocks the GetAllCategories method
func (m *MockMealService) GetAllCategories(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

// GetMealsByCategory mocks the GetMealsByCategory method
func (m *MockMealService) GetMealsByCategory(ctx context.Context, category string) ([]*model.Meal, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Meal), args.Error(1)
}

// GetPopularMeals mocks the GetPopularMeals method
func (m *MockMealService) GetPopularMeals(ctx context.Context) ([]*model.Meal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Meal), args.Error(1)
}

// GetAllMeals mocks the GetAllMeals method
func (m *MockMealService) GetAllMeals(ctx context.Context) model.MealCorpus {
	args := m.Called(ctx)
	return args.Get(0).(model.MealCorpus)
}
