package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/mealdb-explorer/backend/internal/model"
)

// MockMatcherService is a mock implementation of the matcher service
type MockMatcherService struct {
	mock.Mock
}

// FindMatches mocks the FindMatches method
func (m *MockMatcherService) FindMatches(ctx context.Context, ingredients []string) ([]*model.MatchResult, error) {
	args := m.Called(ctx, ingredients)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.MatchResult), args.Error(1)
}

// FindMatchesWithThreshold mocks the FindMatchesWithThreshold method
func (m *MockMatcherService) FindMatchesWithThreshold(ctx context.Context, ingredients []string, minMatchPercentage float64) ([]*model.MatchResult, error) {
	args := m.Called(ctx, ingredients, minMatchPercentage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.MatchResult), args.Error(1)
}
