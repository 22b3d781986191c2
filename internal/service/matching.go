package service

import (
	"context"

	"github.com/sirupsen/logrus"

	apperrors "github.com/pageza/mealdb-explorer/backend/internal/errors"
	"github.com/pageza/mealdb-explorer/backend/internal/logging"
	"github.com/pageza/mealdb-explorer/backend/internal/matcher"
	"github.com/pageza/mealdb-explorer/backend/internal/model"
)

// DefaultMinMatchPercentage is the threshold used by FindMatches
const DefaultMinMatchPercentage = 30.0

// MatcherService ranks meals by how well a user's ingredients cover them
type MatcherService struct {
	meals MealCorpusProvider
}

// NewMatcherService creates a new MatcherService instance
func NewMatcherService(meals MealCorpusProvider) *MatcherService {
	return &MatcherService{meals: meals}
}

// FindMatches returns the meals covered at least DefaultMinMatchPercentage
// by ingredients, best first.
func (s *MatcherService) FindMatches(ctx context.Context, ingredients []string) ([]*model.MatchResult, error) {
	return s.FindMatchesWithThreshold(ctx, ingredients, DefaultMinMatchPercentage)
}

// FindMatchesWithThreshold returns the meals covered at least
// minMatchPercentage by ingredients, best first. Meals that could not be
// fetched are left out.
func (s *MatcherService) FindMatchesWithThreshold(ctx context.Context, ingredients []string, minMatchPercentage float64) ([]*model.MatchResult, error) {
	if minMatchPercentage < 0 {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"Minimum match percentage must not be negative",
			map[string]any{"minMatchPercentage": minMatchPercentage})
	}

	if len(ingredients) == 0 {
		return []*model.MatchResult{}, nil
	}

	log := logging.FromContext(ctx)
	corpus := s.meals.GetAllMeals(ctx)
	if len(corpus.Failures) > 0 {
		log.WithField("failures", len(corpus.Failures)).Warn("matching against a partial meal corpus")
	}

	results := make([]*model.MatchResult, 0, len(corpus.Meals))
	for _, meal := range corpus.Meals {
		results = append(results, matcher.Calculate(meal, ingredients))
	}

	ranked := matcher.Rank(matcher.FilterByThreshold(results, minMatchPercentage))

	exact, high := 0, 0
	for _, r := range ranked {
		if r.IsExactMatch() {
			exact++
		}
		if r.IsHighMatch() {
			high++
		}
	}
	log.WithFields(logrus.Fields{
		"ingredients":   len(ingredients),
		"candidates":    len(corpus.Meals),
		"matches":       len(ranked),
		"exact_matches": exact,
		"high_matches":  high,
	}).Debug("matched ingredients against meal corpus")
	return ranked, nil
}
