package service

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/pageza/mealdb-explorer/backend/internal/cache"
	apperrors "github.com/pageza/mealdb-explorer/backend/internal/errors"
	"github.com/pageza/mealdb-explorer/backend/internal/logging"
	"github.com/pageza/mealdb-explorer/backend/internal/mealdb"
	"github.com/pageza/mealdb-explorer/backend/internal/metrics"
	"github.com/pageza/mealdb-explorer/backend/internal/model"
)

// Cache keys
const (
	keyAllMeals   = "meals:all"
	keyCategories = "categories"
	keyPopular    = "meals:popular"
)

func searchKey(name string) string { return "meals:search:" + name }
func mealKey(id string) string { return "meal:" + id }
func categoryKey(category string) string { return "meals:category:" + category }

const (
	popularPerCategory = 4
	maxPopularMeals    = 20

	// upper bound for one shared corpus load, detached from any caller
	defaultCorpusLoadTimeout = 2 * time.Minute
)

// PopularCategories are the categories sampled by GetPopularMeals
var PopularCategories = []string{"Beef", "Chicken", "Dessert", "Vegetarian", "Pasta", "Seafood"}

// MealService handles meal lookups against the upstream recipe database
type MealService struct {
	client      MealDB
	cache       cache.Cache
	ttl         time.Duration
	loads       singleflight.Group
	loadTimeout time.Duration
	shuffle     func([]*model.Meal)
}

// NewMealService creates a new MealService instance. A nil cache disables caching.
func NewMealService(client MealDB, c cache.Cache, ttl time.Duration) *MealService {
	if c == nil {
		c = cache.Nop{}
	}
	return &MealService{
		client:      client,
		cache:       c,
		ttl:         ttl,
		loadTimeout: defaultCorpusLoadTimeout,
		shuffle: func(meals []*model.Meal) {
			rand.Shuffle(len(meals), func(i, j int) { meals[i], meals[j] = meals[j], meals[i] })
		},
	}
}

// SearchMeals searches meals by name
func (s *MealService) SearchMeals(ctx context.Context, name string) ([]*model.Meal, error) {
	name = strings.TrimSpace(name)

	var meals []*model.Meal
	if cache.GetJSON(ctx, s.cache, searchKey(name), &meals) {
		return meals, nil
	}

	dtos, err := s.client.SearchMeals(ctx, name)
	if err != nil {
		return nil, err
	}
	meals = mealdb.ToMeals(dtos)

	cache.SetJSON(ctx, s.cache, searchKey(name), meals, s.ttl)
	return meals, nil
}

// GetMealByID retrieves the full record of a meal
func (s *MealService) GetMealByID(ctx context.Context, id string) (*model.Meal, error) {
	var meal model.Meal
	if cache.GetJSON(ctx, s.cache, mealKey(id), &meal) {
		return &meal, nil
	}

	dto, err := s.client.LookupMeal(ctx, id)
	if err != nil {
		return nil, err
	}
	if dto == nil {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeNotFound, "Meal not found with id: "+id, map[string]any{"id": id})
	}

	found := mealdb.ToMeal(*dto)
	cache.SetJSON(ctx, s.cache, mealKey(id), found, s.ttl)
	return found, nil
}

// GetRandomMeal retrieves one random meal. Results are never cached.
func (s *MealService) GetRandomMeal(ctx context.Context) (*model.Meal, error) {
	dto, err := s.client.RandomMeal(ctx)
	if err != nil {
		return nil, err
	}
	if dto == nil {
		return nil, apperrors.New(apperrors.ErrCodeNotFound, "No random meal found")
	}
	return mealdb.ToMeal(*dto), nil
}

// GetAllCategories lists every meal category
func (s *MealService) GetAllCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if cache.GetJSON(ctx, s.cache, keyCategories, &categories) {
		return categories, nil
	}

	dtos, err := s.client.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	categories = mealdb.ToCategories(dtos)

	cache.SetJSON(ctx, s.cache, keyCategories, categories, s.ttl)
	return categories, nil
}

// GetMealsByCategory lists the full records of a category's meals. Meals
// whose details cannot be fetched are skipped.
func (s *MealService) GetMealsByCategory(ctx context.Context, category string) ([]*model.Meal, error) {
	var meals []*model.Meal
	if cache.GetJSON(ctx, s.cache, categoryKey(category), &meals) {
		return meals, nil
	}

	dtos, err := s.client.FilterByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	meals, failures := s.fetchDetails(ctx, dtos)
	if len(failures) == 0 {
		cache.SetJSON(ctx, s.cache, categoryKey(category), meals, s.ttl)
	}
	return meals, nil
}

// GetPopularMeals returns a shuffled sample of meals from PopularCategories
func (s *MealService) GetPopularMeals(ctx context.Context) ([]*model.Meal, error) {
	var meals []*model.Meal
	if cache.GetJSON(ctx, s.cache, keyPopular, &meals) {
		return meals, nil
	}

	var failures []model.FetchFailure
	meals = []*model.Meal{}
	for _, category := range PopularCategories {
		if ctx.Err() != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeUpstream, "Failed to fetch popular meals", ctx.Err())
		}

		dtos, err := s.client.FilterByCategory(ctx, category)
		if err != nil {
			failures = append(failures, s.absorb(ctx, model.ScopeCategory, category, err))
			continue
		}
		if len(dtos) > popularPerCategory {
			dtos = dtos[:popularPerCategory]
		}

		found, skipped := s.fetchDetails(ctx, dtos)
		meals = append(meals, found...)
		failures = append(failures, skipped...)
	}

	s.shuffle(meals)
	if len(meals) > maxPopularMeals {
		meals = meals[:maxPopularMeals]
	}

	if len(failures) == 0 {
		cache.SetJSON(ctx, s.cache, keyPopular, meals, s.ttl)
	}
	return meals, nil
}

// GetAllMeals assembles every meal the upstream database exposes. It never
// fails: upstream errors are recorded in the corpus and the meals that could
// be fetched are returned. Concurrent callers share a single load, which runs
// detached from the caller that started it. A caller whose context ends first
// stops waiting and gets an empty corpus recording the cancellation.
func (s *MealService) GetAllMeals(ctx context.Context) model.MealCorpus {
	var meals []*model.Meal
	if cache.GetJSON(ctx, s.cache, keyAllMeals, &meals) {
		return model.MealCorpus{Meals: meals, Source: model.SourceCache}
	}

	ch := s.loads.DoChan(keyAllMeals, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.loadTimeout)
		defer cancel()
		return s.loadAllMeals(loadCtx), nil
	})

	var corpus model.MealCorpus
	select {
	case res := <-ch:
		corpus = res.Val.(model.MealCorpus)
	case <-ctx.Done():
		return model.MealCorpus{
			Meals:    []*model.Meal{},
			Source:   model.SourceSearch,
			Failures: []model.FetchFailure{s.absorb(ctx, model.ScopeSearch, "", ctx.Err())},
		}
	}

	// each caller gets its own slice header
	corpus.Meals = append([]*model.Meal(nil), corpus.Meals...)
	corpus.Failures = append([]model.FetchFailure(nil), corpus.Failures...)
	return corpus
}

func (s *MealService) loadAllMeals(ctx context.Context) model.MealCorpus {
	log := logging.FromContext(ctx)
	corpus := s.collectMeals(ctx)

	metrics.CorpusSize.Set(float64(len(corpus.Meals)))
	log.WithFields(logrus.Fields{
		"meals":    len(corpus.Meals),
		"failures": len(corpus.Failures),
		"source":   corpus.Source,
	}).Info("assembled meal corpus")

	if len(corpus.Meals) > 0 && corpus.Complete() {
		cache.SetJSON(ctx, s.cache, keyAllMeals, corpus.Meals, s.ttl)
	}
	return corpus
}

func (s *MealService) collectMeals(ctx context.Context) model.MealCorpus {
	corpus := model.MealCorpus{Meals: []*model.Meal{}, Source: model.SourceSearch}

	dtos, err := s.client.SearchMeals(ctx, "")
	if err != nil {
		corpus.Failures = append(corpus.Failures, s.absorb(ctx, model.ScopeSearch, "", err))
	} else if len(dtos) > 0 {
		corpus.Meals = mealdb.ToMeals(dtos)
		return corpus
	}

	corpus.Source = model.SourceCategories
	if ctx.Err() != nil {
		return corpus
	}

	categories, err := s.client.ListCategories(ctx)
	if err != nil {
		corpus.Failures = append(corpus.Failures, s.absorb(ctx, model.ScopeCategories, "", err))
		return corpus
	}

	for _, category := range categories {
		if ctx.Err() != nil {
			break
		}

		name := category.StrCategory
		stubs, err := s.client.FilterByCategory(ctx, name)
		if err != nil {
			corpus.Failures = append(corpus.Failures, s.absorb(ctx, model.ScopeCategory, name, err))
			continue
		}

		meals, failures := s.fetchDetails(ctx, stubs)
		corpus.Meals = append(corpus.Meals, meals...)
		corpus.Failures = append(corpus.Failures, failures...)
	}
	return corpus
}

// fetchDetails resolves abbreviated records into full meals, skipping the
// ones that fail.
func (s *MealService) fetchDetails(ctx context.Context, stubs []mealdb.MealDTO) ([]*model.Meal, []model.FetchFailure) {
	meals := make([]*model.Meal, 0, len(stubs))
	var failures []model.FetchFailure

	for _, stub := range stubs {
		if ctx.Err() != nil {
			failures = append(failures, s.absorb(ctx, model.ScopeMeal, stub.IDMeal, ctx.Err()))
			break
		}

		meal, err := s.GetMealByID(ctx, stub.IDMeal)
		if err != nil {
			failures = append(failures, s.absorb(ctx, model.ScopeMeal, stub.IDMeal, err))
			continue
		}
		meals = append(meals, meal)
	}
	return meals, failures
}

func (s *MealService) absorb(ctx context.Context, scope, key string, err error) model.FetchFailure {
	metrics.AggregationFailures.WithLabelValues(scope).Inc()
	logging.FromContext(ctx).
		WithError(err).
		WithField("scope", scope).
		WithField("key", key).
		Warnf("skipping %s after upstream failure", scope)
	return model.FetchFailure{Scope: scope, Key: key, Err: err}
}
