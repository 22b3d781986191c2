package matcher

import (
	"math"
	"strings"

	"github.com/pageza/mealdb-explorer/backend/internal/model"
)

// Calculate computes how many of meal's ingredients are covered by
// userIngredients. It never fails; a nil meal or an empty ingredient list on
// either side yields a zero match.
func Calculate(meal *model.Meal, userIngredients []string) *model.MatchResult {
	userSet := NormalizeSet(userIngredients)
	if meal == nil || len(userSet) == 0 || len(meal.Ingredients) == 0 {
		return emptyMatch(meal)
	}

	matched := make([]string, 0, len(meal.Ingredients))
	missing := make([]string, 0, len(meal.Ingredients))
	for _, ing := range meal.Ingredients {
		if isMatched(Normalize(ing.Name), userSet) {
			matched = append(matched, ing.Name)
		} else {
			missing = append(missing, ing.Name)
		}
	}

	total := len(meal.Ingredients)
	return &model.MatchResult{
		Meal:               meal,
		MatchPercentage:    percentage(len(matched), total),
		MatchedCount:       len(matched),
		TotalCount:         total,
		MatchedIngredients: matched,
		MissingIngredients: missing,
	}
}

func isMatched(mealIngredient string, userSet map[string]struct{}) bool {
	if _, ok := userSet[mealIngredient]; ok {
		return true
	}
	for userIng := range userSet {
		if strings.Contains(mealIngredient, userIng) || strings.Contains(userIng, mealIngredient) {
			return true
		}
	}
	return false
}

// percentage returns matched/total*100 rounded half up to two decimals.
func percentage(matched, total int) float64 {
	if total <= 0 {
		return 0.0
	}
	pct := float64(matched) / float64(total) * 100.0
	return math.Floor(pct*100.0+0.5) / 100.0
}

func emptyMatch(meal *model.Meal) *model.MatchResult {
	return &model.MatchResult{
		Meal:               meal,
		MatchPercentage:    0.0,
		MatchedCount:       0,
		TotalCount:         meal.IngredientCount(),
		MatchedIngredients: []string{},
		MissingIngredients: meal.IngredientNames(),
	}
}
