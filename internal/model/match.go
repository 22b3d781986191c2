package model

const (
	exactMatchPercentage = 100.0
	highMatchPercentage  = 70.0
)

// MatchResult describes how well a meal's ingredient list is covered by a
// set of user supplied ingredients.
//
// MatchedCount + len(MissingIngredients) == TotalCount == len(Meal.Ingredients)
type MatchResult struct {
	Meal               *Meal
	MatchPercentage    float64
	MatchedCount       int
	TotalCount         int
	MatchedIngredients []string
	MissingIngredients []string
}

// IsExactMatch reports whether every ingredient of the meal is covered
func (r *MatchResult) IsExactMatch() bool {
	return r.MatchPercentage == exactMatchPercentage
}

// IsHighMatch reports whether at least 70% of the ingredients are covered
func (r *MatchResult) IsHighMatch() bool {
	return r.MatchPercentage >= highMatchPercentage
}
