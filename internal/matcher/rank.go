package matcher

import (
	"sort"

	"github.com/pageza/mealdb-explorer/backend/internal/model"
)

// Rank returns results ordered by match percentage, then matched count, both
// descending. Full ties keep their input order. The input slice is not
// modified.
func Rank(results []*model.MatchResult) []*model.MatchResult {
	ranked := make([]*model.MatchResult, 0, len(results))
	for _, r := range results {
		if r != nil {
			ranked = append(ranked, r)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].MatchPercentage != ranked[j].MatchPercentage {
			return ranked[i].MatchPercentage > ranked[j].MatchPercentage
		}
		return ranked[i].MatchedCount > ranked[j].MatchedCount
	})
	return ranked
}

// FilterByThreshold keeps results whose percentage is at least minPercentage.
func FilterByThreshold(results []*model.MatchResult, minPercentage float64) []*model.MatchResult {
	kept := make([]*model.MatchResult, 0, len(results))
	for _, r := range results {
		if r != nil && r.MatchPercentage >= minPercentage {
			kept = append(kept, r)
		}
	}
	return kept
}
