package model

// Failure scopes recorded while assembling a meal corpus
const (
	ScopeSearch     = "search"
	ScopeCategories = "categories"
	ScopeCategory   = "category"
	ScopeMeal       = "meal"
)

// Corpus sources
const (
	SourceCache      = "cache"
	SourceSearch     = "search"
	SourceCategories = "categories"
)

// FetchFailure is an upstream failure that was absorbed while assembling a
// corpus. Key identifies the category name or meal id that failed.
type FetchFailure struct {
	Scope string
	Key   string
	Err   error
}

// MealCorpus is a best-effort collection of full meal records together with
// the failures that were skipped while collecting it.
type MealCorpus struct {
	Meals    []*Meal
	Failures []FetchFailure
	Source   string
}

// Complete reports whether the corpus was assembled without absorbed failures
func (c MealCorpus) Complete() bool {
	return len(c.Failures) == 0
}
