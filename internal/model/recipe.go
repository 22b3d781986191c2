package model

// Ingredient is a single ingredient line of a meal.
type Ingredient struct {
	Name    string `json:"name"`
	Measure string `json:"measure"`
}

// Meal is a recipe record mapped from the upstream recipe database.
// Meals are treated as read-only once mapped.
type Meal struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Category     string       `json:"category"`
	Area         string       `json:"area"`
	Instructions string       `json:"instructions"`
	ThumbnailURL string       `json:"thumbnail_url"`
	VideoURL     string       `json:"video_url"`
	Ingredients  []Ingredient `json:"ingredients"`
	Tags         []string     `json:"tags"`
}

// IngredientCount returns the number of ingredients of the meal
func (m *Meal) IngredientCount() int {
	if m == nil {
		return 0
	}
	return len(m.Ingredients)
}

// IngredientNames returns the ingredient names in declared order
func (m *Meal) IngredientNames() []string {
	if m == nil {
		return []string{}
	}
	names := make([]string, 0, len(m.Ingredients))
	for _, ing := range m.Ingredients {
		names = append(names, ing.Name)
	}
	return names
}

// Category is a meal category as published upstream.
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ThumbnailURL string `json:"thumbnail_url"`
	Description  string `json:"description"`
}
