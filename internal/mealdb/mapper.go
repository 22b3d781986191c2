package mealdb

import (
	"strings"

	"github.com/pageza/mealdb-explorer/backend/internal/model"
)

// ToMeal maps a raw record to a domain meal. Ingredient slots whose name is
// blank after trimming are skipped.
func ToMeal(dto MealDTO) *model.Meal {
	return &model.Meal{
		ID:           dto.IDMeal,
		Name:         dto.StrMeal,
		Category:     dto.StrCategory,
		Area:         dto.StrArea,
		Instructions: dto.StrInstructions,
		ThumbnailURL: dto.StrMealThumb,
		VideoURL:     dto.StrYoutube,
		Ingredients:  extractIngredients(dto),
		Tags:         extractTags(dto.StrTags),
	}
}

// ToMeals maps every record in order.
func ToMeals(dtos []MealDTO) []*model.Meal {
	meals := make([]*model.Meal, 0, len(dtos))
	for _, dto := range dtos {
		meals = append(meals, ToMeal(dto))
	}
	return meals
}

// ToCategory maps a raw category record.
func ToCategory(dto CategoryDTO) model.Category {
	return model.Category{
		ID:           dto.IDCategory,
		Name:         dto.StrCategory,
		ThumbnailURL: dto.StrCategoryThumb,
		Description:  dto.StrCategoryDescription,
	}
}

// ToCategories maps every category record in order.
func ToCategories(dtos []CategoryDTO) []model.Category {
	categories := make([]model.Category, 0, len(dtos))
	for _, dto := range dtos {
		categories = append(categories, ToCategory(dto))
	}
	return categories
}

func extractIngredients(dto MealDTO) []model.Ingredient {
	ingredients := make([]model.Ingredient, 0, MaxIngredientSlots)
	for i := 0; i < MaxIngredientSlots; i++ {
		name := strings.TrimSpace(dto.Ingredients[i])
		if name == "" {
			continue
		}
		ingredients = append(ingredients, model.Ingredient{
			Name:    name,
			Measure: strings.TrimSpace(dto.Measures[i]),
		})
	}
	return ingredients
}

func extractTags(tags string) []string {
	out := []string{}
	for _, tag := range strings.Split(tags, ",") {
		if t := strings.TrimSpace(tag); t != "" {
			out = append(out, t)
		}
	}
	return out
}
