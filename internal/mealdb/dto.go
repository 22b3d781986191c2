package mealdb

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// MaxIngredientSlots is the number of ingredient/measure pairs a meal record carries.
const MaxIngredientSlots = 20

// MealDTO is a raw meal record. Ingredient slots are flattened upstream into
// strIngredient1..20 and strMeasure1..20; unset slots are null or blank.
type MealDTO struct {
	IDMeal          string
	StrMeal         string
	StrCategory     string
	StrArea         string
	StrInstructions string
	StrMealThumb    string
	StrYoutube      string
	StrTags         string
	Ingredients     [MaxIngredientSlots]string
	Measures        [MaxIngredientSlots]string
}

// UnmarshalJSON decodes a meal record, treating null and non-string values as blank.
func (m *MealDTO) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	str := func(key string) string {
		if v, ok := raw[key].(string); ok {
			return v
		}
		return ""
	}

	*m = MealDTO{
		IDMeal:          str("idMeal"),
		StrMeal:         str("strMeal"),
		StrCategory:     str("strCategory"),
		StrArea:         str("strArea"),
		StrInstructions: str("strInstructions"),
		StrMealThumb:    str("strMealThumb"),
		StrYoutube:      str("strYoutube"),
		StrTags:         str("strTags"),
	}
	for i := 0; i < MaxIngredientSlots; i++ {
		n := strconv.Itoa(i + 1)
		m.Ingredients[i] = str("strIngredient" + n)
		m.Measures[i] = str("strMeasure" + n)
	}
	return nil
}

// CategoryDTO is a raw category record.
type CategoryDTO struct {
	IDCategory             string `json:"idCategory"`
	StrCategory            string `json:"strCategory"`
	StrCategoryThumb       string `json:"strCategoryThumb"`
	StrCategoryDescription string `json:"strCategoryDescription"`
}

// mealsResponse keeps the meals payload raw: upstream answers "no records"
// with null and, on some endpoints, with a plain string.
type mealsResponse struct {
	Meals json.RawMessage `json:"meals"`
}

func (r mealsResponse) decode() ([]MealDTO, error) {
	trimmed := bytes.TrimSpace(r.Meals)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return []MealDTO{}, nil
	}
	var meals []MealDTO
	if err := json.Unmarshal(trimmed, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

type categoriesResponse struct {
	Categories []CategoryDTO `json:"categories"`
}
