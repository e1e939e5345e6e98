package domain

// NutritionFacts is the normalized macronutrient record extracted from a
// product's raw nutriments. A nil field means no source value resolved to a
// finite number; fields are never NaN or infinite. Resolved values are
// rounded to 2 decimal places.
type NutritionFacts struct {
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
}
