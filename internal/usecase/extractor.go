package usecase

import "github.com/nutrilog/backend/internal/domain"

// kJ per kcal, used when only joule-based energy fields are present.
const kJPerKcal = 4.184

// ExtractNutrition normalizes a raw Open Food Facts nutriments map into
// NutritionFacts.
//
// Calories resolve in strict priority order: energy-kcal_serving,
// energy-kcal_100g, then kJ (energy_serving, else energy_100g) converted at
// 4.184 kJ/kcal. Protein, carbs and fat each prefer the _serving value and
// fall back to _100g.
func ExtractNutrition(nutriments map[string]any) domain.NutritionFacts {
	facts := domain.NutritionFacts{}

	kcal, ok := SafeFloat(nutriments["energy-kcal_serving"])
	if !ok {
		kcal, ok = SafeFloat(nutriments["energy-kcal_100g"])
	}
	if !ok {
		kj, kjOK := SafeFloat(nutriments["energy_serving"])
		if !kjOK {
			kj, kjOK = SafeFloat(nutriments["energy_100g"])
		}
		if kjOK {
			kcal, ok = kj/kJPerKcal, true
		}
	}
	if ok {
		facts.Calories = round2Ptr(kcal)
	}

	facts.Protein = servingOr100g(nutriments, "proteins")
	facts.Carbs = servingOr100g(nutriments, "carbohydrates")
	facts.Fat = servingOr100g(nutriments, "fat")
	return facts
}

// servingOr100g resolves <nutrient>_serving, falling back to <nutrient>_100g
// when the serving value is missing OR exactly zero. A genuine zero serving
// value is therefore indistinguishable from a missing one and gets
// overridden by the 100g value; every nutrient shares this one helper so
// the policy lives in a single place.
func servingOr100g(nutriments map[string]any, nutrient string) *float64 {
	v, ok := SafeFloat(nutriments[nutrient+"_serving"])
	if !ok || v == 0 {
		v, ok = SafeFloat(nutriments[nutrient+"_100g"])
	}
	if !ok {
		return nil
	}
	return round2Ptr(v)
}

func round2Ptr(v float64) *float64 {
	r := Round2(v)
	return &r
}
