package usecase

import (
	"context"

	"github.com/nutrilog/backend/internal/domain"
)

// TotalsService recomputes per-day aggregations over a user's log entries.
// Aggregation is lossy-tolerant: a non-numeric field contributes zero
// instead of dropping the entry. Sums are rounded to 2 decimal places.
type TotalsService struct {
	store domain.EntryStore
}

// NewTotalsService creates a totals service backed by the given store.
func NewTotalsService(store domain.EntryStore) *TotalsService {
	return &TotalsService{store: store}
}

// WaterTotal sums the water amounts logged for one user on one day.
func (s *TotalsService) WaterTotal(ctx context.Context, userID, dayKey string) (*domain.WaterTotal, error) {
	entries, err := s.store.ListEntries(ctx, userID, domain.CategoryWater, dayKey)
	if err != nil {
		return nil, err
	}

	total := 0.0
	for _, entry := range entries {
		total += LossyFloat(entry["amount"])
	}

	return &domain.WaterTotal{
		UserID:     userID,
		Date:       dayKey,
		TotalWater: Round2(total),
		Entries:    len(entries),
	}, nil
}

// WorkoutTotal sums the calories burned logged for one user on one day.
func (s *TotalsService) WorkoutTotal(ctx context.Context, userID, dayKey string) (*domain.WorkoutTotal, error) {
	entries, err := s.store.ListEntries(ctx, userID, domain.CategoryWorkout, dayKey)
	if err != nil {
		return nil, err
	}

	total := 0.0
	for _, entry := range entries {
		total += LossyFloat(entry["calories_burned"])
	}

	return &domain.WorkoutTotal{
		UserID:              userID,
		Date:                dayKey,
		TotalCaloriesBurned: Round2(total),
		Entries:             len(entries),
	}, nil
}

// NutritionTotals sums calories, protein, carbs and fat over the food
// entries for one user on one day.
func (s *TotalsService) NutritionTotals(ctx context.Context, userID, dayKey string) (*domain.NutritionTotals, error) {
	entries, err := s.store.ListEntries(ctx, userID, domain.CategoryFood, dayKey)
	if err != nil {
		return nil, err
	}

	totals := &domain.NutritionTotals{
		UserID:  userID,
		Date:    dayKey,
		Entries: len(entries),
	}
	for _, entry := range entries {
		totals.Calories += LossyFloat(entry["calories"])
		totals.Protein += LossyFloat(entry["protein"])
		totals.Carbs += LossyFloat(entry["carbs"])
		totals.Fat += LossyFloat(entry["fat"])
	}
	totals.Calories = Round2(totals.Calories)
	totals.Protein = Round2(totals.Protein)
	totals.Carbs = Round2(totals.Carbs)
	totals.Fat = Round2(totals.Fat)

	return totals, nil
}

// DayTotals bundles the water, workout and nutrition totals for one day.
func (s *TotalsService) DayTotals(ctx context.Context, userID, dayKey string) (*domain.DayTotals, error) {
	water, err := s.WaterTotal(ctx, userID, dayKey)
	if err != nil {
		return nil, err
	}
	workout, err := s.WorkoutTotal(ctx, userID, dayKey)
	if err != nil {
		return nil, err
	}
	nutrition, err := s.NutritionTotals(ctx, userID, dayKey)
	if err != nil {
		return nil, err
	}

	return &domain.DayTotals{
		UserID: userID,
		Date:   dayKey,
		Water: domain.DayWaterBlock{
			Total:   water.TotalWater,
			Entries: water.Entries,
		},
		Workout: domain.DayWorkoutBlock{
			CaloriesBurned: workout.TotalCaloriesBurned,
			Entries:        workout.Entries,
		},
		Nutrition: domain.DayNutritionBlock{
			Calories: nutrition.Calories,
			Protein:  nutrition.Protein,
			Carbs:    nutrition.Carbs,
			Fat:      nutrition.Fat,
			Entries:  nutrition.Entries,
		},
	}, nil
}
