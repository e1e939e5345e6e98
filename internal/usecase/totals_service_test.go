package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/nutrilog/backend/internal/domain"
)

func TestWaterTotal(t *testing.T) {
	ctx := context.Background()

	t.Run("sums numeric amounts, bad data contributes zero", func(t *testing.T) {
		store := NewMockEntryStore()
		store.entries = []map[string]any{
			{"amount": "3"},
			{"amount": "bad"},
			{"amount": 2.5},
		}
		svc := NewTotalsService(store)

		total, err := svc.WaterTotal(ctx, "u1", "2026-08-29")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total.TotalWater != 5.5 {
			t.Errorf("total_water = %v, want 5.5", total.TotalWater)
		}
		if total.Entries != 3 {
			t.Errorf("entries = %d, want 3", total.Entries)
		}
		if total.UserID != "u1" || total.Date != "2026-08-29" {
			t.Errorf("identity = %s/%s, want u1/2026-08-29", total.UserID, total.Date)
		}
	})

	t.Run("empty day", func(t *testing.T) {
		svc := NewTotalsService(NewMockEntryStore())

		total, err := svc.WaterTotal(ctx, "u1", "2026-08-29")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total.TotalWater != 0 || total.Entries != 0 {
			t.Errorf("total = %v entries = %d, want 0/0", total.TotalWater, total.Entries)
		}
	})

	t.Run("unavailable store is raised", func(t *testing.T) {
		store := NewMockEntryStore()
		store.listErr = domain.ErrStoreUnavailable
		svc := NewTotalsService(store)

		_, err := svc.WaterTotal(ctx, "u1", "2026-08-29")
		if !errors.Is(err, domain.ErrStoreUnavailable) {
			t.Errorf("error = %v, want ErrStoreUnavailable", err)
		}
	})
}

func TestWorkoutTotal(t *testing.T) {
	store := NewMockEntryStore()
	store.entries = []map[string]any{
		{"calories_burned": 250.0},
		{"calories_burned": "120.25"},
		{"calories_burned": nil},
	}
	svc := NewTotalsService(store)

	total, err := svc.WorkoutTotal(context.Background(), "u1", "2026-08-29")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total.TotalCaloriesBurned != 370.25 {
		t.Errorf("total_calories_burned = %v, want 370.25", total.TotalCaloriesBurned)
	}
	if total.Entries != 3 {
		t.Errorf("entries = %d, want 3", total.Entries)
	}
}

func TestNutritionTotals(t *testing.T) {
	store := NewMockEntryStore()
	store.entries = []map[string]any{
		{"calories": 80.7, "protein": 1.0, "carbs": 8.6, "fat": 4.6},
		{"calories": "200", "protein": nil, "carbs": "junk", "fat": 2.15},
	}
	svc := NewTotalsService(store)

	totals, err := svc.NutritionTotals(context.Background(), "u1", "2026-08-29")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totals.Calories != 280.7 {
		t.Errorf("calories = %v, want 280.7", totals.Calories)
	}
	if totals.Protein != 1.0 {
		t.Errorf("protein = %v, want 1", totals.Protein)
	}
	if totals.Carbs != 8.6 {
		t.Errorf("carbs = %v, want 8.6", totals.Carbs)
	}
	if totals.Fat != 6.75 {
		t.Errorf("fat = %v, want 6.75", totals.Fat)
	}
	if totals.Entries != 2 {
		t.Errorf("entries = %d, want 2", totals.Entries)
	}
}

func TestDayTotals(t *testing.T) {
	store := NewMockEntryStore()
	store.entries = []map[string]any{
		{"amount": 2.0, "calories_burned": 100.0, "calories": 50.0, "protein": 1.0, "carbs": 2.0, "fat": 3.0},
	}
	svc := NewTotalsService(store)

	day, err := svc.DayTotals(context.Background(), "u1", "2026-08-29")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The mock serves the same entry list for every category, so each
	// block sees one entry.
	if day.Water.Entries != 1 || day.Workout.Entries != 1 || day.Nutrition.Entries != 1 {
		t.Errorf("entries = %d/%d/%d, want 1/1/1",
			day.Water.Entries, day.Workout.Entries, day.Nutrition.Entries)
	}
	if day.Water.Total != 2.0 {
		t.Errorf("water total = %v, want 2", day.Water.Total)
	}
	if day.Workout.CaloriesBurned != 100.0 {
		t.Errorf("workout calories = %v, want 100", day.Workout.CaloriesBurned)
	}
	if day.Nutrition.Calories != 50.0 {
		t.Errorf("nutrition calories = %v, want 50", day.Nutrition.Calories)
	}
}
