package usecase

import (
	"testing"
	"time"

	"smart-focus-suggestion/internal/model"
	"smart-focus-suggestion/internal/suggestion"
)

func TestEstimateEnergy(t *testing.T) {
	cases := []struct {
		name        string
		hour        int
		hoursWorked float64
		want        model.EnergyLevel
	}{
		{"Morning Peak", 10, 0, model.EnergyHigh},
		{"Morning After Long Day", 10, 6.5, model.EnergyLow},
		{"Afternoon Moderate Work", 15, 4.5, model.EnergyMedium},
		{"Evening", 19, 0, model.EnergyLow},
		{"Midday Default", 13, 1, model.EnergyMedium},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := estimateEnergy(tc.hour, tc.hoursWorked); got != tc.want {
				t.Errorf("estimateEnergy(%d, %.1f) = %s, want %s", tc.hour, tc.hoursWorked, got, tc.want)
			}
		})
	}
}

func TestEstimateFocusMinutes(t *testing.T) {
	if got := estimateFocusMinutes(model.EnergyHigh, 10); got != 90 {
		t.Errorf("high energy morning = %d, want 90", got)
	}
	if got := estimateFocusMinutes(model.EnergyLow, 10); got != 25 {
		t.Errorf("low energy morning = %d, want 25", got)
	}
	// Afternoon slump cuts the budget to two thirds.
	if got := estimateFocusMinutes(model.EnergyMedium, 15); got != 30 {
		t.Errorf("medium energy during slump = %d, want 30", got)
	}
}

func TestBuildContext(t *testing.T) {
	uc := newTestUseCase(&mockRepository{}, nil)

	t.Run("Estimates When Absent", func(t *testing.T) {
		sctx := uc.buildContext(testNow, 0, suggestion.GetSuggestionInput{})
		if !sctx.EnergyEstimated {
			t.Error("energy should be marked as estimated")
		}
		if sctx.Energy != model.EnergyHigh {
			t.Errorf("10:00 with no work logged should estimate high, got %s", sctx.Energy)
		}
		if sctx.FocusMinutes != 90 {
			t.Errorf("high energy should default to 90 focus minutes, got %d", sctx.FocusMinutes)
		}
		if sctx.Mood != model.MoodNeutral {
			t.Errorf("mood should default to neutral, got %s", sctx.Mood)
		}
		if sctx.Weekday != 2 {
			t.Errorf("Tuesday should map to weekday 2, got %d", sctx.Weekday)
		}
	})

	t.Run("Caller Overrides Win", func(t *testing.T) {
		sctx := uc.buildContext(testNow, 7, suggestion.GetSuggestionInput{
			Energy:       "high",
			FocusMinutes: 120,
			Mood:         "stressed",
		})
		if sctx.EnergyEstimated {
			t.Error("declared energy must not be marked estimated")
		}
		if sctx.Energy != model.EnergyHigh || sctx.FocusMinutes != 120 || sctx.Mood != model.MoodStressed {
			t.Errorf("overrides not applied: %+v", sctx)
		}
		if sctx.HoursWorkedToday != 7 {
			t.Errorf("hours worked should pass through, got %f", sctx.HoursWorkedToday)
		}
	})

	t.Run("Sunday Is Weekday Seven", func(t *testing.T) {
		sunday := time.Date(2025, 6, 8, 10, 0, 0, 0, time.UTC)
		if sctx := uc.buildContext(sunday, 0, suggestion.GetSuggestionInput{}); sctx.Weekday != 7 {
			t.Errorf("Sunday should map to 7, got %d", sctx.Weekday)
		}
	})
}
