package usecase

import (
	"smart-focus-suggestion/internal/model"
	"smart-focus-suggestion/internal/suggestion"

	"time"
)

// Focus minute estimates per energy level.
const (
	focusMinutesHigh    = 90
	focusMinutesMedium  = 45
	focusMinutesLow     = 25
	focusMinutesDefault = 30

	// Afternoon slump window: estimated focus is reduced by slumpFactor.
	slumpStartHour = 14
	slumpEndHour   = 16
)

// buildContext derives the situational snapshot for one request. Every field
// the caller did not override is filled with a deterministic estimate.
func (uc *implUseCase) buildContext(now time.Time, hoursWorked float64, input suggestion.GetSuggestionInput) model.SuggestionContext {
	hour := now.Hour()

	// Weekday 1=Monday … 7=Sunday
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}

	sctx := model.SuggestionContext{
		Hour:             hour,
		Weekday:          weekday,
		HoursWorkedToday: hoursWorked,
		Mood:             model.MoodNeutral,
	}

	if energy, ok := parseEnergy(input.Energy); ok {
		sctx.Energy = energy
	} else {
		sctx.Energy = estimateEnergy(hour, hoursWorked)
		sctx.EnergyEstimated = true
	}

	if input.FocusMinutes > 0 {
		sctx.FocusMinutes = input.FocusMinutes
	} else {
		sctx.FocusMinutes = estimateFocusMinutes(sctx.Energy, hour)
	}

	if mood, ok := parseMood(input.Mood); ok {
		sctx.Mood = mood
	}

	if input.Strategy == string(model.StrategyQuickWin) {
		sctx.Strategy = model.StrategyQuickWin
	}

	return sctx
}

// estimateEnergy derives energy from workload first, then time of day.
func estimateEnergy(hour int, hoursWorked float64) model.EnergyLevel {
	if hoursWorked > 6 {
		return model.EnergyLow
	}
	if hoursWorked > 4 {
		return model.EnergyMedium
	}

	switch {
	case hour >= 9 && hour <= 11:
		return model.EnergyHigh
	case hour >= 18:
		return model.EnergyLow
	default:
		// Mid-afternoon and everything else defaults to medium.
		return model.EnergyMedium
	}
}

// estimateFocusMinutes maps energy to an attention budget, shortened during
// the afternoon slump.
func estimateFocusMinutes(energy model.EnergyLevel, hour int) int {
	minutes := focusMinutesDefault
	switch energy {
	case model.EnergyHigh:
		minutes = focusMinutesHigh
	case model.EnergyMedium:
		minutes = focusMinutesMedium
	case model.EnergyLow:
		minutes = focusMinutesLow
	}

	if hour >= slumpStartHour && hour <= slumpEndHour {
		minutes = minutes * 2 / 3
	}
	return minutes
}

func parseEnergy(s string) (model.EnergyLevel, bool) {
	switch model.EnergyLevel(s) {
	case model.EnergyHigh, model.EnergyMedium, model.EnergyLow:
		return model.EnergyLevel(s), true
	}
	return "", false
}

func parseMood(s string) (model.Mood, bool) {
	switch model.Mood(s) {
	case model.MoodGreat, model.MoodGood, model.MoodNeutral, model.MoodTired, model.MoodStressed:
		return model.Mood(s), true
	}
	return "", false
}
