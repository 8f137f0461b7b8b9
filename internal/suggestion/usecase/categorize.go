package usecase

import (
	"time"

	"smart-focus-suggestion/internal/model"
	"smart-focus-suggestion/internal/suggestion"
)

// Categorization thresholds.
const (
	dueSoonDays = 3

	quickWinCompletion = 0.70 // completion fraction at or above → quick win
	quickWinRemaining  = 0.5  // remaining hours at or below → quick win

	easyStartMaxHours = 2.0 // estimated hours at or below → easy to start
	deepWorkMinHours  = 2.0 // estimated hours above → deep work candidate
)

// categorize evaluates every bucket for one task. Buckets overlap freely
// except the due tiers, which are evaluated overdue > due-today > due-soon.
func categorize(t model.Task, now time.Time) []suggestion.Category {
	var cats []suggestion.Category

	if t.DueAt != nil {
		switch {
		case t.DueAt.Before(now):
			cats = append(cats, suggestion.CategoryOverdue)
		case sameDay(*t.DueAt, now):
			cats = append(cats, suggestion.CategoryDueToday)
		case t.DueAt.Before(now.AddDate(0, 0, dueSoonDays)):
			cats = append(cats, suggestion.CategoryDueSoon)
		}
	}

	if t.Status == model.TaskStatusInProgress {
		cats = append(cats, suggestion.CategoryInProgress)
	}

	if isQuickWin(t) {
		cats = append(cats, suggestion.CategoryQuickWin)
	}

	priority := t.EffectivePriority()
	if priority == model.TaskPriorityHigh {
		cats = append(cats, suggestion.CategoryImportant)
	}

	if t.Status == model.TaskStatusTodo && priority != model.TaskPriorityHigh &&
		t.EstimatedHours != nil && *t.EstimatedHours <= easyStartMaxHours {
		cats = append(cats, suggestion.CategoryEasyStart)
	}

	if priority == model.TaskPriorityHigh &&
		t.EstimatedHours != nil && *t.EstimatedHours > deepWorkMinHours {
		cats = append(cats, suggestion.CategoryDeepWork)
	}

	return cats
}

func isQuickWin(t model.Task) bool {
	if t.CompletionFraction() >= quickWinCompletion {
		return true
	}
	if remaining, ok := t.RemainingHours(); ok && remaining <= quickWinRemaining {
		return true
	}
	return false
}

// requiredEnergy estimates what energy level a task demands.
func requiredEnergy(t model.Task) model.EnergyLevel {
	if t.EffectivePriority() == model.TaskPriorityHigh {
		if remaining, ok := t.RemainingHours(); ok && remaining > deepWorkMinHours {
			return model.EnergyHigh
		}
	}
	if isQuickWin(t) {
		return model.EnergyLow
	}
	return model.EnergyMedium
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func hasCategory(cats []suggestion.Category, want suggestion.Category) bool {
	for _, c := range cats {
		if c == want {
			return true
		}
	}
	return false
}
