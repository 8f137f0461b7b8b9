package usecase

import (
	"sort"
	"time"

	"smart-focus-suggestion/internal/model"
	"smart-focus-suggestion/internal/suggestion"
)

// Default scoring points. Exact values are tunable; relative ordering within
// each dimension is the contract.
const (
	DefaultUrgencyOverdue = 40
	DefaultUrgencyDueDay  = 35 // due within 24h
	DefaultUrgencyDueSoon = 25 // due within 3 days
	DefaultUrgencyDueWeek = 15 // due within 7 days

	DefaultPriorityHigh   = 20
	DefaultPriorityMedium = 10
	DefaultPriorityLow    = 5

	DefaultMomentumInProgress = 20
	DefaultMomentumInReview   = 12

	DefaultCompletion90 = 20
	DefaultCompletion75 = 15
	DefaultCompletion50 = 10
	DefaultCompletion25 = 5

	DefaultEnergyMatchBonus = 10
	DefaultFocusFitBonus    = 5

	DefaultRecencyPenalty = 10

	// Variety rule: a non-recent candidate within this many points of the
	// recent top scorer is considered comparable.
	DefaultComparableMargin = 10
)

// Weights configures the scoring points per dimension.
type Weights struct {
	UrgencyOverdue float64
	UrgencyDueDay  float64
	UrgencyDueSoon float64
	UrgencyDueWeek float64

	PriorityHigh   float64
	PriorityMedium float64
	PriorityLow    float64

	MomentumInProgress float64
	MomentumInReview   float64

	Completion90 float64
	Completion75 float64
	Completion50 float64
	Completion25 float64

	EnergyMatchBonus float64
	FocusFitBonus    float64

	RecencyPenalty float64

	ComparableMargin float64
}

// DefaultWeights returns the default scoring weights.
func DefaultWeights() Weights {
	return Weights{
		UrgencyOverdue:     DefaultUrgencyOverdue,
		UrgencyDueDay:      DefaultUrgencyDueDay,
		UrgencyDueSoon:     DefaultUrgencyDueSoon,
		UrgencyDueWeek:     DefaultUrgencyDueWeek,
		PriorityHigh:       DefaultPriorityHigh,
		PriorityMedium:     DefaultPriorityMedium,
		PriorityLow:        DefaultPriorityLow,
		MomentumInProgress: DefaultMomentumInProgress,
		MomentumInReview:   DefaultMomentumInReview,
		Completion90:       DefaultCompletion90,
		Completion75:       DefaultCompletion75,
		Completion50:       DefaultCompletion50,
		Completion25:       DefaultCompletion25,
		EnergyMatchBonus:   DefaultEnergyMatchBonus,
		FocusFitBonus:      DefaultFocusFitBonus,
		RecencyPenalty:     DefaultRecencyPenalty,
		ComparableMargin:   DefaultComparableMargin,
	}
}

// scoreTasks annotates every task with its score and breakdown, then sorts
// descending by score. The sort is stable so equal scores keep input order
// and the whole pass is deterministic for identical inputs.
func scoreTasks(
	tasks []model.Task,
	sctx model.SuggestionContext,
	recent map[string]struct{},
	now time.Time,
	w Weights,
) []suggestion.ScoredTask {
	scored := make([]suggestion.ScoredTask, 0, len(tasks))
	for _, t := range tasks {
		cats := categorize(t, now)
		breakdown := scoreTask(t, sctx, recent, now, w)
		scored = append(scored, suggestion.ScoredTask{
			Task:       t,
			Score:      breakdown.Total(),
			Breakdown:  breakdown,
			Categories: cats,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

func scoreTask(
	t model.Task,
	sctx model.SuggestionContext,
	recent map[string]struct{},
	now time.Time,
	w Weights,
) suggestion.ScoreBreakdown {
	var b suggestion.ScoreBreakdown

	// Urgency: the closer the deadline, the higher. Overdue tops the scale.
	if t.DueAt != nil {
		until := t.DueAt.Sub(now)
		switch {
		case until < 0:
			b.Urgency = w.UrgencyOverdue
		case until <= 24*time.Hour:
			b.Urgency = w.UrgencyDueDay
		case until <= 3*24*time.Hour:
			b.Urgency = w.UrgencyDueSoon
		case until <= 7*24*time.Hour:
			b.Urgency = w.UrgencyDueWeek
		}
	}

	switch t.EffectivePriority() {
	case model.TaskPriorityHigh:
		b.Priority = w.PriorityHigh
	case model.TaskPriorityMedium:
		b.Priority = w.PriorityMedium
	case model.TaskPriorityLow:
		b.Priority = w.PriorityLow
	}

	// Momentum: continuing beats restarting.
	switch t.Status {
	case model.TaskStatusInProgress:
		b.Momentum = w.MomentumInProgress
	case model.TaskStatusInReview:
		b.Momentum = w.MomentumInReview
	}

	// Completion: encourage closing out nearly-done work.
	frac := t.CompletionFraction()
	switch {
	case frac >= 0.90:
		b.Completion = w.Completion90
	case frac >= 0.75:
		b.Completion = w.Completion75
	case frac >= 0.50:
		b.Completion = w.Completion50
	case frac >= 0.25:
		b.Completion = w.Completion25
	}

	// Context fit: energy match plus fitting inside the focus window.
	if requiredEnergy(t) == sctx.Energy {
		b.ContextFit += w.EnergyMatchBonus
	}
	if remaining, ok := t.RemainingHours(); ok {
		if remaining*60 <= float64(sctx.FocusMinutes) {
			b.ContextFit += w.FocusFitBonus
		}
	}

	// Recency: a soft penalty, never a hard exclusion.
	if _, ok := recent[t.ID]; ok {
		b.RecencyPenalty = -w.RecencyPenalty
	}

	return b
}
