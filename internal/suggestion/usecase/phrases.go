package usecase

import (
	"fmt"
	"math/rand"

	"smart-focus-suggestion/internal/model"
	"smart-focus-suggestion/internal/suggestion"
)

// Picker selects an index from a phrase pool. Task selection never depends on
// it, only wording does, so tests can plug a fixed picker and production uses
// a seeded random one.
type Picker interface {
	// Pick returns an index in [0, n). n is always >= 1.
	Pick(n int) int
}

type randomPicker struct {
	r *rand.Rand
}

// NewRandomPicker returns a Picker backed by a seeded PRNG.
func NewRandomPicker(seed int64) Picker {
	return &randomPicker{r: rand.New(rand.NewSource(seed))}
}

func (p *randomPicker) Pick(n int) int {
	return p.r.Intn(n)
}

// FixedPicker always picks the same index (clamped to the pool). Used by
// tests and anywhere reproducible wording matters.
type FixedPicker int

func (p FixedPicker) Pick(n int) int {
	if int(p) >= n {
		return 0
	}
	return int(p)
}

// Rationale fragments per category, in precedence order. The first two
// matching fragments build the rationale — deterministic by design.
var rationaleFragments = []struct {
	category suggestion.Category
	fragment string
}{
	{suggestion.CategoryOverdue, "it is past its due date and clearing it removes the biggest source of pressure"},
	{suggestion.CategoryQuickWin, "it is almost done, so a small push gets you a finished task"},
	{suggestion.CategoryInProgress, "you already started it, and continuing costs far less than switching"},
	{suggestion.CategoryDueToday, "it is due today"},
	{suggestion.CategoryImportant, "it is one of your high-priority items"},
	{suggestion.CategoryDueSoon, "its deadline is coming up in the next few days"},
	{suggestion.CategoryEasyStart, "it is small enough to start without friction"},
	{suggestion.CategoryDeepWork, "it deserves focused attention while you have the capacity"},
}

// buildRationale combines up to two category fragments into one sentence.
func buildRationale(title string, cats []suggestion.Category) string {
	var parts []string
	for _, rf := range rationaleFragments {
		if hasCategory(cats, rf.category) {
			parts = append(parts, rf.fragment)
			if len(parts) == 2 {
				break
			}
		}
	}

	switch len(parts) {
	case 0:
		return fmt.Sprintf("%q is currently your highest-scoring task.", title)
	case 1:
		return fmt.Sprintf("%q is the best pick right now: %s.", title, parts[0])
	default:
		return fmt.Sprintf("%q is the best pick right now: %s, and %s.", title, parts[0], parts[1])
	}
}

// buildAction suggests a concrete first step for the chosen task.
func buildAction(t model.Task, cats []suggestion.Category, focusMinutes int) string {
	switch {
	case hasCategory(cats, suggestion.CategoryQuickWin):
		return fmt.Sprintf("Close out %q — the remaining work should fit well inside %d minutes.", t.Title, focusMinutes)
	case hasCategory(cats, suggestion.CategoryInProgress):
		return fmt.Sprintf("Reopen %q exactly where you left off and continue for %d minutes.", t.Title, focusMinutes)
	case hasCategory(cats, suggestion.CategoryOverdue):
		return fmt.Sprintf("Start with the smallest unblocked step of %q right now.", t.Title)
	default:
		return fmt.Sprintf("Spend the first 10 minutes of %q without aiming for completeness — just begin.", t.Title)
	}
}

// Motivation pools. Which pool is used is deterministic (mood first, then
// energy); the phrase inside the pool may be randomized via the Picker.
var motivationPools = map[string][]string{
	"tired": {
		"Low battery is fine. One small finished thing beats three started ones.",
		"You do not need momentum to start — starting creates it.",
		"Keep it tiny today. Tiny still counts.",
	},
	"stressed": {
		"One task at a time. Everything else can wait its turn.",
		"Shrink the world to this single task for the next few minutes.",
		"Progress relieves pressure faster than planning does.",
	},
	"high": {
		"You have the energy — point it at the hard thing.",
		"This is your peak window. Big task, full focus.",
		"Deep work now pays for the whole day.",
	},
	"low": {
		"Easy wins first. The rest gets lighter after one checkmark.",
		"Pick it up gently — 20 good minutes is a win.",
		"Done is the goal, perfect is not invited.",
	},
	"default": {
		"One step at a time — the first one is right here.",
		"Start small, finish something, then decide again.",
		"Focus on this one thing. The list can wait.",
	},
}

// Celebration pool for the empty-task-list state.
var noTaskMessages = []string{
	"All clear! No open tasks — enjoy the headroom or plan what's next.",
	"Nothing on your plate right now. That's a win worth noticing.",
	"Zero open tasks. Take the break — you earned it.",
}

const warningLongDay = "You have already logged a long day — consider wrapping up rather than starting new work."

// pickMotivation chooses the pool deterministically from context, then a
// phrase from it via the picker.
func pickMotivation(sctx model.SuggestionContext, picker Picker) string {
	var pool []string
	switch {
	case sctx.Mood == model.MoodTired:
		pool = motivationPools["tired"]
	case sctx.Mood == model.MoodStressed:
		pool = motivationPools["stressed"]
	case sctx.Energy == model.EnergyHigh:
		pool = motivationPools["high"]
	case sctx.Energy == model.EnergyLow:
		pool = motivationPools["low"]
	default:
		pool = motivationPools["default"]
	}
	return pool[picker.Pick(len(pool))]
}

func pickNoTaskMessage(picker Picker) string {
	return noTaskMessages[picker.Pick(len(noTaskMessages))]
}

// alternativeReason explains why a task landed in an alternative slot.
func alternativeReason(cat suggestion.Category, t model.Task) string {
	switch cat {
	case suggestion.CategoryQuickWin:
		return fmt.Sprintf("%q is nearly finished — a quick win if the main pick doesn't land.", t.Title)
	case suggestion.CategoryMomentum:
		return fmt.Sprintf("%q is already in progress — continuing keeps your momentum.", t.Title)
	case suggestion.CategoryUrgent:
		return fmt.Sprintf("%q has the most pressing deadline among the rest.", t.Title)
	case suggestion.CategoryEasyStart:
		return fmt.Sprintf("%q is small and easy to begin if you need a softer entry.", t.Title)
	case suggestion.CategoryEnergyMatch:
		return fmt.Sprintf("%q matches your current energy level well.", t.Title)
	default:
		return fmt.Sprintf("%q is the next best-scoring option.", t.Title)
	}
}
