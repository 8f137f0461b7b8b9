package usecase

import (
	"smart-focus-suggestion/internal/model"
	"smart-focus-suggestion/internal/suggestion"
)

const maxAlternatives = 3
const minSuggestions = 3 // primary + alternatives, when the pool allows

// composition is the deterministic selection result before any oracle input.
type composition struct {
	primary      suggestion.ScoredTask
	alternatives []suggestion.Alternative
}

// compose selects the primary recommendation and a set of non-overlapping
// alternatives. scored must be sorted descending by score; recentIDs is
// ordered most recent first. Given identical inputs the result is identical.
func (uc *implUseCase) compose(
	scored []suggestion.ScoredTask,
	sctx model.SuggestionContext,
	recentIDs []string,
) composition {
	primary := uc.selectPrimary(scored, sctx, recentIDs)

	used := map[string]struct{}{primary.Task.ID: {}}
	alternatives := uc.selectAlternatives(scored, sctx, used)

	// Backfill from score order so sparse categories never shrink the
	// response below the minimum.
	for _, st := range scored {
		if len(alternatives)+1 >= minSuggestions || len(alternatives) >= maxAlternatives {
			break
		}
		if _, ok := used[st.Task.ID]; ok {
			continue
		}
		used[st.Task.ID] = struct{}{}
		alternatives = append(alternatives, suggestion.Alternative{
			Task:     st.Task,
			Category: suggestion.CategoryNextBest,
			Reason:   alternativeReason(suggestion.CategoryNextBest, st.Task),
		})
	}

	return composition{primary: primary, alternatives: alternatives}
}

// selectPrimary branches on context, most specific condition first.
func (uc *implUseCase) selectPrimary(
	scored []suggestion.ScoredTask,
	sctx model.SuggestionContext,
	recentIDs []string,
) suggestion.ScoredTask {
	// 1. Explicit quick-win request wins when satisfiable.
	if sctx.Strategy == model.StrategyQuickWin {
		if st, ok := bestInCategory(scored, suggestion.CategoryQuickWin, nil); ok {
			return st
		}
	}

	recentSet := make(map[string]struct{}, len(recentIDs))
	for _, id := range recentIDs {
		recentSet[id] = struct{}{}
	}

	switch sctx.Energy {
	case model.EnergyLow:
		// 2. Low energy: easy closure over everything else.
		if st, ok := bestInCategory(scored, suggestion.CategoryQuickWin, nil); ok {
			return st
		}
		if st, ok := bestInCategory(scored, suggestion.CategoryEasyStart, nil); ok {
			return st
		}
		return topPreferringFresh(scored, recentSet)

	case model.EnergyHigh:
		// 3. High energy: spend it on the demanding work.
		if st, ok := bestInCategory(scored, suggestion.CategoryDeepWork, nil); ok {
			return st
		}
		if st, ok := bestInCategory(scored, suggestion.CategoryImportant, nil); ok {
			return st
		}
		return topPreferringFresh(scored, recentSet)

	default:
		// 4. Medium / default: top score with the variety rule.
		return uc.topWithVariety(scored, recentIDs)
	}
}

// topPreferringFresh returns the highest-scored task not in the recent set,
// falling back to the overall top when everything was recently suggested.
func topPreferringFresh(scored []suggestion.ScoredTask, recent map[string]struct{}) suggestion.ScoredTask {
	for _, st := range scored {
		if _, ok := recent[st.Task.ID]; !ok {
			return st
		}
	}
	return scored[0]
}

// topWithVariety skips tasks among the most recent suggestions when a
// comparable-score alternative exists; repetition beats returning nothing.
func (uc *implUseCase) topWithVariety(scored []suggestion.ScoredTask, recentIDs []string) suggestion.ScoredTask {
	depth := uc.cfg.VarietyDepth
	if depth > len(recentIDs) {
		depth = len(recentIDs)
	}
	veryRecent := make(map[string]struct{}, depth)
	for _, id := range recentIDs[:depth] {
		veryRecent[id] = struct{}{}
	}

	top := scored[0]
	if _, ok := veryRecent[top.Task.ID]; !ok {
		return top
	}

	margin := uc.cfg.Weights.ComparableMargin
	for _, st := range scored[1:] {
		if _, ok := veryRecent[st.Task.ID]; ok {
			continue
		}
		if st.Score >= top.Score-margin {
			return st
		}
		break // scored is sorted, no later candidate is comparable
	}
	return top
}

// selectAlternatives fills up to maxAlternatives slots, each from a different
// angle, never reusing a task id.
func (uc *implUseCase) selectAlternatives(
	scored []suggestion.ScoredTask,
	sctx model.SuggestionContext,
	used map[string]struct{},
) []suggestion.Alternative {
	var alts []suggestion.Alternative

	add := func(st suggestion.ScoredTask, label suggestion.Category) {
		if len(alts) >= maxAlternatives {
			return
		}
		if _, ok := used[st.Task.ID]; ok {
			return
		}
		used[st.Task.ID] = struct{}{}
		alts = append(alts, suggestion.Alternative{
			Task:     st.Task,
			Category: label,
			Reason:   alternativeReason(label, st.Task),
		})
	}

	if st, ok := bestInCategory(scored, suggestion.CategoryQuickWin, used); ok {
		add(st, suggestion.CategoryQuickWin)
	}
	if st, ok := bestInCategory(scored, suggestion.CategoryInProgress, used); ok {
		add(st, suggestion.CategoryMomentum)
	}
	if st, ok := mostUrgentUnpicked(scored, used); ok {
		add(st, suggestion.CategoryUrgent)
	}
	if st, ok := bestInCategory(scored, suggestion.CategoryEasyStart, used); ok {
		add(st, suggestion.CategoryEasyStart)
	}
	if st, ok := bestEnergyMatch(scored, sctx.Energy, used); ok {
		add(st, suggestion.CategoryEnergyMatch)
	}

	return alts
}

// bestInCategory returns the highest-scored unused task carrying the category.
func bestInCategory(
	scored []suggestion.ScoredTask,
	cat suggestion.Category,
	used map[string]struct{},
) (suggestion.ScoredTask, bool) {
	for _, st := range scored {
		if used != nil {
			if _, ok := used[st.Task.ID]; ok {
				continue
			}
		}
		if hasCategory(st.Categories, cat) {
			return st, true
		}
	}
	return suggestion.ScoredTask{}, false
}

// mostUrgentUnpicked walks the urgency tiers overdue > due-today > due-soon,
// then falls back to the best remaining high-priority task.
func mostUrgentUnpicked(scored []suggestion.ScoredTask, used map[string]struct{}) (suggestion.ScoredTask, bool) {
	for _, cat := range []suggestion.Category{
		suggestion.CategoryOverdue,
		suggestion.CategoryDueToday,
		suggestion.CategoryDueSoon,
		suggestion.CategoryImportant,
	} {
		if st, ok := bestInCategory(scored, cat, used); ok {
			return st, true
		}
	}
	return suggestion.ScoredTask{}, false
}

// bestEnergyMatch returns the highest-scored unused task whose required
// energy matches the user's current level.
func bestEnergyMatch(
	scored []suggestion.ScoredTask,
	energy model.EnergyLevel,
	used map[string]struct{},
) (suggestion.ScoredTask, bool) {
	for _, st := range scored {
		if _, ok := used[st.Task.ID]; ok {
			continue
		}
		if requiredEnergy(st.Task) == energy {
			return st, true
		}
	}
	return suggestion.ScoredTask{}, false
}
