package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"smart-focus-suggestion/internal/model"
	"smart-focus-suggestion/internal/suggestion"
	"smart-focus-suggestion/internal/suggestion/repository"
)

const longDayHours = 6.0

// GetSuggestion runs the full pipeline: load tasks, build context, score,
// compose, then optionally let the oracle refine the primary pick. The only
// hard failure is not being able to read the task list.
func (uc *implUseCase) GetSuggestion(ctx context.Context, sc model.Scope, input suggestion.GetSuggestionInput) (suggestion.GetSuggestionOutput, error) {
	if err := validateInput(input); err != nil {
		return suggestion.GetSuggestionOutput{}, err
	}

	tasks, err := uc.repo.GetOpenTasks(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "suggestion.usecase.GetSuggestion.GetOpenTasks: %v", err)
		return suggestion.GetSuggestionOutput{}, fmt.Errorf("%w: %v", suggestion.ErrTaskListUnavailable, err)
	}

	open := tasks[:0:0]
	for _, t := range tasks {
		if t.IsOpen() {
			open = append(open, t)
		}
	}

	now := uc.now().In(uc.loc)

	// Hours worked feed the context estimate only; a broken time-log query
	// must not block the suggestion.
	hoursWorked, err := uc.repo.GetHoursLoggedToday(ctx, sc.UserID, now)
	if err != nil {
		uc.l.Warnf(ctx, "suggestion.usecase.GetSuggestion.GetHoursLoggedToday: %v", err)
		hoursWorked = 0
	}

	sctx := uc.buildContext(now, hoursWorked, input)

	if len(open) == 0 {
		return suggestion.GetSuggestionOutput{
			Type:    suggestion.OutputTypeNoTasks,
			Message: pickNoTaskMessage(uc.picker),
			Context: contextSummary(sctx, 0),
			Source:  suggestion.SourceFallback,
		}, nil
	}

	// History is best-effort: failures degrade to "no recency information".
	if err := uc.repo.PruneHistory(ctx, sc.UserID, uc.cfg.RetentionWindow); err != nil {
		uc.l.Warnf(ctx, "suggestion.usecase.GetSuggestion.PruneHistory: %v", err)
	}
	recentIDs, err := uc.repo.RecentTaskIDs(ctx, sc.UserID, uc.cfg.LookbackWindow)
	if err != nil {
		uc.l.Warnf(ctx, "suggestion.usecase.GetSuggestion.RecentTaskIDs: %v", err)
		recentIDs = nil
	}

	recentSet := make(map[string]struct{}, len(recentIDs))
	for _, id := range recentIDs {
		recentSet[id] = struct{}{}
	}

	scored := scoreTasks(open, sctx, recentSet, now, uc.cfg.Weights)
	comp := uc.compose(scored, sctx, recentIDs)

	primary := uc.buildPrimary(comp.primary, sctx)
	alternatives := comp.alternatives
	source := suggestion.SourceFallback

	if answer, ok := uc.tryOracle(ctx, sc, sctx, scored); ok {
		if st, found := findScored(scored, answer.TaskID); found {
			primary = suggestion.Primary{
				Task:               st.Task,
				Score:              st.Score,
				Breakdown:          st.Breakdown,
				Rationale:          answer.Rationale,
				Action:             answer.Action,
				EstimatedMinutes:   answer.EstimatedMinutes,
				SuccessProbability: answer.SuccessProbability,
			}
			alternatives = uc.rebuildAlternatives(scored, sctx, st.Task.ID)
			source = suggestion.SourceAI
		}
	}

	suggestionID := uuid.NewString()
	if err := uc.repo.RecordHistory(ctx, repository.RecordHistoryOptions{
		UserID:       sc.UserID,
		TaskID:       primary.Task.ID,
		SuggestionID: suggestionID,
		SuggestedAt:  now,
	}); err != nil {
		uc.l.Warnf(ctx, "suggestion.usecase.GetSuggestion.RecordHistory: %v", err)
	}

	out := suggestion.GetSuggestionOutput{
		Type:         suggestion.OutputTypeSuggestion,
		SuggestionID: suggestionID,
		Primary:      &primary,
		Alternatives: alternatives,
		Motivation:   pickMotivation(sctx, uc.picker),
		Context:      contextSummary(sctx, len(open)),
		Source:       source,
	}
	if sctx.HoursWorkedToday > longDayHours {
		out.Warning = warningLongDay
	}
	return out, nil
}

// buildPrimary fills the explanation fields for a deterministic pick.
func (uc *implUseCase) buildPrimary(st suggestion.ScoredTask, sctx model.SuggestionContext) suggestion.Primary {
	return suggestion.Primary{
		Task:               st.Task,
		Score:              st.Score,
		Breakdown:          st.Breakdown,
		Rationale:          buildRationale(st.Task.Title, st.Categories),
		Action:             buildAction(st.Task, st.Categories, sctx.FocusMinutes),
		EstimatedMinutes:   estimateMinutes(st.Task, sctx.FocusMinutes),
		SuccessProbability: successProbability(st, sctx),
	}
}

// rebuildAlternatives recomposes the alternative slots after the oracle
// changed the primary, so the new primary never appears twice.
func (uc *implUseCase) rebuildAlternatives(
	scored []suggestion.ScoredTask,
	sctx model.SuggestionContext,
	primaryID string,
) []suggestion.Alternative {
	used := map[string]struct{}{primaryID: {}}
	alts := uc.selectAlternatives(scored, sctx, used)

	for _, st := range scored {
		if len(alts)+1 >= minSuggestions || len(alts) >= maxAlternatives {
			break
		}
		if _, ok := used[st.Task.ID]; ok {
			continue
		}
		used[st.Task.ID] = struct{}{}
		alts = append(alts, suggestion.Alternative{
			Task:     st.Task,
			Category: suggestion.CategoryNextBest,
			Reason:   alternativeReason(suggestion.CategoryNextBest, st.Task),
		})
	}
	return alts
}

// estimateMinutes bounds the session estimate by the attention budget: a task
// with little work left gets its true remainder, everything else gets the
// focus window.
func estimateMinutes(t model.Task, focusMinutes int) int {
	if remaining, ok := t.RemainingHours(); ok {
		minutes := int(remaining * 60)
		if minutes < 5 {
			minutes = 5
		}
		if minutes < focusMinutes {
			return minutes
		}
	}
	return focusMinutes
}

// successProbability is a coarse confidence heuristic, clamped to [0.35, 0.95]
// so the UI never shows certainty or hopelessness.
func successProbability(st suggestion.ScoredTask, sctx model.SuggestionContext) float64 {
	p := 0.5
	p += st.Task.CompletionFraction() * 0.25
	if requiredEnergy(st.Task) == sctx.Energy {
		p += 0.1
	}
	if hasCategory(st.Categories, suggestion.CategoryQuickWin) {
		p += 0.1
	}
	if sctx.HoursWorkedToday > longDayHours {
		p -= 0.1
	}

	if p < 0.35 {
		p = 0.35
	}
	if p > 0.95 {
		p = 0.95
	}
	return p
}

func findScored(scored []suggestion.ScoredTask, taskID string) (suggestion.ScoredTask, bool) {
	for _, st := range scored {
		if st.Task.ID == taskID {
			return st, true
		}
	}
	return suggestion.ScoredTask{}, false
}

func contextSummary(sctx model.SuggestionContext, openCount int) suggestion.ContextSummary {
	return suggestion.ContextSummary{
		Energy:           sctx.Energy,
		Mood:             sctx.Mood,
		FocusMinutes:     sctx.FocusMinutes,
		HoursWorkedToday: sctx.HoursWorkedToday,
		OpenTaskCount:    openCount,
	}
}

func validateInput(input suggestion.GetSuggestionInput) error {
	if input.Energy != "" {
		if _, ok := parseEnergy(input.Energy); !ok {
			return suggestion.ErrInvalidEnergy
		}
	}
	if input.Mood != "" {
		if _, ok := parseMood(input.Mood); !ok {
			return suggestion.ErrInvalidMood
		}
	}
	if input.Strategy != "" && input.Strategy != string(model.StrategyQuickWin) {
		return suggestion.ErrInvalidStrategy
	}
	if input.FocusMinutes < 0 {
		return suggestion.ErrInvalidFocusTime
	}
	return nil
}
