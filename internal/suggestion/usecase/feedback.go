package usecase

import (
	"context"

	"smart-focus-suggestion/internal/model"
	"smart-focus-suggestion/internal/suggestion"
	"smart-focus-suggestion/internal/suggestion/repository"
)

// RecordFeedback stores the user's reaction to a prior suggestion. The
// suggestion must exist and belong to the scoped user.
func (uc *implUseCase) RecordFeedback(ctx context.Context, sc model.Scope, input suggestion.RecordFeedbackInput) error {
	owner, err := uc.repo.GetSuggestionOwner(ctx, input.SuggestionID)
	if err != nil {
		uc.l.Errorf(ctx, "suggestion.usecase.RecordFeedback.GetSuggestionOwner: %v", err)
		return err
	}
	if owner == "" || owner != sc.UserID {
		return suggestion.ErrSuggestionNotFound
	}

	if err := uc.repo.RecordFeedback(ctx, repository.RecordFeedbackOptions{
		SuggestionID: input.SuggestionID,
		UserID:       sc.UserID,
		Accepted:     input.Accepted,
		Comment:      input.Comment,
	}); err != nil {
		uc.l.Errorf(ctx, "suggestion.usecase.RecordFeedback.RecordFeedback: %v", err)
		return err
	}
	return nil
}
