package suggestion

import (
	"context"

	"smart-focus-suggestion/internal/model"
)

// UseCase defines the business logic interface for the suggestion domain.
type UseCase interface {
	// GetSuggestion picks the single best task to work on right now for the
	// scoped user, plus ranked alternatives. It only errors when the task
	// list itself cannot be read; every other failure degrades internally.
	GetSuggestion(ctx context.Context, sc model.Scope, input GetSuggestionInput) (GetSuggestionOutput, error)

	// RecordFeedback stores whether a delivered suggestion was accepted.
	RecordFeedback(ctx context.Context, sc model.Scope, input RecordFeedbackInput) error
}
