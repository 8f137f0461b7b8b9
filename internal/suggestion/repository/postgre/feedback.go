package postgre

import (
	"context"
	"database/sql"

	"smart-focus-suggestion/internal/suggestion/repository"
)

// RecordFeedback stores one feedback row for a delivered suggestion.
// Re-submitting feedback for the same suggestion overwrites the previous row.
func (r *implRepository) RecordFeedback(ctx context.Context, opt repository.RecordFeedbackOptions) error {
	const query = `
		INSERT INTO suggestion_feedback (suggestion_id, user_id, accepted, comment, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (suggestion_id)
		DO UPDATE SET accepted = EXCLUDED.accepted, comment = EXCLUDED.comment, created_at = NOW()`

	if _, err := r.db.ExecContext(ctx, query, opt.SuggestionID, opt.UserID, opt.Accepted, opt.Comment); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("RecordFeedback"), err)
		return repository.ErrFailedToInsert
	}
	return nil
}

// GetSuggestionOwner looks up which user a suggestion id was issued to.
// Returns empty string when the id is unknown — do NOT return error for not-found.
func (r *implRepository) GetSuggestionOwner(ctx context.Context, suggestionID string) (string, error) {
	const query = `SELECT user_id FROM suggestion_history WHERE suggestion_id = $1 LIMIT 1`

	var userID string
	err := r.db.QueryRowContext(ctx, query, suggestionID).Scan(&userID)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetSuggestionOwner"), err)
		return "", repository.ErrFailedToGet
	}
	return userID, nil
}
