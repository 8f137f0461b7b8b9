package postgre

import (
	"context"
	"time"

	"smart-focus-suggestion/internal/suggestion/repository"
)

// RecordHistory appends one suggestion history entry.
func (r *implRepository) RecordHistory(ctx context.Context, opt repository.RecordHistoryOptions) error {
	const query = `
		INSERT INTO suggestion_history (user_id, task_id, suggestion_id, suggested_at)
		VALUES ($1, $2, $3, $4)`

	if _, err := r.db.ExecContext(ctx, query, opt.UserID, opt.TaskID, opt.SuggestionID, opt.SuggestedAt); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("RecordHistory"), err)
		return repository.ErrFailedToInsert
	}
	return nil
}

// RecentTaskIDs returns the distinct task ids suggested to the user within the
// lookback window, most recent first.
func (r *implRepository) RecentTaskIDs(ctx context.Context, userID string, lookback time.Duration) ([]string, error) {
	const query = `
		SELECT task_id
		FROM suggestion_history
		WHERE user_id = $1 AND suggested_at >= $2
		ORDER BY suggested_at DESC`

	cutoff := time.Now().Add(-lookback)
	rows, err := r.db.QueryContext(ctx, query, userID, cutoff)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("RecentTaskIDs"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("RecentTaskIDs"), err)
			return nil, repository.ErrFailedToList
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("RecentTaskIDs"), err)
		return nil, repository.ErrFailedToList
	}
	return ids, nil
}

// PruneHistory deletes the user's entries older than the retention window.
func (r *implRepository) PruneHistory(ctx context.Context, userID string, retention time.Duration) error {
	const query = `DELETE FROM suggestion_history WHERE user_id = $1 AND suggested_at < $2`

	cutoff := time.Now().Add(-retention)
	if _, err := r.db.ExecContext(ctx, query, userID, cutoff); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("PruneHistory"), err)
		return repository.ErrFailedToDelete
	}
	return nil
}
