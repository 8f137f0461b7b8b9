package postgre

import (
	"context"
	"database/sql"
	"time"

	"smart-focus-suggestion/internal/suggestion/repository"
)

// GetHoursLoggedToday sums time-log hours dated today (in the given now's
// location) for the user. No rows → 0.
func (r *implRepository) GetHoursLoggedToday(ctx context.Context, userID string, now time.Time) (float64, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	const query = `
		SELECT COALESCE(SUM(hours), 0)
		FROM time_logs
		WHERE user_id = $1 AND logged_at >= $2 AND logged_at < $3`

	var hours float64
	err := r.db.QueryRowContext(ctx, query, userID, dayStart, dayEnd).Scan(&hours)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetHoursLoggedToday"), err)
		return 0, repository.ErrFailedToGet
	}
	return hours, nil
}
