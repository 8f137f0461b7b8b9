package postgre

import (
	"context"

	"smart-focus-suggestion/internal/model"
	"smart-focus-suggestion/internal/suggestion/repository"
)

// GetOpenTasks returns every non-done task for the user, oldest first so the
// scorer's stable ordering is reproducible across calls.
func (r *implRepository) GetOpenTasks(ctx context.Context, userID string) ([]model.Task, error) {
	const query = `
		SELECT id, title, project_id, status, priority, due_at, estimated_hours, spent_hours
		FROM tasks
		WHERE user_id = $1 AND status <> 'done'
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOpenTasks"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		var priority *string
		if err := rows.Scan(
			&t.ID, &t.Title, &t.ProjectID, &t.Status, &priority,
			&t.DueAt, &t.EstimatedHours, &t.SpentHours,
		); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("GetOpenTasks"), err)
			return nil, repository.ErrFailedToList
		}
		if priority != nil {
			p := model.TaskPriority(*priority)
			t.Priority = &p
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("GetOpenTasks"), err)
		return nil, repository.ErrFailedToList
	}
	return tasks, nil
}
