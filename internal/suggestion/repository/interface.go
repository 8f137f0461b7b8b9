package repository

import (
	"context"
	"time"

	"smart-focus-suggestion/internal/model"
)

// Repository is the composed interface for the suggestion domain data store.
type Repository interface {
	TaskRepository
	TimeLogRepository
	HistoryRepository
	FeedbackRepository
}

// TaskRepository reads tasks owned by the CRUD layer. The suggestion core
// never writes through this interface.
type TaskRepository interface {
	// GetOpenTasks returns all tasks for the user whose status is not done,
	// in a stable order.
	GetOpenTasks(ctx context.Context, userID string) ([]model.Task, error)
}

// TimeLogRepository reads logged work time.
type TimeLogRepository interface {
	// GetHoursLoggedToday sums time-log hours dated today for the user.
	GetHoursLoggedToday(ctx context.Context, userID string, now time.Time) (float64, error)
}

// HistoryRepository stores which task was suggested to whom and when.
// History is an optimization: callers swallow its errors.
type HistoryRepository interface {
	RecordHistory(ctx context.Context, opt RecordHistoryOptions) error
	RecentTaskIDs(ctx context.Context, userID string, lookback time.Duration) ([]string, error)
	PruneHistory(ctx context.Context, userID string, retention time.Duration) error
}

// FeedbackRepository stores user reactions to delivered suggestions.
type FeedbackRepository interface {
	RecordFeedback(ctx context.Context, opt RecordFeedbackOptions) error
	// GetSuggestionOwner returns the user a suggestion id was issued to, or
	// empty string when the id is unknown.
	GetSuggestionOwner(ctx context.Context, suggestionID string) (string, error)
}
