package repository

import "time"

// RecordHistoryOptions holds parameters for appending a history entry.
type RecordHistoryOptions struct {
	UserID       string
	TaskID       string
	SuggestionID string
	SuggestedAt  time.Time
}

// RecordFeedbackOptions holds parameters for storing suggestion feedback.
type RecordFeedbackOptions struct {
	SuggestionID string
	UserID       string
	Accepted     bool
	Comment      string
}
