package suggestion

import "errors"

// Domain-specific errors for the suggestion package.
var (
	ErrTaskListUnavailable = errors.New("task list unavailable")
	ErrInvalidEnergy       = errors.New("invalid energy level")
	ErrInvalidMood         = errors.New("invalid mood")
	ErrInvalidStrategy     = errors.New("invalid strategy")
	ErrInvalidFocusTime    = errors.New("focus time must be positive")
	ErrSuggestionNotFound  = errors.New("suggestion not found")
)
