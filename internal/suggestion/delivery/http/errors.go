package http

import (
	"errors"

	"smart-focus-suggestion/internal/suggestion"
	pkgErrors "smart-focus-suggestion/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, suggestion.ErrInvalidEnergy),
		errors.Is(err, suggestion.ErrInvalidMood),
		errors.Is(err, suggestion.ErrInvalidStrategy),
		errors.Is(err, suggestion.ErrInvalidFocusTime):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, suggestion.ErrSuggestionNotFound):
		return pkgErrors.NewHTTPError(404, "suggestion not found")
	case errors.Is(err, suggestion.ErrTaskListUnavailable):
		return pkgErrors.NewHTTPError(503, "task list temporarily unavailable")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
