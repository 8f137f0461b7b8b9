package errors

import "fmt"

// HTTPError is a transport-level error carrying an HTTP status code.
// Delivery layers translate domain errors into HTTPError via mapError.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// Common HTTP errors.
var (
	ErrBadRequest          = NewHTTPError(400, "bad request")
	ErrUnauthorized        = NewHTTPError(401, "unauthorized")
	ErrNotFound            = NewHTTPError(404, "not found")
	ErrTooManyRequests     = NewHTTPError(429, "too many requests")
	ErrInternalServerError = NewHTTPError(500, "internal server error")
)
