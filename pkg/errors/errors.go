package errors

import "fmt"

// HTTPError is an error that carries the status code and the message safe to show to clients.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Code, e.Message)
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

var (
	ErrBadRequest          = NewHTTPError(400, "bad request")
	ErrNotFound            = NewHTTPError(404, "not found")
	ErrTooManyRequests     = NewHTTPError(429, "too many requests")
	ErrInternalServerError = NewHTTPError(500, "internal server error")
)
