package gemini

import (
	"errors"
	"fmt"
)

var (
	ErrMissingAPIKey = errors.New("gemini: API key is required")
	ErrPromptBlocked = errors.New("gemini: prompt blocked")
)

// APIError is a non-200 answer from the API. Status is the google.rpc code name, e.g. RESOURCE_EXHAUSTED.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("gemini: API error %d %s: %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("gemini: API error %d: %s", e.StatusCode, e.Message)
}

// Temporary reports whether retrying the same request may succeed.
func (e *APIError) Temporary() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}
