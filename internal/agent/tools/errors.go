package tools

import (
	"errors"
	"fmt"
)

var (
	ErrMissingAPIKey     = errors.New("missing API key")
	ErrEmptyExpression   = errors.New("no arithmetic expression found")
	ErrNonFiniteResult   = errors.New("result is not a finite number")
	ErrNotFound          = errors.New("not found")
	ErrUnsupportedRate   = errors.New("exchange rate not available")
	ErrEmptyTranslation  = errors.New("empty translation")
	ErrUnknownTimezone   = errors.New("unknown timezone")
	ErrTranslateDisabled = errors.New("translation is not configured")
)

// UpstreamError is a non-2xx answer from an external API.
type UpstreamError struct {
	Service string
	Status  int
	Body    string
}

func (e *UpstreamError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s returned status %d", e.Service, e.Status)
	}
	return fmt.Sprintf("%s returned status %d: %s", e.Service, e.Status, e.Body)
}
