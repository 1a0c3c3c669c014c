package chat

import "errors"

var (
	ErrEmptyMessage     = errors.New("message is empty")
	ErrMessageTooLong   = errors.New("message is too long")
	ErrMissingID        = errors.New("conversation id is required")
	ErrPersistence      = errors.New("conversation store unavailable")
	ErrConversationBusy = errors.New("conversation is busy")
)
