package orchestrator

import "errors"

var (
	// ErrToolCallLimit means the LLM asked for more tools than one user turn allows.
	ErrToolCallLimit = errors.New("tool call limit exceeded")

	// ErrEmptyReply means the LLM ended the turn without text.
	ErrEmptyReply = errors.New("empty LLM reply")
)
