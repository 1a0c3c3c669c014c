package dispatch

import "errors"

var (
	ErrUnknownLabel    = errors.New("no local handler for intent")
	ErrDuplicateLabel  = errors.New("intent has more than one local handler")
	ErrNoResponses     = errors.New("canned handler has no responses")
	ErrMissingRegistry = errors.New("computation handlers need a tool registry")
)
