package usecase

import (
	"time"

	"fulano-assistant/internal/intent"
)

// Log prefixes
const (
	LogPrefixChat         = "internal.chat.usecase.Chat"
	LogPrefixDelegate     = "internal.chat.usecase.delegate"
	LogPrefixListMessages = "internal.chat.usecase.ListMessages"
)

// labelBlank tags blank turns in logs and metrics. It is not a corpus intent.
const labelBlank intent.Label = "blank"

// DefaultDelegateTimeout bounds the LLM path when no timeout is configured.
const DefaultDelegateTimeout = 60 * time.Second

// lockTimeoutMargin covers the store writes around a delegated turn.
const lockTimeoutMargin = 10 * time.Second
