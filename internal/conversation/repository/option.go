package repository

import "fulano-assistant/internal/model"

// AppendOptions holds the parameters for appending a message.
type AppendOptions struct {
	ConversationID string
	Sender         model.Sender
	Content        string
	HandledByLLM   bool
}
