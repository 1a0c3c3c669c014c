package repository

import (
	"context"

	"fulano-assistant/internal/model"
)

// Store is the durable conversation store.
type Store interface {
	// GetOrCreate returns the conversation with id. An empty or unknown id creates a new conversation with a fresh id.
	GetOrCreate(ctx context.Context, id string) (model.Conversation, error)

	// Append adds a message to the end of a conversation.
	Append(ctx context.Context, opt AppendOptions) (model.Message, error)

	// ListMessages returns the messages of a conversation in creation order.
	ListMessages(ctx context.Context, conversationID string) ([]model.Message, error)

	// Migrate creates the schema when missing.
	Migrate(ctx context.Context) error
}
