package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Chat answers one user utterance and persists both sides of the turn.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)

	// ListMessages returns the stored messages of a conversation in creation order.
	ListMessages(ctx context.Context, conversationID string) (ListMessagesOutput, error)

	// Classify reports how a message would be routed, without storing or answering it.
	Classify(ctx context.Context, message string) (ClassifyOutput, error)
}
