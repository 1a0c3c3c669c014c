package usecase

import (
	"context"
	"fmt"
	"strings"

	"fulano-assistant/internal/chat"
)

// ListMessages returns the stored messages of a conversation. Unknown ids yield an empty list.
func (uc *implUseCase) ListMessages(ctx context.Context, conversationID string) (chat.ListMessagesOutput, error) {
	id := strings.TrimSpace(conversationID)
	if id == "" {
		return chat.ListMessagesOutput{}, chat.ErrMissingID
	}

	msgs, err := uc.store.ListMessages(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "%s: %v", LogPrefixListMessages, err)
		return chat.ListMessagesOutput{}, fmt.Errorf("%w: %v", chat.ErrPersistence, err)
	}
	return chat.ListMessagesOutput{ConversationID: id, Messages: msgs}, nil
}
