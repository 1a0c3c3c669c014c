package sqlite

import (
	"context"
	"fmt"

	"fulano-assistant/internal/conversation/repository"
	"fulano-assistant/internal/model"
)

// Append inserts a message at the end of a conversation.
func (r *implRepository) Append(ctx context.Context, opt repository.AppendOptions) (model.Message, error) {
	if opt.ConversationID == "" {
		return model.Message{}, repository.ErrMissingID
	}
	if !opt.Sender.Valid() {
		return model.Message{}, fmt.Errorf("%w: %q", repository.ErrInvalidSender, opt.Sender)
	}

	msg := model.Message{
		ID:             r.newID(),
		ConversationID: opt.ConversationID,
		Sender:         opt.Sender,
		Content:        opt.Content,
		HandledByLLM:   opt.HandledByLLM,
	}
	var created string
	msg.CreatedAt, created = r.timestamp()

	const query = `
		INSERT INTO messages (id, conversation_id, sender, content, handled_by_llm, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		msg.ID, msg.ConversationID, string(msg.Sender), msg.Content, msg.HandledByLLM, created,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Append"), err)
		return model.Message{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}
	return msg, nil
}

// ListMessages returns the messages of a conversation in insertion order.
func (r *implRepository) ListMessages(ctx context.Context, conversationID string) ([]model.Message, error) {
	const query = `
		SELECT id, conversation_id, sender, content, handled_by_llm, created_at
		FROM messages
		WHERE conversation_id = ?
		ORDER BY seq ASC`

	rows, err := r.db.QueryContext(ctx, query, conversationID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMessages"), err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	defer rows.Close()

	messages := make([]model.Message, 0)
	for rows.Next() {
		var (
			msg     model.Message
			sender  string
			created string
		)
		if err := rows.Scan(&msg.ID, &msg.ConversationID, &sender, &msg.Content, &msg.HandledByLLM, &created); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListMessages"), err)
			return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
		}
		if msg.CreatedAt, err = parseTime(created); err != nil {
			return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
		}
		msg.Sender = model.Sender(sender)
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListMessages"), err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	return messages, nil
}
