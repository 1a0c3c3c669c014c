package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fulano-assistant/internal/conversation/repository"
	"fulano-assistant/internal/model"
)

// GetOrCreate returns the conversation with id, or inserts a new one with a fresh id.
func (r *implRepository) GetOrCreate(ctx context.Context, id string) (model.Conversation, error) {
	if id != "" {
		const query = `SELECT id, created_at FROM conversations WHERE id = $1`

		var conv model.Conversation
		err := r.db.QueryRowContext(ctx, query, id).Scan(&conv.ID, &conv.CreatedAt)
		if err == nil {
			return conv, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			r.l.Errorf(ctx, "%s: %v", r.dsn("GetOrCreate"), err)
			return model.Conversation{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
		}
	}

	const insert = `
		INSERT INTO conversations (id, created_at)
		VALUES ($1, NOW())
		RETURNING id, created_at`

	var conv model.Conversation
	if err := r.db.QueryRowContext(ctx, insert, r.newID()).Scan(&conv.ID, &conv.CreatedAt); err != nil {
		r.l.Errorf(ctx, "%s insert: %v", r.dsn("GetOrCreate"), err)
		return model.Conversation{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}
	return conv, nil
}
