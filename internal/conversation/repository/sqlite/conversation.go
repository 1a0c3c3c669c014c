package sqlite

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
		var created string
		err := r.db.QueryRowContext(ctx, `SELECT created_at FROM conversations WHERE id = ?`, id).Scan(&created)
		if err == nil {
			createdAt, err := parseTime(created)
			if err != nil {
				r.l.Errorf(ctx, "%s parse: %v", r.dsn("GetOrCreate"), err)
				return model.Conversation{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
			}
			return model.Conversation{ID: id, CreatedAt: createdAt}, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			r.l.Errorf(ctx, "%s: %v", r.dsn("GetOrCreate"), err)
			return model.Conversation{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
		}
	}

	conv := model.Conversation{ID: r.newID()}
	var created string
	conv.CreatedAt, created = r.timestamp()
	if _, err := r.db.ExecContext(ctx, `INSERT INTO conversations (id, created_at) VALUES (?, ?)`, conv.ID, created); err != nil {
		r.l.Errorf(ctx, "%s insert: %v", r.dsn("GetOrCreate"), err)
		return model.Conversation{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}
	return conv, nil
}
