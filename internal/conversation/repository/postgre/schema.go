package postgre

import (
	"context"

	"fulano-assistant/internal/conversation/repository"
)

// seq gives a strict per-insert order even when created_at collides.
const schema = `
CREATE TABLE IF NOT EXISTS conversations (
	id         TEXT PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS messages (
	seq             BIGSERIAL PRIMARY KEY,
	id              TEXT NOT NULL UNIQUE,
	conversation_id TEXT NOT NULL REFERENCES conversations(id) ON DELETE CASCADE,
	sender          TEXT NOT NULL CHECK (sender IN ('user', 'bot')),
	content         TEXT NOT NULL,
	handled_by_llm  BOOLEAN NOT NULL DEFAULT FALSE,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_messages_conversation_seq ON messages (conversation_id, seq);`

// Migrate creates the tables when missing.
func (r *implRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Migrate"), err)
		return repository.ErrFailedToMigrate
	}
	return nil
}
