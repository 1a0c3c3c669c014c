package postgre

import (
	"database/sql"
	"fmt"

	"fulano-assistant/internal/conversation/repository"
	"fulano-assistant/pkg/log"

	"github.com/google/uuid"
)

type implRepository struct {
	db    *sql.DB
	l     log.Logger
	newID func() string
}

// New creates a new PostgreSQL-backed conversation Store.
func New(db *sql.DB, l log.Logger) repository.Store {
	if db == nil {
		panic("conversation/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l, newID: uuid.NewString}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("conversation/repository/postgre.%s", method)
}
