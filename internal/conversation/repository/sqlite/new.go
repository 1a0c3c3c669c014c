package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"fulano-assistant/internal/conversation/repository"
	"fulano-assistant/pkg/log"

	"github.com/google/uuid"
)

type implRepository struct {
	db    *sql.DB
	l     log.Logger
	newID func() string
	now   func() time.Time
}

// New creates a new SQLite-backed conversation Store.
func New(db *sql.DB, l log.Logger) repository.Store {
	if db == nil {
		panic("conversation/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l, newID: uuid.NewString, now: time.Now}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("conversation/repository/sqlite.%s", method)
}

// timestamps are stored as RFC 3339 text in UTC
const timeLayout = time.RFC3339Nano

func (r *implRepository) timestamp() (time.Time, string) {
	t := r.now().UTC()
	return t, t.Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}
