// Package locker serializes work on a single conversation.
package locker

import (
	"context"
	"errors"
)

// ErrLockTimeout is returned when the lock could not be taken before the context ended.
var ErrLockTimeout = errors.New("conversation lock not acquired")

// Locker hands out exclusive per-key locks. Unlock must be called exactly once.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
