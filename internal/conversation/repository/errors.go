package repository

import "errors"

var (
	ErrFailedToInsert  = errors.New("failed to insert record")
	ErrFailedToGet     = errors.New("failed to get record")
	ErrFailedToList    = errors.New("failed to list records")
	ErrFailedToMigrate = errors.New("failed to migrate schema")
	ErrInvalidSender   = errors.New("invalid sender")
	ErrMissingID       = errors.New("conversation id is required")
)
