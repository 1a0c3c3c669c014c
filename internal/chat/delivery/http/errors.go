package http

import (
	"errors"

	"fulano-assistant/internal/chat"
	pkgErrors "fulano-assistant/pkg/errors"
)

const (
	logPrefixChat         = "internal.chat.delivery.http.Chat"
	logPrefixListMessages = "internal.chat.delivery.http.ListMessages"
)

// mapError translates use case errors into HTTP errors from pkg/errors.
// Unknown errors become a generic 500; raw messages are never sent to clients.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrMessageTooLong):
		return pkgErrors.NewHTTPError(400, "message is too long")
	case errors.Is(err, chat.ErrMissingID):
		return pkgErrors.NewHTTPError(400, "conversation_id is required")
	case errors.Is(err, chat.ErrConversationBusy):
		return pkgErrors.NewHTTPError(409, "conversation is busy, retry shortly")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
