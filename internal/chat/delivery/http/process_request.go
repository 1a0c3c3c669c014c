package http

import (
	"strings"

	pkgErrors "fulano-assistant/pkg/errors"

	"github.com/gin-gonic/gin"
)

// processChatReq binds the chat request body. Content validation belongs to the use case.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "%s: bind: %v", logPrefixChat, err)
		return req, pkgErrors.NewHTTPError(400, "invalid request body")
	}
	if req.ConversationID != nil {
		id := strings.TrimSpace(*req.ConversationID)
		req.ConversationID = &id
	}
	return req, nil
}

// processListMessagesReq reads the conversation id from the path.
func (h *handler) processListMessagesReq(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("conversation_id"))
	if id == "" {
		return "", pkgErrors.NewHTTPError(400, "conversation_id is required")
	}
	return id, nil
}
