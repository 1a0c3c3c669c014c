package http

import (
	"net/http"

	"fulano-assistant/pkg/response"

	"github.com/gin-gonic/gin"
)

// Chat godoc
// @Summary     Send a message to Fulano
// @Description Classifies the message, answers it locally or through the LLM, and stores both sides of the turn.
// @Description A missing or unknown conversation_id starts a new conversation.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body     chatReq true "User message"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Conflict - conversation busy"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "%s: uc.Chat: %v", logPrefixChat, err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.JSON(http.StatusOK, h.newChatResp(output))
}

// ListMessages godoc
// @Summary     List conversation messages
// @Description Returns the stored messages of a conversation in creation order. Unknown ids yield an empty list.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       conversation_id path     string true "Conversation ID"
// @Success     200             {object} listMessagesResp
// @Failure     400             {object} response.Resp "Bad Request"
// @Failure     500             {object} response.Resp "Internal Server Error"
// @Router      /chat/{conversation_id}/messages [GET]
func (h *handler) ListMessages(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processListMessagesReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListMessages(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "%s: uc.ListMessages: %v", logPrefixListMessages, err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListMessagesResp(output))
}
