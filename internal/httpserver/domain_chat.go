package httpserver

import (
	"context"

	chatHTTP "fulano-assistant/internal/chat/delivery/http"

	"github.com/gin-gonic/gin"
)

// setupChatDomain registers POST /chat and GET /chat/:conversation_id/messages.
// The use case is built in main, where its collaborators are wired.
func (srv HTTPServer) setupChatDomain(ctx context.Context, rg *gin.RouterGroup) error {
	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(rg, h, srv.mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
