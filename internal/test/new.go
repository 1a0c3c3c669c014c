package test

import (
	"fulano-assistant/internal/chat"
	pkgLog "fulano-assistant/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler is the interface for the test handler
type Handler interface {
	HandleClassify(c *gin.Context)
	HandleHealthCheck(c *gin.Context)
}

// New creates a new test handler
func New(l pkgLog.Logger, uc chat.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

// RegisterRoutes mounts the test endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/classify", h.HandleClassify)
	rg.GET("/health", h.HandleHealthCheck)
}
