package test

import (
	"net/http"

	"fulano-assistant/internal/chat"
	pkgLog "fulano-assistant/pkg/log"

	"github.com/gin-gonic/gin"
)

type handler struct {
	l  pkgLog.Logger
	uc chat.UseCase
}

// HandleClassify shows how a message would be routed without answering it
// @Summary Classify a message
// @Description Run the intent classifier and routing decision on a message. Nothing is stored.
// @Tags test
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "Message to classify"
// @Success 200 {object} ClassifyResponse
// @Failure 400 {object} ClassifyResponse
// @Router /test/classify [post]
func (h *handler) HandleClassify(c *gin.Context) {
	ctx := c.Request.Context()

	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ClassifyResponse{Success: false, Error: "invalid request"})
		return
	}

	out, err := h.uc.Classify(ctx, req.Text)
	if err != nil {
		// Classify only fails on input validation.
		c.JSON(http.StatusBadRequest, ClassifyResponse{Success: false, Text: req.Text, Error: err.Error()})
		return
	}

	h.l.Infof(ctx, "internal.test.HandleClassify: text=%q intent=%s confidence=%.3f route=%s",
		req.Text, out.Intent, out.Confidence, out.Route)

	c.JSON(http.StatusOK, ClassifyResponse{
		Success:    true,
		Text:       req.Text,
		Intent:     out.Intent,
		Confidence: out.Confidence,
		Route:      string(out.Route),
	})
}

// HandleHealthCheck returns the health status of test endpoints
// @Summary Test health check
// @Description Check if test endpoints are available
// @Tags test
// @Produce json
// @Success 200 {object} HealthCheckResponse
// @Router /test/health [get]
func (h *handler) HandleHealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthCheckResponse{
		Status:  "ok",
		Message: "Test endpoints are available",
	})
}
