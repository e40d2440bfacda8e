package http

import (
	"github.com/gin-gonic/gin"

	"cloud-advisor-chat/internal/model"
	"cloud-advisor-chat/internal/orchestrator"
	pkgLog "cloud-advisor-chat/pkg/log"
	pkgResponse "cloud-advisor-chat/pkg/response"
)

type handler struct {
	l  pkgLog.Logger
	uc orchestrator.UseCase
}

type chatRequest struct {
	Message   string `json:"message" binding:"required"`
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
}

// HandleChat runs one chat request through the advisory pipeline.
// @Summary Chat
// @Description Answer a cloud cost advisory question
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body chatRequest true "Chat request"
// @Success 200 {object} response.Resp "Response envelope"
// @Router /api/v1/chat [post]
func (h *handler) HandleChat(c *gin.Context) {
	ctx := c.Request.Context()

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "chat handler: failed to parse request: %v", err)
		pkgResponse.Error(c, err)
		return
	}

	sc := model.Scope{
		UserID:    req.UserID,
		SessionID: req.SessionID,
	}

	// Handle never returns an error; failures arrive inside the envelope.
	out := h.uc.Handle(ctx, sc, orchestrator.ChatInput{RequestText: req.Message})
	pkgResponse.OK(c, out)
}
