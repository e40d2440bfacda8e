package http

import (
	"github.com/gin-gonic/gin"

	"cloud-advisor-chat/internal/orchestrator"
	pkgLog "cloud-advisor-chat/pkg/log"
)

// Handler is the interface for the chat HTTP delivery handler.
type Handler interface {
	HandleChat(c *gin.Context)
}

// New creates a new chat delivery handler.
func New(l pkgLog.Logger, uc orchestrator.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
