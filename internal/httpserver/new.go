package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"cloud-advisor-chat/internal/livefeed"
	"cloud-advisor-chat/internal/middleware"
	chatDelivery "cloud-advisor-chat/internal/orchestrator/delivery/http"
	"cloud-advisor-chat/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Chat domain
	chatHandler chatDelivery.Handler
	rateLimiter *middleware.RateLimiter

	// Live trace feed
	feed *livefeed.Hub
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	ChatHandler chatDelivery.Handler
	RateLimiter *middleware.RateLimiter
	Feed        *livefeed.Hub
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		chatHandler: cfg.ChatHandler,
		rateLimiter: cfg.RateLimiter,
		feed:        cfg.Feed,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatHandler == nil {
		return errors.New("chat handler is required")
	}
	return nil
}
