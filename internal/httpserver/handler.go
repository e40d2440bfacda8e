package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	if srv.rateLimiter != nil {
		api.Use(srv.rateLimiter.Handler())
	}
	api.POST("/chat", srv.chatHandler.HandleChat)
	srv.l.Infof(ctx, "Chat route registered at POST /api/v1/chat")

	if srv.feed != nil {
		srv.gin.GET("/ws/trace", func(c *gin.Context) {
			srv.feed.Handle(c.Writer, c.Request)
		})
		srv.l.Infof(ctx, "Live trace feed registered at GET /ws/trace")
	} else {
		srv.l.Infof(ctx, "Live feed not configured, skipping trace websocket route")
	}
}
