package router

import (
	"github.com/gin-gonic/gin"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nissynicolas/sdlc-jira-extractor-agent/internal/http/handler"
	"github.com/nissynicolas/sdlc-jira-extractor-agent/internal/service"
)

type RouterConfig struct {
	Dispatcher service.Dispatcher
	SSE        *server.SSEServer
}

func SetupRoutes(router *gin.Engine, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	actionHandler := handler.NewActionHandler(cfg.Dispatcher)

	v1 := router.Group("/api/v1")
	{
		ActionRouter(v1.Group("/actions"), actionHandler)
	}

	// MCP over SSE: the transport serves both the event stream and the
	// client-to-server message endpoint.
	if cfg.SSE != nil {
		router.GET("/sse", gin.WrapH(cfg.SSE))
		router.POST("/message", gin.WrapH(cfg.SSE))
	}
}
