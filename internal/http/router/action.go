package router

import (
	"github.com/gin-gonic/gin"

	"github.com/nissynicolas/sdlc-jira-extractor-agent/internal/http/handler"
)

func ActionRouter(router *gin.RouterGroup, handler *handler.ActionHandler) {
	router.GET("", handler.List)
	router.POST("", handler.Dispatch)
}
