package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nissynicolas/sdlc-jira-extractor-agent/internal/http/dto"
	"github.com/nissynicolas/sdlc-jira-extractor-agent/internal/service"
)

type ActionHandler struct {
	dispatcher service.Dispatcher
}

func NewActionHandler(dispatcher service.Dispatcher) *ActionHandler {
	return &ActionHandler{dispatcher: dispatcher}
}

// Dispatch runs one action. Per-request failures (unknown action, missing
// parameters, upstream rejection) come back as an error-status body with
// HTTP 200; only a malformed request body is a 400.
func (h *ActionHandler) Dispatch(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.dispatcher.Dispatch(ctx, req.Action, req.Parameters))
}

// List describes the supported actions and their parameter schemas.
func (h *ActionHandler) List(c *gin.Context) {
	defs := service.Definitions()
	out := make([]dto.ActionDefinition, 0, len(defs))
	for _, def := range defs {
		out = append(out, dto.ActionDefinition{
			Name:        def.Name,
			Description: def.Description,
			Parameters:  def.Schema,
		})
	}
	c.JSON(http.StatusOK, gin.H{"actions": out})
}
