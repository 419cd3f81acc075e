package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	mcpgo "github.com/mark3labs/mcp-go/server"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/nissynicolas/sdlc-jira-extractor-agent/common/logger"
	"github.com/nissynicolas/sdlc-jira-extractor-agent/common/otel"
	"github.com/nissynicolas/sdlc-jira-extractor-agent/core/config"
	"github.com/nissynicolas/sdlc-jira-extractor-agent/internal/http/middleware"
	httprouter "github.com/nissynicolas/sdlc-jira-extractor-agent/internal/http/router"
	"github.com/nissynicolas/sdlc-jira-extractor-agent/internal/jira"
	"github.com/nissynicolas/sdlc-jira-extractor-agent/internal/mcpserver"
	"github.com/nissynicolas/sdlc-jira-extractor-agent/internal/service"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		// Can't use slog yet — OTel failed before logger setup
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	}

	slog.InfoContext(ctx, "jira extractor starting",
		"env", cfg.Env,
		"version", Version,
		"jira_server", cfg.Jira.ServerURL)

	jiraClient, err := jira.NewClient(cfg.Jira)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create jira client", "error", err)
		os.Exit(1)
	}

	dispatcher := service.NewDispatcher(jiraClient, cfg.Jira.AcceptanceCriteriaField)

	mcp := mcpserver.NewServer(dispatcher, Version)
	sse := mcpserver.NewSSEServer(mcp)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, dispatcher, sse)
	// No WriteTimeout: the SSE stream stays open for the client's lifetime.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func setupRouter(cfg config.Config, dispatcher service.Dispatcher, sse *mcpgo.SSEServer) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	httprouter.SetupRoutes(router, httprouter.RouterConfig{
		Dispatcher: dispatcher,
		SSE:        sse,
	})

	return router
}
