// Package server wires the responder, the access log middleware and the HTTP
// runnable together under a go-supervisor supervisor.
package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/liatrio/liatrio-demo-api/internal/config"
	"github.com/liatrio/liatrio-demo-api/internal/server/httpserver"
	"github.com/liatrio/liatrio-demo-api/internal/server/middleware/headers"
	"github.com/liatrio/liatrio-demo-api/internal/server/middleware/logger"
	"github.com/liatrio/liatrio-demo-api/internal/server/responder"
	supervisorHTTP "github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/robbyt/go-supervisor/supervisor"
)

// serverID names the single HTTP runnable in logs.
const serverID = "api"

// quietPaths are probe endpoints logged at debug on success.
var quietPaths = []string{"/health"}

// Run starts the API with cfg and blocks until ctx is cancelled, a shutdown
// signal arrives, or the HTTP server fails.
func Run(ctx context.Context, log *slog.Logger, cfg config.Config) error {
	logHandler := log.Handler()

	log.Info(fmt.Sprintf("Starting Liatrio Demo API on %s:%d", cfg.Host, cfg.Port))
	log.Info("Environment: " + cfg.Environment)

	httpServer, err := newHTTPServer(logHandler, cfg)
	if err != nil {
		return err
	}

	super, err := supervisor.New(
		supervisor.WithContext(ctx),
		supervisor.WithLogHandler(logHandler),
		supervisor.WithRunnables(httpServer),
	)
	if err != nil {
		return fmt.Errorf("failed to create supervisor: %w", err)
	}
	if err := super.Run(); err != nil {
		return fmt.Errorf("failed to run server: %w", err)
	}

	log.Info("Server shutdown complete")
	return nil
}

func newHTTPServer(logHandler slog.Handler, cfg config.Config) (*httpserver.HTTPServer, error) {
	api := responder.New(cfg, responder.WithLogHandler(logHandler))

	accessLog := logger.New(
		logger.WithLogHandler(logHandler),
		logger.WithQuietPaths(quietPaths...),
	)

	middlewares := []supervisorHTTP.HandlerFunc{accessLog.Middleware()}
	if len(cfg.HTTP.ResponseHeaders) > 0 {
		responseHeaders, err := headers.New(cfg.HTTP.ResponseHeaders)
		if err != nil {
			return nil, fmt.Errorf("failed to create headers middleware: %w", err)
		}
		middlewares = append(middlewares, responseHeaders.Middleware())
	}

	routes, err := api.HTTPRoutes(middlewares...)
	if err != nil {
		return nil, err
	}

	srv, err := httpserver.New(
		serverID,
		cfg.Address(),
		routes,
		httpserver.TimeoutsFromConfig(cfg.HTTP),
		slog.New(logHandler).WithGroup("httpserver").With("id", serverID),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server: %w", err)
	}
	return srv, nil
}
