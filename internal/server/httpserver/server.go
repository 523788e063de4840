// Package httpserver runs the service's routes on a go-supervisor HTTP runner.
package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/liatrio/liatrio-demo-api/internal/config"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/robbyt/go-supervisor/supervisor"
)

var (
	_ supervisor.Runnable  = (*HTTPServer)(nil)
	_ supervisor.Stateable = (*HTTPServer)(nil)
	_ supervisor.Readiness = (*HTTPServer)(nil)
)

// Timeouts configures the underlying http.Server. Non-positive values keep
// the go-supervisor defaults.
type Timeouts struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	DrainTimeout time.Duration
}

// TimeoutsFromConfig copies the HTTP section of the service configuration.
func TimeoutsFromConfig(h config.HTTP) Timeouts {
	return Timeouts{
		ReadTimeout:  h.ReadTimeout,
		WriteTimeout: h.WriteTimeout,
		IdleTimeout:  h.IdleTimeout,
		DrainTimeout: h.DrainTimeout,
	}
}

func (t Timeouts) options() []httpserver.ConfigOption {
	options := []httpserver.ConfigOption{httpserver.WithServerCreator(createServer)}
	if t.ReadTimeout > 0 {
		options = append(options, httpserver.WithReadTimeout(t.ReadTimeout))
	}
	if t.WriteTimeout > 0 {
		options = append(options, httpserver.WithWriteTimeout(t.WriteTimeout))
	}
	if t.IdleTimeout > 0 {
		options = append(options, httpserver.WithIdleTimeout(t.IdleTimeout))
	}
	if t.DrainTimeout > 0 {
		options = append(options, httpserver.WithDrainTimeout(t.DrainTimeout))
	}
	return options
}

// createServer hands a lone "/" route to the http.Server directly. A ServeMux
// would answer unclean paths such as "/x/../api" with a redirect before the
// route could map them.
func createServer(addr string, handler http.Handler, cfg *httpserver.Config) httpserver.HttpServer {
	if len(cfg.Routes) == 1 && cfg.Routes[0].Path == "/" {
		handler = &cfg.Routes[0]
	}
	return httpserver.DefaultServerCreator(addr, handler, cfg)
}

// runner is the subset of httpserver.Runner used here
type runner interface {
	Run(ctx context.Context) error
	Stop()
	GetState() string
	IsReady() bool
	GetStateChan(ctx context.Context) <-chan string
}

// HTTPServer wraps the go-supervisor httpserver.Runner. Routes and address
// are fixed for the lifetime of the value; there is no reload path.
type HTTPServer struct {
	id       string
	address  string
	routes   []httpserver.Route
	timeouts Timeouts
	logger   *slog.Logger
	server   runner
}

// New creates an HTTP server for the given routes.
func New(
	id, address string,
	routes []httpserver.Route,
	timeouts Timeouts,
	logger *slog.Logger,
) (*HTTPServer, error) {
	if len(routes) == 0 {
		return nil, fmt.Errorf("HTTP server %s: no routes", id)
	}
	if logger == nil {
		logger = slog.Default().WithGroup("httpserver").With("id", id)
	}

	s := &HTTPServer{
		id:       id,
		address:  address,
		routes:   routes,
		timeouts: timeouts,
		logger:   logger,
	}

	r, err := httpserver.NewRunner(httpserver.WithConfigCallback(s.buildConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server runner: %w", err)
	}
	s.server = r

	return s, nil
}

func (s *HTTPServer) buildConfig() (*httpserver.Config, error) {
	cfg, err := httpserver.NewConfig(s.address, s.routes, s.timeouts.options()...)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server config: %w", err)
	}
	return cfg, nil
}

// String returns a unique identifier for this server
func (s *HTTPServer) String() string {
	return fmt.Sprintf("HTTPServer[%s]", s.id)
}

// Run starts the HTTP server and blocks until ctx is done or it fails.
func (s *HTTPServer) Run(ctx context.Context) error {
	s.logger.Info("Starting HTTP server", "address", s.address, "routes", len(s.routes))
	return s.server.Run(ctx)
}

// Stop stops the HTTP server
func (s *HTTPServer) Stop() {
	s.logger.Info("Stopping HTTP server", "address", s.address)
	s.server.Stop()
}

// GetState returns the current state of the server
func (s *HTTPServer) GetState() string {
	if s.server == nil {
		return "unknown"
	}
	return s.server.GetState()
}

// IsReady reports whether the server has finished starting up
func (s *HTTPServer) IsReady() bool {
	if s.server == nil {
		return false
	}
	return s.server.IsReady()
}

// GetStateChan returns a channel that emits state changes
func (s *HTTPServer) GetStateChan(ctx context.Context) <-chan string {
	if s.server == nil {
		ch := make(chan string)
		go func() {
			<-ctx.Done()
			close(ch)
		}()
		return ch
	}
	return s.server.GetStateChan(ctx)
}

// GetID returns the ID of this HTTP server
func (s *HTTPServer) GetID() string {
	return s.id
}

// GetAddress returns the address this server listens on
func (s *HTTPServer) GetAddress() string {
	return s.address
}
