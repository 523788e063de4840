package responder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/liatrio/liatrio-demo-api/internal/config"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

// Error kinds
const (
	NotFoundError        = "Not Found"
	NotFoundMessage      = "The requested endpoint does not exist"
	InternalFaultError   = "Internal Server Error"
	InternalFaultMessage = "An unexpected error occurred"
)

const contentTypeJSON = "application/json"

// Interface guard
var _ http.Handler = (*Responder)(nil)

// Responder maps the fixed routes to their response builders.
type Responder struct {
	cfg    config.Config
	now    func() time.Time
	logger *slog.Logger
	routes map[string]builder
}

// New creates a Responder for cfg. The configuration is copied; later
// changes to the caller's value are not observed.
func New(cfg config.Config, opts ...Option) *Responder {
	r := &Responder{
		cfg:    cfg,
		now:    time.Now,
		logger: slog.Default().WithGroup("responder"),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.routes = r.buildRoutes()
	return r
}

// Routes returns the served paths in sorted order.
func (r *Responder) Routes() []string {
	paths := make([]string, 0, len(r.routes))
	for p := range r.routes {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

// HTTPRoutes wraps the Responder in a single catch-all route for the
// go-supervisor HTTP server, so unmatched paths still reach the Responder's
// NotFound mapping. The middlewares run in order around every request.
func (r *Responder) HTTPRoutes(middlewares ...httpserver.HandlerFunc) ([]httpserver.Route, error) {
	route, err := httpserver.NewRouteFromHandlerFunc("responder", "/", r.ServeHTTP, middlewares...)
	if err != nil {
		return nil, fmt.Errorf("failed to create responder route: %w", err)
	}
	return []httpserver.Route{*route}, nil
}

// ServeHTTP dispatches on the exact request path and method. Query strings,
// headers and bodies are ignored.
func (r *Responder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	build, ok := r.match(req)
	if !ok {
		r.writeNotFound(w)
		return
	}
	r.serve(w, req, build)
}

// match treats a route as a (path, GET) pair; any other pair is unmatched.
// HEAD is answered as GET and net/http drops the body.
func (r *Responder) match(req *http.Request) (builder, bool) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		return nil, false
	}
	build, ok := r.routes[req.URL.Path]
	return build, ok
}

// serve runs build and writes its body. A builder error, an encoding error or
// a panic becomes the InternalFault response.
func (r *Responder) serve(w http.ResponseWriter, req *http.Request, build builder) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		if rec == http.ErrAbortHandler {
			panic(rec)
		}
		r.logger.Error("Recovered from handler panic", "path", req.URL.Path, "panic", rec)
		r.writeFault(w)
	}()

	payload, err := build(r.now())
	if err != nil {
		r.logger.Error("Failed to build response", "path", req.URL.Path, "error", err)
		r.writeFault(w)
		return
	}

	body, err := encode(payload)
	if err != nil {
		r.logger.Error("Failed to encode response", "path", req.URL.Path, "error", err)
		r.writeFault(w)
		return
	}

	r.write(w, http.StatusOK, body)
}

func (r *Responder) writeNotFound(w http.ResponseWriter) {
	r.writeError(w, http.StatusNotFound, NotFoundError, NotFoundMessage)
}

func (r *Responder) writeFault(w http.ResponseWriter) {
	r.writeError(w, http.StatusInternalServerError, InternalFaultError, InternalFaultMessage)
}

func (r *Responder) writeError(w http.ResponseWriter, status int, kind, msg string) {
	// ErrorResponse holds only strings and an int64, so encoding cannot fail.
	body, _ := encode(ErrorResponse{
		Error:     kind,
		Message:   msg,
		Timestamp: r.now().Unix(),
	})
	r.write(w, status, body)
}

func (r *Responder) write(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		// The status line is already sent; nothing left to map.
		r.logger.Debug("Failed to write response body", "error", err)
	}
}

// encode marshals v completely before anything reaches the client so a
// failure can still be reported as a clean 500.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
