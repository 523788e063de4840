// Package logger provides the access log middleware for the HTTP server.
package logger

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-Id"

// lgr is implemented by slog.Logger
type lgr interface {
	LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr)
}

// AccessLogger writes one record per request and tags each request with an id.
type AccessLogger struct {
	logger     lgr
	quietPaths []string
	newID      func() (string, error)
}

// New creates an AccessLogger. Without options it logs to
// slog.Default() in the "http" group and generates v4 UUIDs.
func New(opts ...Option) *AccessLogger {
	al := &AccessLogger{
		logger: slog.Default().WithGroup("http"),
		newID:  newUUID,
	}
	for _, opt := range opts {
		opt(al)
	}
	return al
}

// Middleware returns the middleware function
func (al *AccessLogger) Middleware() httpserver.HandlerFunc {
	return func(rp *httpserver.RequestProcessor) {
		r := rp.Request()
		start := time.Now()

		id := al.requestID(r)
		if id != "" {
			rp.Writer().Header().Set(RequestIDHeader, id)
		}

		// process the other middleware, and the endpoint handler
		rp.Next()

		rw := rp.Writer()
		status := rw.Status()
		if status == 0 {
			status = http.StatusOK
		}

		level := levelForStatus(status)
		if al.isQuiet(r.URL.Path) && level < slog.LevelWarn {
			level = slog.LevelDebug
		}

		al.logger.LogAttrs(r.Context(), level, "HTTP request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Int("size", rw.Size()),
			slog.Duration("duration", time.Since(start)),
			slog.String("client_ip", clientIP(r)),
			slog.String("request_id", id),
		)
	}
}

// requestID reuses the inbound id when the client sent one.
func (al *AccessLogger) requestID(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get(RequestIDHeader)); id != "" {
		return id
	}
	id, err := al.newID()
	if err != nil {
		al.logger.LogAttrs(r.Context(), slog.LevelDebug, "Failed to generate request id",
			slog.String("error", err.Error()))
		return ""
	}
	return id
}

func (al *AccessLogger) isQuiet(path string) bool {
	for _, prefix := range al.quietPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// clientIP extracts the client IP from the request
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	host := r.RemoteAddr
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		host = host[:idx]
	}
	return strings.Trim(host, "[]")
}

func newUUID() (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
