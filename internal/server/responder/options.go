package responder

import (
	"log/slog"
	"time"
)

// Option configures a Responder.
type Option func(*Responder)

// WithClock replaces time.Now as the source of response timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Responder) {
		if now != nil {
			r.now = now
		}
	}
}

// WithLogger sets the logger used for fault reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Responder) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithLogHandler sets a custom slog handler for fault reporting.
func WithLogHandler(handler slog.Handler) Option {
	return func(r *Responder) {
		if handler != nil {
			r.logger = slog.New(handler).WithGroup("responder")
		}
	}
}
