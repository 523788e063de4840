package logger

import "log/slog"

// Option configures an AccessLogger.
type Option func(*AccessLogger)

// WithLogger sets the logger that receives access records.
func WithLogger(logger *slog.Logger) Option {
	return func(al *AccessLogger) {
		if logger != nil {
			al.logger = logger
		}
	}
}

// WithLogHandler sets a custom slog handler; records go to its "http" group.
func WithLogHandler(handler slog.Handler) Option {
	return func(al *AccessLogger) {
		if handler != nil {
			al.logger = slog.New(handler).WithGroup("http")
		}
	}
}

// WithQuietPaths demotes successful requests under these path prefixes to
// debug level. Client and server errors keep their level.
func WithQuietPaths(prefixes ...string) Option {
	return func(al *AccessLogger) {
		al.quietPaths = append(al.quietPaths, prefixes...)
	}
}

// WithIDGenerator replaces the UUID v4 request id generator.
func WithIDGenerator(gen func() (string, error)) Option {
	return func(al *AccessLogger) {
		if gen != nil {
			al.newID = gen
		}
	}
}
