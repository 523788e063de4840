// Package config builds the immutable service configuration.
//
// Values are resolved once at process start, in order of increasing
// precedence: built-in defaults, an optional TOML or YAML file, and the
// process environment. The result is passed by value to the components that
// need it; nothing reads the environment after New returns.
package config

import (
	"net"
	"strconv"
	"time"

	"github.com/liatrio/liatrio-demo-api/internal/logging"
)

// Default values
const (
	DefaultPort        = 8080
	DefaultHost        = "0.0.0.0"
	DefaultEnvironment = "development"

	DefaultLogFormat = logging.FormatText
	DefaultLogOutput = "stdout"

	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 10 * time.Second
	DefaultIdleTimeout  = 60 * time.Second
	DefaultDrainTimeout = 30 * time.Second
)

// Config holds the effective service configuration.
type Config struct {
	// Host is the bind host, echoed by /metrics.
	Host string

	// Port is the bind port, echoed by /metrics.
	Port int

	// Environment is the deployment label echoed by /metrics and /version.
	Environment string

	// Debug turns on verbose logging. It never changes response content.
	Debug bool

	Logging Logging
	HTTP    HTTP
}

// Logging selects the log handler.
type Logging struct {
	// Level is one of trace, debug, info, warn, error. Empty means info, or
	// debug when Config.Debug is set.
	Level string

	// Format is text or json.
	Format string

	// Output is stdout, stderr, file:///path or a plain path.
	Output string
}

// HTTP holds the timeouts handed to the HTTP server. Zero means the server's
// own default.
type HTTP struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	DrainTimeout time.Duration

	// ResponseHeaders are set on every response, keyed by canonical header
	// name. Content-Type is reserved. Treat the map as read-only.
	ResponseHeaders map[string]string
}

// DefaultResponseHeaders returns the headers set on every response unless a
// config file overrides them.
func DefaultResponseHeaders() map[string]string {
	return map[string]string{
		"Cache-Control":          "no-store",
		"X-Content-Type-Options": "nosniff",
	}
}

// Defaults returns a Config pre-populated with default values.
func Defaults() Config {
	return Config{
		Host:        DefaultHost,
		Port:        DefaultPort,
		Environment: DefaultEnvironment,
		Logging: Logging{
			Format: DefaultLogFormat,
			Output: DefaultLogOutput,
		},
		HTTP: HTTP{
			ReadTimeout:  DefaultReadTimeout,
			WriteTimeout: DefaultWriteTimeout,
			IdleTimeout:  DefaultIdleTimeout,
			DrainTimeout: DefaultDrainTimeout,

			ResponseHeaders: DefaultResponseHeaders(),
		},
	}
}

// Address returns the host:port the server binds to.
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// LogLevel returns the effective log level.
func (c Config) LogLevel() string {
	if c.Logging.Level != "" {
		return c.Logging.Level
	}
	if c.Debug {
		return "debug"
	}
	return "info"
}
