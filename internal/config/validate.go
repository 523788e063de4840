package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/liatrio/liatrio-demo-api/internal/config/errz"
	"github.com/liatrio/liatrio-demo-api/internal/logging"
	"github.com/liatrio/liatrio-demo-api/internal/logging/writers"
	"golang.org/x/net/http/httpguts"
)

// Validate checks structural constraints and reports every violation at once.
func (c Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("%w: port %d is out of range [1, 65535]", errz.ErrInvalidValue, c.Port))
	}

	if !logging.IsValidLevel(c.Logging.Level) {
		errs = append(errs, fmt.Errorf("%w: log level %q; want trace|debug|info|warn|error", errz.ErrInvalidValue, c.Logging.Level))
	}
	if !logging.IsValidFormat(c.Logging.Format) {
		errs = append(errs, fmt.Errorf("%w: log format %q; want text|json", errz.ErrInvalidValue, c.Logging.Format))
	}
	if err := writers.Validate(c.Logging.Output); err != nil {
		errs = append(errs, err)
	}

	timeouts := []struct {
		name string
		d    time.Duration
	}{
		{"http.read_timeout", c.HTTP.ReadTimeout},
		{"http.write_timeout", c.HTTP.WriteTimeout},
		{"http.idle_timeout", c.HTTP.IdleTimeout},
		{"http.drain_timeout", c.HTTP.DrainTimeout},
	}
	for _, t := range timeouts {
		if t.d < 0 {
			errs = append(errs, fmt.Errorf("%w: %s %s must not be negative", errz.ErrInvalidValue, t.name, t.d))
		}
	}

	for _, name := range slices.Sorted(maps.Keys(c.HTTP.ResponseHeaders)) {
		if err := validateHeader(name, c.HTTP.ResponseHeaders[name]); err != nil {
			errs = append(errs, fmt.Errorf("%w: http.response_headers: %w", errz.ErrInvalidValue, err))
		}
	}

	return errors.Join(errs...)
}

// validateHeader validates a header key-value pair using httpguts
func validateHeader(name, value string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("header name cannot be empty")
	}
	if !httpguts.ValidHeaderFieldName(name) {
		return fmt.Errorf("invalid header name: %s", name)
	}
	if strings.EqualFold(name, "Content-Type") {
		return fmt.Errorf("header %s is reserved", name)
	}
	if !httpguts.ValidHeaderFieldValue(value) {
		return fmt.Errorf("invalid header value for %s", name)
	}
	return nil
}
