package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/liatrio/liatrio-demo-api/internal/config/errz"
	"github.com/liatrio/liatrio-demo-api/internal/interpolation"
)

// Environment variables read at startup
const (
	EnvPort        = "PORT"
	EnvHost        = "HOST"
	EnvEnvironment = "ENVIRONMENT"
	EnvFlaskDebug  = "FLASK_DEBUG"
	EnvDebug       = "DEBUG"
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFormat   = "LOG_FORMAT"
	EnvLogOutput   = "LOG_OUTPUT"
)

// lookupNonEmpty treats a variable set to the empty string as unset.
func lookupNonEmpty(lookup interpolation.LookupFunc, key string) (string, bool) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// parseDebug accepts "true" in any case; every other value is false.
func parseDebug(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "true")
}

// applyEnv overlays environment variables onto cfg.
func applyEnv(cfg *Config, lookup interpolation.LookupFunc) error {
	var errs []error

	if v, ok := lookupNonEmpty(lookup, EnvPort); ok {
		port, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s=%q is not an integer", errz.ErrInvalidValue, EnvPort, v))
		} else {
			cfg.Port = port
		}
	}

	if v, ok := lookupNonEmpty(lookup, EnvHost); ok {
		cfg.Host = v
	}
	if v, ok := lookupNonEmpty(lookup, EnvEnvironment); ok {
		cfg.Environment = v
	}

	// FLASK_DEBUG is the name deployments already use; DEBUG is the fallback.
	if v, ok := lookupNonEmpty(lookup, EnvFlaskDebug); ok {
		cfg.Debug = parseDebug(v)
	} else if v, ok := lookupNonEmpty(lookup, EnvDebug); ok {
		cfg.Debug = parseDebug(v)
	}

	if v, ok := lookupNonEmpty(lookup, EnvLogLevel); ok {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v, ok := lookupNonEmpty(lookup, EnvLogFormat); ok {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v, ok := lookupNonEmpty(lookup, EnvLogOutput); ok {
		cfg.Logging.Output = v
	}

	return errors.Join(errs...)
}
