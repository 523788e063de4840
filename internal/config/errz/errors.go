// Package errz provides shared error definitions for the config package and its subpackages.
package errz

import "errors"

// Top-level error categories
var (
	ErrFailedToLoadConfig     = errors.New("failed to load config")
	ErrFailedToValidateConfig = errors.New("failed to validate config")
	ErrUnsupportedConfigType  = errors.New("unsupported config file type")
	ErrUnsupportedConfigVer   = errors.New("unsupported config version")
)

// Validation specific errors
var (
	ErrInvalidValue   = errors.New("invalid value")
	ErrMissingEnvVar  = errors.New("environment variable not defined")
	ErrInvalidLogSink = errors.New("invalid log output")
)
