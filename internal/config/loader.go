package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/liatrio/liatrio-demo-api/internal/config/errz"
	"github.com/liatrio/liatrio-demo-api/internal/interpolation"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk schema. Pointer fields distinguish "absent" from
// a zero value so absent keys keep their defaults.
type fileConfig struct {
	Version     string      `toml:"version" yaml:"version"`
	Host        *string     `toml:"host" yaml:"host"`
	Port        *int        `toml:"port" yaml:"port"`
	Environment *string     `toml:"environment" yaml:"environment"`
	Debug       *bool       `toml:"debug" yaml:"debug"`
	Log         fileLogging `toml:"log" yaml:"log"`
	HTTP        fileHTTP    `toml:"http" yaml:"http"`
}

type fileLogging struct {
	Level  *string `toml:"level" yaml:"level"`
	Format *string `toml:"format" yaml:"format"`
	Output *string `toml:"output" yaml:"output"`
}

type fileHTTP struct {
	ReadTimeout  *string `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout *string `toml:"write_timeout" yaml:"write_timeout"`
	IdleTimeout  *string `toml:"idle_timeout" yaml:"idle_timeout"`
	DrainTimeout *string `toml:"drain_timeout" yaml:"drain_timeout"`

	// An empty value removes a default header.
	ResponseHeaders map[string]string `toml:"response_headers" yaml:"response_headers"`
}

// New resolves the configuration from defaults, the optional file at path
// (empty path skips the file) and the process environment, then validates it.
func New(path string) (*Config, error) {
	return Load(path, os.LookupEnv)
}

// Load is New with an explicit variable lookup, used for both the file's
// ${VAR} interpolation and the environment overlay.
func Load(path string, lookup interpolation.LookupFunc) (*Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	cfg := Defaults()
	if path != "" {
		if err := applyFile(&cfg, path, lookup); err != nil {
			return nil, fmt.Errorf("%w: %w", errz.ErrFailedToLoadConfig, err)
		}
	}

	if err := applyEnv(&cfg, lookup); err != nil {
		return nil, fmt.Errorf("%w: %w", errz.ErrFailedToLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errz.ErrFailedToValidateConfig, err)
	}

	return &cfg, nil
}

// applyFile reads, interpolates and decodes the file at path onto cfg.
func applyFile(cfg *Config, path string, lookup interpolation.LookupFunc) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %q: %w", path, err)
	}

	expanded, err := interpolation.ExpandWith(string(raw), lookup)
	if err != nil {
		return fmt.Errorf("interpolate %q: %w", path, err)
	}

	fc, err := decodeFile(path, []byte(expanded))
	if err != nil {
		return err
	}

	return fc.apply(cfg)
}

// decodeFile picks the decoder by file extension. Unknown keys are rejected.
func decodeFile(path string, data []byte) (*fileConfig, error) {
	fc := &fileConfig{}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(fc); err != nil {
			return nil, fmt.Errorf("parse toml %q: %w", path, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(fc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse yaml %q: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", errz.ErrUnsupportedConfigType, ext)
	}

	if fc.Version != "" && fc.Version != "v1" {
		return nil, fmt.Errorf("%w: %s", errz.ErrUnsupportedConfigVer, fc.Version)
	}

	return fc, nil
}

// apply copies every field present in the file onto cfg.
func (fc *fileConfig) apply(cfg *Config) error {
	if fc.Host != nil {
		cfg.Host = *fc.Host
	}
	if fc.Port != nil {
		cfg.Port = *fc.Port
	}
	if fc.Environment != nil {
		cfg.Environment = *fc.Environment
	}
	if fc.Debug != nil {
		cfg.Debug = *fc.Debug
	}

	if fc.Log.Level != nil {
		cfg.Logging.Level = strings.ToLower(*fc.Log.Level)
	}
	if fc.Log.Format != nil {
		cfg.Logging.Format = strings.ToLower(*fc.Log.Format)
	}
	if fc.Log.Output != nil {
		cfg.Logging.Output = *fc.Log.Output
	}

	var errs []error
	setDuration := func(name string, src *string, dst *time.Duration) {
		if src == nil {
			return
		}
		d, err := time.ParseDuration(*src)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: http.%s %q: %w", errz.ErrInvalidValue, name, *src, err))
			return
		}
		*dst = d
	}
	setDuration("read_timeout", fc.HTTP.ReadTimeout, &cfg.HTTP.ReadTimeout)
	setDuration("write_timeout", fc.HTTP.WriteTimeout, &cfg.HTTP.WriteTimeout)
	setDuration("idle_timeout", fc.HTTP.IdleTimeout, &cfg.HTTP.IdleTimeout)
	setDuration("drain_timeout", fc.HTTP.DrainTimeout, &cfg.HTTP.DrainTimeout)

	if len(fc.HTTP.ResponseHeaders) > 0 {
		headers := maps.Clone(cfg.HTTP.ResponseHeaders)
		if headers == nil {
			headers = make(map[string]string, len(fc.HTTP.ResponseHeaders))
		}
		for name, value := range fc.HTTP.ResponseHeaders {
			name = http.CanonicalHeaderKey(strings.TrimSpace(name))
			if value == "" {
				delete(headers, name)
				continue
			}
			headers[name] = value
		}
		cfg.HTTP.ResponseHeaders = headers
	}

	return errors.Join(errs...)
}
