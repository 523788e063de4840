package main

import (
	"fmt"
	"log/slog"

	"github.com/liatrio/liatrio-demo-api/internal/config"
	"github.com/liatrio/liatrio-demo-api/internal/logging"
	"github.com/liatrio/liatrio-demo-api/internal/logging/writers"
)

// newLogger builds the process logger from the logging section of cfg.
func newLogger(cfg config.Config) (*slog.Logger, error) {
	w, err := writers.CreateWriter(cfg.Logging.Output)
	if err != nil {
		return nil, fmt.Errorf("failed to open log output: %w", err)
	}
	handler := logging.SetupHandler(cfg.Logging.Format, cfg.LogLevel(), w)
	return slog.New(handler), nil
}
