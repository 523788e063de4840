package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/liatrio/liatrio-demo-api/cmd/liatrio-demo-api/server"
	"github.com/liatrio/liatrio-demo-api/internal/config"
	"github.com/liatrio/liatrio-demo-api/internal/logging"
	"github.com/urfave/cli/v3"
)

func newServerCmd() *cli.Command {
	return &cli.Command{
		Name:  "server",
		Usage: "Start the HTTP API server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Path to an optional TOML or YAML configuration file",
				Aliases: []string{"c"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Override the log level (trace, debug, info, warn, error)",
			},
		},
		Action: serverAction,
	}
}

func serverAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd.String("config"), cmd.String("log-level"))
	if err != nil {
		return cli.Exit(err, 1)
	}

	logger, err := newLogger(*cfg)
	if err != nil {
		return cli.Exit(err, 1)
	}
	slog.SetDefault(logger)

	if err := server.Run(ctx, logger, *cfg); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}

// loadConfig resolves the configuration and applies the command line level
// override on top of it.
func loadConfig(path, logLevel string) (*config.Config, error) {
	cfg, err := config.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if logLevel != "" {
		if !logging.IsValidLevel(logLevel) {
			return nil, fmt.Errorf("invalid log level: %s", logLevel)
		}
		cfg.Logging.Level = logLevel
	}
	return cfg, nil
}
