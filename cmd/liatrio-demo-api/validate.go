package main

import (
	"context"
	"fmt"

	"github.com/liatrio/liatrio-demo-api/internal/config"
	"github.com/liatrio/liatrio-demo-api/internal/fancy"
	"github.com/liatrio/liatrio-demo-api/internal/server/responder"
	"github.com/urfave/cli/v3"
)

func newValidateCmd() *cli.Command {
	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"lint"},
		Usage:   "Validate the configuration from the optional file and the environment",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the configuration file",
			},
			&cli.BoolFlag{
				Name:    "tree",
				Aliases: []string{"t"},
				Usage:   "Show detailed tree view of the validated configuration",
			},
		},
		Action: validateAction,
	}
}

func validateAction(_ context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	if configPath == "" && cmd.Args().Len() > 0 {
		configPath = cmd.Args().Get(0)
	}

	cfg, err := config.New(configPath)
	if err != nil {
		return cli.Exit(fmt.Errorf("validation failed: %w", err), 1)
	}

	out := cmd.Root().Writer
	source := configPath
	if source == "" {
		source = "from environment"
	}
	_, _ = fmt.Fprintf(out, "Configuration %s is valid\n\n", source)

	if cmd.Bool("tree") {
		_, _ = fmt.Fprintln(out, cfg)
		_, _ = fmt.Fprintln(out, routesTree(responder.New(*cfg).Routes()))
		return nil
	}

	_, _ = fmt.Fprintln(out, renderConfigSummary(configPath, cfg))
	return nil
}

// routesTree lists the paths the server will answer.
func routesTree(paths []string) string {
	t := fancy.Tree()
	t.Root(fancy.RootStyle.Render("Routes"))
	for _, p := range paths {
		t.Child(fancy.RouteStyle.Render("GET " + p))
	}
	return t.String()
}

// renderConfigSummary creates a formatted summary string for the configuration
func renderConfigSummary(path string, cfg *config.Config) string {
	if path == "" {
		path = "(none)"
	}
	return fmt.Sprintf(
		"Config Summary:\n- Path: %s\n%s\n\nUse --tree for a more detailed view of the config.",
		path, cfg.Summary(),
	)
}
