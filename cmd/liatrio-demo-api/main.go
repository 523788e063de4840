package main

import (
	"context"
	"fmt"
	"os"

	"github.com/liatrio/liatrio-demo-api/internal/fancy"
	"github.com/liatrio/liatrio-demo-api/internal/logging"
	"github.com/liatrio/liatrio-demo-api/internal/version"
	"github.com/urfave/cli/v3"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:    version.ServiceName,
		Version: version.Version,
		Usage:   "Liatrio demo HTTP API",
		Commands: []*cli.Command{
			newServerCmd(),
			newValidateCmd(),
			newVersionCmd(),
		},
	}
}

func main() {
	// replaced by the server command once the config is loaded
	logging.SetupLogger("info")

	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", fancy.ErrorStyle.Render("Error:"), err)
		os.Exit(1)
	}
}
