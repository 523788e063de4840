package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func newVersionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the version information",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			root := cmd.Root()
			_, err := fmt.Fprintf(root.Writer, "%s version %s\n", root.Name, root.Version)
			return err
		},
	}
}
