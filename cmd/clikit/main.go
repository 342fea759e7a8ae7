package main

import (
	"context"
	"os"

	"github.com/psantana5/cli-kit/cmd/clikit/cmd"
	"github.com/psantana5/cli-kit/pkg/governor"
	"github.com/psantana5/cli-kit/pkg/logging"
)

func main() {
	g := governor.New(governor.Config{
		LogPath:         logging.DefaultPath("clikit"),
		ToolName:        "clikit",
		ReporterFactory: cmd.NewReporter,
	})

	os.Exit(g.Run(func(ctx context.Context) error {
		return cmd.Execute(ctx)
	}))
}
