// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/datamask/cmd/app/commands"
	apperrors "github.com/allisson/datamask/internal/errors"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cmd := &cli.Command{
		Name:     "app",
		Usage:    "Mask and tokenize personally identifiable information in CSV datasets",
		Version:  version,
		Commands: getCommands(),
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, commands.ErrCompletedWithWarnings) {
			slog.Warn("completed with warnings")
			os.Exit(2)
		}
		slog.Error("application error",
			slog.String("kind", apperrors.Kind(err)),
			slog.Any("error", err))
		os.Exit(1)
	}
}
