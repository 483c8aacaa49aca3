package main

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/allisson/datamask/cmd/app/commands"
	"github.com/allisson/datamask/internal/app"
	"github.com/allisson/datamask/internal/config"
)

func getPipelineCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "run",
			Usage:     "Mask and tokenize the sensitive columns of a CSV dataset",
			ArgsUsage: "<input> <output> <column>...",
			Flags: []cli.Flag{
				keyPathFlag(),
				&cli.StringFlag{
					Name:  "masked-output",
					Value: "",
					Usage: "Also write the masked dataset to this path",
				},
				&cli.BoolFlag{
					Name:  "fail-on-warnings",
					Value: false,
					Usage: "Exit with status 2 when columns are missing or cells fail",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				args, err := commands.ParsePipelineArgs(cmd.Args().Slice())
				if err != nil {
					return err
				}

				cfg := config.Load()
				if err := cfg.Validate(); err != nil {
					return err
				}
				container := app.NewContainer(cfg)
				defer shutdown(ctx, container)

				pipelineUseCase, err := container.PipelineUseCase()
				if err != nil {
					return err
				}

				return commands.RunPipeline(
					ctx,
					pipelineUseCase,
					container.DatasetRepository(),
					container.Logger(),
					commands.DefaultIO().Writer,
					args,
					commands.RunPipelineOptions{
						KeyPath:          resolveKeyPath(cmd, cfg),
						MaskedOutputPath: cmd.String("masked-output"),
						FailOnWarnings:   cmd.Bool("fail-on-warnings"),
						Format:           cmd.String("format"),
					},
				)
			},
		},
		{
			Name:      "detokenize",
			Usage:     "Restore the tokenized columns of a CSV dataset with an existing key",
			ArgsUsage: "<input> <output> <column>...",
			Flags: []cli.Flag{
				keyPathFlag(),
				&cli.BoolFlag{
					Name:  "fail-on-warnings",
					Value: false,
					Usage: "Exit with status 2 when columns are missing or tokens cannot be restored",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				args, err := commands.ParsePipelineArgs(cmd.Args().Slice())
				if err != nil {
					return err
				}

				cfg := config.Load()
				if err := cfg.Validate(); err != nil {
					return err
				}
				container := app.NewContainer(cfg)
				defer shutdown(ctx, container)

				pipelineUseCase, err := container.PipelineUseCase()
				if err != nil {
					return err
				}

				return commands.RunDetokenize(
					ctx,
					pipelineUseCase,
					container.DatasetRepository(),
					container.Logger(),
					commands.DefaultIO().Writer,
					args,
					commands.DetokenizeOptions{
						KeyPath:        resolveKeyPath(cmd, cfg),
						FailOnWarnings: cmd.Bool("fail-on-warnings"),
						Format:         cmd.String("format"),
					},
				)
			},
		},
	}
}

// resolveKeyPath prefers the flag over KEY_PATH.
func resolveKeyPath(cmd *cli.Command, cfg *config.Config) string {
	if keyPath := cmd.String("key_path"); keyPath != "" {
		return keyPath
	}
	return cfg.KeyPath
}

// shutdown flushes metrics and logs failures instead of masking the command result.
func shutdown(ctx context.Context, container *app.Container) {
	if err := container.Shutdown(ctx); err != nil {
		container.Logger().Error("failed to shutdown container", slog.Any("error", err))
	}
}
