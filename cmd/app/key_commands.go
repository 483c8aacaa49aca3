package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/datamask/cmd/app/commands"
	"github.com/allisson/datamask/internal/app"
	"github.com/allisson/datamask/internal/config"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-key",
			Usage: "Generate a new tokenization key, failing if one already exists",
			Flags: []cli.Flag{
				keyPathFlag(),
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				if err := cfg.Validate(); err != nil {
					return err
				}
				container := app.NewContainer(cfg)
				defer shutdown(ctx, container)

				keyUseCase, err := container.KeyUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateKey(
					ctx,
					keyUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					resolveKeyPath(cmd, cfg),
					cmd.String("format"),
				)
			},
		},
	}
}
