package main

import (
	"github.com/urfave/cli/v3"
)

func getCommands() []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getPipelineCommands()...)
	cmds = append(cmds, getKeyCommands()...)
	return cmds
}

// keyPathFlag is shared by every command that touches the key store.
func keyPathFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "key_path",
		Aliases: []string{"key-path", "k"},
		Value:   "",
		Usage:   "Key store location (defaults to KEY_PATH, then secret.key)",
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}
