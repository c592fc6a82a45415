package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/taskcloud/internal/cmd/base"
	"github.com/hashicorp-forge/taskcloud/internal/cmd/commands/document"
	"github.com/hashicorp-forge/taskcloud/internal/cmd/commands/history"
	"github.com/hashicorp-forge/taskcloud/internal/cmd/commands/version"
)

// Commands is the mapping of all available taskcloud commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := base.NewCommand(log, ui)

	Commands = map[string]cli.CommandFactory{
		"history": func() (cli.Command, error) {
			return &history.Command{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}

	document.Register(Commands, b)
}
