package base

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
)

// Command holds what every command needs.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui
}

// NewCommand returns a Command.
func NewCommand(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{
		Log: log,
		UI:  ui,
	}
}
