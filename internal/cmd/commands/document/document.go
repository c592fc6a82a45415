package document

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/taskcloud/internal/cmd/base"
	"github.com/hashicorp-forge/taskcloud/pkg/cloud"
)

// GroupCommand is a parent command for a sub-resource.
type GroupCommand struct {
	*base.Command

	Name        string
	Description string
}

func (c *GroupCommand) Synopsis() string {
	return c.Description
}

func (c *GroupCommand) Help() string {
	return fmt.Sprintf(`Usage: taskcloud %s <subcommand> [options]

  %s`, c.Name, c.Description)
}

func (c *GroupCommand) Run(args []string) int {
	return cli.RunResultHelp
}

// session parses args with f, then opens a session for the document. The
// returned context is cancelled on interrupt and by the returned func.
func session(cmd *base.Command, f *base.FlagSet, common *base.CommonFlags, args []string) (context.Context, *base.Session, func(), bool) {
	if err := f.Parse(args); err != nil {
		cmd.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return nil, nil, nil, false
	}
	if err := common.Validate(); err != nil {
		cmd.UI.Error(err.Error())
		return nil, nil, nil, false
	}
	if common.Document == "" {
		cmd.UI.Error("document flag is required")
		return nil, nil, nil, false
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	s, err := base.NewSession(ctx, common, cmd.Log)
	if err != nil {
		cancel()
		cmd.UI.Error(fmt.Sprintf("error initializing: %v", err))
		return nil, nil, nil, false
	}
	return ctx, s, func() {
		if err := s.Close(); err != nil {
			cmd.Log.Warn("error closing session", "error", err)
		}
		cancel()
	}, true
}

// reportError prints err, naming the flag for missing arguments.
func reportError(ui cli.Ui, err error) {
	var argErr *cloud.ArgumentError
	switch {
	case errors.As(err, &argErr):
		ui.Error(fmt.Sprintf("%s (check the command flags)", argErr))
	case errors.Is(err, cloud.ErrAuthConfiguration):
		ui.Error(fmt.Sprintf("%v: set app_sid and app_key or %s and %s", err, "TASKCLOUD_APP_SID", "TASKCLOUD_APP_KEY"))
	default:
		ui.Error(err.Error())
	}
}
