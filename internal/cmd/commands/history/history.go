package history

import (
	"context"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/taskcloud/internal/cmd/base"
	"github.com/hashicorp-forge/taskcloud/pkg/journal"
)

type Command struct {
	*base.Command

	common    base.CommonFlags
	flagLimit int
}

func (c *Command) Synopsis() string {
	return "Show recently dispatched commands from the command journal"
}

func (c *Command) Help() string {
	return `Usage: taskcloud history [options]

  Prints the newest entries of the command journal configured in the
  journal block of the config file. With -document only commands for that
  document are shown.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("history", flag.ContinueOnError))
	c.common.Register(f)
	f.IntVar(&c.flagLimit, "limit", 20, "Maximum number of entries to show.")
	return f
}

func (c *Command) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if err := c.common.Validate(); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	if c.flagLimit < 1 {
		c.UI.Error("limit must be at least 1")
		return 1
	}

	cfg, err := c.common.LoadConfig()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error parsing config file: %v", err))
		return 1
	}
	if cfg.Journal == nil {
		c.UI.Error("no journal block in the config file")
		return 1
	}

	j, err := journal.Open(*cfg.Journal, c.Log)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error opening command journal: %v", err))
		return 1
	}
	defer j.Close()

	var entries []journal.Entry
	if c.common.Document != "" {
		entries, err = j.ForDocument(context.Background(), c.common.Document, c.flagLimit)
	} else {
		entries, err = j.Recent(context.Background(), c.flagLimit)
	}
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	if err := base.Render(c.UI, c.common.Format, entries); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}
