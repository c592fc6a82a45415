package document

import (
	"context"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/taskcloud/internal/cmd/base"
	"github.com/hashicorp-forge/taskcloud/pkg/cloud"
	"github.com/hashicorp-forge/taskcloud/pkg/tasks"
)

// ReadCommand prints the payload of a read endpoint.
type ReadCommand[T any] struct {
	*base.Command

	// Name is the full command name, e.g. "tasks get".
	Name        string
	Description string

	// IDFlag names the identifier flag. Empty means the endpoint takes none.
	IDFlag string

	Fetch func(ctx context.Context, doc *tasks.Document, id int) (cloud.Result[T], error)

	common base.CommonFlags
	flagID int
}

func (c *ReadCommand[T]) Synopsis() string {
	return c.Description
}

func (c *ReadCommand[T]) Help() string {
	return fmt.Sprintf(`Usage: taskcloud %s [options]

  %s`, c.Name, c.Description) + c.Flags().Help()
}

func (c *ReadCommand[T]) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet(c.Name, flag.ContinueOnError))
	c.common.Register(f)
	if c.IDFlag != "" {
		f.IntVar(&c.flagID, c.IDFlag, 0, "(Required) Identifier of the item to read.")
	}
	return f
}

func (c *ReadCommand[T]) Run(args []string) int {
	ctx, s, done, ok := session(c.Command, c.Flags(), &c.common, args)
	if !ok {
		return 1
	}
	defer done()

	res, err := c.Fetch(ctx, s.Document, c.flagID)
	if err != nil {
		reportError(c.UI, err)
		return 1
	}

	value, err := res.Get()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	if err := base.Render(c.UI, c.common.Format, value); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}
