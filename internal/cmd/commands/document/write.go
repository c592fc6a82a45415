package document

import (
	"context"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/taskcloud/internal/cmd/base"
	"github.com/hashicorp-forge/taskcloud/pkg/cloud"
	"github.com/hashicorp-forge/taskcloud/pkg/tasks"
)

const changedFileNameUsage = "Save the result under this name instead of overwriting the document.\n" +
	"Later commands in the same session address the new name."

// printWriteResult prints where the document was saved, or the server's
// message when the command was not applied.
func printWriteResult(cmd *base.Command, out cloud.WriteResult, err error) int {
	if err != nil {
		reportError(cmd.UI, err)
		return 1
	}
	if !out.Saved() {
		cmd.UI.Error(out.Message)
		return 1
	}
	cmd.UI.Output(out.Path)
	return 0
}

// DeleteCommand removes one item from a sub-resource collection.
type DeleteCommand struct {
	*base.Command

	Name        string
	Description string
	IDFlag      string

	Delete func(ctx context.Context, doc *tasks.Document, id int, changedFileName string) (cloud.WriteResult, error)

	common              base.CommonFlags
	flagID              int
	flagChangedFileName string
}

func (c *DeleteCommand) Synopsis() string {
	return c.Description
}

func (c *DeleteCommand) Help() string {
	return fmt.Sprintf(`Usage: taskcloud %s [options]

  %s On success the updated document is saved to the output
  directory and its path is printed.`, c.Name, c.Description) + c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet(c.Name, flag.ContinueOnError))
	c.common.Register(f)
	f.IntVar(&c.flagID, c.IDFlag, 0, "(Required) Identifier of the item to delete.")
	f.StringVar(&c.flagChangedFileName, "changed-file-name", "", changedFileNameUsage)
	return f
}

func (c *DeleteCommand) Run(args []string) int {
	ctx, s, done, ok := session(c.Command, c.Flags(), &c.common, args)
	if !ok {
		return 1
	}
	defer done()

	out, err := c.Delete(ctx, s.Document, c.flagID, c.flagChangedFileName)
	return printWriteResult(c.Command, out, err)
}

// AddTaskCommand adds a task to the document.
type AddTaskCommand struct {
	*base.Command

	common              base.CommonFlags
	flagName            string
	flagBefore          int
	flagChangedFileName string
}

func (c *AddTaskCommand) Synopsis() string {
	return "Add a task to a project document"
}

func (c *AddTaskCommand) Help() string {
	return `Usage: taskcloud tasks add [options]

  Adds a task before an existing task. On success the updated document is
  saved to the output directory and its path is printed.` + c.Flags().Help()
}

func (c *AddTaskCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("tasks add", flag.ContinueOnError))
	c.common.Register(f)
	f.StringVar(&c.flagName, "name", "", "(Required) Name of the new task.")
	f.IntVar(&c.flagBefore, "before", 0, "(Required) ID of the task the new task is inserted before.")
	f.StringVar(&c.flagChangedFileName, "changed-file-name", "", changedFileNameUsage)
	return f
}

func (c *AddTaskCommand) Run(args []string) int {
	ctx, s, done, ok := session(c.Command, c.Flags(), &c.common, args)
	if !ok {
		return 1
	}
	defer done()

	out, err := s.Document.AddTask(ctx, c.flagName, c.flagBefore, c.flagChangedFileName)
	return printWriteResult(c.Command, out, err)
}
