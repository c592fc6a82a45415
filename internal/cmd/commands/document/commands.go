package document

import (
	"context"

	"github.com/iancoleman/strcase"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/taskcloud/internal/cmd/base"
	"github.com/hashicorp-forge/taskcloud/pkg/cloud"
	"github.com/hashicorp-forge/taskcloud/pkg/tasks"
)

// CommandName returns the CLI name of a sub-resource ("taskLinks" ->
// "task-links").
func CommandName(subresource string) string {
	return strcase.ToKebab(subresource)
}

// Register adds every document command to commands.
func Register(commands map[string]cli.CommandFactory, b *base.Command) {
	taskCmds := CommandName(tasks.SubresourceTasks)
	linkCmds := CommandName(tasks.SubresourceTaskLinks)
	outlineCmds := CommandName(tasks.SubresourceOutlineCodes)
	attrCmds := CommandName(tasks.SubresourceExtendedAttributes)

	commands["properties"] = func() (cli.Command, error) {
		return &ReadCommand[[]tasks.Property]{
			Command:     b,
			Name:        "properties",
			Description: "Show the properties of a project document",
			Fetch: func(ctx context.Context, doc *tasks.Document, _ int) (cloud.Result[[]tasks.Property], error) {
				return doc.GetProperties(ctx)
			},
		}, nil
	}

	// Tasks
	commands[taskCmds] = group(b, taskCmds, "Read and change the tasks of a project document")
	commands[taskCmds+" list"] = func() (cli.Command, error) {
		return &ReadCommand[[]tasks.TaskItem]{
			Command:     b,
			Name:        taskCmds + " list",
			Description: "List the tasks of a project document",
			Fetch: func(ctx context.Context, doc *tasks.Document, _ int) (cloud.Result[[]tasks.TaskItem], error) {
				return doc.GetTasks(ctx)
			},
		}, nil
	}
	commands[taskCmds+" get"] = func() (cli.Command, error) {
		return &ReadCommand[tasks.Task]{
			Command:     b,
			Name:        taskCmds + " get",
			Description: "Show a single task",
			IDFlag:      "id",
			Fetch: func(ctx context.Context, doc *tasks.Document, id int) (cloud.Result[tasks.Task], error) {
				return doc.GetTask(ctx, id)
			},
		}, nil
	}
	commands[taskCmds+" add"] = func() (cli.Command, error) {
		return &AddTaskCommand{Command: b}, nil
	}
	commands[taskCmds+" delete"] = func() (cli.Command, error) {
		return &DeleteCommand{
			Command:     b,
			Name:        taskCmds + " delete",
			Description: "Delete a task.",
			IDFlag:      "id",
			Delete: func(ctx context.Context, doc *tasks.Document, id int, changedFileName string) (cloud.WriteResult, error) {
				return doc.DeleteTask(ctx, id, changedFileName)
			},
		}, nil
	}

	// Task links
	commands[linkCmds] = group(b, linkCmds, "Read and change the task links of a project document")
	commands[linkCmds+" list"] = func() (cli.Command, error) {
		return &ReadCommand[[]tasks.TaskLink]{
			Command:     b,
			Name:        linkCmds + " list",
			Description: "List the task links of a project document",
			Fetch: func(ctx context.Context, doc *tasks.Document, _ int) (cloud.Result[[]tasks.TaskLink], error) {
				return doc.GetLinks(ctx)
			},
		}, nil
	}
	commands[linkCmds+" delete"] = func() (cli.Command, error) {
		return &DeleteCommand{
			Command:     b,
			Name:        linkCmds + " delete",
			Description: "Delete a task link.",
			IDFlag:      "index",
			Delete: func(ctx context.Context, doc *tasks.Document, id int, changedFileName string) (cloud.WriteResult, error) {
				return doc.DeleteLink(ctx, id, changedFileName)
			},
		}, nil
	}

	// Outline codes
	commands[outlineCmds] = group(b, outlineCmds, "Read and change the outline codes of a project document")
	commands[outlineCmds+" list"] = func() (cli.Command, error) {
		return &ReadCommand[tasks.OutlineCodeItems]{
			Command:     b,
			Name:        outlineCmds + " list",
			Description: "List the outline codes of a project document",
			Fetch: func(ctx context.Context, doc *tasks.Document, _ int) (cloud.Result[tasks.OutlineCodeItems], error) {
				return doc.GetOutlineCodes(ctx)
			},
		}, nil
	}
	commands[outlineCmds+" get"] = func() (cli.Command, error) {
		return &ReadCommand[tasks.OutlineCode]{
			Command:     b,
			Name:        outlineCmds + " get",
			Description: "Show a single outline code",
			IDFlag:      "id",
			Fetch: func(ctx context.Context, doc *tasks.Document, id int) (cloud.Result[tasks.OutlineCode], error) {
				return doc.GetOutlineCode(ctx, id)
			},
		}, nil
	}
	commands[outlineCmds+" delete"] = func() (cli.Command, error) {
		return &DeleteCommand{
			Command:     b,
			Name:        outlineCmds + " delete",
			Description: "Delete an outline code.",
			IDFlag:      "id",
			Delete: func(ctx context.Context, doc *tasks.Document, id int, changedFileName string) (cloud.WriteResult, error) {
				return doc.DeleteOutlineCode(ctx, id, changedFileName)
			},
		}, nil
	}

	// Extended attributes
	commands[attrCmds] = group(b, attrCmds, "Read and change the extended attributes of a project document")
	commands[attrCmds+" list"] = func() (cli.Command, error) {
		return &ReadCommand[tasks.ExtendedAttributeItems]{
			Command:     b,
			Name:        attrCmds + " list",
			Description: "List the extended attributes of a project document",
			Fetch: func(ctx context.Context, doc *tasks.Document, _ int) (cloud.Result[tasks.ExtendedAttributeItems], error) {
				return doc.GetExtendedAttributes(ctx)
			},
		}, nil
	}
	commands[attrCmds+" get"] = func() (cli.Command, error) {
		return &ReadCommand[tasks.ExtendedAttribute]{
			Command:     b,
			Name:        attrCmds + " get",
			Description: "Show a single extended attribute",
			IDFlag:      "id",
			Fetch: func(ctx context.Context, doc *tasks.Document, id int) (cloud.Result[tasks.ExtendedAttribute], error) {
				return doc.GetExtendedAttribute(ctx, id)
			},
		}, nil
	}
	commands[attrCmds+" delete"] = func() (cli.Command, error) {
		return &DeleteCommand{
			Command:     b,
			Name:        attrCmds + " delete",
			Description: "Delete an extended attribute.",
			IDFlag:      "id",
			Delete: func(ctx context.Context, doc *tasks.Document, id int, changedFileName string) (cloud.WriteResult, error) {
				return doc.DeleteExtendedAttribute(ctx, id, changedFileName)
			},
		}, nil
	}
}

func group(b *base.Command, name, description string) cli.CommandFactory {
	return func() (cli.Command, error) {
		return &GroupCommand{Command: b, Name: name, Description: description}, nil
	}
}
