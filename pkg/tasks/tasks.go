package tasks

import (
	"context"
	"net/http"

	"github.com/hashicorp-forge/taskcloud/pkg/cloud"
)

// GetTasks lists the tasks of the document.
func (d *Document) GetTasks(ctx context.Context) (cloud.Result[[]TaskItem], error) {
	uri, name, err := d.uri(SubresourceTasks)
	if err != nil {
		return cloud.Result[[]TaskItem]{}, err
	}

	var env TaskItemsResponse
	raw, err := d.read(ctx, uri, name, "Tasks", &env)
	if err != nil {
		return cloud.Result[[]TaskItem]{}, err
	}

	return cloud.NewResult(env.Tasks.TaskItem, env.Header()).WithRaw(raw), nil
}

// GetTask returns a single task.
func (d *Document) GetTask(ctx context.Context, taskID int) (cloud.Result[Task], error) {
	uri, name, err := d.uri(SubresourceTasks, itoa(taskID))
	if err != nil {
		return cloud.Result[Task]{}, err
	}
	if err := cloud.RequireID("taskId", taskID); err != nil {
		return cloud.Result[Task]{}, err
	}

	var env TaskResponse
	raw, err := d.read(ctx, uri, name, "Task", &env)
	if err != nil {
		return cloud.Result[Task]{}, err
	}

	return cloud.NewResult(env.Task, env.Header()).WithRaw(raw), nil
}

// AddTask adds a task named taskName before the task beforeTaskID.
func (d *Document) AddTask(ctx context.Context, taskName string, beforeTaskID int, changedFileName string) (cloud.WriteResult, error) {
	uri, name, err := d.uri(SubresourceTasks)
	if err != nil {
		return cloud.WriteResult{}, err
	}
	if err := cloud.RequireString("taskName", taskName); err != nil {
		return cloud.WriteResult{}, err
	}
	if err := cloud.RequireID("beforeTaskId", beforeTaskID); err != nil {
		return cloud.WriteResult{}, err
	}

	uri.Query("taskName", taskName).Query("beforeTaskId", itoa(beforeTaskID))

	return d.write(ctx, http.MethodPost, uri, name, changedFileName)
}

// DeleteTask removes a task.
func (d *Document) DeleteTask(ctx context.Context, taskID int, changedFileName string) (cloud.WriteResult, error) {
	uri, name, err := d.uri(SubresourceTasks, itoa(taskID))
	if err != nil {
		return cloud.WriteResult{}, err
	}
	if err := cloud.RequireID("taskId", taskID); err != nil {
		return cloud.WriteResult{}, err
	}

	return d.write(ctx, http.MethodDelete, uri, name, changedFileName)
}
