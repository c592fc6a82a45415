package tasks

import (
	"context"
	"net/http"

	"github.com/hashicorp-forge/taskcloud/pkg/cloud"
)

// GetLinks lists the task links of the document.
func (d *Document) GetLinks(ctx context.Context) (cloud.Result[[]TaskLink], error) {
	uri, name, err := d.uri(SubresourceTaskLinks)
	if err != nil {
		return cloud.Result[[]TaskLink]{}, err
	}

	var env TaskLinksResponse
	raw, err := d.read(ctx, uri, name, "TaskLinks", &env)
	if err != nil {
		return cloud.Result[[]TaskLink]{}, err
	}

	return cloud.NewResult(env.TaskLinks, env.Header()).WithRaw(raw), nil
}

// DeleteLink removes the task link at index.
func (d *Document) DeleteLink(ctx context.Context, index int, changedFileName string) (cloud.WriteResult, error) {
	uri, name, err := d.uri(SubresourceTaskLinks, itoa(index))
	if err != nil {
		return cloud.WriteResult{}, err
	}
	if err := cloud.RequireID("index", index); err != nil {
		return cloud.WriteResult{}, err
	}

	return d.write(ctx, http.MethodDelete, uri, name, changedFileName)
}
