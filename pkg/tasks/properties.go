package tasks

import (
	"context"

	"github.com/hashicorp-forge/taskcloud/pkg/cloud"
)

// GetProperties returns the document properties.
func (d *Document) GetProperties(ctx context.Context) (cloud.Result[[]Property], error) {
	uri, name, err := d.uri(SubresourceProperties)
	if err != nil {
		return cloud.Result[[]Property]{}, err
	}

	var env PropertiesResponse
	raw, err := d.read(ctx, uri, name, "Properties", &env)
	if err != nil {
		return cloud.Result[[]Property]{}, err
	}

	return cloud.NewResult(env.Properties.List, env.Header()).WithRaw(raw), nil
}
