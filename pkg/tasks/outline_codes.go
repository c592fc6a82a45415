package tasks

import (
	"context"
	"net/http"

	"github.com/hashicorp-forge/taskcloud/pkg/cloud"
)

// GetOutlineCodes lists the outline codes of the document.
func (d *Document) GetOutlineCodes(ctx context.Context) (cloud.Result[OutlineCodeItems], error) {
	uri, name, err := d.uri(SubresourceOutlineCodes)
	if err != nil {
		return cloud.Result[OutlineCodeItems]{}, err
	}

	var env OutlineCodesResponse
	raw, err := d.read(ctx, uri, name, "OutlineCodes", &env)
	if err != nil {
		return cloud.Result[OutlineCodeItems]{}, err
	}

	return cloud.NewResult(env.OutlineCodes, env.Header()).WithRaw(raw), nil
}

// GetOutlineCode returns a single outline code.
func (d *Document) GetOutlineCode(ctx context.Context, outlineCodeID int) (cloud.Result[OutlineCode], error) {
	uri, name, err := d.uri(SubresourceOutlineCodes, itoa(outlineCodeID))
	if err != nil {
		return cloud.Result[OutlineCode]{}, err
	}
	if err := cloud.RequireID("outlineCodeId", outlineCodeID); err != nil {
		return cloud.Result[OutlineCode]{}, err
	}

	var env OutlineCodeResponse
	raw, err := d.read(ctx, uri, name, "OutlineCode", &env)
	if err != nil {
		return cloud.Result[OutlineCode]{}, err
	}

	return cloud.NewResult(env.OutlineCode, env.Header()).WithRaw(raw), nil
}

// DeleteOutlineCode removes an outline code.
func (d *Document) DeleteOutlineCode(ctx context.Context, outlineCodeID int, changedFileName string) (cloud.WriteResult, error) {
	uri, name, err := d.uri(SubresourceOutlineCodes, itoa(outlineCodeID))
	if err != nil {
		return cloud.WriteResult{}, err
	}
	if err := cloud.RequireID("outlineCodeId", outlineCodeID); err != nil {
		return cloud.WriteResult{}, err
	}

	return d.write(ctx, http.MethodDelete, uri, name, changedFileName)
}
