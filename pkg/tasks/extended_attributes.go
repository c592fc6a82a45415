package tasks

import (
	"context"
	"net/http"

	"github.com/hashicorp-forge/taskcloud/pkg/cloud"
)

// GetExtendedAttributes lists the extended attributes of the document.
func (d *Document) GetExtendedAttributes(ctx context.Context) (cloud.Result[ExtendedAttributeItems], error) {
	uri, name, err := d.uri(SubresourceExtendedAttributes)
	if err != nil {
		return cloud.Result[ExtendedAttributeItems]{}, err
	}

	var env ExtendedAttributesResponse
	raw, err := d.read(ctx, uri, name, "ExtendedAttributes", &env)
	if err != nil {
		return cloud.Result[ExtendedAttributeItems]{}, err
	}

	return cloud.NewResult(env.ExtendedAttributes, env.Header()).WithRaw(raw), nil
}

// GetExtendedAttribute returns a single extended attribute.
func (d *Document) GetExtendedAttribute(ctx context.Context, extendedAttributeID int) (cloud.Result[ExtendedAttribute], error) {
	uri, name, err := d.uri(SubresourceExtendedAttributes, itoa(extendedAttributeID))
	if err != nil {
		return cloud.Result[ExtendedAttribute]{}, err
	}
	if err := cloud.RequireID("extendedAttributeId", extendedAttributeID); err != nil {
		return cloud.Result[ExtendedAttribute]{}, err
	}

	var env ExtendedAttributeResponse
	raw, err := d.read(ctx, uri, name, "ExtendedAttribute", &env)
	if err != nil {
		return cloud.Result[ExtendedAttribute]{}, err
	}

	return cloud.NewResult(env.ExtendedAttribute, env.Header()).WithRaw(raw), nil
}

// DeleteExtendedAttribute removes an extended attribute.
func (d *Document) DeleteExtendedAttribute(ctx context.Context, extendedAttributeID int, changedFileName string) (cloud.WriteResult, error) {
	uri, name, err := d.uri(SubresourceExtendedAttributes, itoa(extendedAttributeID))
	if err != nil {
		return cloud.WriteResult{}, err
	}
	if err := cloud.RequireID("extendedAttributeId", extendedAttributeID); err != nil {
		return cloud.WriteResult{}, err
	}

	return d.write(ctx, http.MethodDelete, uri, name, changedFileName)
}
