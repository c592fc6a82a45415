package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp-forge/taskcloud/pkg/cloud"
)

// CommandProcessor is the part of cloud.Client the storage folder needs.
type CommandProcessor interface {
	BaseURL() string
	ProcessCommand(ctx context.Context, cmd cloud.Command) (*cloud.Response, error)
}

// Folder reads files held by the remote storage service.
type Folder struct {
	client CommandProcessor
}

// NewFolder creates a storage folder backed by client.
func NewFolder(client CommandProcessor) *Folder {
	return &Folder{client: client}
}

// GetFile downloads the current content of the stored file name.
func (f *Folder) GetFile(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := cloud.RequireString("fileName", name); err != nil {
		return nil, err
	}

	uri := cloud.NewURI(f.client.BaseURL()).Segment("storage", "file", name)

	resp, err := f.client.ProcessCommand(ctx, cloud.Command{
		Method:   http.MethodGet,
		URI:      uri,
		Document: name,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get file %q: %w", name, err)
	}

	// Storage answers with a JSON envelope when the file cannot be read.
	if resp.StatusCode != http.StatusOK {
		var env cloud.EnvelopeHeader
		if err := cloud.DecodeEnvelope(resp.Body, &env); err != nil {
			env.Code = resp.StatusCode
		}
		return nil, fmt.Errorf("failed to get file %q: %w", name, &cloud.EnvelopeError{Code: env.Code, Status: env.Status})
	}

	return io.NopCloser(bytes.NewReader(resp.Body)), nil
}
