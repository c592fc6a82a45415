package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/hashicorp-forge/taskcloud/pkg/cloud"
	"github.com/hashicorp/go-hclog"
)

// CommandProcessor signs and dispatches commands. *cloud.Client implements it.
type CommandProcessor interface {
	BaseURL() string
	ProcessCommand(ctx context.Context, cmd cloud.Command) (*cloud.Response, error)
}

// FileSaver fetches a stored document and saves it, returning where it was
// saved. *storage.Materializer implements it.
type FileSaver interface {
	SaveFile(ctx context.Context, name string) (string, error)
}

// ErrNoFileSaver is returned by write operations on a Document created
// without a FileSaver.
var ErrNoFileSaver = errors.New("no file saver configured")

// Document is a handle on a project document held by the remote storage
// service. Write operations given a changed file name rebind the handle to
// that name once the server reports success.
type Document struct {
	client CommandProcessor
	saver  FileSaver
	logger hclog.Logger

	mu   sync.RWMutex
	name string
}

// NewDocument creates a handle on the stored document name.
func NewDocument(client CommandProcessor, saver FileSaver, name string, logger hclog.Logger) *Document {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Document{
		client: client,
		saver:  saver,
		logger: logger.Named("tasks"),
		name:   name,
	}
}

// Name returns the stored document name the handle is bound to.
func (d *Document) Name() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.name
}

// SetName rebinds the handle to another stored document.
func (d *Document) SetName(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.name = name
}

// uri builds <base>/tasks/<name>/<segments...> for the current name.
func (d *Document) uri(segments ...string) (*cloud.URI, string, error) {
	name := d.Name()
	uri, err := cloud.DocumentURI(d.client.BaseURL(), name, segments...)
	if err != nil {
		return nil, "", err
	}
	return uri, name, nil
}

// read runs a GET and decodes the envelope into env. It returns the key
// member of the envelope as sent. A payload field whose type does not match
// env is logged and left zero; the rest of the payload still decodes.
func (d *Document) read(ctx context.Context, uri *cloud.URI, name, key string, env cloud.Enveloped) (json.RawMessage, error) {
	resp, err := d.client.ProcessCommand(ctx, cloud.Command{
		Method:   http.MethodGet,
		URI:      uri,
		Document: name,
	})
	if err != nil {
		return nil, err
	}

	if err := cloud.DecodeEnvelope(resp.Body, env); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) || typeErr.Field == "" {
			return nil, err
		}
		d.logger.Warn("payload field does not match schema",
			"document", name,
			"field", typeErr.Field,
			"value", typeErr.Value,
		)
	}

	if h := env.Header(); h.Code != http.StatusOK {
		d.logger.Debug("envelope not ok", "document", name, "code", h.Code, "status", h.Status)
	}
	return cloud.PayloadField(resp.Body, key), nil
}

// write runs a mutating command. changedFileName, when set, is sent as the
// last query parameter. On success the stored document is fetched under its
// (possibly new) name and saved.
func (d *Document) write(ctx context.Context, method string, uri *cloud.URI, name, changedFileName string) (cloud.WriteResult, error) {
	uri.QueryIf("fileName", changedFileName)

	resp, err := d.client.ProcessCommand(ctx, cloud.Command{
		Method:   method,
		URI:      uri,
		Document: name,
	})
	if err != nil {
		return cloud.WriteResult{}, err
	}

	if msg := cloud.ValidateOutput(resp.Body); msg != "" {
		d.logger.Warn("command not applied", "document", name, "method", method, "message", msg)
		return cloud.WriteResult{Message: msg}, nil
	}

	if changedFileName != "" {
		d.SetName(changedFileName)
		name = changedFileName
	}

	if d.saver == nil {
		return cloud.WriteResult{}, ErrNoFileSaver
	}

	path, err := d.saver.SaveFile(ctx, name)
	if err != nil {
		return cloud.WriteResult{}, fmt.Errorf("failed to save document %q: %w", name, err)
	}

	return cloud.WriteResult{Path: path}, nil
}

func itoa(id int) string {
	return strconv.Itoa(id)
}
