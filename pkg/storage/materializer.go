package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
)

// FileFetcher downloads stored files.
type FileFetcher interface {
	GetFile(ctx context.Context, name string) (io.ReadCloser, error)
}

// Materializer fetches a stored document after a mutation and saves it to a
// sink.
type Materializer struct {
	fetcher FileFetcher
	sink    Sink
	logger  hclog.Logger
}

// NewMaterializer creates a Materializer.
func NewMaterializer(fetcher FileFetcher, sink Sink, logger hclog.Logger) *Materializer {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Materializer{
		fetcher: fetcher,
		sink:    sink,
		logger:  logger.Named("materializer"),
	}
}

// SaveFile fetches name from storage and saves it, returning its location.
func (m *Materializer) SaveFile(ctx context.Context, name string) (string, error) {
	rc, err := m.fetcher.GetFile(ctx, name)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	location, err := m.sink.Save(ctx, name, rc)
	if err != nil {
		return "", fmt.Errorf("failed to save %q: %w", name, err)
	}

	m.logger.Info("document saved", "document", name, "location", location)
	return location, nil
}
