package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
)

// Sink persists a fetched document and returns where it ended up.
type Sink interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}

// LocalSink writes documents to <dir>/<name> on a filesystem.
type LocalSink struct {
	fs     afero.Fs
	dir    string
	logger hclog.Logger
}

// NewLocalSink creates a sink rooted at dir. A nil fs means the OS filesystem.
func NewLocalSink(fs afero.Fs, dir string, logger hclog.Logger) *LocalSink {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &LocalSink{
		fs:     fs,
		dir:    dir,
		logger: logger.Named("local-sink"),
	}
}

// Dir returns the output directory.
func (s *LocalSink) Dir() string {
	return s.dir
}

// Save writes r to <dir>/<name>, creating dir if needed.
func (s *LocalSink) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	path := filepath.Join(s.dir, name)

	rel, err := filepath.Rel(filepath.Clean(s.dir), path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("file name %q escapes output directory %q", name, s.dir)
	}

	if err := s.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := afero.WriteReader(s.fs, path, r); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	s.logger.Debug("saved document", "path", path)
	return path, nil
}
