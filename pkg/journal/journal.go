package journal

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"gorm.io/gorm"

	"github.com/hashicorp-forge/taskcloud/pkg/cloud"
	"github.com/hashicorp-forge/taskcloud/pkg/database"
)

// Journal persists every dispatched command. It is a cloud.CommandHook.
type Journal struct {
	db     *gorm.DB
	logger hclog.Logger

	mu      sync.Mutex
	started map[string]time.Time
}

var _ cloud.CommandHook = (*Journal)(nil)

// Open connects to the database described by cfg, migrates the journal table
// and returns a Journal on top of it.
func Open(cfg database.Config, logger hclog.Logger) (*Journal, error) {
	db, err := database.Connect(cfg, logger)
	if err != nil {
		return nil, err
	}

	j := New(db, logger)
	if err := j.Migrate(); err != nil {
		return nil, err
	}
	return j, nil
}

// New creates a Journal on an open database.
func New(db *gorm.DB, logger hclog.Logger) *Journal {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Journal{
		db:      db,
		logger:  logger.Named("journal"),
		started: make(map[string]time.Time),
	}
}

// Migrate creates or updates the journal table.
func (j *Journal) Migrate() error {
	if err := j.db.AutoMigrate(&Entry{}); err != nil {
		return fmt.Errorf("failed to migrate command journal: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	sqlDB, err := j.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// BeforeCommand notes when the command started, for commands that fail
// before a response exists.
func (j *Journal) BeforeCommand(ctx context.Context, req *cloud.Request) {
	j.mu.Lock()
	j.started[req.RequestID] = time.Now()
	j.mu.Unlock()
}

// AfterCommand writes the journal entry. Write failures are logged.
func (j *Journal) AfterCommand(ctx context.Context, req *cloud.Request, resp *cloud.Response, err error) {
	j.mu.Lock()
	start, ok := j.started[req.RequestID]
	delete(j.started, req.RequestID)
	j.mu.Unlock()

	entry := Entry{
		RequestID: parseRequestID(req.RequestID),
		Method:    req.Method,
		URI:       req.URI,
		Document:  req.Document,
		Status:    StatusOK,
	}

	switch {
	case err != nil:
		entry.Status = StatusFailed
		entry.Error = err.Error()
		if ok {
			entry.ElapsedMs = time.Since(start).Milliseconds()
		}
	default:
		entry.StatusCode = resp.StatusCode
		entry.ElapsedMs = resp.Elapsed.Milliseconds()
		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			entry.Status = StatusFailed
		} else if req.Method != http.MethodGet && !cloud.Mutated(req, resp) {
			// Writes are rejected with a 2xx carrying the server's message.
			entry.Status = StatusFailed
			entry.Error = cloud.ValidateOutput(resp.Body)
		}
	}

	if err := j.db.WithContext(ctx).Create(&entry).Error; err != nil {
		j.logger.Error("failed to write journal entry",
			"request_id", req.RequestID,
			"error", err,
		)
	}
}

// Recent returns the latest limit entries, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Entry, error) {
	var entries []Entry
	if err := j.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return entries, nil
}

// ForDocument returns the latest limit entries for a document, newest first.
func (j *Journal) ForDocument(ctx context.Context, document string, limit int) ([]Entry, error) {
	var entries []Entry
	if err := j.db.WithContext(ctx).
		Where("document = ?", document).
		Order("id DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list journal entries for %q: %w", document, err)
	}
	return entries, nil
}

// parseRequestID returns the request ID as a UUID, or a fresh one when the
// dispatcher was given something else.
func parseRequestID(id string) uuid.UUID {
	if parsed, err := uuid.Parse(id); err == nil {
		return parsed
	}
	return uuid.New()
}
