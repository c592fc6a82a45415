package journal

import (
	"time"

	"github.com/google/uuid"
)

// Entry records one dispatched command.
type Entry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RequestID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"requestId"`
	Method    string    `gorm:"type:varchar(10);not null" json:"method"`
	URI       string    `gorm:"type:text;not null" json:"uri"` // unsigned
	Document  string    `gorm:"type:varchar(500);index:idx_command_journal_document" json:"document,omitempty"`

	// Outcome
	Status     string `gorm:"type:varchar(20);not null" json:"status"` // 'ok', 'failed'
	StatusCode int    `json:"statusCode,omitempty"`
	Error      string `gorm:"type:text" json:"error,omitempty"`
	ElapsedMs  int64  `json:"elapsedMs"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName specifies the table name.
func (Entry) TableName() string {
	return "command_journal"
}

// Entry status constants
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)
