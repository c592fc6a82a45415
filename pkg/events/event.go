package events

import (
	"time"

	"github.com/google/uuid"
)

// EventTypeDocumentMutated is set on every DocumentMutated record.
const EventTypeDocumentMutated = "document.mutated"

// DocumentMutated is published after a command changed a stored document.
type DocumentMutated struct {
	ID         uuid.UUID `json:"id"`
	RequestID  string    `json:"requestId"`
	Document   string    `json:"document"`
	Method     string    `json:"method"`
	URI        string    `json:"uri"` // unsigned
	StatusCode int       `json:"statusCode"`
	OccurredAt time.Time `json:"occurredAt"`
}
