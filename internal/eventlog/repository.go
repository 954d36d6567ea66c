package eventlog

import (
	"context"
	"time"
)

// Entry is one recorded forge event for an item
type Entry struct {
	ID        int64          `json:"id"`
	EventID   string         `json:"event_id,omitempty"`
	EventType string         `json:"event_type"`
	ItemID    int64          `json:"item_id"`
	Payload   map[string]any `json:"payload"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// Filter narrows a history query. Zero fields match everything.
type Filter struct {
	ItemID    *int64
	EventType *string
	Since     *time.Time
	Limit     int
}

// Repository defines the storage for item history
type Repository interface {
	// LogEvent stores an entry. Entries whose EventID was already stored are ignored.
	LogEvent(ctx context.Context, entry Entry) error

	// GetEvents returns matching entries, newest first
	GetEvents(ctx context.Context, filter Filter) ([]Entry, error)

	// CleanupOldEvents removes entries created before cutoff
	CleanupOldEvents(ctx context.Context, cutoff time.Time) (int64, error)
}
