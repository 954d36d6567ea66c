package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]any

// Event represents a generic event in the system
type Event struct {
	Version  string   `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type     `json:"type"`
	Payload  any      `json:"payload"`
	Metadata Metadata `json:"metadata,omitempty"`
}

// New builds an event at the current schema version with a fresh event id.
func New(eventType Type, payload any) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     eventType,
		Payload:  payload,
		Metadata: Metadata{MetadataKeyEventID: uuid.NewString()},
	}
}

// WithMetadata returns a copy of the event with key set in its metadata.
func (e Event) WithMetadata(key string, value any) Event {
	md := make(Metadata, len(e.Metadata)+1)
	for k, v := range e.Metadata {
		md[k] = v
	}
	md[key] = value
	e.Metadata = md
	return e
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) any {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// ID returns the event id assigned by New, or "".
func (e Event) ID() string {
	id, _ := e.GetMetadataValue(MetadataKeyEventID).(string)
	return id
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
