package event

import (
	"context"
	"sync"

	"github.com/thj-dnt/clockwork-banker/internal/logger"
)

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Handler processes a published event. Handler errors are logged, never
// propagated to the publisher.
type Handler func(ctx context.Context, e Event) error

// Bus is an in-process publish/subscribe bus. Publish is synchronous so
// that state mutations made by handlers are visible before the publishing
// operation yields control.
type Bus interface {
	Publish(ctx context.Context, e Event)
	Subscribe(t Type, h Handler)
}

type bus struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewBus creates an empty in-process event bus
func NewBus() Bus {
	return &bus{handlers: make(map[Type][]Handler)}
}

// Subscribe registers a handler for an event type
func (b *bus) Subscribe(t Type, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[t] = append(b.handlers[t], h)
}

// Publish delivers the event to every subscriber of its type
func (b *bus) Publish(ctx context.Context, e Event) {
	if e.Version == "" {
		e.Version = EventSchemaVersion
	}

	b.mu.RLock()
	handlers := b.handlers[e.Type]
	b.mu.RUnlock()

	log := logger.FromContext(ctx)
	for _, h := range handlers {
		if err := h(ctx, e); err != nil {
			log.Error("Event handler failed", "type", e.Type, "error", err)
		}
	}
}
