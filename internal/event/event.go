package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/JobEconomy_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Event types published on the bus
const (
	ActionPerformed    = Type(domain.EventTypeActionPerformed)
	RewardPaid         = Type(domain.EventTypeRewardPaid)
	ExpGained          = Type(domain.EventTypeExpGained)
	JobLevelUp         = Type(domain.EventTypeJobLevelUp)
	JobChanged         = Type(domain.EventTypeJobChanged)
	SalaryPaid         = Type(domain.EventTypeSalaryPaid)
	SalaryTickComplete = Type(domain.EventTypeSalaryTickComplete)
	CatalogReloaded    = Type(domain.EventTypeCatalogReloaded)
	PlayerConnected    = Type(domain.EventTypePlayerConnected)
	PlayerDisconnected = Type(domain.EventTypePlayerDisconnected)
)

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Publisher publishes events
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus defines the interface for an event bus
type Bus interface {
	Publisher
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

// Publish runs every subscriber synchronously. A failing handler does not
// stop the others; all errors are reported together.
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

// Subscribe registers a handler for an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
