package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/JobEconomy_Go/internal/config"
	"github.com/osse101/JobEconomy_Go/internal/event"
)

// EventSystem is the in-process bus and the retrying publisher in front of it
type EventSystem struct {
	Bus        *event.MemoryBus
	Publisher  *event.ResilientPublisher
	DeadLetter *event.DeadLetterWriter
}

// InitializeEventSystem creates the event bus and a resilient publisher
// that dead-letters events to cfg.DeadLetterPath() once retries run out
func InitializeEventSystem(cfg *config.Config) (*EventSystem, error) {
	bus := event.NewMemoryBus()

	deadLetter, err := event.NewDeadLetterWriter(cfg.DeadLetterPath())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetter, err)
	}

	publisher := event.NewResilientPublisher(bus, event.ResilientConfig{
		MaxRetries: cfg.EventMaxRetries,
		RetryDelay: cfg.EventRetryDelay,
	}, deadLetter)

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", cfg.EventMaxRetries,
		"retry_delay", cfg.EventRetryDelay,
		"deadletter_path", cfg.DeadLetterPath())

	return &EventSystem{Bus: bus, Publisher: publisher, DeadLetter: deadLetter}, nil
}
