package repository

import (
	"context"
	"time"

	"github.com/osse101/JobEconomy_Go/internal/domain"
)

// EventLog stores job history events
type EventLog interface {
	LogEvent(ctx context.Context, entry domain.EventLogEntry) error
	// EventsByPlayer returns the newest entries first
	EventsByPlayer(ctx context.Context, playerID string, limit int) ([]domain.EventLogEntry, error)
	// CleanupOldEvents deletes entries created before cutoff
	CleanupOldEvents(ctx context.Context, cutoff time.Time) (int64, error)
}
