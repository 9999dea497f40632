package repository

import (
	"context"

	"github.com/osse101/JobEconomy_Go/internal/domain"
)

// PlayerJobs defines the data access interface for per-player job state
type PlayerJobs interface {
	// GetRecord returns domain.ErrRecordNotFound when the player was never saved
	GetRecord(ctx context.Context, playerID string) (*domain.PlayerJobRecord, error)
	SaveRecord(ctx context.Context, record *domain.PlayerJobRecord) error
	Close() error
}
