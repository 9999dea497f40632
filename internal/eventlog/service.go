// Package eventlog keeps a per-player history of job changes, level ups
// and salary payouts.
package eventlog

import (
	"context"
	"time"

	"github.com/osse101/JobEconomy_Go/internal/domain"
	"github.com/osse101/JobEconomy_Go/internal/event"
	"github.com/osse101/JobEconomy_Go/internal/logger"
	"github.com/osse101/JobEconomy_Go/internal/repository"
)

// LoggedEventTypes are the bus events written to the history
var LoggedEventTypes = []event.Type{
	event.JobChanged,
	event.JobLevelUp,
	event.SalaryPaid,
	event.CatalogReloaded,
}

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger for LoggedEventTypes
	Subscribe(bus event.Bus)

	// History returns a player's newest entries first
	History(ctx context.Context, playerID string, limit int) ([]domain.EventLogEntry, error)

	// CleanupOldEvents removes entries older than retention
	CleanupOldEvents(ctx context.Context, retention time.Duration) (int64, error)
}

type service struct {
	repo repository.EventLog
	now  func() time.Time
}

// NewService creates a new event logging service
func NewService(repo repository.EventLog) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Subscribe(bus event.Bus) {
	for _, eventType := range LoggedEventTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}
}

// handleEvent stores the event. Failures are logged only; returning them
// would make the publisher redeliver the event to every subscriber.
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[map[string]interface{}](evt.Payload)
	if err != nil || payload == nil {
		log.Debug(LogMsgEventPayloadNotMap, "type", evt.Type)
		return nil
	}

	entry := domain.EventLogEntry{
		EventType: string(evt.Type),
		Payload:   payload,
		CreatedAt: s.now(),
	}
	if pid, ok := payload[PayloadKeyPlayerID].(string); ok {
		entry.PlayerID = pid
	}

	if err := s.repo.LogEvent(ctx, entry); err != nil {
		log.Error(LogMsgFailedToLogEvent, "error", err, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgEventLogged, "type", evt.Type, "player_id", entry.PlayerID)
	return nil
}

func (s *service) History(ctx context.Context, playerID string, limit int) ([]domain.EventLogEntry, error) {
	playerID, err := domain.NormalizePlayerID(playerID)
	if err != nil {
		return nil, err
	}
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}

	entries, err := s.repo.EventsByPlayer(ctx, playerID, limit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.EventLogEntry{}
	}
	return entries, nil
}

func (s *service) CleanupOldEvents(ctx context.Context, retention time.Duration) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, s.now().Add(-retention))
}
