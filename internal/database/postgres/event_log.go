package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/JobEconomy_Go/internal/domain"
	"github.com/osse101/JobEconomy_Go/internal/repository"
)

const (
	queryLogEvent = `
		INSERT INTO event_log (event_type, player_id, payload, created_at)
		VALUES ($1, $2, $3::jsonb, $4)`

	queryEventsByPlayer = `
		SELECT id, event_type, payload::text, created_at
		FROM event_log
		WHERE player_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	queryCleanupEvents = `
		DELETE FROM event_log
		WHERE created_at < $1`
)

// EventLogRepository keeps the job history in PostgreSQL
type EventLogRepository struct {
	db *pgxpool.Pool
}

var _ repository.EventLog = (*EventLogRepository)(nil)

// NewEventLogRepository creates a new EventLogRepository
func NewEventLogRepository(db *pgxpool.Pool) *EventLogRepository {
	return &EventLogRepository{db: db}
}

// LogEvent appends one history entry. PlayerID may be empty for global events.
func (r *EventLogRepository) LogEvent(ctx context.Context, entry domain.EventLogEntry) error {
	var player interface{}
	if entry.PlayerID != "" {
		id, err := parsePlayerUUID(entry.PlayerID)
		if err != nil {
			return err
		}
		player = id
	}

	payload, err := json.Marshal(entry.Payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLogEvent, err)
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	if _, err := r.db.Exec(ctx, queryLogEvent, entry.EventType, player, string(payload), entry.CreatedAt); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLogEvent, err)
	}
	return nil
}

// EventsByPlayer returns a player's newest history entries
func (r *EventLogRepository) EventsByPlayer(ctx context.Context, playerID string, limit int) ([]domain.EventLogEntry, error) {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, queryEventsByPlayer, id, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListEvents, err)
	}
	defer rows.Close()

	var entries []domain.EventLogEntry
	for rows.Next() {
		e := domain.EventLogEntry{PlayerID: id.String()}
		var payload string
		if err := rows.Scan(&e.ID, &e.EventType, &payload, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListEvents, err)
		}
		if err := json.Unmarshal([]byte(payload), &e.Payload); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListEvents, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListEvents, err)
	}
	return entries, nil
}

// CleanupOldEvents deletes entries created before cutoff
func (r *EventLogRepository) CleanupOldEvents(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, queryCleanupEvents, cutoff)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCleanupEvents, err)
	}
	return tag.RowsAffected(), nil
}
