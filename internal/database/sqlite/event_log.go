package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/osse101/JobEconomy_Go/internal/domain"
	"github.com/osse101/JobEconomy_Go/internal/repository"
)

var _ repository.EventLog = (*Store)(nil)

// LogEvent appends one history entry. PlayerID may be empty for global events.
func (s *Store) LogEvent(ctx context.Context, entry domain.EventLogEntry) error {
	var player sql.NullString
	if entry.PlayerID != "" {
		id, err := normalizeID(entry.PlayerID)
		if err != nil {
			return err
		}
		player = sql.NullString{String: id, Valid: true}
	}

	payload, err := json.Marshal(entry.Payload)
	if err != nil {
		return fmt.Errorf("encode event payload: %w", err)
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO event_log (event_type, player_id, payload, created_at) VALUES (?, ?, ?, ?)`,
		entry.EventType, player, string(payload), entry.CreatedAt.UnixMilli(),
	); err != nil {
		return fmt.Errorf("log event: %w", err)
	}
	return nil
}

// EventsByPlayer returns a player's newest history entries
func (s *Store) EventsByPlayer(ctx context.Context, playerID string, limit int) ([]domain.EventLogEntry, error) {
	id, err := normalizeID(playerID)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, event_type, payload, created_at FROM event_log
		WHERE player_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, id, limit)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var entries []domain.EventLogEntry
	for rows.Next() {
		var (
			e       = domain.EventLogEntry{PlayerID: id}
			payload string
			millis  int64
		)
		if err := rows.Scan(&e.ID, &e.EventType, &payload, &millis); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		if err := json.Unmarshal([]byte(payload), &e.Payload); err != nil {
			return nil, fmt.Errorf("decode event %d payload: %w", e.ID, err)
		}
		e.CreatedAt = time.UnixMilli(millis).UTC()
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CleanupOldEvents deletes entries created before cutoff
func (s *Store) CleanupOldEvents(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM event_log WHERE created_at < ?`, cutoff.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("cleanup events: %w", err)
	}
	return res.RowsAffected()
}
