package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/JobEconomy_Go/internal/database"
	"github.com/osse101/JobEconomy_Go/internal/domain"
	"github.com/osse101/JobEconomy_Go/internal/repository"
)

const (
	queryGetRecord = `
		SELECT current_job, notifications_enabled
		FROM player_jobs
		WHERE player_id = $1`

	queryGetStats = `
		SELECT job_name, level, exp
		FROM player_job_stats
		WHERE player_id = $1`

	queryUpsertRecord = `
		INSERT INTO player_jobs (player_id, current_job, notifications_enabled, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (player_id) DO UPDATE
		SET current_job = EXCLUDED.current_job,
		    notifications_enabled = EXCLUDED.notifications_enabled,
		    updated_at = NOW()`

	queryUpsertStats = `
		INSERT INTO player_job_stats (player_id, job_name, level, exp)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (player_id, job_name) DO UPDATE
		SET level = EXCLUDED.level,
		    exp = EXCLUDED.exp`
)

// PlayerJobRepository stores player job records in PostgreSQL
type PlayerJobRepository struct {
	db *pgxpool.Pool
}

var _ repository.PlayerJobs = (*PlayerJobRepository)(nil)

// NewPlayerJobRepository creates a new PlayerJobRepository
func NewPlayerJobRepository(db *pgxpool.Pool) *PlayerJobRepository {
	return &PlayerJobRepository{db: db}
}

// GetRecord loads the record and all per-job stats of a player
func (r *PlayerJobRepository) GetRecord(ctx context.Context, playerID string) (*domain.PlayerJobRecord, error) {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	rec := domain.NewPlayerJobRecord(playerID)
	err = r.db.QueryRow(ctx, queryGetRecord, id).Scan(&rec.CurrentJob, &rec.NotificationsEnabled)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRecord, err)
	}

	rows, err := r.db.Query(ctx, queryGetStats, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetStats, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			job   string
			stats domain.JobStats
		)
		if err := rows.Scan(&job, &stats.Level, &stats.Exp); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetStats, err)
		}
		rec.Stats[job] = stats
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetStats, err)
	}
	return rec, nil
}

// SaveRecord upserts the record and every stats row in one transaction.
// Stats rows are never deleted.
func (r *PlayerJobRepository) SaveRecord(ctx context.Context, rec *domain.PlayerJobRecord) error {
	id, err := parsePlayerUUID(rec.PlayerID)
	if err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", database.ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	if _, err := tx.Exec(ctx, queryUpsertRecord, id, rec.CurrentJob, rec.NotificationsEnabled); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveRecord, err)
	}

	batch := &pgx.Batch{}
	for job, stats := range rec.Stats {
		batch.Queue(queryUpsertStats, id, job, stats.Level, stats.Exp)
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToSaveStats, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommit, err)
	}
	return nil
}

// Close is a no-op; the pool is owned by the caller
func (r *PlayerJobRepository) Close() error {
	return nil
}
