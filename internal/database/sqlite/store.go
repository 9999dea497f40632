// Package sqlite provides a SQLite-backed store for player job records and balances.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/osse101/JobEconomy_Go/internal/database"
	"github.com/osse101/JobEconomy_Go/internal/domain"
	"github.com/osse101/JobEconomy_Go/internal/logger"
	"github.com/osse101/JobEconomy_Go/internal/repository"
)

var pragmas = []string{
	"PRAGMA journal_mode=WAL;",
	"PRAGMA synchronous=NORMAL;",
	"PRAGMA foreign_keys=ON;",
	"PRAGMA busy_timeout=5000;",
}

// Store keeps player job records and balances in a single SQLite file
type Store struct {
	db *sql.DB
}

var (
	_ repository.PlayerJobs = (*Store)(nil)
	_ repository.Ledger     = (*Store)(nil)
)

// Open opens (creating if needed) the database at path and applies migrations
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One writer keeps the read-modify-write deposits serialized
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("sqlite pragma %q: %w", p, err)
		}
	}

	if err := database.Migrate(ctx, db, database.DriverSQLite); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// DB exposes the handle for maintenance commands
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database handle
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func normalizeID(playerID string) (string, error) {
	u, err := uuid.Parse(playerID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidPlayerID, err)
	}
	return u.String(), nil
}

// GetRecord loads the record and stats of a player
func (s *Store) GetRecord(ctx context.Context, playerID string) (*domain.PlayerJobRecord, error) {
	id, err := normalizeID(playerID)
	if err != nil {
		return nil, err
	}

	rec := domain.NewPlayerJobRecord(playerID)
	err = s.db.QueryRowContext(ctx,
		`SELECT current_job, notifications_enabled FROM player_jobs WHERE player_id = ?`, id,
	).Scan(&rec.CurrentJob, &rec.NotificationsEnabled)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get player job record: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT job_name, level, exp FROM player_job_stats WHERE player_id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("get player job stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			job   string
			stats domain.JobStats
		)
		if err := rows.Scan(&job, &stats.Level, &stats.Exp); err != nil {
			return nil, fmt.Errorf("scan player job stats: %w", err)
		}
		rec.Stats[job] = stats
	}
	return rec, rows.Err()
}

// SaveRecord upserts the record and all stats rows in one transaction
func (s *Store) SaveRecord(ctx context.Context, rec *domain.PlayerJobRecord) error {
	id, err := normalizeID(rec.PlayerID)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", database.ErrMsgFailedToBeginTransaction, err)
	}
	defer safeRollback(ctx, tx)

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO player_jobs (player_id, current_job, notifications_enabled, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(player_id) DO UPDATE SET
			current_job = excluded.current_job,
			notifications_enabled = excluded.notifications_enabled,
			updated_at = CURRENT_TIMESTAMP`,
		id, rec.CurrentJob, rec.NotificationsEnabled,
	); err != nil {
		return fmt.Errorf("save player job record: %w", err)
	}

	for job, stats := range rec.Stats {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO player_job_stats (player_id, job_name, level, exp)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(player_id, job_name) DO UPDATE SET
				level = excluded.level,
				exp = excluded.exp`,
			id, job, stats.Level, stats.Exp,
		); err != nil {
			return fmt.Errorf("save player job stats: %w", err)
		}
	}
	return tx.Commit()
}

// Balance returns the stored balance, zero when absent
func (s *Store) Balance(ctx context.Context, playerID, currency string) (decimal.Decimal, error) {
	id, err := normalizeID(playerID)
	if err != nil {
		return decimal.Zero, err
	}
	return balance(ctx, s.db, id, currency)
}

// Deposit adds amount and returns the new balance. Balances are stored as
// decimal strings so no precision is lost.
func (s *Store) Deposit(ctx context.Context, playerID, currency string, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrInvalidAmount, amount)
	}
	id, err := normalizeID(playerID)
	if err != nil {
		return decimal.Zero, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", database.ErrMsgFailedToBeginTransaction, err)
	}
	defer safeRollback(ctx, tx)

	current, err := balance(ctx, tx, id, currency)
	if err != nil {
		return decimal.Zero, err
	}
	next := current.Add(amount)

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO balances (player_id, currency, balance, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(player_id, currency) DO UPDATE SET
			balance = excluded.balance,
			updated_at = CURRENT_TIMESTAMP`,
		id, currency, next.String(),
	); err != nil {
		return decimal.Zero, fmt.Errorf("deposit: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return decimal.Zero, fmt.Errorf("deposit commit: %w", err)
	}
	return next, nil
}

// TopBalances lists the highest balances for currency
func (s *Store) TopBalances(ctx context.Context, currency string, limit int) ([]domain.BalanceEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT player_id, balance FROM balances
		WHERE currency = ?
		ORDER BY CAST(balance AS REAL) DESC, player_id
		LIMIT ?`, currency, limit)
	if err != nil {
		return nil, fmt.Errorf("list balances: %w", err)
	}
	defer rows.Close()

	var entries []domain.BalanceEntry
	for rows.Next() {
		var id, raw string
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scan balance: %w", err)
		}
		bal, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("parse balance for %s: %w", id, err)
		}
		entries = append(entries, domain.BalanceEntry{PlayerID: id, Balance: bal})
	}
	return entries, rows.Err()
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func balance(ctx context.Context, q queryer, id, currency string) (decimal.Decimal, error) {
	var raw string
	err := q.QueryRowContext(ctx,
		`SELECT balance FROM balances WHERE player_id = ? AND currency = ?`, id, currency,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("get balance: %w", err)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse balance: %w", err)
	}
	return d, nil
}

func safeRollback(ctx context.Context, tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logger.FromContext(ctx).Error(database.ErrMsgFailedToRollbackTransaction, "error", err)
	}
}
