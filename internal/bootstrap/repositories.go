package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/osse101/JobEconomy_Go/internal/config"
	"github.com/osse101/JobEconomy_Go/internal/database"
	"github.com/osse101/JobEconomy_Go/internal/database/cache"
	"github.com/osse101/JobEconomy_Go/internal/database/filestore"
	"github.com/osse101/JobEconomy_Go/internal/database/postgres"
	"github.com/osse101/JobEconomy_Go/internal/database/sqlite"
	"github.com/osse101/JobEconomy_Go/internal/handler"
	"github.com/osse101/JobEconomy_Go/internal/repository"
)

// Repositories holds the player record and ledger stores selected by
// STORE_DRIVER. PlayerJobs is always fronted by the record cache.
type Repositories struct {
	PlayerJobs repository.PlayerJobs
	Ledger     repository.Ledger
	// EventLog is nil for the file driver
	EventLog repository.EventLog
	// Check reports store reachability for /readyz
	Check handler.HealthCheck

	closers []func() error
}

// InitializeRepositories opens the configured store, applying migrations
// for SQL drivers
func InitializeRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	var (
		jobs   repository.PlayerJobs
		ledger repository.Ledger
		r      = &Repositories{}
	)

	switch cfg.StoreDriver {
	case database.DriverFile:
		store, err := filestore.Open(cfg.AccountsPath())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgOpenStore, err)
		}
		jobs, ledger = store, store
		r.Check = func(context.Context) error {
			_, err := os.Stat(store.Path())
			if errors.Is(err, os.ErrNotExist) {
				return nil
			}
			return err
		}
		slog.Info(LogMsgStoreOpened, "driver", cfg.StoreDriver, "path", store.Path())

	case database.DriverSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgOpenStore, err)
		}
		jobs, ledger = store, store
		r.EventLog = store
		r.Check = store.DB().PingContext
		slog.Info(LogMsgStoreOpened, "driver", cfg.StoreDriver, "path", cfg.SQLitePath)

	case database.DriverPostgres:
		pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgOpenStore, err)
		}
		if err := MigratePostgres(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		jobs = postgres.NewPlayerJobRepository(pool)
		ledger = postgres.NewLedgerRepository(pool)
		r.EventLog = postgres.NewEventLogRepository(pool)
		r.Check = pool.Ping
		r.closers = append(r.closers, func() error { pool.Close(); return nil })
		slog.Info(LogMsgStoreOpened, "driver", cfg.StoreDriver, "host", cfg.DBHost, "database", cfg.DBName)

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStoreDriver, cfg.StoreDriver)
	}

	cached := cache.NewPlayerJobs(jobs, cfg.PlayerCacheSize, cfg.PlayerCacheTTL)
	r.PlayerJobs = cached
	r.Ledger = ledger
	// The cache closes the wrapped store; pools close after it
	r.closers = append([]func() error{cached.Close}, r.closers...)
	return r, nil
}

// MigratePostgres applies the embedded migrations through the pool
func MigratePostgres(ctx context.Context, pool *pgxpool.Pool) error {
	// The pool owns the connections; the sql.DB view is only a goose adapter
	db := stdlib.OpenDBFromPool(pool)
	if err := database.Migrate(ctx, db, database.DriverPostgres); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgMigrate, err)
	}
	return nil
}

// Close releases every store in order, returning all failures
func (r *Repositories) Close() error {
	var errs []error
	for _, c := range r.closers {
		if err := c(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
