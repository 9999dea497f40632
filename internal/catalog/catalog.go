package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"sync/atomic"

	"github.com/osse101/JobEconomy_Go/internal/domain"
	"github.com/osse101/JobEconomy_Go/internal/logger"
)

// Catalog serves job definitions and rewards from the current snapshot.
// Load and Reload publish a new snapshot atomically; a failed reload keeps
// the previous one.
type Catalog struct {
	store   Store
	current atomic.Pointer[Snapshot]
	loadMu  sync.Mutex
}

// New creates a catalog backed by store. Until Load is called it serves the
// built-in defaults.
func New(store Store) *Catalog {
	c := &Catalog{store: store}
	c.current.Store(DefaultSnapshot())
	return c
}

// Load reads the store, seeding and persisting the defaults when nothing
// was saved yet. If seeding cannot be persisted the defaults stay active
// and an ErrConfigIO error is returned for the caller to log.
func (c *Catalog) Load(ctx context.Context) error {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()

	log := logger.FromContext(ctx)

	data, err := c.store.Read(ctx)
	if errors.Is(err, fs.ErrNotExist) {
		snap := DefaultSnapshot()
		c.current.Store(snap)
		log.Info(LogMsgCatalogSeeded, "jobs", snap.JobNames())

		if err := c.persist(ctx, snap); err != nil {
			log.Warn(LogMsgCatalogSeedFailed, "error", err)
			return err
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrConfigIO, err)
	}

	snap, err := Decode(ctx, data)
	if err != nil {
		return err
	}
	c.current.Store(snap)
	log.Info(LogMsgCatalogLoaded, "jobs", len(snap.order), "salary_delay", snap.SalaryDelay())
	return nil
}

// Reload re-reads the store and swaps the snapshot. Any failure, including
// a malformed entry, leaves the previous snapshot in place.
func (c *Catalog) Reload(ctx context.Context) error {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()

	log := logger.FromContext(ctx)

	data, err := c.store.Read(ctx)
	if err != nil {
		log.Warn(LogMsgCatalogReloadFailed, "error", err)
		return fmt.Errorf("%w: %w", domain.ErrConfigIO, err)
	}

	snap, err := Decode(ctx, data)
	if err != nil {
		log.Warn(LogMsgCatalogReloadFailed, "error", err)
		return fmt.Errorf("%w: %w", domain.ErrConfigIO, err)
	}

	c.current.Store(snap)
	log.Info(LogMsgCatalogReloaded, "jobs", len(snap.order))
	return nil
}

// Save persists the active snapshot
func (c *Catalog) Save(ctx context.Context) error {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()
	return c.persist(ctx, c.Snapshot())
}

func (c *Catalog) persist(ctx context.Context, snap *Snapshot) error {
	data, err := Encode(snap)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrConfigIO, err)
	}
	if err := c.store.Write(ctx, data); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrConfigIO, err)
	}
	return nil
}

// Snapshot returns the active snapshot. Callers that need several lookups
// to agree should capture it once.
func (c *Catalog) Snapshot() *Snapshot {
	return c.current.Load()
}

// JobExists reports whether name (in any case) is a configured job
func (c *Catalog) JobExists(name string) bool {
	return c.Snapshot().JobExists(name)
}

// Job returns the definition for name
func (c *Catalog) Job(name string) (*domain.JobDefinition, bool) {
	return c.Snapshot().Job(name)
}

// LookupReward returns the reward for (job, category, subject), if any
func (c *Catalog) LookupReward(job string, category domain.ActionCategory, subject string) (domain.Reward, bool) {
	return c.Snapshot().LookupReward(job, category, subject)
}

// JobNames returns the configured display list
func (c *Catalog) JobNames() []string {
	return c.Snapshot().JobNames()
}

// SalaryDelay returns the salary interval in seconds
func (c *Catalog) SalaryDelay() int {
	return c.Snapshot().SalaryDelay()
}
