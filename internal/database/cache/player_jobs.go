// Package cache fronts a PlayerJobs repository with an expiring LRU.
package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/JobEconomy_Go/internal/domain"
	"github.com/osse101/JobEconomy_Go/internal/repository"
)

// SchemaVersion is the current version of the cached entry layout.
// Increment this when PlayerJobRecord changes to auto-invalidate old entries.
const SchemaVersion = "1.0"

const (
	DefaultSize = 1024
	DefaultTTL  = 10 * time.Minute
)

type cachedRecord struct {
	Version  string
	Record   *domain.PlayerJobRecord
	CachedAt time.Time
}

// PlayerJobs caches records read from or written to the wrapped repository.
// Records are cloned on the way in and out so callers never share state
// with the cache.
type PlayerJobs struct {
	next repository.PlayerJobs
	lru  *expirable.LRU[string, *cachedRecord]
}

var _ repository.PlayerJobs = (*PlayerJobs)(nil)

// NewPlayerJobs wraps next with a cache of size entries expiring after ttl
func NewPlayerJobs(next repository.PlayerJobs, size int, ttl time.Duration) *PlayerJobs {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &PlayerJobs{
		next: next,
		lru:  expirable.NewLRU[string, *cachedRecord](size, nil, ttl),
	}
}

// GetRecord serves from cache, falling back to the wrapped repository
func (c *PlayerJobs) GetRecord(ctx context.Context, playerID string) (*domain.PlayerJobRecord, error) {
	key := cacheKey(playerID)
	if entry, ok := c.lru.Get(key); ok {
		if entry.Version == SchemaVersion {
			return entry.Record.Clone(), nil
		}
		c.lru.Remove(key)
	}

	rec, err := c.next.GetRecord(ctx, playerID)
	if err != nil {
		return nil, err
	}
	c.set(rec)
	return rec, nil
}

// SaveRecord updates the cache before writing through. A failed write
// still leaves the new state visible to readers.
func (c *PlayerJobs) SaveRecord(ctx context.Context, rec *domain.PlayerJobRecord) error {
	c.set(rec)
	return c.next.SaveRecord(ctx, rec)
}

// Invalidate drops a single player
func (c *PlayerJobs) Invalidate(playerID string) {
	c.lru.Remove(cacheKey(playerID))
}

// Purge empties the cache
func (c *PlayerJobs) Purge() {
	c.lru.Purge()
}

// Len returns the number of cached records
func (c *PlayerJobs) Len() int {
	return c.lru.Len()
}

// Close purges the cache and closes the wrapped repository
func (c *PlayerJobs) Close() error {
	c.lru.Purge()
	return c.next.Close()
}

func (c *PlayerJobs) set(rec *domain.PlayerJobRecord) {
	c.lru.Add(cacheKey(rec.PlayerID), &cachedRecord{
		Version:  SchemaVersion,
		Record:   rec.Clone(),
		CachedAt: time.Now(),
	})
}

// cacheKey matches the stores, which key records by the canonical UUID.
// Unparseable ids are kept as-is; the wrapped repository rejects them.
func cacheKey(playerID string) string {
	if id, err := domain.NormalizePlayerID(playerID); err == nil {
		return id
	}
	return playerID
}
