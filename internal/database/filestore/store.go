// Package filestore keeps player job records and balances in one YAML file,
// one top-level section per player UUID. Keys it does not own are kept
// untouched so the file can be shared with other tools.
package filestore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/osse101/JobEconomy_Go/internal/domain"
	"github.com/osse101/JobEconomy_Go/internal/repository"
	"github.com/osse101/JobEconomy_Go/internal/utils"
)

// Store is a YAML-file backed PlayerJobs and Ledger
type Store struct {
	path string

	mu   sync.Mutex
	root *yaml.Node // top-level mapping
}

var (
	_ repository.PlayerJobs = (*Store)(nil)
	_ repository.Ledger     = (*Store)(nil)
)

// Open reads path. A missing file starts an empty document that is created
// on the first save.
func Open(path string) (*Store, error) {
	s := &Store{path: path, root: &yaml.Node{Kind: yaml.MappingNode}}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrConfigIO, ErrMsgReadAccounts, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrConfigIO, ErrMsgParseAccounts, err)
	}
	if len(doc.Content) > 0 {
		if doc.Content[0].Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: %s: top level is not a mapping", domain.ErrConfigIO, ErrMsgParseAccounts)
		}
		s.root = doc.Content[0]
	}
	return s, nil
}

// Path returns the backing file location
func (s *Store) Path() string {
	return s.path
}

// Close is a no-op; every write is flushed immediately
func (s *Store) Close() error {
	return nil
}

// GetRecord returns the record stored under playerID
func (s *Store) GetRecord(_ context.Context, playerID string) (*domain.PlayerJobRecord, error) {
	key, err := playerKey(playerID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	section := lookup(s.root, key)
	if section == nil || section.Kind != yaml.MappingNode {
		return nil, domain.ErrRecordNotFound
	}

	rec := domain.NewPlayerJobRecord(playerID)
	if n := lookup(section, KeyJob); n != nil && n.Value != "" {
		rec.CurrentJob = n.Value
	}
	if n := lookup(section, KeyJobNotifications); n != nil {
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return nil, malformed(key, KeyJobNotifications, n)
		}
		rec.NotificationsEnabled = b
	}

	stats := lookup(section, KeyJobStats)
	if stats == nil || stats.Kind != yaml.MappingNode {
		return rec, nil
	}
	for i := 0; i+1 < len(stats.Content); i += 2 {
		name, val := stats.Content[i].Value, stats.Content[i+1]
		n, err := strconv.Atoi(val.Value)
		if err != nil {
			return nil, malformed(key, KeyJobStats+"."+name, val)
		}
		switch {
		case strings.HasSuffix(name, StatLevelSuffix):
			job := strings.TrimSuffix(name, StatLevelSuffix)
			st := rec.StatsFor(job)
			st.Level = n
			rec.Stats[job] = st
		case strings.HasSuffix(name, StatExpSuffix):
			job := strings.TrimSuffix(name, StatExpSuffix)
			st := rec.StatsFor(job)
			st.Exp = n
			rec.Stats[job] = st
		}
	}
	return rec, nil
}

// SaveRecord writes the record fields and flushes the file. On a write
// failure the document keeps the change and the next save retries it.
func (s *Store) SaveRecord(_ context.Context, rec *domain.PlayerJobRecord) error {
	key, err := playerKey(rec.PlayerID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	section := ensureMapping(s.root, key)
	setScalar(section, KeyJob, rec.CurrentJob, "!!str")
	setScalar(section, KeyJobNotifications, strconv.FormatBool(rec.NotificationsEnabled), "!!bool")

	stats := ensureMapping(section, KeyJobStats)
	jobs := make([]string, 0, len(rec.Stats))
	for job := range rec.Stats {
		jobs = append(jobs, job)
	}
	sort.Strings(jobs)
	for _, job := range jobs {
		st := rec.Stats[job]
		setScalar(stats, job+StatLevelSuffix, strconv.Itoa(st.Level), "!!int")
		setScalar(stats, job+StatExpSuffix, strconv.Itoa(st.Exp), "!!int")
	}

	return s.flush()
}

// Balance returns the stored balance for currency, zero when absent
func (s *Store) Balance(_ context.Context, playerID, currency string) (decimal.Decimal, error) {
	key, err := playerKey(playerID)
	if err != nil {
		return decimal.Zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance(key, currency)
}

// Deposit adds amount to the player's balance and flushes the file
func (s *Store) Deposit(_ context.Context, playerID, currency string, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrInvalidAmount, amount)
	}
	key, err := playerKey(playerID)
	if err != nil {
		return decimal.Zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.balance(key, currency)
	if err != nil {
		return decimal.Zero, err
	}
	next := current.Add(amount)
	setScalar(ensureMapping(s.root, key), currency+BalanceKeySuffix, next.String(), "")

	if err := s.flush(); err != nil {
		return next, err
	}
	return next, nil
}

// TopBalances scans every player section for currency balances
func (s *Store) TopBalances(_ context.Context, currency string, limit int) ([]domain.BalanceEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entries []domain.BalanceEntry
	for i := 0; i+1 < len(s.root.Content); i += 2 {
		key := s.root.Content[i].Value
		if _, err := uuid.Parse(key); err != nil {
			continue
		}
		if lookup(s.root.Content[i+1], currency+BalanceKeySuffix) == nil {
			continue
		}
		bal, err := s.balance(key, currency)
		if err != nil {
			return nil, err
		}
		entries = append(entries, domain.BalanceEntry{PlayerID: key, Balance: bal})
	}

	sort.SliceStable(entries, func(a, b int) bool {
		if c := entries[a].Balance.Cmp(entries[b].Balance); c != 0 {
			return c > 0
		}
		return entries[a].PlayerID < entries[b].PlayerID
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *Store) balance(key, currency string) (decimal.Decimal, error) {
	section := lookup(s.root, key)
	if section == nil {
		return decimal.Zero, nil
	}
	n := lookup(section, currency+BalanceKeySuffix)
	if n == nil {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(n.Value)
	if err != nil {
		return decimal.Zero, malformed(key, currency+BalanceKeySuffix, n)
	}
	return d, nil
}

// flush must be called with mu held
func (s *Store) flush() error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s.root); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrConfigIO, ErrMsgWriteAccounts, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrConfigIO, ErrMsgWriteAccounts, err)
	}
	if err := utils.WriteFileAtomic(s.path, buf.Bytes(), FilePermissions); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrConfigIO, ErrMsgWriteAccounts, err)
	}
	return nil
}

func playerKey(playerID string) (string, error) {
	u, err := uuid.Parse(playerID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidPlayerID, err)
	}
	return u.String(), nil
}

func malformed(player, field string, n *yaml.Node) error {
	return fmt.Errorf("%w: %s: %s.%s (line %d)", domain.ErrConfigIO, ErrMsgMalformedField, player, field, n.Line)
}

func lookup(m *yaml.Node, key string) *yaml.Node {
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func ensureMapping(m *yaml.Node, key string) *yaml.Node {
	if n := lookup(m, key); n != nil {
		if n.Kind != yaml.MappingNode {
			// Replace a scalar left by hand edits
			*n = yaml.Node{Kind: yaml.MappingNode}
		}
		return n
	}
	n := &yaml.Node{Kind: yaml.MappingNode}
	m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, n)
	return n
}

func setScalar(m *yaml.Node, key, value, tag string) {
	if n := lookup(m, key); n != nil {
		*n = yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
		return
	}
	m.Content = append(m.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value},
	)
}
