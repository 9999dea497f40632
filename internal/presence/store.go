// Package presence tracks which players are connected to the host and the
// permissions the host granted them.
package presence

import (
	"context"
	"sort"
	"sync"

	"github.com/osse101/JobEconomy_Go/internal/domain"
)

// Store records player sessions. It backs domain.PlayerDirectory for the
// salary payroll and domain.Authorizer for job permissions.
type Store interface {
	domain.PlayerDirectory
	domain.Authorizer
	Connect(ctx context.Context, session domain.PlayerSession) error
	Disconnect(ctx context.Context, playerID string) error
	Session(ctx context.Context, playerID string) (domain.PlayerSession, bool, error)
	Close() error
}

// MemoryStore keeps sessions in process memory
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.PlayerSession
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]domain.PlayerSession)}
}

// Connect marks the player online, replacing an existing session
func (m *MemoryStore) Connect(_ context.Context, session domain.PlayerSession) error {
	session.Permissions = append([]string(nil), session.Permissions...)
	m.mu.Lock()
	m.sessions[session.PlayerID] = session
	m.mu.Unlock()
	return nil
}

// Disconnect marks the player offline
func (m *MemoryStore) Disconnect(_ context.Context, playerID string) error {
	m.mu.Lock()
	delete(m.sessions, playerID)
	m.mu.Unlock()
	return nil
}

// Session returns the player's session if online
func (m *MemoryStore) Session(_ context.Context, playerID string) (domain.PlayerSession, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[playerID]
	return s, ok, nil
}

// OnlinePlayers returns all sessions ordered by player id
func (m *MemoryStore) OnlinePlayers(_ context.Context) ([]domain.PlayerSession, error) {
	m.mu.RLock()
	out := make([]domain.PlayerSession, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out, nil
}

// HasPermission checks the permissions granted at connect. Offline players
// hold no permissions.
func (m *MemoryStore) HasPermission(ctx context.Context, playerID, node string) (bool, error) {
	s, ok, err := m.Session(ctx, playerID)
	if err != nil || !ok {
		return false, err
	}
	return s.HasPermission(node), nil
}

// Close is a no-op
func (m *MemoryStore) Close() error {
	return nil
}
