package presence

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/JobEconomy_Go/internal/domain"
	"github.com/osse101/JobEconomy_Go/internal/event"
)

// MockRegistry
type MockRegistry struct {
	mock.Mock
}

func (m *MockRegistry) EnsurePlayer(ctx context.Context, playerID string) error {
	args := m.Called(ctx, playerID)
	return args.Error(0)
}

func TestService_ConnectDisconnect(t *testing.T) {
	ctx := context.Background()
	registry := new(MockRegistry)
	registry.On("EnsurePlayer", mock.Anything, alice).Return(nil).Once()

	bus := event.NewMemoryBus()
	var seen []event.Type
	record := func(_ context.Context, e event.Event) error {
		seen = append(seen, e.Type)
		return nil
	}
	bus.Subscribe(event.PlayerConnected, record)
	bus.Subscribe(event.PlayerDisconnected, record)

	store := NewMemoryStore()
	svc := NewService(store, registry, bus)

	require.NoError(t, svc.Connect(ctx, domain.PlayerSession{PlayerID: alice, Name: "Alice"}))
	players, err := svc.OnlinePlayers(ctx)
	require.NoError(t, err)
	assert.Len(t, players, 1)

	require.NoError(t, svc.Disconnect(ctx, alice))
	players, err = svc.OnlinePlayers(ctx)
	require.NoError(t, err)
	assert.Empty(t, players)

	assert.Equal(t, []event.Type{event.PlayerConnected, event.PlayerDisconnected}, seen)
	registry.AssertExpectations(t)
}

func TestService_ConnectSurvivesRegistryFailure(t *testing.T) {
	registry := new(MockRegistry)
	registry.On("EnsurePlayer", mock.Anything, alice).Return(domain.ErrConfigIO)

	store := NewMemoryStore()
	svc := NewService(store, registry, nil)

	require.NoError(t, svc.Connect(context.Background(), domain.PlayerSession{PlayerID: alice}))
	_, ok, _ := store.Session(context.Background(), alice)
	assert.True(t, ok)
}

func TestService_RejectsInvalidPlayerID(t *testing.T) {
	svc := NewService(NewMemoryStore(), nil, nil)

	err := svc.Connect(context.Background(), domain.PlayerSession{PlayerID: "Steve"})
	assert.True(t, errors.Is(err, domain.ErrInvalidPlayerID))

	err = svc.Disconnect(context.Background(), "Steve")
	assert.ErrorIs(t, err, domain.ErrInvalidPlayerID)
}

func TestService_ConnectStoresCanonicalID(t *testing.T) {
	ctx := context.Background()
	registry := new(MockRegistry)
	registry.On("EnsurePlayer", mock.Anything, alice).Return(nil).Once()

	store := NewMemoryStore()
	svc := NewService(store, registry, nil)

	require.NoError(t, svc.Connect(ctx, domain.PlayerSession{PlayerID: strings.ToUpper(alice), Permissions: []string{"main.job.miner"}}))
	allowed, err := store.HasPermission(ctx, alice, "main.job.miner")
	require.NoError(t, err)
	assert.True(t, allowed)

	require.NoError(t, svc.Disconnect(ctx, strings.ToUpper(alice)))
	_, ok, _ := store.Session(ctx, alice)
	assert.False(t, ok)
	registry.AssertExpectations(t)
}
