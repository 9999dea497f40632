package event

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyBus fails the first n publishes
type flakyBus struct {
	*MemoryBus
	failures atomic.Int32
	calls    atomic.Int32
}

func (b *flakyBus) Publish(ctx context.Context, e Event) error {
	b.calls.Add(1)
	if b.failures.Add(-1) >= 0 {
		return errors.New("handler unavailable")
	}
	return b.MemoryBus.Publish(ctx, e)
}

func newFlakyBus(failures int32) *flakyBus {
	b := &flakyBus{MemoryBus: NewMemoryBus()}
	b.failures.Store(failures)
	return b
}

func TestResilientPublisher_SuccessPassesThrough(t *testing.T) {
	inner := newFlakyBus(0)
	p := NewResilientPublisher(inner, ResilientConfig{MaxRetries: 3, RetryDelay: time.Millisecond}, nil)

	require.NoError(t, p.Publish(context.Background(), NewPlayerConnectedEvent("p1", "Steve")))
	require.NoError(t, p.Shutdown(context.Background()))
	assert.Equal(t, int32(1), inner.calls.Load())
}

func TestResilientPublisher_RetriesUntilSuccess(t *testing.T) {
	inner := newFlakyBus(2)
	delivered := make(chan struct{}, 1)
	inner.Subscribe(PlayerConnected, func(ctx context.Context, e Event) error {
		delivered <- struct{}{}
		return nil
	})

	p := NewResilientPublisher(inner, ResilientConfig{MaxRetries: 5, RetryDelay: time.Millisecond}, nil)
	require.NoError(t, p.Publish(context.Background(), NewPlayerConnectedEvent("p1", "Steve")))

	select {
	case <-delivered:
	case <-time.After(2 * time.Second):
		t.Fatal("event was never delivered")
	}
	require.NoError(t, p.Shutdown(context.Background()))
	assert.Equal(t, int32(3), inner.calls.Load())
}

func TestResilientPublisher_DeadLettersAfterExhaustion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dl", DefaultDeadLetterFileName)
	dl, err := NewDeadLetterWriter(path)
	require.NoError(t, err)
	defer dl.Close()

	inner := newFlakyBus(100)
	p := NewResilientPublisher(inner, ResilientConfig{MaxRetries: 2, RetryDelay: time.Millisecond}, dl)

	require.NoError(t, p.Publish(context.Background(), NewJobLevelUpEvent("p1", "Miner", 1, 2)))

	require.Eventually(t, func() bool {
		return inner.calls.Load() == 3
	}, 2*time.Second, 5*time.Millisecond)
	require.NoError(t, p.Shutdown(context.Background()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	require.True(t, scanner.Scan())
	var entry DeadLetterEntry
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
	assert.Equal(t, DeadLetterSchemaVersion, entry.SchemaVersion)
	assert.Equal(t, JobLevelUp, entry.Event.Type)
	assert.Equal(t, 3, entry.Attempts)
	assert.Equal(t, "handler unavailable", entry.LastError)
}

func TestResilientPublisher_ShutdownCancelsPendingRetries(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultDeadLetterFileName)
	dl, err := NewDeadLetterWriter(path)
	require.NoError(t, err)
	defer dl.Close()

	inner := newFlakyBus(100)
	p := NewResilientPublisher(inner, ResilientConfig{MaxRetries: 3, RetryDelay: time.Hour}, dl)

	require.NoError(t, p.Publish(context.Background(), NewSalaryTickCompleteEvent(1, 0, 0, time.Second, time.Now())))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, p.Shutdown(ctx))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), string(SalaryTickComplete))

	// Publishing after shutdown dead-letters immediately on failure
	require.NoError(t, p.Publish(context.Background(), NewPlayerDisconnectedEvent("p1")))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), string(PlayerDisconnected))
}
