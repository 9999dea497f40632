package sse

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/JobEconomy_Go/internal/event"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)
	return hub
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.ClientCount() == n }, time.Second, 5*time.Millisecond)
}

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case e := <-c.EventChannel:
		return e
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
		return Event{}
	}
}

func TestHub_BroadcastRespectsFilter(t *testing.T) {
	hub := startHub(t)

	all := hub.Register(nil)
	messagesOnly := hub.Register([]string{EventTypePlayerMessage})
	waitForClients(t, hub, 2)

	require.True(t, hub.Broadcast(EventTypeJobLevelUp, JobLevelUpPayload{PlayerID: "p1", NewLevel: 2}))
	require.True(t, hub.Broadcast(EventTypePlayerMessage, PlayerMessagePayload{PlayerID: "p1", Message: "hi"}))

	assert.Equal(t, EventTypeJobLevelUp, receive(t, all).Type)
	assert.Equal(t, EventTypePlayerMessage, receive(t, all).Type)

	got := receive(t, messagesOnly)
	assert.Equal(t, EventTypePlayerMessage, got.Type)
	assert.Equal(t, "hi", got.Payload.(PlayerMessagePayload).Message)
}

func TestHub_UnregisterAndStop(t *testing.T) {
	hub := NewHub()
	hub.Start()

	c := hub.Register(nil)
	waitForClients(t, hub, 1)
	hub.Unregister(c.ID)
	waitForClients(t, hub, 0)
	_, open := <-c.EventChannel
	assert.False(t, open)

	other := hub.Register(nil)
	waitForClients(t, hub, 1)
	hub.Stop()
	hub.Stop()

	_, open = <-other.EventChannel
	assert.False(t, open)
	assert.False(t, hub.Broadcast(EventTypeKeepalive, nil))
	assert.Nil(t, hub.Register(nil))
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "abc", Type: EventTypePlayerMessage, Payload: PlayerMessagePayload{PlayerID: "p1", Message: "hello"}})
	require.NoError(t, err)

	out := string(msg)
	assert.True(t, strings.HasPrefix(out, "id: abc\nevent: player.message\ndata: {"))
	assert.True(t, strings.HasSuffix(out, "}\n\n"))
	assert.Contains(t, out, `"message":"hello"`)

	keepalive, err := FormatSSEMessage(Event{Type: EventTypeKeepalive})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(keepalive), "event: keepalive\n"))
}

func TestHandler_StreamsEvents(t *testing.T) {
	hub := startHub(t)
	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?types=player.message", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	nextEvent := func() string {
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			if strings.HasPrefix(line, "event: ") {
				return strings.TrimSpace(strings.TrimPrefix(line, "event: "))
			}
		}
	}

	assert.Equal(t, EventTypeConnected, nextEvent())
	waitForClients(t, hub, 1)

	hub.Broadcast(EventTypeJobLevelUp, JobLevelUpPayload{})
	hub.Broadcast(EventTypePlayerMessage, PlayerMessagePayload{PlayerID: "p1", Message: "paid"})
	assert.Equal(t, EventTypePlayerMessage, nextEvent())
}

func TestSubscriber_BridgesBusEvents(t *testing.T) {
	hub := startHub(t)
	client := hub.Register(nil)
	waitForClients(t, hub, 1)

	bus := event.NewMemoryBus()
	NewSubscriber(hub).Register(bus)
	ctx := context.Background()

	require.NoError(t, bus.Publish(ctx, event.NewJobLevelUpEvent("p1", "Miner", 1, 2)))
	got := receive(t, client)
	assert.Equal(t, EventTypeJobLevelUp, got.Type)
	assert.Equal(t, JobLevelUpPayload{PlayerID: "p1", Job: "Miner", OldLevel: 1, NewLevel: 2}, got.Payload)

	// Failed reloads are not forwarded
	require.NoError(t, bus.Publish(ctx, event.NewCatalogReloadFailedEvent(assert.AnError)))
	require.NoError(t, bus.Publish(ctx, event.NewJobChangedEvent("p1", "Unemployed", "Miner")))
	got = receive(t, client)
	assert.Equal(t, EventTypeJobChanged, got.Type)
	assert.Equal(t, "Miner", got.Payload.(JobChangedPayload).Job)
}
