package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 256

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 64

	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Event types for SSE
const (
	// EventTypePlayerMessage carries a chat line the host shows to one player
	EventTypePlayerMessage = "player.message"

	EventTypeJobLevelUp = "job.level_up"
	EventTypeJobChanged = "job.changed"
	EventTypeSalaryTick = "salary.tick_complete"

	// EventTypeCatalogReloaded tells hosts to refresh cached job lists
	EventTypeCatalogReloaded = "catalog.reloaded"

	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgEventDropped       = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgSubscriberReady    = "SSE subscriber registered for event types"
	LogMsgDecodeFailed       = "Failed to decode event for SSE"
)
