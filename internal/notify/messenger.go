// Package notify delivers player chat messages to the host
package notify

import (
	"context"
	"errors"

	"github.com/osse101/JobEconomy_Go/internal/logger"
	"github.com/osse101/JobEconomy_Go/internal/sse"
)

// ErrMsgMessageDropped is returned when the stream could not take the message
const ErrMsgMessageDropped = "message dropped"

// ErrMessageDropped indicates the message never reached the stream
var ErrMessageDropped = errors.New(ErrMsgMessageDropped)

// Log messages
const (
	LogMsgPlayerMessage = "Player message"
)

// Broadcaster is the part of the SSE hub the messenger uses
type Broadcaster interface {
	Broadcast(eventType string, payload interface{}) bool
}

// HubMessenger publishes messages as player.message events on the SSE
// stream; the host relays them into game chat
type HubMessenger struct {
	hub Broadcaster
}

// NewHubMessenger creates a messenger over hub
func NewHubMessenger(hub Broadcaster) *HubMessenger {
	return &HubMessenger{hub: hub}
}

// SendMessage implements domain.Messenger
func (m *HubMessenger) SendMessage(ctx context.Context, playerID, message string) error {
	logger.FromContext(ctx).Debug(LogMsgPlayerMessage, "player_id", playerID, "message", message)
	if !m.hub.Broadcast(sse.EventTypePlayerMessage, sse.PlayerMessagePayload{PlayerID: playerID, Message: message}) {
		return ErrMessageDropped
	}
	return nil
}

// LogMessenger only logs messages. Used when no host stream is configured.
type LogMessenger struct{}

// SendMessage implements domain.Messenger
func (LogMessenger) SendMessage(ctx context.Context, playerID, message string) error {
	logger.FromContext(ctx).Info(LogMsgPlayerMessage, "player_id", playerID, "message", message)
	return nil
}
