package reward

import (
	"context"

	"github.com/osse101/JobEconomy_Go/internal/domain"
	"github.com/osse101/JobEconomy_Go/internal/event"
	"github.com/osse101/JobEconomy_Go/internal/logger"
)

// EventHandler feeds action events from the bus into the dispatcher
type EventHandler struct {
	dispatcher *Dispatcher
}

// NewEventHandler creates a new reward event handler
func NewEventHandler(dispatcher *Dispatcher) *EventHandler {
	return &EventHandler{dispatcher: dispatcher}
}

// Register subscribes the handler to action events
func (h *EventHandler) Register(bus event.Bus) {
	bus.Subscribe(event.ActionPerformed, h.HandleActionPerformed)
}

// HandleActionPerformed rewards the action. Failures are logged and never
// returned so one bad action cannot trigger bus retries.
func (h *EventHandler) HandleActionPerformed(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	action, err := event.DecodePayload[domain.ActionEvent](evt.Payload)
	if err != nil {
		log.Warn(LogMsgDecodeFailed, "error", err)
		return nil
	}

	if _, err := h.dispatcher.HandleAction(ctx, action); err != nil {
		log.Warn(LogMsgHandleFailed, "player_id", action.PlayerID, "category", action.Category, "error", err)
	}
	return nil
}
