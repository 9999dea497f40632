package bootstrap

import (
	"log/slog"

	"github.com/osse101/JobEconomy_Go/internal/event"
	"github.com/osse101/JobEconomy_Go/internal/eventlog"
	"github.com/osse101/JobEconomy_Go/internal/metrics"
	"github.com/osse101/JobEconomy_Go/internal/reward"
	"github.com/osse101/JobEconomy_Go/internal/salary"
	"github.com/osse101/JobEconomy_Go/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus   event.Bus
	Dispatcher *reward.Dispatcher
	Hub        *sse.Hub
	// SalaryTimer is nil when salary payouts are disabled
	SalaryTimer *salary.Timer
	// EventLog is nil when job history is off
	EventLog eventlog.Service
}

// RegisterEventHandlers sets up all event handlers and subscribers.
// This includes:
// - Reward handler (applies batched actions)
// - Metrics collector (for event-based metrics)
// - SSE subscriber (forwards job events to the host stream)
// - Salary timer (follows interval changes on catalog reload)
// - Event logger (persists job history)
func RegisterEventHandlers(deps EventHandlerDependencies) {
	reward.NewEventHandler(deps.Dispatcher).Register(deps.EventBus)

	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	sse.NewSubscriber(deps.Hub).Register(deps.EventBus)

	if deps.SalaryTimer != nil {
		deps.SalaryTimer.Register(deps.EventBus)
	}

	if deps.EventLog != nil {
		deps.EventLog.Subscribe(deps.EventBus)
	}

	slog.Info(LogMsgEventHandlersRegistered)
}
