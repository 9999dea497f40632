package metrics

import (
	"context"

	"github.com/osse101/JobEconomy_Go/internal/event"
	"github.com/osse101/JobEconomy_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.RewardPaid,
		event.ExpGained,
		event.JobLevelUp,
		event.JobChanged,
		event.SalaryPaid,
		event.SalaryTickComplete,
		event.CatalogReloaded,
		event.PlayerConnected,
		event.PlayerDisconnected,
	}
	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.RewardPaid:
		var p event.RewardPaidPayloadV1
		if p, err = event.DecodePayload[event.RewardPaidPayloadV1](evt.Payload); err == nil {
			RewardsPaid.WithLabelValues(p.Job, string(p.Category)).Inc()
			RewardPay.Add(p.Pay.InexactFloat64())
		}

	case event.ExpGained:
		var p event.ExpGainedPayloadV1
		if p, err = event.DecodePayload[event.ExpGainedPayloadV1](evt.Payload); err == nil {
			ExpGranted.WithLabelValues(p.Job).Add(float64(p.Amount))
		}

	case event.JobLevelUp:
		var p event.JobLevelUpPayloadV1
		if p, err = event.DecodePayload[event.JobLevelUpPayloadV1](evt.Payload); err == nil {
			LevelUps.WithLabelValues(p.Job).Inc()
		}

	case event.JobChanged:
		var p event.JobChangedPayloadV1
		if p, err = event.DecodePayload[event.JobChangedPayloadV1](evt.Payload); err == nil {
			JobChanges.WithLabelValues(p.NewJob).Inc()
		}

	case event.SalaryPaid:
		var p event.SalaryPaidPayloadV1
		if p, err = event.DecodePayload[event.SalaryPaidPayloadV1](evt.Payload); err == nil {
			SalaryPayments.WithLabelValues(p.Job).Inc()
			SalaryAmount.Add(p.Amount.InexactFloat64())
		}

	case event.SalaryTickComplete:
		var p event.SalaryTickCompletePayloadV1
		if p, err = event.DecodePayload[event.SalaryTickCompletePayloadV1](evt.Payload); err == nil {
			SalaryTicks.Inc()
			SalaryFailures.Add(float64(p.Failed))
		}

	case event.CatalogReloaded:
		var p event.CatalogReloadedPayloadV1
		if p, err = event.DecodePayload[event.CatalogReloadedPayloadV1](evt.Payload); err == nil {
			result := ResultSuccess
			if !p.Success {
				result = ResultFailure
			}
			CatalogReloads.WithLabelValues(result).Inc()
		}

	case event.PlayerConnected:
		PlayerSessions.WithLabelValues(KindConnect).Inc()

	case event.PlayerDisconnected:
		PlayerSessions.WithLabelValues(KindLeave).Inc()
	}

	if err != nil {
		log.Debug(LogMsgEventDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}
	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
