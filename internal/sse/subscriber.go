package sse

import (
	"context"

	"github.com/osse101/JobEconomy_Go/internal/event"
	"github.com/osse101/JobEconomy_Go/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub) *Subscriber {
	return &Subscriber{hub: hub}
}

// Register subscribes to the bus events hosts care about
func (s *Subscriber) Register(bus event.Bus) {
	bus.Subscribe(event.JobLevelUp, s.handleJobLevelUp)
	bus.Subscribe(event.JobChanged, s.handleJobChanged)
	bus.Subscribe(event.SalaryTickComplete, s.handleSalaryTick)
	bus.Subscribe(event.CatalogReloaded, s.handleCatalogReloaded)

	logger.FromContext(context.Background()).Info(LogMsgSubscriberReady, "types", []string{
		EventTypeJobLevelUp, EventTypeJobChanged, EventTypeSalaryTick, EventTypeCatalogReloaded,
	})
}

func (s *Subscriber) handleJobLevelUp(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.JobLevelUpPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgDecodeFailed, "event_type", evt.Type, "error", err)
		return nil
	}
	s.send(ctx, EventTypeJobLevelUp, JobLevelUpPayload{
		PlayerID: p.PlayerID,
		Job:      p.Job,
		OldLevel: p.OldLevel,
		NewLevel: p.NewLevel,
	})
	return nil
}

func (s *Subscriber) handleJobChanged(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.JobChangedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgDecodeFailed, "event_type", evt.Type, "error", err)
		return nil
	}
	s.send(ctx, EventTypeJobChanged, JobChangedPayload{PlayerID: p.PlayerID, PreviousJob: p.PreviousJob, Job: p.NewJob})
	return nil
}

func (s *Subscriber) handleSalaryTick(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.SalaryTickCompletePayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgDecodeFailed, "event_type", evt.Type, "error", err)
		return nil
	}
	s.send(ctx, EventTypeSalaryTick, SalaryTickPayload{Paid: p.Paid, Skipped: p.Skipped, Failed: p.Failed})
	return nil
}

func (s *Subscriber) handleCatalogReloaded(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.CatalogReloadedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgDecodeFailed, "event_type", evt.Type, "error", err)
		return nil
	}
	if !p.Success {
		return nil
	}
	s.send(ctx, EventTypeCatalogReloaded, CatalogReloadedPayload{Jobs: p.Jobs, SalaryDelay: p.SalaryDelay})
	return nil
}

func (s *Subscriber) send(ctx context.Context, eventType string, payload interface{}) {
	log := logger.FromContext(ctx)
	if !s.hub.Broadcast(eventType, payload) {
		log.Warn(LogMsgEventDropped, "event_type", eventType)
		return
	}
	log.Debug(LogMsgEventBroadcast, "event_type", eventType)
}
