package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/JobEconomy_Go/internal/logger"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries int
	RetryDelay time.Duration
}

// ResilientPublisher wraps a Bus so that a failed publish is retried in the
// background with exponential backoff and finally dead-lettered. Callers
// never see handler failures.
type ResilientPublisher struct {
	inner      Bus
	config     ResilientConfig
	deadLetter *DeadLetterWriter

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// NewResilientPublisher creates a new ResilientPublisher. deadLetter may be
// nil, in which case exhausted events are only logged.
func NewResilientPublisher(inner Bus, config ResilientConfig, deadLetter *DeadLetterWriter) *ResilientPublisher {
	if config.MaxRetries <= 0 {
		config.MaxRetries = RetryMaxAttempts
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = RetryInitialDelaySeconds * time.Second
	}
	return &ResilientPublisher{
		inner:      inner,
		config:     config,
		deadLetter: deadLetter,
		stop:       make(chan struct{}),
	}
}

// Publish delivers the event once synchronously. On failure it schedules
// background retries and returns nil.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err,
		"retries", p.config.MaxRetries)

	select {
	case <-p.stop:
		p.writeDeadLetter(event, 1, err)
		return nil
	default:
	}

	p.wg.Add(1)
	go p.retryLoop(event, err)
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) retryLoop(event Event, lastErr error) {
	defer p.wg.Done()

	// Detached context: the publishing request may be long gone
	ctx := context.Background()
	log := logger.FromContext(ctx)

	for attempt := 1; attempt <= p.config.MaxRetries; attempt++ {
		timer := time.NewTimer(CalculateRetryDelay(p.config.RetryDelay, attempt))
		select {
		case <-p.stop:
			timer.Stop()
			p.writeDeadLetter(event, attempt, lastErr)
			return
		case <-timer.C:
		}

		if err := p.inner.Publish(ctx, event); err != nil {
			lastErr = err
			log.Warn(LogMsgEventRetryFailed, "event_type", event.Type, "attempt", attempt, "error", err)
			continue
		}
		log.Info(LogMsgEventRetrySucceeded, "event_type", event.Type, "attempt", attempt)
		return
	}

	log.Error(LogMsgEventRetryExhausted, "event_type", event.Type, "error", lastErr)
	p.writeDeadLetter(event, p.config.MaxRetries+1, lastErr)
}

func (p *ResilientPublisher) writeDeadLetter(event Event, attempts int, lastErr error) {
	if p.deadLetter == nil {
		return
	}
	log := logger.FromContext(context.Background())
	if err := p.deadLetter.Write(event, attempts, lastErr); err != nil {
		log.Error(LogMsgDeadLetterWriteFailed, "event_type", event.Type, "error", err)
		return
	}
	log.Warn(LogMsgEventDeadLettered, "event_type", event.Type, "attempts", attempts)
}

// Shutdown cancels pending retries, dead-lettering their events, and waits
// for the retry goroutines to exit or ctx to expire
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.stopOnce.Do(func() { close(p.stop) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
