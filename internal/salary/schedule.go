package salary

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/JobEconomy_Go/internal/event"
	"github.com/osse101/JobEconomy_Go/internal/logger"
	"github.com/osse101/JobEconomy_Go/internal/worker"
)

// Scheduler is the part of the scheduler the salary timer needs
type Scheduler interface {
	Schedule(ctx context.Context, name string, interval time.Duration, job worker.Job) error
	Unschedule(ctx context.Context, name string)
}

// DelaySource reports the configured salary interval in seconds
type DelaySource interface {
	SalaryDelay() int
}

// Timer keeps the payroll scheduled at the catalog's salary interval and
// follows interval changes made by a catalog reload
type Timer struct {
	scheduler Scheduler
	payroll   *Payroll
	delays    DelaySource

	mu      sync.Mutex
	current int
}

// NewTimer creates a new salary timer
func NewTimer(s Scheduler, payroll *Payroll, delays DelaySource) *Timer {
	return &Timer{scheduler: s, payroll: payroll, delays: delays}
}

// Start schedules the payroll. The first payout happens one interval later.
func (t *Timer) Start(ctx context.Context) error {
	return t.apply(ctx, t.delays.SalaryDelay())
}

// Interval returns the interval currently scheduled
func (t *Timer) Interval() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return time.Duration(t.current) * time.Second
}

// Register subscribes the timer to catalog reloads
func (t *Timer) Register(bus event.Bus) {
	bus.Subscribe(event.CatalogReloaded, t.HandleCatalogReloaded)
}

// HandleCatalogReloaded reschedules when a successful reload changed the
// salary interval
func (t *Timer) HandleCatalogReloaded(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[event.CatalogReloadedPayloadV1](evt.Payload)
	if err != nil {
		log.Warn(LogMsgDecodeFailed, "error", err)
		return nil
	}
	if !payload.Success || payload.SalaryDelay < 1 {
		return nil
	}

	t.mu.Lock()
	unchanged := payload.SalaryDelay == t.current
	t.mu.Unlock()
	if unchanged {
		return nil
	}

	log.Info(LogMsgSalaryRescheduled, "salary_delay", payload.SalaryDelay)
	if err := t.apply(ctx, payload.SalaryDelay); err != nil {
		log.Error(LogMsgScheduleFailed, "error", err)
	}
	return nil
}

func (t *Timer) apply(ctx context.Context, seconds int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.scheduler.Schedule(ctx, JobName, time.Duration(seconds)*time.Second, t.payroll); err != nil {
		return err
	}
	t.current = seconds
	return nil
}

// Stop removes the payroll from the scheduler
func (t *Timer) Stop(ctx context.Context) {
	t.scheduler.Unschedule(ctx, JobName)
}
