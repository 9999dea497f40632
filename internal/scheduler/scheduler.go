package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/osse101/JobEconomy_Go/internal/logger"
	"github.com/osse101/JobEconomy_Go/internal/worker"
)

// ErrInvalidInterval is returned for intervals below MinInterval
var ErrInvalidInterval = errors.New(ErrMsgInvalidInterval)

// Scheduler fires named jobs at fixed intervals. Each tick only enqueues
// the job on the worker pool, so a slow job never delays the cron loop.
// The first run happens one interval after scheduling.
type Scheduler struct {
	cron       *cron.Cron
	workerPool *worker.Pool

	mu      sync.Mutex
	entries map[string]cron.EntryID
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		cron:       cron.New(cron.WithLogger(cronLogger{})),
		workerPool: pool,
		entries:    make(map[string]cron.EntryID),
	}
}

// Schedule registers job under name, replacing any job already scheduled
// with that name
func (s *Scheduler) Schedule(ctx context.Context, name string, interval time.Duration, job worker.Job) error {
	if interval < MinInterval {
		return fmt.Errorf("%w: %s", ErrInvalidInterval, interval)
	}

	log := logger.FromContext(ctx)
	id, err := s.cron.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		if s.workerPool.Enqueue(job) {
			log.Debug(LogMsgJobEnqueued, "job_name", name)
		} else {
			log.Warn(LogMsgJobDropped, "job_name", name)
		}
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgAddJob, err)
	}

	s.mu.Lock()
	old, replaced := s.entries[name]
	s.entries[name] = id
	s.mu.Unlock()

	if replaced {
		s.cron.Remove(old)
	}
	log.Info(LogMsgJobScheduled, "job_name", name, "interval", interval.String())
	return nil
}

// Unschedule removes the job registered under name, if any
func (s *Scheduler) Unschedule(ctx context.Context, name string) {
	s.mu.Lock()
	id, ok := s.entries[name]
	delete(s.entries, name)
	s.mu.Unlock()

	if ok {
		s.cron.Remove(id)
		logger.FromContext(ctx).Info(LogMsgJobUnscheduled, "job_name", name)
	}
}

// Next returns when the named job fires next
func (s *Scheduler) Next(name string) (time.Time, bool) {
	s.mu.Lock()
	id, ok := s.entries[name]
	s.mu.Unlock()
	if !ok {
		return time.Time{}, false
	}
	return s.cron.Entry(id).Next, true
}

// Start starts the cron loop
func (s *Scheduler) Start(ctx context.Context) {
	s.cron.Start()
	logger.FromContext(ctx).Info(LogMsgStarted)
}

// Stop halts the cron loop. No new ticks fire after it returns; jobs
// already handed to the worker pool are the pool's to finish.
func (s *Scheduler) Stop(ctx context.Context) error {
	stopped := s.cron.Stop()
	select {
	case <-stopped.Done():
		logger.FromContext(ctx).Info(LogMsgStopped)
		return nil
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(LogMsgStopTimedOut)
		return ctx.Err()
	}
}

// cronLogger routes cron's own logging to slog
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.FromContext(context.Background()).Debug(LogMsgCron, append([]interface{}{"detail", msg}, keysAndValues...)...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logger.FromContext(context.Background()).Error(LogMsgCron, append([]interface{}{"detail", msg, "error", err}, keysAndValues...)...)
}
