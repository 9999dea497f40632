package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/JobEconomy_Go/internal/event"
	"github.com/osse101/JobEconomy_Go/internal/presence"
	"github.com/osse101/JobEconomy_Go/internal/salary"
	"github.com/osse101/JobEconomy_Go/internal/scheduler"
	"github.com/osse101/JobEconomy_Go/internal/server"
	"github.com/osse101/JobEconomy_Go/internal/sse"
	"github.com/osse101/JobEconomy_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	SalaryTimer        *salary.Timer
	Scheduler          *scheduler.Scheduler
	WorkerPool         *worker.Pool
	ResilientPublisher *event.ResilientPublisher
	DeadLetter         *event.DeadLetterWriter
	Hub                *sse.Hub
	Repositories       *Repositories
	Presence           presence.Store
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in the correct order:
// 1. HTTP server (stop accepting new requests)
// 2. Salary schedule and worker pool (finish a running payroll)
// 3. Event publisher (flush pending events to ensure consistency)
// 4. Event stream and stores
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.SalaryTimer != nil {
		c.SalaryTimer.Stop(ctx)
	}
	if c.Scheduler != nil {
		if err := c.Scheduler.Stop(ctx); err != nil {
			slog.Error(LogMsgSchedulerShutdownFailed, "error", err)
		}
	}
	if c.WorkerPool != nil {
		if err := c.WorkerPool.Stop(ctx); err != nil {
			slog.Error(LogMsgWorkerPoolShutdownFailed, "error", err)
		}
	}

	slog.Info(LogMsgShuttingDownEventPublisher)
	if c.ResilientPublisher != nil {
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}
	if c.DeadLetter != nil {
		if err := c.DeadLetter.Close(); err != nil {
			slog.Error(LogMsgDeadLetterCloseFailed, "error", err)
		}
	}

	if c.Hub != nil {
		c.Hub.Stop()
	}

	if c.Repositories != nil {
		// Close logs each failure itself
		_ = c.Repositories.Close()
	}
	if c.Presence != nil {
		if err := c.Presence.Close(); err != nil {
			slog.Error(LogMsgPresenceCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
