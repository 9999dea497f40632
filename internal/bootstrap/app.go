package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/osse101/JobEconomy_Go/internal/catalog"
	"github.com/osse101/JobEconomy_Go/internal/concurrency"
	"github.com/osse101/JobEconomy_Go/internal/config"
	"github.com/osse101/JobEconomy_Go/internal/domain"
	"github.com/osse101/JobEconomy_Go/internal/economy"
	"github.com/osse101/JobEconomy_Go/internal/eventlog"
	"github.com/osse101/JobEconomy_Go/internal/handler"
	"github.com/osse101/JobEconomy_Go/internal/job"
	"github.com/osse101/JobEconomy_Go/internal/notify"
	"github.com/osse101/JobEconomy_Go/internal/presence"
	"github.com/osse101/JobEconomy_Go/internal/reward"
	"github.com/osse101/JobEconomy_Go/internal/salary"
	"github.com/osse101/JobEconomy_Go/internal/scheduler"
	"github.com/osse101/JobEconomy_Go/internal/server"
	"github.com/osse101/JobEconomy_Go/internal/sse"
	"github.com/osse101/JobEconomy_Go/internal/worker"
)

// App is the fully wired engine
type App struct {
	cfg *config.Config

	Catalog    *catalog.Catalog
	Jobs       job.Service
	Economy    economy.Service
	Dispatcher *reward.Dispatcher
	Payroll    *salary.Payroll
	// EventLog is nil when job history is off
	EventLog eventlog.Service
	Server   *server.Server

	events       *EventSystem
	repositories *Repositories
	presence     presence.Store
	hub          *sse.Hub
	pool         *worker.Pool
	scheduler    *scheduler.Scheduler
	salaryTimer  *salary.Timer
}

// NewApp opens the stores, loads the job catalog and wires every service.
// On error everything opened so far is closed again.
func NewApp(ctx context.Context, cfg *config.Config) (app *App, err error) {
	app = &App{cfg: cfg}
	defer func() {
		if err != nil {
			app.close(ctx)
			app = nil
		}
	}()

	if app.events, err = InitializeEventSystem(cfg); err != nil {
		return nil, err
	}
	if app.repositories, err = InitializeRepositories(ctx, cfg); err != nil {
		return nil, err
	}

	var presenceCheck handler.HealthCheck
	if app.presence, presenceCheck, err = InitializePresence(ctx, cfg); err != nil {
		return nil, err
	}

	app.Catalog = catalog.New(catalog.NewFileStore(cfg.CatalogPath()))
	if err = app.Catalog.Load(ctx); err != nil {
		// A seed that could not be written still leaves the defaults active
		if !errors.Is(err, domain.ErrConfigIO) {
			return nil, fmt.Errorf("%s: %w", ErrMsgLoadCatalog, err)
		}
		slog.Warn(LogMsgCatalogLoadWarning, "path", cfg.CatalogPath(), "error", err)
		err = nil
	}

	currency := domain.Currency{Name: cfg.CurrencyName, Symbol: cfg.CurrencySymbol}
	app.hub = sse.NewHub()
	messenger := notify.NewHubMessenger(app.hub)
	publisher := app.events.Publisher

	app.Jobs = job.NewService(
		app.repositories.PlayerJobs,
		app.Catalog,
		concurrency.NewLockManager(),
		messenger,
		app.presence,
		publisher,
		job.Config{PermissionsEnabled: cfg.JobPermissions},
	)
	app.Economy = economy.NewService(app.repositories.Ledger)
	app.Dispatcher = reward.NewDispatcher(app.Catalog, app.Jobs, app.Economy, messenger, publisher, currency)
	app.Payroll = salary.NewPayroll(app.presence, app.Jobs, app.Catalog, app.Economy, messenger, publisher, currency)

	app.pool = worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	app.scheduler = scheduler.New(app.pool)
	if cfg.LoadSalary {
		app.salaryTimer = salary.NewTimer(app.scheduler, app.Payroll, app.Catalog)
	}

	var history *handler.HistoryHandler
	if app.repositories.EventLog != nil && cfg.EventLogRetention > 0 {
		app.EventLog = eventlog.NewService(app.repositories.EventLog)
		history = handler.NewHistoryHandler(app.EventLog)
	} else {
		slog.Info(LogMsgEventLogDisabled, "driver", cfg.StoreDriver, "retention", cfg.EventLogRetention)
	}

	RegisterEventHandlers(EventHandlerDependencies{
		EventBus:    app.events.Bus,
		Dispatcher:  app.Dispatcher,
		Hub:         app.hub,
		SalaryTimer: app.salaryTimer,
		EventLog:    app.EventLog,
	})

	ready := map[string]handler.HealthCheck{HealthCheckStore: app.repositories.Check}
	if presenceCheck != nil {
		ready[HealthCheckPresence] = presenceCheck
	}

	app.Server = server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, server.Handlers{
		Actions:  handler.NewActionHandler(app.Dispatcher, publisher),
		Players:  handler.NewPlayerHandler(app.Jobs, presence.NewService(app.presence, app.Jobs, publisher)),
		Jobs:     handler.NewJobHandler(app.Catalog),
		Balances: handler.NewBalanceHandler(app.Economy, currency),
		Admin:    handler.NewAdminHandler(app.Jobs, app.Payroll),
		History:  history,
		Events:   sse.Handler(app.hub),
		Ready:    ready,
	})

	return app, nil
}

// Run starts the background workers and serves HTTP until ctx is done or
// the listener fails, then shuts everything down within ShutdownTimeout
func (a *App) Run(ctx context.Context) error {
	a.hub.Start()
	a.pool.Start(ctx)
	a.scheduler.Start(ctx)

	if a.salaryTimer != nil {
		if err := a.salaryTimer.Start(ctx); err != nil {
			a.shutdown()
			return fmt.Errorf("%s: %w", ErrMsgStartSalary, err)
		}
		slog.Info(LogMsgSalaryScheduled, "interval", a.salaryTimer.Interval())
	} else {
		slog.Info(LogMsgSalaryDisabled)
	}

	if a.EventLog != nil {
		cleanup := eventlog.NewCleanupJob(a.EventLog, a.cfg.EventLogRetention)
		if err := a.scheduler.Schedule(ctx, eventlog.CleanupJobName, eventlog.CleanupInterval, cleanup); err != nil {
			a.shutdown()
			return fmt.Errorf("%s: %w", ErrMsgScheduleCleanup, err)
		}
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- a.Server.Start()
	}()

	var err error
	select {
	case <-ctx.Done():
	case err = <-serverErr:
	}

	a.shutdown()
	return err
}

func (a *App) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	GracefulShutdown(ctx, a.components(true))
}

// close releases resources when wiring failed before Run
func (a *App) close(ctx context.Context) {
	GracefulShutdown(ctx, a.components(false))
}

func (a *App) components(started bool) ShutdownComponents {
	c := ShutdownComponents{
		Repositories: a.repositories,
		Presence:     a.presence,
	}
	if a.events != nil {
		c.ResilientPublisher = a.events.Publisher
		c.DeadLetter = a.events.DeadLetter
	}
	if started {
		c.Server = a.Server
		c.SalaryTimer = a.salaryTimer
		c.Scheduler = a.scheduler
		c.WorkerPool = a.pool
		c.Hub = a.hub
	}
	return c
}
