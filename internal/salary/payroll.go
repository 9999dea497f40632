package salary

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/JobEconomy_Go/internal/domain"
	"github.com/osse101/JobEconomy_Go/internal/event"
	"github.com/osse101/JobEconomy_Go/internal/logger"
)

// JobResolver returns a player's current job
type JobResolver interface {
	GetJob(ctx context.Context, playerID string) (string, error)
}

// JobLookup resolves job definitions by name
type JobLookup interface {
	Job(name string) (*domain.JobDefinition, bool)
}

// Result summarizes one payroll run
type Result struct {
	Paid    int `json:"paid"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// Payroll pays every online player the salary of their current job.
// It implements worker.Job so the scheduler can queue it.
type Payroll struct {
	directory domain.PlayerDirectory
	jobs      JobResolver
	catalog   JobLookup
	accounts  domain.AccountService
	messenger domain.Messenger
	publisher event.Publisher
	currency  domain.Currency
	now       func() time.Time
}

// NewPayroll creates a new payroll
func NewPayroll(
	directory domain.PlayerDirectory,
	jobs JobResolver,
	cat JobLookup,
	accounts domain.AccountService,
	messenger domain.Messenger,
	publisher event.Publisher,
	currency domain.Currency,
) *Payroll {
	return &Payroll{
		directory: directory,
		jobs:      jobs,
		catalog:   cat,
		accounts:  accounts,
		messenger: messenger,
		publisher: publisher,
		currency:  currency.OrDefault(),
		now:       time.Now,
	}
}

// Process runs one tick. Per-player failures are counted and logged; only
// a failure to list online players is returned.
func (p *Payroll) Process(ctx context.Context) error {
	_, err := p.Run(ctx)
	return err
}

// Run pays every online player once and returns the tally
func (p *Payroll) Run(ctx context.Context) (Result, error) {
	log := logger.FromContext(ctx)
	start := p.now()

	players, err := p.directory.OnlinePlayers(ctx)
	if err != nil {
		log.Error(LogMsgDirectoryFailed, "error", err)
		return Result{}, fmt.Errorf("list online players: %w", err)
	}
	log.Debug(LogMsgTickStarted, "online", len(players))

	var res Result
	for _, player := range players {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		paid, err := p.pay(ctx, player.PlayerID)
		switch {
		case err != nil:
			res.Failed++
		case paid:
			res.Paid++
		default:
			res.Skipped++
		}
	}

	duration := p.now().Sub(start)
	log.Info(LogMsgTickComplete, "paid", res.Paid, "skipped", res.Skipped, "failed", res.Failed, "duration_ms", duration.Milliseconds())
	p.publish(ctx, event.NewSalaryTickCompleteEvent(res.Paid, res.Skipped, res.Failed, duration, start))
	return res, nil
}

// pay handles a single player. It reports whether a salary was deposited.
func (p *Payroll) pay(ctx context.Context, playerID string) (bool, error) {
	log := logger.FromContext(ctx).With("player_id", playerID)

	job, err := p.jobs.GetJob(ctx, playerID)
	if err != nil {
		log.Warn(LogMsgResolveJobFailed, "error", err)
		return false, err
	}

	def, ok := p.catalog.Job(job)
	if !ok {
		log.Warn(LogMsgUnknownJob, "job", job)
		return false, nil
	}
	if def.SalaryDisabled || def.Salary.IsNegative() {
		return false, nil
	}

	acct, err := p.accounts.GetOrCreateAccount(ctx, playerID)
	if err == nil {
		err = acct.Deposit(ctx, p.currency.Name, def.Salary, domain.CauseSalary)
	}
	if err != nil {
		log.Error(LogMsgDepositFailed, "job", def.Name, "amount", def.Salary, "error", err)
		return false, err
	}

	if p.messenger != nil {
		msg := fmt.Sprintf(domain.MsgSalaryPaidFormat, p.currency.Format(def.Salary))
		if err := p.messenger.SendMessage(ctx, playerID, msg); err != nil {
			log.Warn(LogMsgMessageFailed, "error", err)
		}
	}
	p.publish(ctx, event.NewSalaryPaidEvent(playerID, def.Name, def.Salary))
	return true, nil
}

func (p *Payroll) publish(ctx context.Context, evt event.Event) {
	if p.publisher == nil {
		return
	}
	if err := p.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
