package reward

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/JobEconomy_Go/internal/domain"
	"github.com/osse101/JobEconomy_Go/internal/event"
	"github.com/osse101/JobEconomy_Go/internal/logger"
)

// RewardLookup resolves the reward for an action
type RewardLookup interface {
	LookupReward(job string, category domain.ActionCategory, subject string) (domain.Reward, bool)
}

// JobService is the part of the job service the dispatcher drives
type JobService interface {
	GetJob(ctx context.Context, playerID string) (string, error)
	NotificationsEnabled(ctx context.Context, playerID string) (bool, error)
	AddExp(ctx context.Context, playerID string, amount int) error
	CheckForLevel(ctx context.Context, playerID string) (domain.LevelUpResult, error)
}

// Outcome describes what a single action earned
type Outcome struct {
	Qualified  bool                  `json:"qualified"`
	SkipReason string                `json:"skip_reason,omitempty"`
	Job        string                `json:"job,omitempty"`
	Exp        int                   `json:"exp"`
	Pay        decimal.Decimal       `json:"pay"`
	LevelUp    *domain.LevelUpResult `json:"level_up,omitempty"`
}

// Dispatcher turns host actions into exp, currency and messages
type Dispatcher struct {
	catalog   RewardLookup
	jobs      JobService
	accounts  domain.AccountService
	messenger domain.Messenger
	publisher event.Publisher
	currency  domain.Currency
}

// NewDispatcher creates a new reward dispatcher
func NewDispatcher(
	cat RewardLookup,
	jobs JobService,
	accounts domain.AccountService,
	messenger domain.Messenger,
	publisher event.Publisher,
	currency domain.Currency,
) *Dispatcher {
	return &Dispatcher{
		catalog:   cat,
		jobs:      jobs,
		accounts:  accounts,
		messenger: messenger,
		publisher: publisher,
		currency:  currency.OrDefault(),
	}
}

// HandleAction rewards one action. The steps run in a fixed order:
// deposit, exp grant, pay message, level check. A failing step is logged
// and reported but does not stop the steps after it.
func (d *Dispatcher) HandleAction(ctx context.Context, action domain.ActionEvent) (Outcome, error) {
	if !action.Category.Valid() {
		return Outcome{}, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, action.Category)
	}
	id, err := domain.NormalizePlayerID(action.PlayerID)
	if err != nil {
		return Outcome{}, err
	}
	action.PlayerID = id
	log := logger.FromContext(ctx).With("player_id", action.PlayerID, "category", action.Category)

	if reason := skipReason(action); reason != "" {
		log.Debug(LogMsgActionSkipped, "reason", reason)
		return Outcome{SkipReason: reason}, nil
	}

	job, err := d.jobs.GetJob(ctx, action.PlayerID)
	if err != nil {
		return Outcome{}, err
	}

	subject := domain.NormalizeSubject(action.Subject)
	reward, ok := d.catalog.LookupReward(job, action.Category, subject)
	if !ok {
		log.Debug(LogMsgNoReward, "job", job, "subject", subject)
		return Outcome{Job: job, SkipReason: SkipNoReward}, nil
	}

	pay := reward.Pay.Truncate(PayDecimalPlaces)
	out := Outcome{Qualified: true, Job: job, Exp: reward.ExpReward, Pay: pay}

	var errs []error

	deposited := false
	if !pay.IsNegative() {
		if err := d.deposit(ctx, action.PlayerID, pay, domain.CauseJobReward); err != nil {
			log.Error(LogMsgDepositFailed, "job", job, "pay", pay, "error", err)
			errs = append(errs, err)
		} else {
			deposited = true
		}
	}

	if err := d.jobs.AddExp(ctx, action.PlayerID, reward.ExpReward); err != nil {
		log.Error(LogMsgExpFailed, "job", job, "exp", reward.ExpReward, "error", err)
		errs = append(errs, err)
	}

	if deposited {
		d.notifyPay(ctx, action.PlayerID, pay)
	}

	result, err := d.jobs.CheckForLevel(ctx, action.PlayerID)
	if err != nil {
		log.Error(LogMsgLevelFailed, "job", job, "error", err)
		errs = append(errs, err)
	}
	if result.LeveledUp {
		out.LevelUp = &result
	}

	log.Debug(LogMsgRewardGranted, "job", job, "subject", subject, "exp", reward.ExpReward, "pay", pay)
	d.publish(ctx, event.NewRewardPaidEvent(action.PlayerID, job, action.Category, subject, reward.ExpReward, pay))

	return out, errors.Join(errs...)
}

// skipReason applies the per-category qualification rules
func skipReason(action domain.ActionEvent) string {
	switch action.Category {
	case domain.CategoryBreak:
		if action.HasCreator {
			return SkipPlayerPlaced
		}
	case domain.CategoryKill:
		if !action.KillerIsPlayer {
			return SkipKillerNotPlayer
		}
	case domain.CategoryCatch:
		if !action.IsFish {
			return SkipNotFish
		}
	}
	return ""
}

func (d *Dispatcher) deposit(ctx context.Context, playerID string, amount decimal.Decimal, cause string) error {
	acct, err := d.accounts.GetOrCreateAccount(ctx, playerID)
	if err != nil {
		return err
	}
	return acct.Deposit(ctx, d.currency.Name, amount, cause)
}

func (d *Dispatcher) notifyPay(ctx context.Context, playerID string, pay decimal.Decimal) {
	if d.messenger == nil {
		return
	}
	log := logger.FromContext(ctx)

	enabled, err := d.jobs.NotificationsEnabled(ctx, playerID)
	if err != nil {
		log.Warn(LogMsgMessageFailed, "player_id", playerID, "error", err)
		return
	}
	if !enabled {
		return
	}
	msg := fmt.Sprintf(domain.MsgRewardPaidFormat, d.currency.Format(pay))
	if err := d.messenger.SendMessage(ctx, playerID, msg); err != nil {
		log.Warn(LogMsgMessageFailed, "player_id", playerID, "error", err)
	}
}

func (d *Dispatcher) publish(ctx context.Context, evt event.Event) {
	if d.publisher == nil {
		return
	}
	if err := d.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
