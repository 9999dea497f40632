package economy

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/JobEconomy_Go/internal/domain"
	"github.com/osse101/JobEconomy_Go/internal/logger"
	"github.com/osse101/JobEconomy_Go/internal/repository"
)

// Service is the in-process account service. It implements
// domain.AccountService on top of a ledger repository.
type Service interface {
	domain.AccountService
	Balance(ctx context.Context, playerID, currency string) (decimal.Decimal, error)
	TopBalances(ctx context.Context, currency string, limit int) ([]domain.BalanceEntry, error)
}

type service struct {
	ledger repository.Ledger
}

// NewService creates a new economy service
func NewService(ledger repository.Ledger) Service {
	return &service{ledger: ledger}
}

// GetOrCreateAccount returns a handle for playerID. Ledger rows are created
// lazily on the first deposit.
func (s *service) GetOrCreateAccount(_ context.Context, playerID string) (domain.Account, error) {
	id, err := domain.NormalizePlayerID(playerID)
	if err != nil {
		return nil, err
	}
	return &account{playerID: id, ledger: s.ledger}, nil
}

// Balance returns the balance of playerID in currency
func (s *service) Balance(ctx context.Context, playerID, currency string) (decimal.Decimal, error) {
	return s.ledger.Balance(ctx, playerID, currency)
}

// TopBalances returns the richest players, limit clamped to [1, MaxTopLimit]
func (s *service) TopBalances(ctx context.Context, currency string, limit int) ([]domain.BalanceEntry, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	if limit > MaxTopLimit {
		limit = MaxTopLimit
	}
	return s.ledger.TopBalances(ctx, currency, limit)
}

type account struct {
	playerID string
	ledger   repository.Ledger
}

// Deposit credits amount; negative amounts are rejected
func (a *account) Deposit(ctx context.Context, currency string, amount decimal.Decimal, cause string) error {
	log := logger.FromContext(ctx)
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidAmount, amount)
	}

	balance, err := a.ledger.Deposit(ctx, a.playerID, currency, amount)
	if err != nil {
		log.Error(LogMsgDepositFailed, "player_id", a.playerID, "currency", currency, "amount", amount, "cause", cause, "error", err)
		return fmt.Errorf("%w: %w", domain.ErrAccountUnavailable, err)
	}
	log.Debug(LogMsgDeposited, "player_id", a.playerID, "currency", currency, "amount", amount, "cause", cause, "balance", balance)
	return nil
}

// Balance returns the current balance in currency
func (a *account) Balance(ctx context.Context, currency string) (decimal.Decimal, error) {
	return a.ledger.Balance(ctx, a.playerID, currency)
}
