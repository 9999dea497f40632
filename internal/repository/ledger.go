package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/osse101/JobEconomy_Go/internal/domain"
)

// Ledger defines the data access interface for currency balances
type Ledger interface {
	Balance(ctx context.Context, playerID, currency string) (decimal.Decimal, error)
	// Deposit adds amount and returns the new balance
	Deposit(ctx context.Context, playerID, currency string, amount decimal.Decimal) (decimal.Decimal, error)
	TopBalances(ctx context.Context, currency string, limit int) ([]domain.BalanceEntry, error)
}
