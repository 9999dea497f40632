package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/osse101/JobEconomy_Go/internal/domain"
	"github.com/osse101/JobEconomy_Go/internal/repository"
)

const (
	queryGetBalance = `
		SELECT balance::text
		FROM balances
		WHERE player_id = $1 AND currency = $2`

	queryDeposit = `
		INSERT INTO balances (player_id, currency, balance, updated_at)
		VALUES ($1, $2, $3::numeric, NOW())
		ON CONFLICT (player_id, currency) DO UPDATE
		SET balance = balances.balance + EXCLUDED.balance,
		    updated_at = NOW()
		RETURNING balance::text`

	queryTopBalances = `
		SELECT player_id::text, balance::text
		FROM balances
		WHERE currency = $1
		ORDER BY balance DESC, player_id
		LIMIT $2`
)

// LedgerRepository keeps currency balances in PostgreSQL
type LedgerRepository struct {
	db *pgxpool.Pool
}

var _ repository.Ledger = (*LedgerRepository)(nil)

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// Balance returns the balance of a player, zero when no row exists
func (r *LedgerRepository) Balance(ctx context.Context, playerID, currency string) (decimal.Decimal, error) {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return decimal.Zero, err
	}

	var raw string
	err = r.db.QueryRow(ctx, queryGetBalance, id, currency).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", ErrMsgFailedToGetBalance, err)
	}
	return parseBalance(raw)
}

// Deposit adds amount atomically and returns the new balance
func (r *LedgerRepository) Deposit(ctx context.Context, playerID, currency string, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrInvalidAmount, amount)
	}
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return decimal.Zero, err
	}

	var raw string
	if err := r.db.QueryRow(ctx, queryDeposit, id, currency, amount.String()).Scan(&raw); err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", ErrMsgFailedToDeposit, err)
	}
	return parseBalance(raw)
}

// TopBalances lists the richest players for currency
func (r *LedgerRepository) TopBalances(ctx context.Context, currency string, limit int) ([]domain.BalanceEntry, error) {
	rows, err := r.db.Query(ctx, queryTopBalances, currency, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListBalances, err)
	}
	defer rows.Close()

	var entries []domain.BalanceEntry
	for rows.Next() {
		var id, raw string
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListBalances, err)
		}
		bal, err := parseBalance(raw)
		if err != nil {
			return nil, err
		}
		entries = append(entries, domain.BalanceEntry{PlayerID: id, Balance: bal})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListBalances, err)
	}
	return entries, nil
}

func parseBalance(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", ErrMsgFailedToParseBalance, err)
	}
	return d, nil
}
