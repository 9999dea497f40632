package domain

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PermissionJobPrefix is the permission node prefix that gates job selection.
// The full node is PermissionJobPrefix + lower-cased job name.
const PermissionJobPrefix = "main.job."

// NormalizePlayerID returns the canonical lower-case form of a player UUID.
// Locks, caches and session keys all use this form, so the same player
// spelled in different cases maps to one key.
func NormalizePlayerID(playerID string) (string, error) {
	u, err := uuid.Parse(playerID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPlayerID, err)
	}
	return u.String(), nil
}

// PlayerSession is an online player as reported by the host
type PlayerSession struct {
	PlayerID    string   `json:"player_id"`
	Name        string   `json:"name,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
}

// HasPermission reports whether the session was granted node
func (s PlayerSession) HasPermission(node string) bool {
	for _, p := range s.Permissions {
		if p == node || p == "*" {
			return true
		}
	}
	return false
}

// Messenger delivers chat messages to a player through the host
type Messenger interface {
	SendMessage(ctx context.Context, playerID, message string) error
}

// Authorizer answers permission checks for a player
type Authorizer interface {
	HasPermission(ctx context.Context, playerID, node string) (bool, error)
}

// PlayerDirectory enumerates the players currently online
type PlayerDirectory interface {
	OnlinePlayers(ctx context.Context) ([]PlayerSession, error)
}

// Account is a single player's currency account
type Account interface {
	Deposit(ctx context.Context, currency string, amount decimal.Decimal, cause string) error
	Balance(ctx context.Context, currency string) (decimal.Decimal, error)
}

// AccountService resolves player accounts, creating them on first use
type AccountService interface {
	GetOrCreateAccount(ctx context.Context, playerID string) (Account, error)
}

// BalanceEntry is one row of the balance leaderboard
type BalanceEntry struct {
	PlayerID string          `json:"player_id"`
	Balance  decimal.Decimal `json:"balance"`
}

// Deposit causes recorded with each transaction
const (
	CauseJobReward = "job_reward"
	CauseSalary    = "salary"
)

// Currency names the currency rewards and salaries are paid in
type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// OrDefault fills empty fields with the default currency
func (c Currency) OrDefault() Currency {
	if c.Name == "" {
		c.Name = DefaultCurrencyName
	}
	if c.Symbol == "" {
		c.Symbol = DefaultCurrencySymbol
	}
	return c
}

// Format renders amount with the currency symbol and two decimals
func (c Currency) Format(amount decimal.Decimal) string {
	return FormatCurrency(c.Symbol, amount)
}
