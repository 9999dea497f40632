package handler

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/osse101/JobEconomy_Go/internal/domain"
)

// BalanceReader answers balance queries
type BalanceReader interface {
	Balance(ctx context.Context, playerID, currency string) (decimal.Decimal, error)
	TopBalances(ctx context.Context, currency string, limit int) ([]domain.BalanceEntry, error)
}

// BalanceResponse is a single player's balance
type BalanceResponse struct {
	PlayerID  string          `json:"player_id"`
	Currency  string          `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	Formatted string          `json:"formatted"`
}

// TopBalancesResponse is the balance leaderboard
type TopBalancesResponse struct {
	Currency string                `json:"currency"`
	Entries  []domain.BalanceEntry `json:"entries"`
}

type BalanceHandler struct {
	accounts BalanceReader
	currency domain.Currency
}

func NewBalanceHandler(accounts BalanceReader, currency domain.Currency) *BalanceHandler {
	return &BalanceHandler{accounts: accounts, currency: currency.OrDefault()}
}

// HandleGetBalance returns the player's balance in the configured currency
func (h *BalanceHandler) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	playerID, ok := playerIDParam(w, r)
	if !ok {
		return
	}

	balance, err := h.accounts.Balance(r.Context(), playerID, h.currency.Name)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetBalanceFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, BalanceResponse{
		PlayerID:  playerID,
		Currency:  h.currency.Name,
		Balance:   balance,
		Formatted: h.currency.Format(balance),
	})
}

// HandleTopBalances returns the richest players. ?limit defaults to 10.
func (h *BalanceHandler) HandleTopBalances(w http.ResponseWriter, r *http.Request) {
	limit, ok := GetOptionalIntQueryParam(w, r, "limit", 0)
	if !ok {
		return
	}

	entries, err := h.accounts.TopBalances(r.Context(), h.currency.Name, limit)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetBalanceFailed, err)
		return
	}
	if entries == nil {
		entries = []domain.BalanceEntry{}
	}
	respondJSON(w, http.StatusOK, TopBalancesResponse{Currency: h.currency.Name, Entries: entries})
}
