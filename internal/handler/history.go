package handler

import (
	"context"
	"net/http"

	"github.com/osse101/JobEconomy_Go/internal/domain"
)

// HistoryReader returns a player's job history
type HistoryReader interface {
	History(ctx context.Context, playerID string, limit int) ([]domain.EventLogEntry, error)
}

// HistoryResponse lists history entries, newest first
type HistoryResponse struct {
	PlayerID string                 `json:"player_id"`
	Events   []domain.EventLogEntry `json:"events"`
}

type HistoryHandler struct {
	history HistoryReader
}

func NewHistoryHandler(history HistoryReader) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// HandleGetHistory returns job changes, level ups and salary payouts.
// ?limit defaults to 20.
func (h *HistoryHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	playerID, ok := playerIDParam(w, r)
	if !ok {
		return
	}
	limit, ok := GetOptionalIntQueryParam(w, r, "limit", 0)
	if !ok {
		return
	}

	events, err := h.history.History(r.Context(), playerID, limit)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetHistoryFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, HistoryResponse{PlayerID: playerID, Events: events})
}
