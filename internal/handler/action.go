package handler

import (
	"context"
	"net/http"

	"github.com/osse101/JobEconomy_Go/internal/domain"
	"github.com/osse101/JobEconomy_Go/internal/event"
	"github.com/osse101/JobEconomy_Go/internal/logger"
	"github.com/osse101/JobEconomy_Go/internal/reward"
)

// MaxBatchActions bounds a single batch submission
const MaxBatchActions = 500

// ActionDispatcher rewards a single action
type ActionDispatcher interface {
	HandleAction(ctx context.Context, action domain.ActionEvent) (reward.Outcome, error)
}

// ActionResponse is the result of a synchronous action submission.
// Warning is set when a qualifying action was only partly applied.
type ActionResponse struct {
	reward.Outcome
	Warning string `json:"warning,omitempty"`
}

// BatchActionRequest carries actions to be processed asynchronously
type BatchActionRequest struct {
	Actions []domain.ActionEvent `json:"actions" validate:"required,min=1,max=500,dive"`
}

// BatchActionResponse reports how many actions were queued
type BatchActionResponse struct {
	Message  string `json:"message"`
	Accepted int    `json:"accepted"`
	Failed   int    `json:"failed"`
}

type ActionHandler struct {
	dispatcher ActionDispatcher
	publisher  event.Publisher
}

func NewActionHandler(dispatcher ActionDispatcher, publisher event.Publisher) *ActionHandler {
	return &ActionHandler{dispatcher: dispatcher, publisher: publisher}
}

// HandleAction rewards one action and returns what it earned
func (h *ActionHandler) HandleAction(w http.ResponseWriter, r *http.Request) {
	var req domain.ActionEvent
	if err := DecodeAndValidateRequest(r, w, &req, "Action"); err != nil {
		return
	}

	out, err := h.dispatcher.HandleAction(r.Context(), req)
	if err != nil && !out.Qualified {
		respondServiceError(w, r, ErrMsgHandleActionFailed, err)
		return
	}

	resp := ActionResponse{Outcome: out}
	if err != nil {
		logger.FromContext(r.Context()).Warn("Action partially applied",
			"player_id", req.PlayerID,
			"category", req.Category,
			"error", err,
		)
		resp.Warning = ErrMsgHandleActionFailed
	}
	respondJSON(w, http.StatusOK, resp)
}

// HandleBatch publishes every action on the event bus and returns
// immediately. Rewards are applied by the bus subscriber.
func (h *ActionHandler) HandleBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchActionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Batch action"); err != nil {
		return
	}

	log := logger.FromContext(r.Context())
	resp := BatchActionResponse{Message: MsgActionsQueued}
	for _, action := range req.Actions {
		if err := h.publisher.Publish(r.Context(), event.NewActionEvent(action)); err != nil {
			log.Warn(ErrMsgQueueActionsFailed, "player_id", action.PlayerID, "error", err)
			resp.Failed++
			continue
		}
		resp.Accepted++
	}

	if resp.Accepted == 0 {
		respondError(w, http.StatusInternalServerError, ErrMsgQueueActionsFailed)
		return
	}
	respondJSON(w, http.StatusAccepted, resp)
}
