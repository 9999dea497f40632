package handler

import (
	"context"
	"net/http"

	"github.com/osse101/JobEconomy_Go/internal/domain"
	"github.com/osse101/JobEconomy_Go/internal/logger"
)

// PlayerJobService is the part of job.Service the player routes use
type PlayerJobService interface {
	SetJob(ctx context.Context, playerID, jobName string) (string, error)
	JobInfo(ctx context.Context, playerID string) (*domain.JobInfo, error)
	SetNotifications(ctx context.Context, playerID string, enabled bool) error
}

// SessionService tracks which players are online
type SessionService interface {
	Connect(ctx context.Context, session domain.PlayerSession) error
	Disconnect(ctx context.Context, playerID string) error
}

// ConnectRequest is sent by the host when a player joins
type ConnectRequest struct {
	Name        string   `json:"name" validate:"max=64"`
	Permissions []string `json:"permissions" validate:"max=256,dive,max=128"`
}

// SetJobRequest is the request body for changing jobs
type SetJobRequest struct {
	Job string `json:"job" validate:"required,max=64,jobname"`
}

// SetJobResponse returns the canonical job name
type SetJobResponse struct {
	PlayerID string `json:"player_id"`
	Job      string `json:"job"`
}

// SetNotificationsRequest toggles per-action messages
type SetNotificationsRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

type PlayerHandler struct {
	jobs     PlayerJobService
	sessions SessionService
}

func NewPlayerHandler(jobs PlayerJobService, sessions SessionService) *PlayerHandler {
	return &PlayerHandler{jobs: jobs, sessions: sessions}
}

// HandleConnect records the player as online with the permissions the host granted
func (h *PlayerHandler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	playerID, ok := playerIDParam(w, r)
	if !ok {
		return
	}

	// The body is optional; a bare connect carries no permissions
	var req ConnectRequest
	if r.ContentLength != 0 {
		if err := DecodeAndValidateRequest(r, w, &req, "Connect"); err != nil {
			return
		}
	}

	session := domain.PlayerSession{PlayerID: playerID, Name: req.Name, Permissions: req.Permissions}
	if err := h.sessions.Connect(r.Context(), session); err != nil {
		respondServiceError(w, r, ErrMsgConnectFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPlayerConnected})
}

// HandleDisconnect marks the player offline
func (h *PlayerHandler) HandleDisconnect(w http.ResponseWriter, r *http.Request) {
	playerID, ok := playerIDParam(w, r)
	if !ok {
		return
	}

	if err := h.sessions.Disconnect(r.Context(), playerID); err != nil {
		respondServiceError(w, r, ErrMsgDisconnectFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPlayerDisconnected})
}

// HandleGetJob returns job, level, exp and exp still needed for the next level
func (h *PlayerHandler) HandleGetJob(w http.ResponseWriter, r *http.Request) {
	playerID, ok := playerIDParam(w, r)
	if !ok {
		return
	}

	info, err := h.jobs.JobInfo(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetJobInfoFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, info)
}

// HandleSetJob switches the player's job. Denials are also messaged to the
// player by the service.
func (h *PlayerHandler) HandleSetJob(w http.ResponseWriter, r *http.Request) {
	playerID, ok := playerIDParam(w, r)
	if !ok {
		return
	}

	var req SetJobRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set job"); err != nil {
		return
	}

	name, err := h.jobs.SetJob(r.Context(), playerID, req.Job)
	if err != nil {
		respondServiceError(w, r, ErrMsgSetJobFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info("Job set via API", "player_id", playerID, "job", name)
	respondJSON(w, http.StatusOK, SetJobResponse{PlayerID: playerID, Job: name})
}

// HandleSetNotifications stores the player's message preference
func (h *PlayerHandler) HandleSetNotifications(w http.ResponseWriter, r *http.Request) {
	playerID, ok := playerIDParam(w, r)
	if !ok {
		return
	}

	var req SetNotificationsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set notifications"); err != nil {
		return
	}

	if err := h.jobs.SetNotifications(r.Context(), playerID, *req.Enabled); err != nil {
		respondServiceError(w, r, ErrMsgSetNotificationsFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgNotificationsUpdated})
}
