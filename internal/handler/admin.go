package handler

import (
	"context"
	"net/http"

	"github.com/osse101/JobEconomy_Go/internal/logger"
	"github.com/osse101/JobEconomy_Go/internal/salary"
)

// ConfigReloader reloads the job catalog
type ConfigReloader interface {
	ReloadConfig(ctx context.Context) error
	JobList() []string
}

// PayrollRunner pays salaries on demand
type PayrollRunner interface {
	Run(ctx context.Context) (salary.Result, error)
}

// ReloadResponse reports the catalog after a reload
type ReloadResponse struct {
	Message string   `json:"message"`
	Jobs    []string `json:"jobs"`
}

type AdminHandler struct {
	reloader ConfigReloader
	payroll  PayrollRunner
}

func NewAdminHandler(reloader ConfigReloader, payroll PayrollRunner) *AdminHandler {
	return &AdminHandler{reloader: reloader, payroll: payroll}
}

// HandleReload re-reads the job catalog. On failure the previous catalog
// stays active and the diagnostic is returned.
func (h *AdminHandler) HandleReload(w http.ResponseWriter, r *http.Request) {
	if err := h.reloader.ReloadConfig(r.Context()); err != nil {
		respondServiceError(w, r, ErrMsgReloadConfigFailed, err)
		return
	}

	jobs := h.reloader.JobList()
	logger.FromContext(r.Context()).Info("Job configuration reloaded via API", "jobs", jobs)
	respondJSON(w, http.StatusOK, ReloadResponse{Message: MsgConfigReloaded, Jobs: jobs})
}

// HandleRunSalary pays every online player immediately, outside the timer
func (h *AdminHandler) HandleRunSalary(w http.ResponseWriter, r *http.Request) {
	result, err := h.payroll.Run(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgSalaryRunFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
