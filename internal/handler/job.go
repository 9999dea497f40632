package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/JobEconomy_Go/internal/domain"
)

// JobCatalog is the read side of the job catalog
type JobCatalog interface {
	JobNames() []string
	Job(name string) (*domain.JobDefinition, bool)
	SalaryDelay() int
}

// JobListResponse lists the configured jobs in display order
type JobListResponse struct {
	Jobs        []string                `json:"jobs"`
	SalaryDelay int                     `json:"salary_delay_seconds"`
	Definitions []*domain.JobDefinition `json:"definitions"`
}

type JobHandler struct {
	catalog JobCatalog
}

func NewJobHandler(cat JobCatalog) *JobHandler {
	return &JobHandler{catalog: cat}
}

// HandleListJobs returns the display list and the definition of every listed job
func (h *JobHandler) HandleListJobs(w http.ResponseWriter, r *http.Request) {
	names := h.catalog.JobNames()
	resp := JobListResponse{
		Jobs:        names,
		SalaryDelay: h.catalog.SalaryDelay(),
		Definitions: make([]*domain.JobDefinition, 0, len(names)+1),
	}

	if def, ok := h.catalog.Job(domain.UnemployedJob); ok {
		resp.Definitions = append(resp.Definitions, def)
	}
	for _, name := range names {
		if def, ok := h.catalog.Job(name); ok {
			resp.Definitions = append(resp.Definitions, def)
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

// HandleGetJob returns one job definition by name, in any case
func (h *JobHandler) HandleGetJob(w http.ResponseWriter, r *http.Request) {
	def, ok := h.catalog.Job(chi.URLParam(r, "name"))
	if !ok {
		respondError(w, http.StatusNotFound, ErrMsgJobNotFound)
		return
	}
	respondJSON(w, http.StatusOK, def)
}
