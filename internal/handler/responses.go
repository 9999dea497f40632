package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/JobEconomy_Go/internal/domain"
	"github.com/osse101/JobEconomy_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// bufferPool reduces allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and answers with the status and message it maps to
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err, opName)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName, "error", err)
	} else {
		log.Warn(opName, "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// User-facing error messages derived from domain errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgPermissionDeniedErr = "You do not have permission to become this job"
	ErrMsgJobDoesNotExistErr  = "This job does not exist"
	ErrMsgPlayerIDError       = "Player id must be a UUID"
	ErrMsgCategoryError       = "Category must be one of break, place, kill, catch"
	ErrMsgAccountError        = "Account service is unavailable"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages. fallback is used for errors with no specific mapping.
func mapServiceErrorToUserMessage(err error, fallback string) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgUnknownError
	case errors.Is(err, domain.ErrJobNotFound):
		return http.StatusNotFound, ErrMsgJobDoesNotExistErr
	case errors.Is(err, domain.ErrPermissionDenied):
		return http.StatusForbidden, ErrMsgPermissionDeniedErr
	case errors.Is(err, domain.ErrInvalidPlayerID):
		return http.StatusBadRequest, ErrMsgPlayerIDError
	case errors.Is(err, domain.ErrInvalidCategory):
		return http.StatusBadRequest, ErrMsgCategoryError
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	case errors.Is(err, domain.ErrInvalidReward), errors.Is(err, domain.ErrInvalidCatalog):
		// Catalog diagnostics name the offending path and are safe to return
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrAccountUnavailable):
		return http.StatusServiceUnavailable, ErrMsgAccountError
	}

	if fallback == "" {
		fallback = ErrMsgGenericServerError
	}
	return http.StatusInternalServerError, fallback
}
