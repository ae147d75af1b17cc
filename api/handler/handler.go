package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/sgnl-ai/caep-transmitter-agent/action"
	"github.com/sgnl-ai/caep-transmitter-agent/api/service"
	"github.com/sgnl-ai/caep-transmitter-agent/caepagenterrors"
)

type Handlers struct {
	service *service.Service
	logger  *zap.Logger
}

func NewHandlers(service *service.Service, logger *zap.Logger) *Handlers {
	return &Handlers{
		service: service,
		logger:  logger,
	}
}

type ErrorRequest struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

type ErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func (h *Handlers) InvokeHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error("Failed to read invoke request body", zap.Error(err))
		http.Error(w, "Failed to read request body", http.StatusInternalServerError)

		return
	}

	defer r.Body.Close()

	var invokeRequest action.InvokeRequest

	if err := json.Unmarshal(body, &invokeRequest); err != nil {
		h.logger.Error("Failed to unmarshal invoke request body", zap.Error(err))
		http.Error(w, "Invalid request", http.StatusBadRequest)

		return
	}

	result, err := h.service.Invoke(r.Context(), &invokeRequest)
	if err != nil {
		h.logger.Error("Invocation failed", zap.Error(err))
		http.Error(w, err.Error(), invocationErrorStatus(err))

		return
	}

	writeJSON(w, h.logger, result)
}

func (h *Handlers) ErrorHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error("Failed to read error request body", zap.Error(err))
		http.Error(w, "Failed to read request body", http.StatusInternalServerError)

		return
	}

	defer r.Body.Close()

	var errorRequest ErrorRequest

	if err := json.Unmarshal(body, &errorRequest); err != nil {
		h.logger.Error("Failed to unmarshal error request body", zap.Error(err))
		http.Error(w, "Invalid request", http.StatusBadRequest)

		return
	}

	if errorRequest.Error.Message == "" {
		http.Error(w, "Missing error message", http.StatusBadRequest)

		return
	}

	ack, err := h.service.ClassifyError(errorRequest.Error.Message)
	if err != nil {
		// Not retryable: the original error travels back to the host
		// unchanged in the response body.
		writeJSON(w, h.logger, ErrorResponse{Status: "failed", Error: err.Error()})

		return
	}

	writeJSON(w, h.logger, ack)
}

func (h *Handlers) HaltHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, h.service.Halt())
}

// Validation and secret-configuration failures are the caller's to fix;
// everything else is surfaced as a server-side failure.
func invocationErrorStatus(err error) int {
	if errors.Is(err, caepagenterrors.ErrValidation) ||
		errors.Is(err, caepagenterrors.ErrMissingSigningKey) ||
		errors.Is(err, caepagenterrors.ErrMissingKeyID) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, payload interface{}) {
	responseBody, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal response", zap.Error(err))
		http.Error(w, "Failed to process response", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(responseBody)
}
