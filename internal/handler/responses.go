package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/luckpix/raspadinha/internal/domain"
	"github.com/luckpix/raspadinha/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequest      = "Invalid request body"
	ErrMsgInvalidRequestSum   = "Invalid request"
	ErrMsgMissingQueryParam   = "Missing required query parameter: %s"
	ErrMsgInvalidUserID       = "Invalid user id"
	ErrMsgInvalidGameID       = "Invalid game id"
	ErrMsgInvalidOverrideID   = "Invalid override id"

	ErrMsgInsufficientFunds = "Saldo insuficiente"
	ErrMsgGameNotFound      = "Game not found"
	ErrMsgGameMisconfigured = "Game configuration is invalid"
	ErrMsgOverrideNotFound  = "Override not found"
	ErrMsgWalletNotFound    = "Wallet not found"
	ErrMsgInvalidAmount     = "Amount must be positive"
)

// mapServiceErrorToUserMessage maps domain errors to user-facing HTTP
// status codes and messages.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired, ErrMsgInsufficientFunds
	case errors.Is(err, domain.ErrGameNotFound):
		return http.StatusNotFound, ErrMsgGameNotFound
	case errors.Is(err, domain.ErrInvalidGameConfig):
		return http.StatusUnprocessableEntity, ErrMsgGameMisconfigured
	case errors.Is(err, domain.ErrOverrideNotFound):
		return http.StatusNotFound, ErrMsgOverrideNotFound
	case errors.Is(err, domain.ErrWalletNotFound):
		return http.StatusNotFound, ErrMsgWalletNotFound
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidAmount
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestSum
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs the error and writes the mapped user-facing response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	logger.FromContext(r.Context()).Error("Operation failed", "op", opName, "error", err)
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	respondError(w, statusCode, userMsg)
}
