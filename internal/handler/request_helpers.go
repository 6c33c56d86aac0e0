package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/luckpix/raspadinha/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it
// against the struct's validation tags. On failure the HTTP response has
// already been written and the handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		http.Error(w, ErrMsgInvalidRequest, http.StatusBadRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		validationErrs := FormatValidationError(err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSum,
			Fields: validationErrs,
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetQueryParam retrieves a required query parameter. If the parameter is
// missing the HTTP response has already been written and the handler should
// return.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	log := logger.FromContext(r.Context())
	value := r.URL.Query().Get(paramName)
	if value == "" {
		log.Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		http.Error(w, fmt.Sprintf(ErrMsgMissingQueryParam, paramName), http.StatusBadRequest)
		return "", false
	}
	return value, true
}

// parseUUIDField parses a uuid taken from a request body, writing a
// bad-request response on failure.
func parseUUIDField(w http.ResponseWriter, raw, errMsg string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		http.Error(w, errMsg, http.StatusBadRequest)
		return uuid.Nil, err
	}
	return id, nil
}

// ParseUUIDParam parses a uuid query parameter, writing a bad-request
// response on failure.
func ParseUUIDParam(r *http.Request, w http.ResponseWriter, paramName, errMsg string) (uuid.UUID, bool) {
	raw, ok := GetQueryParam(r, w, paramName)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		http.Error(w, errMsg, http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}
