package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dtroode/messagely-server/internal/logger"
	"github.com/dtroode/messagely-server/internal/model"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Kind    model.ErrorKind `json:"kind"`
	Message string          `json:"message"`
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind model.ErrorKind) int {
	switch kind {
	case model.KindValidation, model.KindConflict:
		return http.StatusBadRequest
	case model.KindNotFound:
		return http.StatusNotFound
	case model.KindForbidden, model.KindInvalidToken:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes err as a JSON error body. Errors that are not APIErrors
// are logged and reported as a generic internal error.
func WriteError(w http.ResponseWriter, err error, log *logger.Logger) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		writeJSON(w, StatusFor(apiErr.Kind), errorBody{Error: errorDetail{Kind: apiErr.Kind, Message: apiErr.Message}})
		return
	}

	log.Error("HTTP handler: internal server error",
		"error", err.Error())
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: errorDetail{
		Kind:    "internal_error",
		Message: "internal server error",
	}})
}

func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return model.NewErrValidation("request body is required")
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return model.NewErrValidation("request body must be valid JSON")
	}
	return nil
}
