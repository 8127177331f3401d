package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/jacksmith/todos/internal/store"
)

// errorBody is the shape of every JSON error response.
type errorBody struct {
	Error string `json:"error"`
}

// writeJSON serializes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response", "err", err)
	}
}

// writeError maps a store error to its HTTP status and message.
// Validation detail is surfaced to the caller; anything unrecognized
// becomes a generic 500 so internal detail never leaks.
func writeError(w http.ResponseWriter, err error) {
	var (
		notFound   *store.NotFoundError
		validation *store.ValidationError
	)
	switch {
	case errors.As(err, &notFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "validation error: " + validation.Error()})
	default:
		log.Error("unexpected error", "err", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}
