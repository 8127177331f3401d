// Package api implements the HTTP surface over a store.Repo.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jacksmith/todos/internal/model"
	"github.com/jacksmith/todos/internal/store"
)

// Handler translates todo routes into Repo operations. The repo is
// injected so tests (and future backends) can swap it out.
type Handler struct {
	repo store.Repo
}

// NewHandler creates a Handler over the given repository.
func NewHandler(repo store.Repo) *Handler {
	return &Handler{repo: repo}
}

// health reports liveness without touching the store.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.repo.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, todos)
}

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	var payload model.CreateTodo
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	todo, err := h.repo.Create(payload.Title)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, todo)
}

func (h *Handler) getTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	todo, err := h.repo.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, todo)
}

func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var payload model.UpdateTodo
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	todo, err := h.repo.Update(id, payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, todo)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.repo.Delete(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseID extracts the {id} path parameter. A non-numeric id is a
// validation error, not a missing route.
func parseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &store.ValidationError{Field: "id", Message: "must be an integer"}
	}
	return id, nil
}

// decodeJSON parses the request body, mapping malformed JSON to a
// validation error.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &store.ValidationError{Field: "body", Message: "malformed JSON"}
	}
	return nil
}
