package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacksmith/todos/internal/model"
	"github.com/jacksmith/todos/internal/store"
)

// newTestRouter builds the full middleware/route stack over a fresh
// in-memory store, with logging discarded.
func newTestRouter() http.Handler {
	return NewRouter(store.NewMemory(), log.New(io.Discard))
}

// do performs one request against the in-process router.
func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h := newTestRouter()

	rec := do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestTodoLifecycle(t *testing.T) {
	h := newTestRouter()

	// Create.
	rec := do(t, h, http.MethodPost, "/todos", `{"title":"learn"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":1,"title":"learn","done":false}`, rec.Body.String())

	// Mark done without touching the title.
	rec = do(t, h, http.MethodPut, "/todos/1", `{"done":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"title":"learn","done":true}`, rec.Body.String())

	// Fetch it back.
	rec = do(t, h, http.MethodGet, "/todos/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"title":"learn","done":true}`, rec.Body.String())

	// Delete.
	rec = do(t, h, http.MethodDelete, "/todos/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	// Gone now.
	rec = do(t, h, http.MethodGet, "/todos/1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
}

func TestListOrdering(t *testing.T) {
	h := newTestRouter()

	for _, title := range []string{"one", "two", "three"} {
		rec := do(t, h, http.MethodPost, "/todos", `{"title":"`+title+`"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
	}
	rec := do(t, h, http.MethodDelete, "/todos/2", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/todos", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var todos []model.Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &todos))
	require.Len(t, todos, 2)
	assert.Equal(t, int64(1), todos[0].ID)
	assert.Equal(t, int64(3), todos[1].ID)
}

func TestValidationResponses(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"empty title on create", http.MethodPost, "/todos", `{"title":""}`},
		{"whitespace title on create", http.MethodPost, "/todos", `{"title":"   "}`},
		{"malformed body on create", http.MethodPost, "/todos", `{"title":`},
		{"no fields on update", http.MethodPut, "/todos/1", `{}`},
		{"empty title on update", http.MethodPut, "/todos/1", `{"title":" "}`},
		{"non-numeric id on get", http.MethodGet, "/todos/abc", ""},
		{"non-numeric id on delete", http.MethodDelete, "/todos/abc", ""},
	}

	h := newTestRouter()
	rec := do(t, h, http.MethodPost, "/todos", `{"title":"seed"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.True(t, strings.HasPrefix(body.Error, "validation error: "),
				"unexpected error message %q", body.Error)
		})
	}
}

func TestNotFoundResponses(t *testing.T) {
	h := newTestRouter()

	for _, tt := range []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"get", http.MethodGet, "/todos/99", ""},
		{"update", http.MethodPut, "/todos/99", `{"done":true}`},
		{"delete", http.MethodDelete, "/todos/99", ""},
	} {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
		})
	}
}

// failingRepo simulates a backend outage to exercise the 500 path.
type failingRepo struct{}

var errBackend = errors.New("backend unavailable")

func (failingRepo) Create(string) (model.Todo, error) { return model.Todo{}, errBackend }
func (failingRepo) Get(int64) (model.Todo, error)     { return model.Todo{}, errBackend }
func (failingRepo) List() ([]model.Todo, error)       { return nil, errBackend }
func (failingRepo) Update(int64, model.UpdateTodo) (model.Todo, error) {
	return model.Todo{}, errBackend
}
func (failingRepo) Delete(int64) error { return errBackend }

func TestInternalError(t *testing.T) {
	h := NewRouter(failingRepo{}, log.New(io.Discard))

	rec := do(t, h, http.MethodGet, "/todos", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// The backend detail must not leak into the response.
	assert.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
}

// panickingRepo blows up on List to exercise the recovery middleware.
type panickingRepo struct {
	failingRepo
}

func (panickingRepo) List() ([]model.Todo, error) { panic("boom") }

func TestPanicRecovery(t *testing.T) {
	h := NewRouter(panickingRepo{}, log.New(io.Discard))

	rec := do(t, h, http.MethodGet, "/todos", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
}
