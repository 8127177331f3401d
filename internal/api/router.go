package api

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jacksmith/todos/internal/store"
)

// NewRouter assembles the middleware and route stack. Every handler
// gets a request id, request logging, panic recovery, gzip
// compression, and permissive CORS.
func NewRouter(repo store.Repo, logger *log.Logger) http.Handler {
	h := NewHandler(repo)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(recoverer(logger))
	r.Use(middleware.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", h.health)
	r.Route("/todos", func(r chi.Router) {
		r.Get("/", h.listTodos)
		r.Post("/", h.createTodo)
		r.Get("/{id}", h.getTodo)
		r.Put("/{id}", h.updateTodo)
		r.Delete("/{id}", h.deleteTodo)
	})

	return r
}
