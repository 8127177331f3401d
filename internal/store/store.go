// Package store provides the todo repository and its default in-memory
// implementation.
package store

import "github.com/jacksmith/todos/internal/model"

// Repo defines the repository interface required by the HTTP handlers.
// The concrete implementation is Memory, but this interface allows
// alternative backends (database, HTTP, etc.) without changing handler
// code.
type Repo interface {
	Create(title string) (model.Todo, error)
	Get(id int64) (model.Todo, error)
	List() ([]model.Todo, error)
	Update(id int64, changes model.UpdateTodo) (model.Todo, error)
	Delete(id int64) error
}
