// Package model defines the core data structures for todos.
package model

// Todo represents a single todo record. The id is assigned by the store
// at creation time and never changes.
type Todo struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// CreateTodo is the request payload for creating a new todo.
type CreateTodo struct {
	Title string `json:"title"`
}

// UpdateTodo is the request payload for updating an existing todo.
// Nil fields are left unchanged; at least one must be set.
type UpdateTodo struct {
	Title *string `json:"title"`
	Done  *bool   `json:"done"`
}
