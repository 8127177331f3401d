package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jacksmith/todos/internal/model"
)

// MaxTitleLen is the maximum allowed title length.
const MaxTitleLen = 100

// validateTitle checks that a title is non-empty after trimming and
// within the length cap. Returns the trimmed title.
func validateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", &ValidationError{Field: "title", Message: "must not be empty"}
	}
	if len(trimmed) > MaxTitleLen {
		return "", &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("must be at most %d characters", MaxTitleLen),
		}
	}
	return trimmed, nil
}

// Memory is an in-memory Repo guarded by a read-write mutex. Ids come
// from a monotonically increasing counter and are never reused, even
// after deletion.
type Memory struct {
	mu     sync.RWMutex
	todos  map[int64]model.Todo
	nextID int64
}

// NewMemory returns an empty store. The first created todo gets id 1.
func NewMemory() *Memory {
	return &Memory{
		todos:  make(map[int64]model.Todo),
		nextID: 1,
	}
}

// Create validates the title, assigns the next id, and inserts a new
// todo with done=false. Returns a copy of the stored record.
func (m *Memory) Create(title string) (model.Todo, error) {
	trimmed, err := validateTitle(title)
	if err != nil {
		return model.Todo{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	todo := model.Todo{
		ID:    m.nextID,
		Title: trimmed,
	}
	m.todos[todo.ID] = todo
	m.nextID++

	return todo, nil
}

// Get returns the todo with the given id.
func (m *Memory) Get(id int64) (model.Todo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	todo, ok := m.todos[id]
	if !ok {
		return model.Todo{}, &NotFoundError{ID: id}
	}
	return todo, nil
}

// List returns all todos in ascending id order.
func (m *Memory) List() ([]model.Todo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	todos := make([]model.Todo, 0, len(m.todos))
	for _, t := range m.todos {
		todos = append(todos, t)
	}
	sort.Slice(todos, func(i, j int) bool {
		return todos[i].ID < todos[j].ID
	})
	return todos, nil
}

// Update applies the provided fields to an existing todo and returns
// the updated copy. Input is validated before the lock is taken, so a
// bad request never touches state.
func (m *Memory) Update(id int64, changes model.UpdateTodo) (model.Todo, error) {
	if changes.Title == nil && changes.Done == nil {
		return model.Todo{}, &ValidationError{Message: "provide at least one field to update"}
	}

	var trimmed string
	if changes.Title != nil {
		var err error
		trimmed, err = validateTitle(*changes.Title)
		if err != nil {
			return model.Todo{}, err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	todo, ok := m.todos[id]
	if !ok {
		return model.Todo{}, &NotFoundError{ID: id}
	}

	if changes.Title != nil {
		todo.Title = trimmed
	}
	if changes.Done != nil {
		todo.Done = *changes.Done
	}
	m.todos[id] = todo

	return todo, nil
}

// Delete removes the todo with the given id. Deleted ids are not
// reused.
func (m *Memory) Delete(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.todos[id]; !ok {
		return &NotFoundError{ID: id}
	}
	delete(m.todos, id)
	return nil
}
