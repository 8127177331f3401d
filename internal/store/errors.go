package store

import "fmt"

// NotFoundError indicates the referenced todo id does not exist.
type NotFoundError struct {
	ID int64 // the id that was not found
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("todo %d not found", e.ID)
}

// ValidationError indicates caller-supplied input violates a business
// rule. It is always raised before any state change.
type ValidationError struct {
	Field   string // the field that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}
