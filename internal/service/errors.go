package service

import (
	"strings"

	"gamesapi/internal/repository"
)

// ErrNotFound is returned when an operation addresses a game that does not exist.
var ErrNotFound = repository.ErrNotFound

// FieldError describes one invalid input field, keyed by its JSON name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when a game payload is missing required fields.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
