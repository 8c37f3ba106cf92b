package domain

import (
	"errors"
	"strings"
)

// Uniqueness errors surfaced by the repository when an insert loses the
// race against the unique indexes.
var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
)

// ValidationError aggregates every violated rule from one create attempt,
// one human-readable message per rule.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}
