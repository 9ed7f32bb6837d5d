package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidDate   = errors.New("invalid date")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// EntryError represents a failure operating on a specific entry
type EntryError struct {
	ID     string
	Reason error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %s: %v", e.ID, e.Reason)
}

func (e *EntryError) Unwrap() error {
	return e.Reason
}
