// Package errs holds the error taxonomy shared by services and the HTTP layer.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound marks a lookup of a resource that does not exist (or is not owned by the caller).
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a uniqueness violation, e.g. a profile email already in use.
	ErrConflict = errors.New("conflict")
	// ErrUnauthorized marks a request without a valid caller identity.
	ErrUnauthorized = errors.New("unauthorized")
)

// FieldError describes one failing input field.
type FieldError struct {
	Field   string `json:"field" example:"pricePerKg"`
	Message string `json:"message" example:"must be between 50.00 and 500.00"`
}

// ValidationError lists every failing field of a request. Nothing is persisted when it is returned.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a field failure.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// OrNil returns e when at least one field failed, nil otherwise.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Invalid builds a single-field ValidationError.
func Invalid(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// StorageError wraps a datastore failure for operation Op. It is never retried.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Storage wraps err as a StorageError unless it is nil or already classified.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) {
		return err
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}
