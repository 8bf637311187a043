package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrUnauthorized marks any failure caused by a rejected bearer token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrCategoryExists is returned when the backend rejects a category name
	// as a duplicate. Surfaced distinctly so the presentation layer can show
	// a targeted message instead of a generic failure.
	ErrCategoryExists = errors.New("category already exists")

	// ErrNoSession is returned by operations that require authentication
	// when no token is available.
	ErrNoSession = errors.New("no active session")

	// ErrNotFound is returned by the local store when an ID does not resolve.
	ErrNotFound = errors.New("not found")
)

// ValidationError reports a required field that is empty (or blank after
// trimming). It is raised before any network or disk access.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for a field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// RequestError carries the HTTP status and the human-readable message of a
// failed request against the remote API.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Message)
}

// Unwrap lets errors.Is(err, ErrUnauthorized) match 401 responses without
// callers inspecting the status themselves.
func (e *RequestError) Unwrap() error {
	if e.Status == 401 {
		return ErrUnauthorized
	}
	return nil
}

// DecodeError reports a response body that does not match the expected
// envelope or payload schema. It is deliberately distinct from RequestError:
// a malformed 200 is a contract violation, not a business failure.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
