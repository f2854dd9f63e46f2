// Package errs defines the shared error taxonomy for the data access layer,
// the upload adapter and the content API.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors, one per failure class. Callers classify with errors.Is.
var (
	// ErrValidation marks missing or malformed required fields (user-correctable).
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a referenced id that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a constraint violation such as an invalid foreign
	// key or a unique-id collision.
	ErrConflict = errors.New("resource conflict")

	// ErrStorage marks an unexpected store failure (not user-correctable).
	ErrStorage = errors.New("storage failure")

	// ErrUpload marks an empty or malformed upload request (user-correctable).
	// Backend failures are ErrStorage.
	ErrUpload = errors.New("upload failed")
)

// Error carries a sentinel class, a human-readable message and an optional cause.
type Error struct {
	kind    error
	message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}

	return e.message
}

// Message returns the human-readable message without the underlying cause,
// safe to return in a response body.
func (e *Error) Message() string {
	return e.message
}

// Unwrap makes errors.Is match the sentinel class and the cause chain.
func (e *Error) Unwrap() []error {
	if e.cause != nil {
		return []error{e.kind, e.cause}
	}

	return []error{e.kind}
}

// Validation creates a validation error with the given message.
func Validation(message string) *Error {
	return &Error{kind: ErrValidation, message: message}
}

// NotFound creates a not-found error with the given message.
func NotFound(message string) *Error {
	return &Error{kind: ErrNotFound, message: message}
}

// Conflict creates a conflict error with the given message.
func Conflict(message string, cause error) *Error {
	return &Error{kind: ErrConflict, message: message, cause: cause}
}

// Storage wraps an unexpected store failure.
func Storage(message string, cause error) *Error {
	return &Error{kind: ErrStorage, message: message, cause: cause}
}

// Upload creates an upload error with the given message.
func Upload(message string, cause error) *Error {
	return &Error{kind: ErrUpload, message: message, cause: cause}
}

// StatusCode maps an error to the HTTP status of its failure class.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUpload):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message safe for a response body. Storage failures
// never leak their cause.
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message()
	}

	return err.Error()
}
