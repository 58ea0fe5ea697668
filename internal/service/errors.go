package service

import (
	"errors"
	"fmt"
)

// Error kinds. Every *Error unwraps to exactly one of them, which is what the
// HTTP layer maps to a status code.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

// Error carries a client-facing message together with its kind.
type Error struct {
	Kind    error
	Message string
	// Err is the underlying cause, if any. It is never shown to clients.
	Err error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func validationError(format string, args ...any) error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

func notFoundError(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func conflictError(cause error, format string, args ...any) error {
	return &Error{Kind: ErrConflict, Message: fmt.Sprintf(format, args...), Err: cause}
}

// Message returns the client-facing message of err, or "" when err is not a service error.
func Message(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Message
	}
	return ""
}

// ErrInvalidBody is returned by transports when a request body cannot be decoded.
var ErrInvalidBody error = &Error{Kind: ErrValidation, Message: "Invalid request body"}
