// Package apperr defines the error kinds surfaced by the service layer and
// how they map onto HTTP status codes.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindStore      Kind = "store"
	KindInternal   Kind = "internal"
)

// Error carries a Kind, a caller-facing message and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(format string, args ...any) *Error {
	return New(KindValidation, fmt.Sprintf(format, args...), nil)
}

func NotFound(format string, args ...any) *Error {
	return New(KindNotFound, fmt.Sprintf(format, args...), nil)
}

// Store wraps a failure of the underlying database.
func Store(op string, err error) *Error {
	return New(KindStore, op+" failed", err)
}

func Internal(message string, err error) *Error {
	return New(KindInternal, message, err)
}

// KindOf reports the kind of err. Errors that are not *Error are internal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

func StatusCode(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the text safe to show a caller. Causes of store and
// internal errors stay in the logs.
func Message(err error) string {
	var ae *Error
	if !errors.As(err, &ae) {
		return "internal error"
	}
	if ae.Kind == KindValidation || ae.Kind == KindNotFound || ae.Err == nil {
		return ae.Message
	}
	return ae.Message + ": " + ae.Err.Error()
}
