package errs

import (
	"errors"
)

// Kind classifies an error for the transport layer.
type Kind string

const (
	KindValidation      Kind = "VALIDATION"
	KindNotFound        Kind = "NOT_FOUND"
	KindConflict        Kind = "CONFLICT"
	KindUnauthenticated Kind = "UNAUTHENTICATED"
	KindForbidden       Kind = "FORBIDDEN"
	KindPersistence     Kind = "PERSISTENCE"
)

// Error is a domain error with a kind and a user-facing message.
// Field is set for validation errors that concern a single input.
type Error struct {
	Kind  Kind
	Field string
	msg   string
	err   error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.err
}

// Message returns the text that is safe to show to API clients.
func (e *Error) Message() string {
	return e.msg
}

// Define declares a sentinel of the given kind. Sentinels are compared by identity.
func Define(kind Kind, msg string) *Error {
	return &Error{Kind: kind, msg: msg}
}

// DefineField declares a sentinel tied to a single input field.
func DefineField(kind Kind, field, msg string) *Error {
	return &Error{Kind: kind, Field: field, msg: msg}
}

// Newk creates a one-off error of the given kind.
func Newk(kind Kind, msg string) error {
	return &Error{Kind: kind, msg: msg}
}

func Validation(field, msg string) error {
	return &Error{Kind: KindValidation, Field: field, msg: msg}
}

func Persistence(err error, msg string) error {
	return &Error{Kind: KindPersistence, msg: msg, err: err}
}

// As returns the first *Error in the chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf reports the kind of err, or "" if err carries none.
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
