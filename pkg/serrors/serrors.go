// Package serrors implements semantic errors: a small set of error kinds
// that classify failures independently of where they happened, so the
// transport layer can pick a status code without knowing about storage or
// business rules.
package serrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a semantic error category. Only values created by NewKind
// implement it.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new kind sentinel identified by name.
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized indicates missing, invalid or expired credentials.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrForbidden indicates the caller may not act on the resource.
	ErrForbidden = NewKind("FORBIDDEN")
	// ErrBadRequest indicates the request violates a validation or business rule.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict indicates the resource already exists.
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal indicates an unexpected failure.
	ErrInternal = NewKind("INTERNAL")
)

// HTTPStatus maps a kind to the response status code used for it. Unknown
// kinds map to 500.
func HTTPStatus(k Kind) int {
	switch k {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrUnauthorized:
		return http.StatusUnauthorized
	case ErrForbidden:
		return http.StatusForbidden
	case ErrBadRequest:
		return http.StatusBadRequest
	case ErrConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error carries a kind, an optional cause and an optional message.
//
// errors.Is and errors.As match both the kind and the cause chain. The
// message, when set, is what Error returns in front of the cause:
//
//	msg + cause -> "<msg>: <cause>"
//	msg only    -> "<msg>"
//	cause only  -> "<cause>"
//	neither     -> kind name
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With builds an error of kind k with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap builds an error of kind k around cause err with a formatted message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly builds an error that carries nothing but its kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

func (e *Error) Unwrap() error { return e.err }

// Is matches target against the kind first and the cause chain second.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.err != nil && errors.Is(e.err, target)
}

// As extracts either the kind or a value from the cause chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}

	return e.err != nil && errors.As(e.err, target)
}

// Kind returns the error's kind, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to the error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause, or nil.
func (e *Error) Cause() error { return e.err }

// KindOf returns the kind found in err's chain, or ErrInternal when err
// carries none.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}
