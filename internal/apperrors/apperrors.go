// Package apperrors defines the failure taxonomy shared by every service and
// the single place where failures are mapped onto HTTP responses.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindUnauthenticated
	KindForbidden
	KindInvalid
	KindNotFound
	KindConflict
	KindInternal
)

// Error carries a failure kind plus a reason safe to show to callers.
type Error struct {
	Kind   Kind
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, reason string) *Error {
	return &Error{Kind: kind, Reason: reason}
}

func Wrap(err error, kind Kind, reason string) *Error {
	return &Error{Kind: kind, Reason: reason, Err: err}
}

func Unauthenticated(reason string) *Error { return New(KindUnauthenticated, reason) }
func Forbidden(reason string) *Error       { return New(KindForbidden, reason) }
func Invalid(reason string) *Error         { return New(KindInvalid, reason) }
func NotFound(reason string) *Error        { return New(KindNotFound, reason) }
func Conflict(reason string) *Error        { return New(KindConflict, reason) }

// Internal wraps an unexpected storage or infrastructure error. The cause is
// kept for logging; callers only ever see the reason.
func Internal(err error, reason string) *Error {
	return &Error{Kind: KindInternal, Reason: reason, Err: err}
}

// KindOf extracts the kind from any error in the chain, KindInternal when the
// error is untyped.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Reason returns the caller-safe reason string for an error.
func Reason(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Reason
	}
	return "internal server error"
}

// HTTPStatus maps a failure kind to its HTTP status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindInvalid:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
