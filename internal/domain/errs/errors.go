// Package errs defines the error taxonomy shared by usecases and handlers.
package errs

import (
	"errors"
	"net/http"
)

type Kind int

const (
	Validation Kind = iota
	Unauthorized
	Forbidden
	NotFound
	Conflict
	Upstream
)

// Error carries a user-facing message and the kind that decides the
// HTTP status it renders as.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error kind to a response status code. Conflict maps
// to 400, matching the duplicate-email response of the public API.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case Validation, Conflict:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// KindOf reports the kind of err, or Upstream when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return Upstream
}
