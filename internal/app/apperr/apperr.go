// Package apperr is the request-level error taxonomy. Every failure a service
// returns is one of these kinds; the HTTP boundary maps the kind to a status.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	Validation Kind = iota // bad or missing input
	Conflict               // uniqueness violation
	NotFound               // referenced entity absent
	Auth                   // credential mismatch
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewValidation(msg string) *Error {
	return &Error{Kind: Validation, Message: msg}
}

func NewConflict(msg string) *Error {
	return &Error{Kind: Conflict, Message: msg}
}

func NewNotFound(msg string) *Error {
	return &Error{Kind: NotFound, Message: msg}
}

func NewAuth(msg string) *Error {
	return &Error{Kind: Auth, Message: msg}
}

// Status maps an error to its HTTP status hint. NotFound deliberately answers
// 400, matching the behavior callers already depend on.
func Status(err error) int {
	var e *Error
	if errors.As(err, &e) {
		switch e.Kind {
		case Auth:
			return http.StatusUnauthorized
		case Validation, Conflict, NotFound:
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// Message returns the user-facing message, hiding internal error details.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal server error"
}
