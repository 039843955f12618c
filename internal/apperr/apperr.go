package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindNotFound
)

// Error carries a client-facing message and the kind that decides the HTTP status.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		if e.Message == "" {
			return e.Err.Error()
		}
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func BadRequest(message string) error {
	return &Error{Kind: KindBadRequest, Message: message}
}

func Unauthorized(message string) error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func NotFound() error {
	return &Error{Kind: KindNotFound, Message: "not found"}
}

// Internal wraps err. The message is logged, never shown to callers.
func Internal(message string, err error) error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf reports the kind of err. Errors outside the taxonomy are internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func Status(err error) int {
	switch KindOf(err) {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the text that is safe to put in a response body.
func PublicMessage(err error) string {
	var appErr *Error
	if !errors.As(err, &appErr) || appErr.Kind == KindInternal {
		return "internal server error"
	}
	return appErr.Message
}
