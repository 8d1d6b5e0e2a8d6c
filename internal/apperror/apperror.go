// Package apperror defines the fixed error taxonomy every request's failure
// path is translated into before a response is written.
package apperror

import (
	"errors"
	"net/http"
)

// Violation is a single field-level validation failure.
type Violation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// Error is an application error with a fixed HTTP status.
type Error struct {
	Status     int
	Message    string
	Violations []Violation
	Err        error // underlying cause, logged but never sent to clients
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(status int, message string, err error) *Error {
	return &Error{Status: status, Message: message, Err: err}
}

// BadRequest covers malformed input, malformed ids and validation failures.
func BadRequest(message string, err error) *Error {
	return newError(http.StatusBadRequest, message, err)
}

// Validation is a BadRequest carrying field-level violations.
func Validation(message string, violations []Violation) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message, Violations: violations}
}

// Unauthorized covers missing or invalid credentials and tokens.
func Unauthorized(message string, err error) *Error {
	return newError(http.StatusUnauthorized, message, err)
}

// Forbidden covers authorization violations by an authenticated caller.
func Forbidden(message string, err error) *Error {
	return newError(http.StatusForbidden, message, err)
}

// NotFound covers absent entities and unmatched routes.
func NotFound(message string, err error) *Error {
	return newError(http.StatusNotFound, message, err)
}

// Conflict covers uniqueness violations.
func Conflict(message string, err error) *Error {
	return newError(http.StatusConflict, message, err)
}

// Internal covers everything unmapped. The responder replaces its message
// with a generic one, so the text here is for logs only.
func Internal(err error) *Error {
	return newError(http.StatusInternalServerError, "internal server error", err)
}

// From extracts an *Error from err's chain, or wraps err as Internal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
