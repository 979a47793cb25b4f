// Package common defines the application error taxonomy and shared constants
// used across the server layers. Callers should use errors.Is to match the
// sentinel values; matching is done by error code.
package common

import (
	"fmt"
	"net/http"
)

// Error is an application-level failure with a stable machine-readable code,
// a human description and an HTTP-equivalent status.
//
// The optional cause is kept for operators only and is never rendered to the caller.
type Error struct {
	Status      int
	Code        string
	Description string

	cause error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Description, e.cause)
	}
	return e.Code + ": " + e.Description
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Is reports whether target is an *Error with the same code. A nil
// receiver matches nothing.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return t.Code == e.Code
}

// WithDescription returns a copy of e with a different description.
func (e *Error) WithDescription(description string) *Error {
	c := *e
	c.Description = description
	return &c
}

// WithCause returns a copy of e carrying cause for diagnostics.
func (e *Error) WithCause(cause error) *Error {
	c := *e
	c.cause = cause
	return &c
}

var (
	ErrAlreadyExists = &Error{
		Status:      http.StatusBadRequest,
		Code:        "already_exists",
		Description: "Item you try to create already exists",
	}

	ErrNotFound = &Error{
		Status:      http.StatusNotFound,
		Code:        "not_found",
		Description: "Item you requested was not found on server",
	}

	ErrMethodNotAllowed = &Error{
		Status:      http.StatusMethodNotAllowed,
		Code:        "method_not_allowed",
		Description: "Requested method is not supported for this resource",
	}

	ErrServerError = &Error{
		Status:      http.StatusInternalServerError,
		Code:        "server_error",
		Description: "Unexpected error has occured during processing your request",
	}

	// Auth errors.
	ErrAuthenticationFailed = &Error{
		Status:      http.StatusUnauthorized,
		Code:        "auth_failed",
		Description: "User doesn't exist or password is wrong",
	}

	ErrNotAuthorised = &Error{
		Status:      http.StatusUnauthorized,
		Code:        "not_authorised",
		Description: "The user is not authorised",
	}

	ErrInvalidAuthToken = &Error{
		Status:      http.StatusUnauthorized,
		Code:        "invalid_token",
		Description: "Provided token is invalid",
	}

	// Request errors.
	ErrValidationFailed = &Error{
		Status:      http.StatusUnprocessableEntity,
		Code:        "validation_failed",
		Description: "Provided object schema is incorrect",
	}

	ErrRequestTimedOut = &Error{
		Status:      http.StatusRequestTimeout,
		Code:        "request_timed_out",
		Description: "Connection to the service has timed out",
	}
)

// Internal downgrades an unclassified error to ErrServerError, keeping the
// original error type and message as the cause.
func Internal(err error) *Error {
	if err == nil {
		return ErrServerError
	}
	return ErrServerError.WithCause(fmt.Errorf("%T: %w", err, err))
}

// ErrorResponse is the wire shape of a failure.
type ErrorResponse struct {
	ErrorCode   string `json:"error_code"`
	Description string `json:"description"`
}

// Response converts e to its wire shape.
func (e *Error) Response() ErrorResponse {
	return ErrorResponse{ErrorCode: e.Code, Description: e.Description}
}
