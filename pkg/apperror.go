package pkg

import (
	"errors"
	"fmt"
)

// AppError is the normalized failure produced at the HTTP boundary.
//
// Message is always human readable and safe to show to an operator as-is.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status, Err: err}
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("HTTP %d", e.HTTPStatus)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ToHTTPError renders the error in the backend's {"detail": ...} envelope.
func (e *AppError) ToHTTPError() map[string]any {
	out := map[string]any{"detail": e.Message}
	if e.Code != "" {
		out["code"] = e.Code
	}
	return out
}

// AsAppError extracts an AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HTTPStatus
	}
	return 0
}
