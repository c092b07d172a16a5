package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the client services and the development server.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrPlantNotFound      = errors.New("plant not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrForbidden          = errors.New("access forbidden")
	ErrPasswordMismatch   = errors.New("password confirmation does not match")
)

// ErrHandled marks a failure that the request pipeline has already reported
// to the user and resolved (today: a 401, which clears the session and
// redirects to login). Call sites must treat it as "nothing left to do" and
// must not surface it again.
var ErrHandled = errors.New("error already handled by pipeline")

// ErrorCategory classifies an HTTP failure into the fixed taxonomy used for
// user-facing messaging.
type ErrorCategory string

const (
	CategoryNetwork       ErrorCategory = "network"
	CategoryBadRequest    ErrorCategory = "bad_request"
	CategoryUnauthorized  ErrorCategory = "unauthorized"
	CategoryForbidden     ErrorCategory = "forbidden"
	CategoryNotFound      ErrorCategory = "not_found"
	CategoryConflict      ErrorCategory = "conflict"
	CategoryUnprocessable ErrorCategory = "unprocessable"
	CategoryRateLimited   ErrorCategory = "rate_limited"
	CategoryServer        ErrorCategory = "server"
	CategoryUnknown       ErrorCategory = "unknown"
)

// APIError is a classified request failure. Message is the user-facing text
// already shown through the notifier; Status is zero for transport failures
// that never reached the server.
type APIError struct {
	Category ErrorCategory
	Status   int
	Message  string
	cause    error
}

func NewAPIError(category ErrorCategory, status int, message string, cause error) *APIError {
	return &APIError{Category: category, Status: status, Message: message, cause: cause}
}

func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (%d): %s", e.Category, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

func (e *APIError) Unwrap() error { return e.cause }

// AsAPIError extracts an *APIError from an error chain.
func AsAPIError(err error) (*APIError, bool) {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
