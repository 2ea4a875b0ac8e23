package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code string, message string, status int, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

func InvalidCredentials(err error) *AppError {
	return &AppError{
		Code:    "INVALID_CREDENTIALS",
		Message: "Invalid email or password",
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

func DuplicateAccount(err error) *AppError {
	return &AppError{
		Code:    "DUPLICATE_ACCOUNT",
		Message: "An account with this email already exists",
		Status:  http.StatusConflict,
		Err:     err,
	}
}

// RemoteBackend wraps a gateway-reported failure. The original message is
// passed through unchanged.
func RemoteBackend(err error) *AppError {
	message := "Remote backend error"
	if err != nil {
		message = err.Error()
	}
	return &AppError{
		Code:    "REMOTE_BACKEND_ERROR",
		Message: message,
		Status:  http.StatusBadGateway,
		Err:     err,
	}
}

func Validation(message string, err error) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func UpstreamUnavailable(message string, err error) *AppError {
	return &AppError{
		Code:    "UPSTREAM_UNAVAILABLE",
		Message: message,
		Status:  http.StatusServiceUnavailable,
		Err:     err,
	}
}

// InvalidTransition rejects a job status change that the lifecycle does not
// allow (e.g. completing a job that is not in progress).
func InvalidTransition(message string) *AppError {
	return &AppError{
		Code:    "INVALID_TRANSITION",
		Message: message,
		Status:  http.StatusConflict,
		Err:     nil,
	}
}

// JobUnavailable signals that a job was already taken by another provider.
func JobUnavailable() *AppError {
	return &AppError{
		Code:    "JOB_UNAVAILABLE",
		Message: "This job is no longer available",
		Status:  http.StatusConflict,
		Err:     nil,
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func Unauthorized(message string, err error) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

func Forbidden(message string, err error) *AppError {
	return &AppError{
		Code:    "FORBIDDEN",
		Message: message,
		Status:  http.StatusForbidden,
		Err:     err,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func TooManyRequests(message string, waitTime interface{}) *AppError {
	return &AppError{
		Code:    "TOO_MANY_REQUESTS",
		Message: message,
		Status:  http.StatusTooManyRequests,
		Err:     nil,
	}
}

func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
