// AngelaMos | 2026
// errors.go

package core

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound      = errors.New("resource not found")
	ErrDuplicateKey  = errors.New("duplicate key")
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrTokenExpired  = errors.New("token expired")
	ErrAccountLocked = errors.New("account inactive")
	ErrInternal      = errors.New("internal error")
)

// Error codes surfaced to API clients. GraphQL responses carry them in
// extensions.code; REST responses in error.code.
const (
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeBadUserInput    = "BAD_USER_INPUT"
	CodeNotFound        = "NOT_FOUND"
	CodeInternal        = "INTERNAL_SERVER_ERROR"
)

const InternalErrorMessage = "An internal server error occurred"

type AppError struct {
	Err        error
	Message    string
	StatusCode int
	Code       string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Extensions is read by the GraphQL executor when rendering the error.
func (e *AppError) Extensions() map[string]any {
	return map[string]any{"code": e.Code}
}

func NewAppError(err error, message string, status int, code string) *AppError {
	return &AppError{
		Err:        err,
		Message:    message,
		StatusCode: status,
		Code:       code,
	}
}

func UnauthenticatedError(message string) *AppError {
	if message == "" {
		message = "You must be logged in"
	}
	return NewAppError(
		ErrUnauthorized,
		message,
		http.StatusUnauthorized,
		CodeUnauthenticated,
	)
}

func UnauthorizedError(message string) *AppError {
	if message == "" {
		message = "You do not have permission to perform this action"
	}
	return NewAppError(
		ErrForbidden,
		message,
		http.StatusForbidden,
		CodeUnauthorized,
	)
}

func BadInputError(message string) *AppError {
	return NewAppError(
		ErrInvalidInput,
		message,
		http.StatusBadRequest,
		CodeBadUserInput,
	)
}

func NotFoundError(resource string) *AppError {
	return NewAppError(
		ErrNotFound,
		resource+" not found",
		http.StatusNotFound,
		CodeNotFound,
	)
}

func DuplicateError(message string) *AppError {
	return NewAppError(
		ErrDuplicateKey,
		message,
		http.StatusConflict,
		CodeBadUserInput,
	)
}

func InternalError(err error) *AppError {
	return NewAppError(
		err,
		InternalErrorMessage,
		http.StatusInternalServerError,
		CodeInternal,
	)
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Classify maps a service error onto an AppError. Errors that are already
// AppErrors pass through; sentinel errors get their matching code and
// everything else is internal.
func Classify(err error) *AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := AsAppError(err); ok {
		return appErr
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return NewAppError(err, "Resource not found", http.StatusNotFound, CodeNotFound)
	case errors.Is(err, ErrDuplicateKey), errors.Is(err, ErrInvalidInput):
		return NewAppError(err, err.Error(), http.StatusBadRequest, CodeBadUserInput)
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrTokenInvalid),
		errors.Is(err, ErrTokenExpired):
		return UnauthenticatedError("")
	case errors.Is(err, ErrForbidden):
		return UnauthorizedError("")
	default:
		return InternalError(err)
	}
}
