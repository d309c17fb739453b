// Package apperror defines the failures a request can end with.
//
// Services return *AppError values wrapping one of the sentinels below; the
// HTTP layer maps the sentinel to a status code with errors.Is.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrMediaType  = errors.New("unsupported media type")
	ErrValidation = errors.New("invalid document")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

// AppError carries a short title and a human readable message.
type AppError struct {
	Err     error
	Title   string
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Title, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func UnsupportedMediaType(message string) *AppError {
	return &AppError{Err: ErrMediaType, Title: "Unsupported media type", Message: message}
}

func InvalidDocument(message string) *AppError {
	return &AppError{Err: ErrValidation, Title: "Invalid JSON document", Message: message}
}

func NotFound(format string, args ...any) *AppError {
	return &AppError{Err: ErrNotFound, Title: "Not found", Message: fmt.Sprintf(format, args...)}
}

func AlreadyExists(format string, args ...any) *AppError {
	return &AppError{Err: ErrConflict, Title: "Already exists", Message: fmt.Sprintf(format, args...)}
}

// StatusCode maps err to an HTTP status. Unknown errors are 500.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrMediaType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
