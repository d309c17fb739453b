package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "media type", err: UnsupportedMediaType("Requests must be JSON"), want: http.StatusUnsupportedMediaType},
		{name: "validation", err: InvalidDocument("missing name"), want: http.StatusBadRequest},
		{name: "not found", err: NotFound("No user was found with the id %d", 3), want: http.StatusNotFound},
		{name: "conflict", err: AlreadyExists("User with id '%s' already exists.", "2"), want: http.StatusConflict},
		{name: "wrapped", err: fmt.Errorf("update widget: %w", NotFound("gone")), want: http.StatusNotFound},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestAppErrorMessage(t *testing.T) {
	err := NotFound("No user was found with the id %s", "x")

	var appErr *AppError
	assert.True(t, errors.As(fmt.Errorf("wrap: %w", err), &appErr))
	assert.Equal(t, "Not found", appErr.Title)
	assert.Equal(t, "No user was found with the id x", appErr.Message)
	assert.Equal(t, "Not found: No user was found with the id x", err.Error())
}
