package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/jonathan/opportunity-hub/internal/app"
	"github.com/jonathan/opportunity-hub/internal/session"
	"github.com/stretchr/testify/assert"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "mode", Message: "unknown"}
	assert.Equal(t, "validation error: mode - unknown", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "not authenticated",
			err:      app.ErrNotAuthenticated,
			expected: http.StatusUnauthorized,
		},
		{
			name:     "search in progress",
			err:      app.ErrSearchInProgress,
			expected: http.StatusConflict,
		},
		{
			name:     "wrapped invalid filter",
			err:      fmt.Errorf("%w: category", app.ErrInvalidFilter),
			expected: http.StatusBadRequest,
		},
		{
			name:     "invalid id",
			err:      app.ErrInvalidID,
			expected: http.StatusBadRequest,
		},
		{
			name:     "invalid login",
			err:      fmt.Errorf("%w: email", session.ErrInvalidLogin),
			expected: http.StatusBadRequest,
		},
		{
			name:     "invalid transition",
			err:      fmt.Errorf("%w: back from landing", session.ErrInvalidTransition),
			expected: http.StatusConflict,
		},
		{
			name:     "wrapped validation",
			err:      fmt.Errorf("decode: %w", &ErrValidation{Field: "mode"}),
			expected: http.StatusBadRequest,
		},
		{
			name:     "Unknown error",
			err:      assert.AnError,
			expected: http.StatusInternalServerError,
		},
		{
			name:     "Nil error",
			err:      nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
