package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/opportunity-hub/internal/app"
	"github.com/jonathan/opportunity-hub/internal/session"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, app.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, app.ErrSearchInProgress), errors.Is(err, session.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, app.ErrInvalidFilter),
		errors.Is(err, app.ErrInvalidID),
		errors.Is(err, session.ErrInvalidLogin):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
