package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationMessage(t *testing.T) {
	req := LoginRequest{Email: "not-an-email", Password: "pw"}
	assert.Equal(t, "validation error: Email - email", ValidationMessage(req.Validate()))

	req = LoginRequest{Email: "ada@example.com"}
	assert.Equal(t, "validation error: Password - required", ValidationMessage(req.Validate()))

	f := FilterState{Category: "Cooking", Type: Wildcard, Level: Wildcard}
	assert.Equal(t, "validation error: Category - filter_category", ValidationMessage(f.Validate()))

	assert.Equal(t, "validation error: invalid request", ValidationMessage(errors.New("other")))
}
