package validator

import (
	"testing"

	domainerrors "mytube/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Username string `json:"username" validate:"notblank"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=6"`
}

func TestValidate_NamesFailingFields(t *testing.T) {
	err := New().Validate(&sample{Username: "   ", Email: "nope", Password: "123"})
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))

	assert.Equal(t, []domainerrors.FieldError{
		{Field: "username", Message: "username is required"},
		{Field: "email", Message: "email must be a valid email"},
		{Field: "password", Message: "password must be at least 6 characters"},
	}, validationErr.Fields())
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestValidate_Passes(t *testing.T) {
	assert.NoError(t, New().Validate(&sample{Username: "alice", Email: "a@example.com", Password: "secret"}))
}
