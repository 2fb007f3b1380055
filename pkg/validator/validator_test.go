package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signInForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestValidatePasses(t *testing.T) {
	v := New()
	err := v.Validate(signInForm{Email: "a@b.com", Password: "longenough"})
	assert.NoError(t, err)
}

func TestValidateReturnsFieldErrors(t *testing.T) {
	v := New()
	err := v.Validate(signInForm{Email: "nope", Password: "short"})
	require.Error(t, err)

	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 2)
	assert.Equal(t, "email", fieldErrs[0].Field)
	assert.Equal(t, "must be a valid email address", fieldErrs[0].Message)
	assert.Equal(t, "password", fieldErrs[1].Field)
	assert.Equal(t, "must be at least 8 characters", fieldErrs[1].Message)
}
