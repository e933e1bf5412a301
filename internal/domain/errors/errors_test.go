package errors

import (
	"net/http"
	"testing"

	"authgate/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails([]string{"username"})

	assert.True(t, errors.Is(detailed, ErrValidationFailed))
	assert.False(t, errors.Is(detailed, ErrUserAlreadyExists))
	assert.Equal(t, []string{"username"}, detailed.Details())
	assert.Nil(t, ErrValidationFailed.Details())
}

func TestBaseError_WrapMessage(t *testing.T) {
	wrapped := ErrInvalidCredentials.WrapMessage("login failed")

	assert.True(t, errors.Is(wrapped, ErrInvalidCredentials))

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "Invalid credentials", appErr.Message())
}

func TestDatabaseExecuteError_HidesDriverDetails(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseExecuteError(cause, "failed to create account")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "server error", err.Message())
	assert.Nil(t, err.Details())
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection refused")
}
