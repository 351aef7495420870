package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrValidationFailed.WithDetails("year must be between 1900 and 2100")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrMalformedCompetency))
	assert.Equal(t, "VALIDATION_FAILED", err.ErrorCode())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Contains(t, err.Error(), "1900")
}

func TestBaseError_WrapMessage(t *testing.T) {
	wrapped := ErrDuesAlreadyPaid.WrapMessage("delete dues")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "DUES_ALREADY_PAID", appErr.ErrorCode())
	assert.True(t, errors.Is(wrapped, ErrDuesAlreadyPaid))
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert dues")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "insert dues", err.Details())
	assert.True(t, errors.Is(err, cause))
}
