package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrTableUnavailable.WithDetails("table 3 is OCCUPIED")

	assert.ErrorIs(t, err, ErrTableUnavailable)
	assert.NotErrorIs(t, err, ErrTableNotFound)
	assert.Equal(t, "Table is not available: table 3 is OCCUPIED", err.Error())
	assert.Equal(t, http.StatusConflict, err.HTTPCode())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	wrapped := ErrOrderNotFound.WrapMessage("load order 12")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "ORDER_NOT_FOUND", appErr.ErrorCode())
	assert.ErrorIs(t, wrapped, ErrOrderNotFound)
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to save order")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "failed to save order", err.Details())
	assert.Contains(t, err.Error(), "connection reset")
	assert.ErrorIs(t, err, cause)
}
