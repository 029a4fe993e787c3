package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_MessageAndCause(t *testing.T) {
	cause := stderrors.New("connection refused")

	err := NewDatabaseError("put FLOW", cause)

	assert.Contains(t, err.Error(), "DATABASE")
	assert.Contains(t, err.Error(), "put FLOW")
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestIsType(t *testing.T) {
	err := NewNotFoundError("task")

	assert.True(t, IsType(err, ErrorTypeNotFound))
	assert.False(t, IsType(err, ErrorTypeValidation))
	assert.False(t, IsType(stderrors.New("plain"), ErrorTypeNotFound))
}

func TestIsType_WrappedError(t *testing.T) {
	err := fmt.Errorf("loading state: %w", NewExternalError("agent api", stderrors.New("timeout")))

	assert.True(t, IsType(err, ErrorTypeExternal))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(NewValidationError("bad")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NewNotFoundError("task")))
	assert.Equal(t, http.StatusConflict, HTTPStatus(NewConflictError("taken")))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(NewExternalError("api", nil)))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(stderrors.New("plain")))
}

func TestWithCause(t *testing.T) {
	cause := stderrors.New("root")

	err := NewInternalError("wrapped").WithCause(cause)

	require.ErrorIs(t, err, cause)
}
