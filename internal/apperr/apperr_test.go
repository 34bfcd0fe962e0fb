package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/planora/backend/internal/apperr"
)

func TestErrorMessage(t *testing.T) {
	err := apperr.Validation("Name cannot be empty")
	assert.Equal(t, "Name cannot be empty", err.Error())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(apperr.Validation("x")))
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(apperr.Conflict("x")))
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(apperr.NotFound("x")))
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(apperr.Internal("x", nil)))
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(errors.New("plain")))
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("handler: %w", apperr.NotFound("Planned event not found"))
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
	assert.False(t, apperr.Is(err, apperr.KindConflict))
}

func TestInternalUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperr.Internal("General user cannot be deleted", cause)
	assert.ErrorIs(t, err, cause)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, apperr.HTTPStatus(apperr.Validation("x")))
	assert.Equal(t, http.StatusConflict, apperr.HTTPStatus(apperr.Conflict("x")))
	assert.Equal(t, http.StatusNotFound, apperr.HTTPStatus(apperr.NotFound("x")))
	assert.Equal(t, http.StatusInternalServerError, apperr.HTTPStatus(apperr.Internal("x", nil)))
	assert.Equal(t, http.StatusInternalServerError, apperr.HTTPStatus(errors.New("plain")))
}
