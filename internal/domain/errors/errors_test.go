package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Constructors(t *testing.T) {
	err := NewAppError(http.StatusBadRequest, "bad", ErrBadRequest)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "bad", err.Message)
	assert.Equal(t, ErrBadRequest.Error(), err.Error())

	notFound := NotFound("missing")
	assert.Equal(t, http.StatusNotFound, notFound.Status)
	assert.ErrorIs(t, notFound, ErrNotFound)

	badReq := BadRequest("nope")
	assert.Equal(t, http.StatusBadRequest, badReq.Status)
	assert.ErrorIs(t, badReq, ErrInvalidInput)

	conflict := Conflict("exists")
	assert.Equal(t, http.StatusConflict, conflict.Status)
	assert.ErrorIs(t, conflict, ErrAlreadyExists)

	unauth := Unauthorized("who are you")
	assert.Equal(t, http.StatusUnauthorized, unauth.Status)
	assert.ErrorIs(t, unauth, ErrUnauthorized)

	forbidden := Forbidden("not yours")
	assert.Equal(t, http.StatusForbidden, forbidden.Status)
	assert.ErrorIs(t, forbidden, ErrForbidden)

	internal := InternalError(stderrors.New("db down"))
	assert.Equal(t, http.StatusInternalServerError, internal.Status)
	assert.Equal(t, "db down", internal.Error())
}

func TestAppError_MessageFallback(t *testing.T) {
	bare := &AppError{Status: http.StatusTeapot, Message: "short and stout"}
	assert.Equal(t, "short and stout", bare.Error())
	assert.Nil(t, stderrors.Unwrap(bare))
}
