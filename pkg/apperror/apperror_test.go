package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Respond(c, err)
	return w
}

func TestRespond_Detail(t *testing.T) {
	w := respond(NotFound("product not found"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail": "product not found"}`, w.Body.String())
}

func TestRespond_FieldMap(t *testing.T) {
	w := respond(ValidationFields(map[string]string{
		"rating": "rating must be between 1 and 5",
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors": {"rating": "rating must be between 1 and 5"}}`, w.Body.String())
}

// Unknown errors and explicit internal errors both render the same fixed
// body; the underlying cause must never leak to the client.
func TestRespond_GenericInternal(t *testing.T) {
	for _, err := range []error{
		errors.New("pq: connection refused"),
		Internal(errors.New("pq: connection refused")),
	} {
		w := respond(err)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"detail": "internal server error"}`, w.Body.String())
		assert.NotContains(t, w.Body.String(), "connection refused")
	}
}

func TestRespond_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("get order: %w", Forbidden("you do not have access to this order"))

	w := respond(wrapped)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"detail": "you do not have access to this order"}`, w.Body.String())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Internal(cause)

	require.ErrorIs(t, err, cause)
	assert.Equal(t, "internal server error: boom", err.Error())
}
