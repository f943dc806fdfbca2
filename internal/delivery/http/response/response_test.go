package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "coffeeshop/internal/delivery/context"
	domainerrors "coffeeshop/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]int{"id": 7}))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"id":7},"meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestHandleAppError_Domain(t *testing.T) {
	c, rec := newContext()

	err := errors.Wrap(domainerrors.ErrTableUnavailable.WithDetails("table 4 is OCCUPIED"), "failed to place order")
	require.NoError(t, HandleAppError(c, err))
	assert.Equal(t, http.StatusConflict, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "TABLE_UNAVAILABLE", body.Error.Code)
	assert.Equal(t, "table 4 is OCCUPIED", body.Error.Details)
	assert.Equal(t, "req-1", body.Meta.RequestID)
}

func TestHandleAppError_PassesOtherErrorsOn(t *testing.T) {
	c, rec := newContext()
	cause := errors.New("connection refused")

	err := HandleAppError(c, cause)
	assert.True(t, errors.Is(err, cause))
	assert.Zero(t, rec.Body.Len())
}

func TestError_DropsDetailsForServerErrors(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "boom", "stack trace"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Nil(t, body.Error.Details)
}
