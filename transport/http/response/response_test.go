package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/minhquach8/hotel-booking/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	WithJSON(recorder, http.StatusOK, map[string]int{"count": 3})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"count":3}`, recorder.Body.String())
}

func TestWithMessage(t *testing.T) {
	recorder := httptest.NewRecorder()

	WithMessage(recorder, http.StatusCreated, "Booking created successfully.")

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"message":"Booking created successfully."}`, recorder.Body.String())
}

func TestWithError(t *testing.T) {
	t.Run("failure carries its own status and code", func(t *testing.T) {
		recorder := httptest.NewRecorder()

		WithError(recorder, failure.CheckoutBeforeCheckin())

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var body Error
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, failure.CodeCheckoutBeforeCheckin, body.Error)
		assert.NotEmpty(t, body.Message)
	})

	t.Run("plain error falls back to internal error", func(t *testing.T) {
		recorder := httptest.NewRecorder()

		WithError(recorder, assert.AnError)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)

		var body Error
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, failure.CodeInternalError, body.Error)
	})
}

func TestWithPlainText(t *testing.T) {
	recorder := httptest.NewRecorder()

	WithPlainText(recorder, http.StatusOK, "Hotel Booking API")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "text/plain; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.Equal(t, "Hotel Booking API", recorder.Body.String())
}

func TestWithRequestLimitExceeded(t *testing.T) {
	recorder := httptest.NewRecorder()

	WithRequestLimitExceeded(recorder)

	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
}

func TestWithUnhealthy(t *testing.T) {
	recorder := httptest.NewRecorder()

	WithUnhealthy(recorder)

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}
