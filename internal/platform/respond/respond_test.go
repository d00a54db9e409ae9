package respond

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-care-scheduler/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorDetail {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestError_StatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{apperr.New(apperr.KindValidation, "bad"), http.StatusBadRequest},
		{fmt.Errorf("wrap: %w", apperr.New(apperr.KindNotFound, "care plan not found")), http.StatusNotFound},
		{apperr.New(apperr.KindConflict, "care plan already completed"), http.StatusConflict},
		{apperr.Transient("store.Get", context.DeadlineExceeded), http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		Error(rec, req, tc.err)
		assert.Equal(t, tc.want, rec.Code, "err=%v", tc.err)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	}
}

func TestError_ValidationFields(t *testing.T) {
	fe := apperr.FieldErrors{}
	fe.Add("frequency", "must be one of once, daily, weekly, monthly, custom")
	err := fe.Err("careplans.Create", nil)

	rec := httptest.NewRecorder()
	Error(rec, httptest.NewRequest(http.MethodPost, "/", nil), err)

	d := decodeError(t, rec)
	assert.Equal(t, apperr.KindValidation, d.Kind)
	assert.Equal(t, "validation failed", d.Message)
	assert.Contains(t, d.Fields, "frequency")
}

func TestError_HidesInternalCause(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, httptest.NewRequest(http.MethodGet, "/", nil), apperr.Internal("op", errors.New("pq: password leaked")))

	d := decodeError(t, rec)
	assert.Equal(t, "internal error", d.Message)
	assert.NotContains(t, rec.Body.String(), "leaked")
}

func TestError_TransientSetsRetryAfter(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, httptest.NewRequest(http.MethodGet, "/", nil), apperr.Transient("op", context.Canceled))
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}
