package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON_SendsIdentityAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pets/p1/care-plans", r.URL.Path)
		assert.Equal(t, "owner-1", r.Header.Get(debugUserHeader))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"plan-1","next_due_date":"2025-01-08"}`))
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL, UserID: "owner-1"})
	require.NoError(t, err)

	var out struct {
		ID          string `json:"id"`
		NextDueDate string `json:"next_due_date"`
	}
	err = c.DoJSON(context.Background(), http.MethodPost, "pets/p1/care-plans", map[string]any{"title": "x"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "plan-1", out.ID)
	assert.Equal(t, "2025-01-08", out.NextDueDate)
}

func TestDoJSON_BearerWinsOverDebugHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get(debugUserHeader))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL, Token: "tkn", UserID: "ignored"})
	require.NoError(t, err)
	require.NoError(t, c.DoJSON(context.Background(), http.MethodDelete, "/pets/p1/care-plans/x", nil, nil))
}

func TestDoJSON_ErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":{"kind":"conflict","message":"care plan already completed"}}`))
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	err = c.DoJSON(context.Background(), http.MethodPost, "/x", nil, nil)
	var he *HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusConflict, he.StatusCode)
	assert.Equal(t, "conflict", he.Kind)
	assert.Contains(t, he.Error(), "already completed")
}

func TestDoJSON_RetriesUnavailableOnlyForIdempotent(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL, RetryCount: 3, RetryWait: time.Millisecond})
	require.NoError(t, err)

	var out []any
	require.NoError(t, c.DoJSON(context.Background(), http.MethodGet, "/pets/health-reminders", nil, &out))
	assert.Equal(t, int32(3), calls.Load())

	calls.Store(0)
	err = c.DoJSON(context.Background(), http.MethodPost, "/pets/p/care-plans/x/complete", nil, nil)
	var he *HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusServiceUnavailable, he.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
	_, err = New(Config{BaseURL: "::not a url"})
	assert.Error(t, err)
}
