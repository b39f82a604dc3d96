package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shandysiswandi/postline/internal/identity/usecase"
	"github.com/shandysiswandi/postline/internal/pkg/instrument"
	"github.com/shandysiswandi/postline/internal/pkg/router"
	"github.com/shandysiswandi/postline/internal/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T, backend session.BackendFunc) http.Handler {
	t.Helper()

	r := router.NewRouter(router.Config{Instrument: instrument.NewNoop()})
	uc := usecase.New(usecase.Dependency{
		Fetcher:    session.NewFetcher(backend),
		Instrument: instrument.NewNoop(),
	})
	RegisterHTTPEndpoint(r, uc)
	return r
}

func get(t *testing.T, h http.Handler, token string) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/identity/session", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec.Code, env
}

func TestCurrentSession_Anonymous(t *testing.T) {
	h := newTestServer(t, func(ctx context.Context) (*session.Session, error) {
		if session.TokenFrom(ctx) == "" {
			return nil, nil
		}
		return &session.Session{ID: "unexpected"}, nil
	})

	status, env := get(t, h, "")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "No active session", env.Message)
	assert.JSONEq(t, "null", string(env.Data))
}

func TestCurrentSession_Active(t *testing.T) {
	expires := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	h := newTestServer(t, func(ctx context.Context) (*session.Session, error) {
		return &session.Session{
			ID:        "s-1",
			Subject:   session.TokenFrom(ctx),
			Email:     "a@x.com",
			ExpiresAt: expires,
		}, nil
	})

	status, env := get(t, h, "user-42")

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Active session", env.Message)
	assert.JSONEq(t, `{
		"id": "s-1",
		"subject": "user-42",
		"email": "a@x.com",
		"expires_at": "2030-01-02T03:04:05Z"
	}`, string(env.Data))
}

func TestCurrentSession_BackendError(t *testing.T) {
	h := newTestServer(t, func(context.Context) (*session.Session, error) {
		return nil, errors.New("idp unreachable")
	})

	status, env := get(t, h, "tok")

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", env.Message)
}
