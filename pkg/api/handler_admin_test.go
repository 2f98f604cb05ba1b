package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliebot/relay/pkg/config"
	"github.com/elliebot/relay/pkg/dispatch"
)

func newAdminTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(*config.DefaultConfig(), nil, nil, dispatch.NewDispatcher(), nil, nil)
}

func TestConsolidateHandler_NotConfigured(t *testing.T) {
	s := newAdminTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/consolidate", strings.NewReader(`{"channel":"telegram"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestConversationCloseHandler_RequiresTarget(t *testing.T) {
	s := newAdminTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/conversation/close", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConversationContextHandler_RequiresChannel(t *testing.T) {
	s := newAdminTestServer(t)

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/conversation/context", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQueueStatusHandler(t *testing.T) {
	s := newAdminTestServer(t)
	s.dispatcher.Start(t.Context())
	defer s.dispatcher.Stop()

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/queue-status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var snap dispatch.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.False(t, snap.Busy)
	assert.Zero(t, snap.QueueLength)
}

func TestVoiceStreamHandler_NotEnabled(t *testing.T) {
	s := newAdminTestServer(t)

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/voice/stream", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
