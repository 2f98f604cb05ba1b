package tracker

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliebot/relay/pkg/config"
	"github.com/elliebot/relay/pkg/transport"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(config.TrackerConfig{
		BaseURL:   srv.URL,
		APIKey:    "test-key",
		Workspace: "home",
		Project:   "ellie",
	})
}

func TestNewWithoutCredentialsIsDisabled(t *testing.T) {
	c := New(config.TrackerConfig{})
	_, ok := c.(Disabled)
	assert.True(t, ok)

	// Disabled operations succeed so the queue drains.
	id, err := c.CreateIssue(t.Context(), nil)
	assert.NoError(t, err)
	assert.Empty(t, id)
	assert.NoError(t, c.ChangeState(t.Context(), "x", "done"))
}

func TestCreateIssue(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/workspaces/home/projects/ellie/issues", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-API-Key"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Book flights", payload["name"])

		_ = json.NewEncoder(w).Encode(map[string]string{"id": "issue-42"})
	})

	id, err := c.CreateIssue(t.Context(), map[string]interface{}{"name": "Book flights"})
	require.NoError(t, err)
	assert.Equal(t, "issue-42", id)
}

func TestChangeStateTargetsIssue(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/v1/workspaces/home/projects/ellie/issues/issue-42", r.URL.Path)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "completed", payload["state"])
	})

	assert.NoError(t, c.ChangeState(t.Context(), "issue-42", "completed"))
}

func TestServerErrorIsRetryable(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	err := c.AddComment(t.Context(), "issue-42", "hello")
	require.Error(t, err)
	assert.True(t, transport.IsRetryable(err))
}

func TestClientErrorIsPermanent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	err := c.UpdateIssue(t.Context(), "gone", map[string]interface{}{"name": "x"})
	require.Error(t, err)
	assert.False(t, transport.IsRetryable(err))
}

func TestResolveIssue(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "mem-7", r.URL.Query().Get("external_ref"))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]string{{"id": "issue-7"}},
		})
	})

	id, err := c.ResolveIssue(t.Context(), "mem-7")
	require.NoError(t, err)
	assert.Equal(t, "issue-7", id)
}

func TestResolveIssueNoMatchIsPermanent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"results": []map[string]string{}})
	})

	_, err := c.ResolveIssue(t.Context(), "mem-8")
	require.Error(t, err)
	assert.False(t, transport.IsRetryable(err))
}
