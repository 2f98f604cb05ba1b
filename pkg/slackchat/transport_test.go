package slackchat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliebot/relay/pkg/config"
	"github.com/elliebot/relay/pkg/transport"
)

// mockSlackAPI fakes the Web API endpoints the client calls.
func mockSlackAPI(t *testing.T, handler func(method string, form map[string][]string) string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		method := r.URL.Path[len("/"):]
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(handler(method, r.Form)))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestTransport_SendReturnsTimestamp(t *testing.T) {
	var gotChannel, gotText string
	server := mockSlackAPI(t, func(method string, form map[string][]string) string {
		assert.Equal(t, "chat.postMessage", method)
		gotChannel = form["channel"][0]
		gotText = form["text"][0]
		return `{"ok":true,"channel":"C123","ts":"1727000000.000100"}`
	})

	tr := NewTransportWithClient(NewClientWithAPIURL("xoxb-test", "C123", server.URL+"/"))
	id, err := tr.Send(context.Background(), "hello from ellie")
	require.NoError(t, err)
	assert.Equal(t, "1727000000.000100", id)
	assert.Equal(t, "C123", gotChannel)
	assert.Equal(t, "hello from ellie", gotText)
}

func TestTransport_SendAPIErrorIsPermanent(t *testing.T) {
	server := mockSlackAPI(t, func(method string, form map[string][]string) string {
		return `{"ok":false,"error":"channel_not_found"}`
	})

	tr := NewTransportWithClient(NewClientWithAPIURL("xoxb-test", "C123", server.URL+"/"))
	_, err := tr.Send(context.Background(), "hello")
	require.Error(t, err)
	assert.False(t, transport.IsRetryable(err))
}

func TestTransport_EditUpdatesMessage(t *testing.T) {
	var gotTS string
	server := mockSlackAPI(t, func(method string, form map[string][]string) string {
		assert.Equal(t, "chat.update", method)
		gotTS = form["ts"][0]
		return `{"ok":true,"channel":"C123","ts":"1727000000.000100","text":"updated"}`
	})

	tr := NewTransportWithClient(NewClientWithAPIURL("xoxb-test", "C123", server.URL+"/"))
	require.NoError(t, tr.Edit(context.Background(), "1727000000.000100", "updated"))
	assert.Equal(t, "1727000000.000100", gotTS)
}

func TestTransport_TypingIsNoop(t *testing.T) {
	tr := NewTransportWithClient(NewClientWithAPIURL("xoxb-test", "C123", "http://127.0.0.1:1/"))
	assert.NoError(t, tr.Typing(context.Background()))
}

func TestNewTransport_RequiresCredentials(t *testing.T) {
	assert.Nil(t, NewTransport(config.SlackConfig{}))
	assert.Nil(t, NewTransport(config.SlackConfig{Token: "xoxb-test"}))
	assert.NotNil(t, NewTransport(config.SlackConfig{Token: "xoxb-test", Channel: "C123"}))
}

func TestTransport_SendConfirmationPostsCard(t *testing.T) {
	var gotBlocks string
	server := mockSlackAPI(t, func(method string, form map[string][]string) string {
		assert.Equal(t, "chat.postMessage", method)
		gotBlocks = form["blocks"][0]
		return `{"ok":true,"channel":"C123","ts":"1727000000.000200"}`
	})

	tr := NewTransportWithClient(NewClientWithAPIURL("xoxb-test", "C123", server.URL+"/"))
	id, err := tr.SendConfirmation(context.Background(), "act-42", "Send the draft email to Bob")
	require.NoError(t, err)
	assert.Equal(t, "1727000000.000200", id)

	var blocks []map[string]any
	require.NoError(t, json.Unmarshal([]byte(gotBlocks), &blocks))
	require.Len(t, blocks, 2)
	assert.Equal(t, "section", blocks[0]["type"])
	assert.Equal(t, "actions", blocks[1]["type"])
	assert.Contains(t, gotBlocks, "Send the draft email to Bob")
	assert.Contains(t, gotBlocks, "act-42")
}
