package chatbot

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliebot/relay/pkg/transport"
)

type apiCall struct {
	method string
	body   map[string]any
}

// mockBotAPI records calls and replies per method.
func mockBotAPI(t *testing.T, responses map[string]string) (*Client, *[]apiCall) {
	t.Helper()
	var calls []apiCall
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(r.URL.Path, "/")
		method := parts[len(parts)-1]

		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		_ = json.Unmarshal(raw, &body)
		calls = append(calls, apiCall{method: method, body: body})

		w.Header().Set("Content-Type", "application/json")
		resp, ok := responses[method]
		if !ok {
			resp = `{"ok":true,"result":{}}`
		}
		_, _ = w.Write([]byte(resp))
	}))
	t.Cleanup(server.Close)
	return NewClientWithBaseURL("test-token", "42", server.URL), &calls
}

func TestSendMessage(t *testing.T) {
	client, calls := mockBotAPI(t, map[string]string{
		"sendMessage": `{"ok":true,"result":{"message_id":7,"chat":{"id":42}}}`,
	})

	id, err := client.SendMessage(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "7", id)

	require.Len(t, *calls, 1)
	assert.Equal(t, "42", (*calls)[0].body["chat_id"])
	assert.Equal(t, "hello", (*calls)[0].body["text"])
}

func TestSendMessage_SplitsLongText(t *testing.T) {
	client, calls := mockBotAPI(t, map[string]string{
		"sendMessage": `{"ok":true,"result":{"message_id":9,"chat":{"id":42}}}`,
	})

	long := strings.Repeat("line of reply text\n", 300) // ~5700 chars
	_, err := client.SendMessage(context.Background(), long)
	require.NoError(t, err)

	require.Len(t, *calls, 2)
	for _, call := range *calls {
		assert.LessOrEqual(t, len(call.body["text"].(string)), maxMessageLength)
	}
}

func TestEditMessage_NotModifiedSwallowed(t *testing.T) {
	client, _ := mockBotAPI(t, map[string]string{
		"editMessageText": `{"ok":false,"error_code":400,"description":"Bad Request: message is not modified"}`,
	})

	assert.NoError(t, client.EditMessage(context.Background(), "7", "same text"))
}

func TestEditMessage_InvalidID(t *testing.T) {
	client, _ := mockBotAPI(t, nil)
	err := client.EditMessage(context.Background(), "not-a-number", "text")
	require.Error(t, err)
	assert.False(t, transport.IsRetryable(err))
}

func TestCall_ErrorClassification(t *testing.T) {
	t.Run("rate limit is retryable", func(t *testing.T) {
		client, _ := mockBotAPI(t, map[string]string{
			"sendMessage": `{"ok":false,"error_code":429,"description":"Too Many Requests"}`,
		})
		_, err := client.SendMessage(context.Background(), "hi")
		require.Error(t, err)
		assert.True(t, transport.IsRetryable(err))
	})

	t.Run("bad request is permanent", func(t *testing.T) {
		client, _ := mockBotAPI(t, map[string]string{
			"sendMessage": `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`,
		})
		_, err := client.SendMessage(context.Background(), "hi")
		require.Error(t, err)
		assert.False(t, transport.IsRetryable(err))
	})
}

func TestSendConfirmation_InlineKeyboard(t *testing.T) {
	client, calls := mockBotAPI(t, map[string]string{
		"sendMessage": `{"ok":true,"result":{"message_id":11,"chat":{"id":42}}}`,
	})

	id, err := client.SendConfirmation(context.Background(), "act-7", "Send the draft email")
	require.NoError(t, err)
	assert.Equal(t, "11", id)

	require.Len(t, *calls, 1)
	raw, _ := json.Marshal((*calls)[0].body["reply_markup"])
	assert.Contains(t, string(raw), "approve:act-7")
	assert.Contains(t, string(raw), "deny:act-7")
	assert.Contains(t, (*calls)[0].body["text"], "Send the draft email")
}

func TestDownloadFile(t *testing.T) {
	var client *Client
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/getFile") {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"ok":true,"result":{"file_id":"f1","file_path":"voice/note_17.oga"}}`))
			return
		}
		assert.Contains(t, r.URL.Path, "/file/bottest-token/voice/note_17.oga")
		_, _ = w.Write([]byte("audio-bytes"))
	}))
	t.Cleanup(server.Close)
	client = NewClientWithBaseURL("test-token", "42", server.URL)

	data, name, err := client.DownloadFile(context.Background(), "f1")
	require.NoError(t, err)
	assert.Equal(t, []byte("audio-bytes"), data)
	assert.Equal(t, "note_17.oga", name)
}

func TestSplitMessage(t *testing.T) {
	t.Run("short text untouched", func(t *testing.T) {
		assert.Equal(t, []string{"hello"}, splitMessage("hello"))
	})

	t.Run("breaks on newline", func(t *testing.T) {
		text := strings.Repeat("a", 4000) + "\n" + strings.Repeat("b", 500)
		chunks := splitMessage(text)
		require.Len(t, chunks, 2)
		assert.Equal(t, strings.Repeat("a", 4000), chunks[0])
		assert.Equal(t, strings.Repeat("b", 500), chunks[1])
	})

	t.Run("hard break without newline", func(t *testing.T) {
		text := strings.Repeat("a", maxMessageLength+10)
		chunks := splitMessage(text)
		require.Len(t, chunks, 2)
		assert.Len(t, chunks[0], maxMessageLength)
	})
}
