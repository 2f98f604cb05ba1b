package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatChannel(t *testing.T) {
	assert.Equal(t, "chat:web", ChatChannel("web"))
	assert.Equal(t, "chat:telegram", ChatChannel("telegram"))
}

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload := mustJSON(MessageCreatedPayload{
			Type:      EventTypeMessageCreated,
			MessageID: "msg-1",
			Channel:   "web",
			Content:   "short",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Equal(t, string(payload), result)
	})

	t.Run("replaces oversized payload with routing envelope", func(t *testing.T) {
		payload := mustJSON(MessageCreatedPayload{
			Type:      EventTypeMessageCreated,
			MessageID: "msg-1",
			Channel:   "web",
			Content:   strings.Repeat("a", 9000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Less(t, len(result), notifyLimit)

		var envelope map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &envelope))
		assert.Equal(t, EventTypeMessageCreated, envelope["type"])
		assert.Equal(t, "web", envelope["channel"])
		assert.Equal(t, "msg-1", envelope["message_id"])
		assert.Equal(t, true, envelope["truncated"])
		assert.NotContains(t, envelope, "content")
	})

	t.Run("rejects non-JSON oversized payload", func(t *testing.T) {
		_, err := truncateIfNeeded(strings.Repeat("x", 9000))
		assert.Error(t, err)
	})
}

func TestInjectDBEventID(t *testing.T) {
	payload := mustJSON(ApprovalRequestedPayload{
		Type:        EventTypeApprovalRequested,
		ApprovalID:  "appr-1",
		Channel:     "web",
		Description: "send the email",
	})

	enriched, err := injectDBEventID(payload, 42)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(enriched), &m))
	assert.EqualValues(t, 42, m["db_event_id"])
	assert.Equal(t, "appr-1", m["approval_id"])
}

func TestInjectDBEventID_TruncatesOversized(t *testing.T) {
	payload := mustJSON(MessageCreatedPayload{
		Type:      EventTypeMessageCreated,
		MessageID: "msg-9",
		Channel:   "web",
		Content:   strings.Repeat("b", 9000),
	})

	result, err := injectDBEventID(payload, 7)
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(result), &envelope))
	assert.Equal(t, true, envelope["truncated"])
	assert.EqualValues(t, 7, envelope["db_event_id"])
	assert.Equal(t, "msg-9", envelope["message_id"])
}
