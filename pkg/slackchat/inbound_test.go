package slackchat

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedHeaders(secret string, body []byte) http.Header {
	ts := fmt.Sprintf("%d", time.Now().Unix())
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "v0:%s:%s", ts, body)

	header := http.Header{}
	header.Set("X-Slack-Request-Timestamp", ts)
	header.Set("X-Slack-Signature", "v0="+hex.EncodeToString(mac.Sum(nil)))
	return header
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"type":"event_callback"}`)

	t.Run("valid signature passes", func(t *testing.T) {
		header := signedHeaders("s3cret", body)
		assert.NoError(t, VerifySignature(header, body, "s3cret"))
	})

	t.Run("wrong secret fails", func(t *testing.T) {
		header := signedHeaders("s3cret", body)
		assert.Error(t, VerifySignature(header, body, "other"))
	})

	t.Run("tampered body fails", func(t *testing.T) {
		header := signedHeaders("s3cret", body)
		assert.Error(t, VerifySignature(header, []byte(`{"type":"forged"}`), "s3cret"))
	})

	t.Run("missing headers fail", func(t *testing.T) {
		assert.Error(t, VerifySignature(http.Header{}, body, "s3cret"))
	})
}

func TestParseInbound_URLVerification(t *testing.T) {
	body := []byte(`{"type":"url_verification","challenge":"abc123"}`)

	in, err := ParseInbound(body)
	require.NoError(t, err)
	assert.Equal(t, "challenge", in.Kind)
	assert.Equal(t, "abc123", in.Challenge)
}

func TestParseInbound_UserMessage(t *testing.T) {
	body := []byte(`{
		"type": "event_callback",
		"event": {
			"type": "message",
			"user": "U123",
			"channel": "C123",
			"text": "remind me about the dentist"
		}
	}`)

	in, err := ParseInbound(body)
	require.NoError(t, err)
	assert.Equal(t, "message", in.Kind)
	assert.Equal(t, "remind me about the dentist", in.Text)
	assert.Equal(t, "U123", in.UserID)
	assert.Equal(t, "C123", in.ChannelID)
	assert.False(t, in.FromBot)
}

func TestParseInbound_BotMessageFlagged(t *testing.T) {
	body := []byte(`{
		"type": "event_callback",
		"event": {
			"type": "message",
			"bot_id": "B999",
			"channel": "C123",
			"text": "echo of my own send"
		}
	}`)

	in, err := ParseInbound(body)
	require.NoError(t, err)
	assert.Equal(t, "message", in.Kind)
	assert.True(t, in.FromBot)
}

func TestParseInbound_EditedMessageIgnored(t *testing.T) {
	body := []byte(`{
		"type": "event_callback",
		"event": {
			"type": "message",
			"subtype": "message_changed",
			"channel": "C123"
		}
	}`)

	in, err := ParseInbound(body)
	require.NoError(t, err)
	assert.Empty(t, in.Kind)
}

func TestParseDecision(t *testing.T) {
	t.Run("approve button", func(t *testing.T) {
		payload := []byte(`{
			"type": "block_actions",
			"user": {"id": "U123"},
			"message": {"ts": "1727000000.000200"},
			"response_url": "https://hooks.example.com/r/1",
			"actions": [{"action_id": "approve_action", "value": "act-42"}]
		}`)

		d, ok, err := ParseDecision(payload)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "act-42", d.ActionID)
		assert.True(t, d.Approved)
		assert.Equal(t, "U123", d.UserID)
		assert.Equal(t, "1727000000.000200", d.MessageTS)
	})

	t.Run("deny button", func(t *testing.T) {
		payload := []byte(`{
			"type": "block_actions",
			"user": {"id": "U123"},
			"actions": [{"action_id": "deny_action", "value": "act-42"}]
		}`)

		d, ok, err := ParseDecision(payload)
		require.NoError(t, err)
		require.True(t, ok)
		assert.False(t, d.Approved)
	})

	t.Run("unrelated interaction ignored", func(t *testing.T) {
		payload := []byte(`{
			"type": "block_actions",
			"actions": [{"action_id": "something_else", "value": "x"}]
		}`)

		_, ok, err := ParseDecision(payload)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("garbage payload errors", func(t *testing.T) {
		_, _, err := ParseDecision([]byte("not json"))
		assert.Error(t, err)
	})
}
