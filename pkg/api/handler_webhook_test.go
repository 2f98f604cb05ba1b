package api

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliebot/relay/pkg/approval"
	"github.com/elliebot/relay/pkg/config"
	"github.com/elliebot/relay/pkg/dispatch"
	"github.com/elliebot/relay/pkg/pipeline"
	"github.com/elliebot/relay/pkg/race"
	"github.com/elliebot/relay/pkg/transport"
	"github.com/elliebot/relay/pkg/voice"
)

const testSigningSecret = "test-signing-secret"

// signRequest adds the signature headers the webhook verifier expects.
func signRequest(req *http.Request, body []byte, secret string) {
	ts := fmt.Sprintf("%d", time.Now().Unix())
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte("v0:" + ts + ":" + string(body)))
	req.Header.Set("X-Slack-Request-Timestamp", ts)
	req.Header.Set("X-Slack-Signature", "v0="+hex.EncodeToString(mac.Sum(nil)))
}

// editRecorder is a transport that records Edit calls.
type editRecorder struct {
	mu    sync.Mutex
	edits []string
}

func (e *editRecorder) Channel() string                              { return transport.ChannelSlack }
func (e *editRecorder) Send(context.Context, string) (string, error) { return "ts-1", nil }
func (e *editRecorder) Typing(context.Context) error                 { return nil }
func (e *editRecorder) Edit(_ context.Context, _ string, text string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.edits = append(e.edits, text)
	return nil
}

func (e *editRecorder) recorded() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.edits...)
}

func newWebhookTestServer(t *testing.T, secret string) (*Server, *approval.Store, *editRecorder) {
	t.Helper()

	cfg := *config.DefaultConfig()
	cfg.Channels.Slack.SigningSecret = secret
	cfg.Server.WebhookDeadline = 50 * time.Millisecond

	approvals := approval.NewStore(time.Hour, nil)
	recorder := &editRecorder{}
	registry := transport.NewRegistry()
	registry.Register(recorder)

	pipe := pipeline.New(cfg, pipeline.Deps{
		Approvals:  approvals,
		Transports: registry,
	})

	s := NewServer(cfg, nil, pipe, dispatch.NewDispatcher(), nil, nil)
	return s, approvals, recorder
}

func TestChatWebhook_NotConfigured(t *testing.T) {
	s, _, _ := newWebhookTestServer(t, "")

	body := []byte(`{"type":"url_verification","challenge":"abc"}`)
	req := httptest.NewRequest(http.MethodPost, "/webhook/chat", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestChatWebhook_BadSignature(t *testing.T) {
	s, _, _ := newWebhookTestServer(t, testSigningSecret)

	body := []byte(`{"type":"url_verification","challenge":"abc"}`)
	req := httptest.NewRequest(http.MethodPost, "/webhook/chat", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	signRequest(req, body, "wrong-secret")

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChatWebhook_Challenge(t *testing.T) {
	s, _, _ := newWebhookTestServer(t, testSigningSecret)

	body := []byte(`{"type":"url_verification","challenge":"challenge-token"}`)
	req := httptest.NewRequest(http.MethodPost, "/webhook/chat", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	signRequest(req, body, testSigningSecret)

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "challenge-token", rec.Body.String())
}

func TestChatWebhook_BotMessageIgnored(t *testing.T) {
	s, _, _ := newWebhookTestServer(t, testSigningSecret)

	body := []byte(`{"type":"event_callback","event":{"type":"message","text":"hi","bot_id":"B1","channel":"C1"}}`)
	req := httptest.NewRequest(http.MethodPost, "/webhook/chat", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	signRequest(req, body, testSigningSecret)

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestChatWebhook_DecisionResolvesApproval(t *testing.T) {
	s, approvals, recorder := newWebhookTestServer(t, testSigningSecret)

	approvals.Put(approval.PendingAction{
		ID:          "act-1",
		Description: "send the weekly report",
		Handle: approval.TransportHandle{
			Channel:    transport.ChannelSlack,
			ExternalID: "1700000000.000100",
		},
	})

	callback := map[string]any{
		"type": "block_actions",
		"actions": []map[string]any{
			{"action_id": "approve_action", "value": "act-1"},
		},
	}
	payload, err := json.Marshal(callback)
	require.NoError(t, err)

	form := url.Values{"payload": []string{string(payload)}}
	body := []byte(form.Encode())

	req := httptest.NewRequest(http.MethodPost, "/webhook/chat", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	signRequest(req, body, testSigningSecret)

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, approvals.Len(), "approved action should be removed")

	edits := recorder.recorded()
	require.Len(t, edits, 1)
	assert.Contains(t, edits[0], "Approved")
	assert.Contains(t, edits[0], "send the weekly report")
}

func TestDispatchTurn_StoppedDispatcherUnblocksOnCancel(t *testing.T) {
	// A stopped dispatcher drops the submission, so the done channel
	// never fires; the wait must bail out with the context instead of
	// hanging the webhook handler.
	s, _, _ := newWebhookTestServer(t, testSigningSecret)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	result, err := s.dispatchTurn(ctx, transport.ChannelSlack, "hello")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestAssistantWebhook_EmptyIntent(t *testing.T) {
	s, _, _ := newWebhookTestServer(t, testSigningSecret)

	req := httptest.NewRequest(http.MethodPost, "/webhook/assistant", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp voice.AssistantResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "I didn't catch that.", resp.Speech)
	assert.True(t, resp.EndSession)
}

func TestAssistantWebhook_DeadlineAcknowledges(t *testing.T) {
	// The dispatcher is never started, so the turn cannot complete and
	// the deadline must win with the acknowledgement text.
	s, _, _ := newWebhookTestServer(t, testSigningSecret)

	body := `{"intent":"ask","slots":{"query":"what is on my calendar"}}`
	req := httptest.NewRequest(http.MethodPost, "/webhook/assistant", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp voice.AssistantResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, race.AckText, resp.Speech)
}
