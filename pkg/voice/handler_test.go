package voice

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSTT struct{ text string }

func (f *fakeSTT) Transcribe(_ context.Context, _ []byte) (string, error) {
	return f.text, nil
}

type fakeTTS struct{ audio []byte }

func (f *fakeTTS) Synthesize(_ context.Context, _ string) ([]byte, error) {
	return f.audio, nil
}

func dialStream(t *testing.T, h *Handler) *websocket.Conn {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		h.HandleStream(r.Context(), conn)
	}))
	t.Cleanup(server.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, "ws"+server.URL[len("http"):], nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func writeFrame(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func readFrame(t *testing.T, conn *websocket.Conn) frame {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	f, err := parseFrame(data)
	require.NoError(t, err)
	return f
}

func TestHandleStream_FullTurn(t *testing.T) {
	turnCalled := atomic.Bool{}
	h := NewHandler(
		&fakeSTT{text: "what's on my calendar"},
		&fakeTTS{audio: make([]byte, 400)}, // 2.5 chunks
		func(_ context.Context, text string) (string, error) {
			assert.Equal(t, "what's on my calendar", text)
			turnCalled.Store(true)
			return "You have one meeting at noon.", nil
		},
		nil,
	)
	conn := dialStream(t, h)

	writeFrame(t, conn, map[string]any{"event": "connected"})
	writeFrame(t, conn, map[string]any{"event": "start", "start": map[string]string{
		"streamSid": "MZ1", "callSid": "CA1",
	}})

	require.Eventually(t, h.Active, 2*time.Second, 10*time.Millisecond)

	// Speech then enough silence to close the utterance.
	loud := base64.StdEncoding.EncodeToString(loudFrame())
	quiet := base64.StdEncoding.EncodeToString(silentFrame())
	for i := 0; i < minSpeechFrames+2; i++ {
		writeFrame(t, conn, map[string]any{"event": "media", "media": map[string]string{"payload": loud}})
	}
	for i := 0; i < endSilenceFrames; i++ {
		writeFrame(t, conn, map[string]any{"event": "media", "media": map[string]string{"payload": quiet}})
	}

	// Reply audio: three media frames (400 bytes in 160-byte chunks) then a mark.
	var frames []frame
	for i := 0; i < 4; i++ {
		frames = append(frames, readFrame(t, conn))
	}
	assert.Equal(t, eventMedia, frames[0].Event)
	assert.Equal(t, "MZ1", frames[0].StreamSID)
	assert.Equal(t, eventMark, frames[3].Event)
	assert.NotEmpty(t, frames[3].Mark.Name)
	assert.True(t, turnCalled.Load())
}

func TestHandleStream_CallEndTriggersConsolidation(t *testing.T) {
	consolidated := make(chan struct{}, 1)
	h := NewHandler(
		&fakeSTT{text: "remember to buy milk"},
		&fakeTTS{audio: make([]byte, 160)},
		func(_ context.Context, _ string) (string, error) { return "Noted.", nil },
		func(_ context.Context) { consolidated <- struct{}{} },
	)
	conn := dialStream(t, h)

	writeFrame(t, conn, map[string]any{"event": "start", "start": map[string]string{
		"streamSid": "MZ1", "callSid": "CA1",
	}})

	loud := base64.StdEncoding.EncodeToString(loudFrame())
	quiet := base64.StdEncoding.EncodeToString(silentFrame())
	for i := 0; i < minSpeechFrames+2; i++ {
		writeFrame(t, conn, map[string]any{"event": "media", "media": map[string]string{"payload": loud}})
	}
	for i := 0; i < endSilenceFrames; i++ {
		writeFrame(t, conn, map[string]any{"event": "media", "media": map[string]string{"payload": quiet}})
	}

	// Drain the reply so the write side is not blocked, then stop.
	readFrame(t, conn)
	readFrame(t, conn)
	writeFrame(t, conn, map[string]any{"event": "stop"})

	select {
	case <-consolidated:
	case <-time.After(2 * time.Second):
		t.Fatal("consolidation callback not invoked after call end")
	}
	assert.False(t, h.Active())
}

func TestHandleStream_EmptyCallSkipsConsolidation(t *testing.T) {
	consolidated := atomic.Bool{}
	h := NewHandler(&fakeSTT{}, &fakeTTS{},
		func(_ context.Context, _ string) (string, error) { return "", nil },
		func(_ context.Context) { consolidated.Store(true) },
	)
	conn := dialStream(t, h)

	writeFrame(t, conn, map[string]any{"event": "start", "start": map[string]string{"streamSid": "MZ1"}})
	writeFrame(t, conn, map[string]any{"event": "stop"})

	require.Eventually(t, func() bool { return !h.Active() }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.False(t, consolidated.Load())
}

func TestTransport_SendWithoutCall(t *testing.T) {
	h := NewHandler(&fakeSTT{}, &fakeTTS{}, nil, nil)
	tr := NewTransport(h)

	_, err := tr.Send(context.Background(), "hello?")
	require.Error(t, err)
}

func TestAssistantRequest_TurnText(t *testing.T) {
	t.Run("free text slot passes through", func(t *testing.T) {
		r := AssistantRequest{Intent: "AskEllie", Slots: map[string]string{"text": "when is my dentist appointment"}}
		assert.Equal(t, "when is my dentist appointment", r.TurnText())
	})

	t.Run("structured intent renders slots sorted", func(t *testing.T) {
		r := AssistantRequest{Intent: "SetReminder", Slots: map[string]string{
			"when": "tomorrow 9am", "task": "call plumber",
		}}
		assert.Equal(t, "SetReminder (task=call plumber, when=tomorrow 9am)", r.TurnText())
	})

	t.Run("bare intent", func(t *testing.T) {
		r := AssistantRequest{Intent: "GoodMorning"}
		assert.Equal(t, "GoodMorning", r.TurnText())
	})
}
