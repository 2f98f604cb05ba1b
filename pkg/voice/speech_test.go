package voice

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliebot/relay/pkg/config"
)

func TestNewSpeechClient_Gating(t *testing.T) {
	assert.Nil(t, NewSpeechClient(config.VoiceConfig{}))
	assert.Nil(t, NewSpeechClient(config.VoiceConfig{Enabled: true, TranscribeURL: "http://stt"}))
	assert.NotNil(t, NewSpeechClient(config.VoiceConfig{
		Enabled:       true,
		TranscribeURL: "http://stt",
		SynthesizeURL: "http://tts",
	}))
}

func TestSpeechClient_Transcribe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "audio/basic", r.Header.Get("Content-Type"))
		assert.Equal(t, []byte{0x01, 0x02}, body)
		_, _ = w.Write([]byte("hello world\n"))
	}))
	defer srv.Close()

	c := NewSpeechClient(config.VoiceConfig{
		Enabled:       true,
		TranscribeURL: srv.URL,
		SynthesizeURL: srv.URL,
	})

	text, err := c.Transcribe(t.Context(), []byte{0x01, 0x02})
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
}

func TestSpeechClient_SynthesizeErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewSpeechClient(config.VoiceConfig{
		Enabled:       true,
		TranscribeURL: srv.URL,
		SynthesizeURL: srv.URL,
	})

	_, err := c.Synthesize(t.Context(), "hi")
	assert.ErrorContains(t, err, "502")
}
