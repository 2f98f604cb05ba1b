package voice

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/elliebot/relay/pkg/config"
)

const speechTimeout = 15 * time.Second

// SpeechClient bridges to an external speech service over HTTP. The
// transcribe endpoint takes raw mu-law audio and returns plain text;
// the synthesize endpoint takes plain text and returns mu-law audio.
type SpeechClient struct {
	transcribeURL string
	synthesizeURL string
	http          *http.Client
}

// NewSpeechClient creates the client. Returns nil unless voice is
// enabled with both endpoints configured, so callers can skip wiring.
func NewSpeechClient(cfg config.VoiceConfig) *SpeechClient {
	if !cfg.Enabled || cfg.TranscribeURL == "" || cfg.SynthesizeURL == "" {
		return nil
	}
	return &SpeechClient{
		transcribeURL: cfg.TranscribeURL,
		synthesizeURL: cfg.SynthesizeURL,
		http:          &http.Client{Timeout: speechTimeout},
	}
}

func (c *SpeechClient) Transcribe(ctx context.Context, ulaw []byte) (string, error) {
	body, err := c.post(ctx, c.transcribeURL, "audio/basic", ulaw)
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}
	return strings.TrimSpace(string(body)), nil
}

func (c *SpeechClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	body, err := c.post(ctx, c.synthesizeURL, "text/plain", []byte(text))
	if err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}
	return body, nil
}

func (c *SpeechClient) post(ctx context.Context, url, contentType string, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("speech service returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
