package voice

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"sync"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// outboundChunk is 20 ms of µ-law at 8 kHz.
const outboundChunk = 160

// Transcriber converts a µ-law utterance to text.
type Transcriber interface {
	Transcribe(ctx context.Context, ulaw []byte) (string, error)
}

// Synthesizer converts reply text to µ-law audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// TurnFunc runs one user turn through the pipeline and returns the reply.
type TurnFunc func(ctx context.Context, text string) (string, error)

// Handler owns the media-stream websocket protocol. One call at a time:
// the relay serves a single user, and telephony providers open one
// stream per call.
type Handler struct {
	stt  Transcriber
	tts  Synthesizer
	turn TurnFunc

	// onCallEnd fires after a call with a non-empty transcript closes,
	// so the consolidator can fold the call into memory promptly.
	onCallEnd func(ctx context.Context)

	mu   sync.Mutex
	call *activeCall

	logger *slog.Logger
}

type activeCall struct {
	streamSID string
	callSID   string
	conn      *websocket.Conn
	ctx       context.Context
	writeMu   sync.Mutex
	detector  utteranceDetector

	// history is appended from the read loop and from Say.
	historyMu sync.Mutex
	history   []string
}

func (c *activeCall) record(line string) {
	c.historyMu.Lock()
	c.history = append(c.history, line)
	c.historyMu.Unlock()
}

func (c *activeCall) transcriptLen() int {
	c.historyMu.Lock()
	defer c.historyMu.Unlock()
	return len(c.history)
}

// NewHandler creates a voice stream handler.
func NewHandler(stt Transcriber, tts Synthesizer, turn TurnFunc, onCallEnd func(ctx context.Context)) *Handler {
	return &Handler{
		stt:       stt,
		tts:       tts,
		turn:      turn,
		onCallEnd: onCallEnd,
		logger:    slog.Default().With("component", "voice"),
	}
}

// Active reports whether a call is in progress. Surfaces on /health.
func (h *Handler) Active() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.call != nil
}

// HandleStream runs the read loop for one media-stream connection.
// Blocks until the stream stops or the connection drops.
func (h *Handler) HandleStream(ctx context.Context, conn *websocket.Conn) {
	call := &activeCall{conn: conn, ctx: ctx}

	defer func() {
		h.mu.Lock()
		if h.call == call {
			h.call = nil
		}
		h.mu.Unlock()

		if call.transcriptLen() > 0 && h.onCallEnd != nil {
			h.onCallEnd(context.WithoutCancel(ctx))
		}
	}()

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			h.logger.Info("media stream closed", "call_sid", call.callSID)
			return
		}

		f, err := parseFrame(data)
		if err != nil {
			h.logger.Warn("unparseable media frame", "error", err)
			continue
		}

		switch f.Event {
		case eventConnected:
			h.logger.Info("media stream connected")

		case eventStart:
			if f.Start != nil {
				call.streamSID = f.Start.StreamSID
				call.callSID = f.Start.CallSID
			}
			h.mu.Lock()
			h.call = call
			h.mu.Unlock()
			h.logger.Info("call started", "call_sid", call.callSID)

		case eventMedia:
			if f.Media == nil {
				continue
			}
			ulaw, err := base64.StdEncoding.DecodeString(f.Media.Payload)
			if err != nil {
				continue
			}
			if utterance := call.detector.Feed(ulaw); utterance != nil {
				h.handleUtterance(ctx, call, utterance)
			}

		case eventMark:
			if f.Mark != nil {
				h.logger.Debug("playback mark reached", "mark", f.Mark.Name)
			}

		case eventStop:
			h.logger.Info("call stopped", "call_sid", call.callSID)
			if utterance := call.detector.Flush(); utterance != nil {
				if text, err := h.stt.Transcribe(ctx, utterance); err == nil && text != "" {
					call.record("user: " + text)
				}
			}
			return
		}
	}
}

// handleUtterance transcribes, runs the turn, and speaks the reply.
func (h *Handler) handleUtterance(ctx context.Context, call *activeCall, utterance []byte) {
	text, err := h.stt.Transcribe(ctx, utterance)
	if err != nil {
		h.logger.Error("transcription failed", "error", err)
		return
	}
	if text == "" {
		return
	}
	call.record("user: " + text)

	reply, err := h.turn(ctx, text)
	if err != nil {
		h.logger.Error("voice turn failed", "error", err)
		reply = "Sorry, I ran into an error with that."
	}
	call.record("assistant: " + reply)

	if err := h.speak(ctx, call, reply); err != nil {
		h.logger.Error("failed to stream reply audio", "error", err)
	}
}

// Say synthesizes text into the active call. Used by the voice transport
// for proactive sends (nudges, reminders). Returns the playback mark name
// as the external id.
func (h *Handler) Say(ctx context.Context, text string) (string, error) {
	h.mu.Lock()
	call := h.call
	h.mu.Unlock()
	if call == nil {
		return "", fmt.Errorf("no active call")
	}
	mark, err := h.speakMarked(ctx, call, text)
	if err != nil {
		return "", err
	}
	call.record("assistant: " + text)
	return mark, nil
}

func (h *Handler) speak(ctx context.Context, call *activeCall, text string) error {
	_, err := h.speakMarked(ctx, call, text)
	return err
}

// speakMarked synthesizes and streams audio in 20 ms chunks, terminated
// by a mark so playback completion is observable.
func (h *Handler) speakMarked(ctx context.Context, call *activeCall, text string) (string, error) {
	audio, err := h.tts.Synthesize(ctx, text)
	if err != nil {
		return "", fmt.Errorf("synthesis failed: %w", err)
	}

	call.writeMu.Lock()
	defer call.writeMu.Unlock()

	for off := 0; off < len(audio); off += outboundChunk {
		end := off + outboundChunk
		if end > len(audio) {
			end = len(audio)
		}
		payload := base64.StdEncoding.EncodeToString(audio[off:end])
		if err := call.conn.Write(ctx, websocket.MessageText, mediaEvent(call.streamSID, payload)); err != nil {
			return "", fmt.Errorf("failed to write media frame: %w", err)
		}
	}

	mark := uuid.New().String()
	if err := call.conn.Write(ctx, websocket.MessageText, markEvent(call.streamSID, mark)); err != nil {
		return "", fmt.Errorf("failed to write mark frame: %w", err)
	}
	return mark, nil
}
