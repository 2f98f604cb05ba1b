package chatbot

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// Inbound kinds produced by the poller.
const (
	KindText     = "text"
	KindVoice    = "voice"
	KindPhoto    = "photo"
	KindDocument = "document"
	KindCallback = "callback"
)

// Inbound is a normalized Bot API update.
type Inbound struct {
	Kind      string
	Text      string // text, or caption for media
	FileID    string // largest photo rendition, voice note, or document
	FileName  string
	MessageID string
	ChatID    int64

	// Inline keyboard callback fields.
	CallbackID string
	ActionID   string
	Approved   bool
}

// Handler processes normalized inbound updates.
type Handler func(ctx context.Context, in Inbound)

// Poller long-polls getUpdates and feeds normalized updates to a handler.
type Poller struct {
	client  *Client
	handler Handler
	timeout int // server-side long-poll window, seconds

	cancel context.CancelFunc
	done   chan struct{}
	logger *slog.Logger
}

// NewPoller creates a Poller. The handler runs on the poll goroutine, so
// it should hand long work to the dispatcher rather than block.
func NewPoller(client *Client, handler Handler) *Poller {
	return &Poller{
		client:  client,
		handler: handler,
		timeout: 30,
		logger:  slog.Default().With("component", "chatbot-poller"),
	}
}

// Start begins long-polling in the background.
func (p *Poller) Start(ctx context.Context) {
	pollCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	go func() {
		defer close(p.done)
		p.pollLoop(pollCtx)
	}()
	p.logger.Info("chatbot poller started")
}

// Stop terminates the poll loop and waits for it to exit.
func (p *Poller) Stop() {
	if p.cancel != nil {
		p.cancel()
		<-p.done
	}
	p.logger.Info("chatbot poller stopped")
}

func (p *Poller) pollLoop(ctx context.Context) {
	var offset int64
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		updates, err := p.client.GetUpdates(ctx, offset, p.timeout)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			p.logger.Warn("poll error", "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(3 * time.Second):
			}
			continue
		}

		for _, u := range updates {
			if u.UpdateID >= offset {
				offset = u.UpdateID + 1
			}
			in, ok := normalize(u)
			if !ok {
				continue
			}
			p.handler(ctx, in)
		}
	}
}

// normalize maps a raw update onto an Inbound. Updates the relay has no
// use for (stickers, member joins) report ok=false.
func normalize(u Update) (Inbound, bool) {
	if u.CallbackQuery != nil {
		actionID, approved, ok := parseCallbackData(u.CallbackQuery.Data)
		if !ok {
			return Inbound{}, false
		}
		in := Inbound{
			Kind:       KindCallback,
			CallbackID: u.CallbackQuery.ID,
			ActionID:   actionID,
			Approved:   approved,
		}
		if u.CallbackQuery.Message != nil {
			in.MessageID = strconv.FormatInt(u.CallbackQuery.Message.MessageID, 10)
			in.ChatID = u.CallbackQuery.Message.Chat.ID
		}
		return in, true
	}

	msg := u.Message
	if msg == nil {
		return Inbound{}, false
	}

	in := Inbound{
		MessageID: strconv.FormatInt(msg.MessageID, 10),
		ChatID:    msg.Chat.ID,
	}

	switch {
	case msg.Voice != nil:
		in.Kind = KindVoice
		in.FileID = msg.Voice.FileID
		in.Text = msg.Caption
	case len(msg.Photo) > 0:
		in.Kind = KindPhoto
		// Renditions are ordered smallest first; take the largest.
		in.FileID = msg.Photo[len(msg.Photo)-1].FileID
		in.Text = msg.Caption
	case msg.Document != nil:
		in.Kind = KindDocument
		in.FileID = msg.Document.FileID
		in.FileName = msg.Document.FileName
		in.Text = msg.Caption
	case msg.Text != "":
		in.Kind = KindText
		in.Text = msg.Text
	default:
		return Inbound{}, false
	}
	return in, true
}

func parseCallbackData(data string) (actionID string, approved bool, ok bool) {
	switch {
	case strings.HasPrefix(data, "approve:"):
		return strings.TrimPrefix(data, "approve:"), true, true
	case strings.HasPrefix(data, "deny:"):
		return strings.TrimPrefix(data, "deny:"), false, true
	}
	return "", false, false
}
