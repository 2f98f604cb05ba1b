package chatbot

import (
	"context"

	"github.com/elliebot/relay/pkg/config"
	"github.com/elliebot/relay/pkg/transport"
)

// Transport implements transport.Transport and transport.ConfirmationSender
// over the Bot API client.
type Transport struct {
	client *Client
}

// NewTransport builds the Telegram transport from config.
// Returns nil when Token or ChatID is empty; callers skip registration.
func NewTransport(cfg config.TelegramConfig) *Transport {
	if cfg.Token == "" || cfg.ChatID == "" {
		return nil
	}
	return &Transport{client: NewClient(cfg.Token, cfg.ChatID)}
}

// NewTransportWithClient builds a Transport over a pre-built Client.
func NewTransportWithClient(client *Client) *Transport {
	return &Transport{client: client}
}

// Client exposes the underlying Bot API client for the poller.
func (t *Transport) Client() *Client { return t.client }

// Channel returns the logical channel name.
func (t *Transport) Channel() string { return transport.ChannelTelegram }

// Send delivers text and returns the Telegram message id.
func (t *Transport) Send(ctx context.Context, text string) (string, error) {
	return t.client.SendMessage(ctx, text)
}

// Edit replaces a sent message's text.
func (t *Transport) Edit(ctx context.Context, externalID, text string) error {
	return t.client.EditMessage(ctx, externalID, text)
}

// Typing shows the typing indicator.
func (t *Transport) Typing(ctx context.Context) error {
	return t.client.SendTyping(ctx)
}

// SendConfirmation sends an approval prompt with inline buttons.
func (t *Transport) SendConfirmation(ctx context.Context, actionID, description string) (string, error) {
	return t.client.SendConfirmation(ctx, actionID, description)
}
