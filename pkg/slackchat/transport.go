package slackchat

import (
	"context"

	"github.com/elliebot/relay/pkg/config"
	"github.com/elliebot/relay/pkg/transport"
)

// Transport implements transport.Transport and transport.ConfirmationSender
// over the Slack Web API.
type Transport struct {
	client *Client
}

// NewTransport builds the Slack transport from config.
// Returns nil when Token or Channel is empty; callers skip registration.
func NewTransport(cfg config.SlackConfig) *Transport {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Transport{client: NewClient(cfg.Token, cfg.Channel)}
}

// NewTransportWithClient builds a Transport over a pre-built Client.
func NewTransportWithClient(client *Client) *Transport {
	return &Transport{client: client}
}

// Channel returns the logical channel name.
func (t *Transport) Channel() string { return transport.ChannelSlack }

// Send posts text and returns the message timestamp as external id.
func (t *Transport) Send(ctx context.Context, text string) (string, error) {
	return t.client.PostText(ctx, text)
}

// Edit replaces a previously sent message's text.
func (t *Transport) Edit(ctx context.Context, externalID, text string) error {
	return t.client.UpdateText(ctx, externalID, text)
}

// Typing is a no-op: the Web API has no typing indicator for bots.
func (t *Transport) Typing(ctx context.Context) error { return nil }

// SendConfirmation posts an approval card with approve/deny buttons.
// The action id round-trips through the button values so the interaction
// callback can resolve the pending action.
func (t *Transport) SendConfirmation(ctx context.Context, actionID, description string) (string, error) {
	return t.client.PostBlocks(ctx, BuildConfirmationBlocks(actionID, description))
}
