// Package slackchat adapts the enterprise chat workspace as a relay
// channel: outbound sends and edits through the Web API, approval cards
// with interactive buttons, and parsing of the inbound events webhook.
package slackchat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	goslack "github.com/slack-go/slack"

	"github.com/elliebot/relay/pkg/transport"
)

const apiTimeout = 10 * time.Second

// Client is a thin wrapper around the slack-go SDK bound to one channel.
type Client struct {
	api       *goslack.Client
	channelID string
	logger    *slog.Logger
}

// NewClient creates a Slack API client.
func NewClient(token, channelID string) *Client {
	return &Client{
		api:       goslack.New(token),
		channelID: channelID,
		logger:    slog.Default().With("component", "slack-client"),
	}
}

// NewClientWithAPIURL creates a client targeting a custom API URL.
// Useful for testing with a mock server.
func NewClientWithAPIURL(token, channelID, apiURL string) *Client {
	return &Client{
		api:       goslack.New(token, goslack.OptionAPIURL(apiURL)),
		channelID: channelID,
		logger:    slog.Default().With("component", "slack-client"),
	}
}

// PostText sends plain text to the configured channel and returns the
// message timestamp, which Slack uses as the message identifier.
func (c *Client) PostText(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, apiTimeout)
	defer cancel()

	_, ts, err := c.api.PostMessageContext(ctx, c.channelID,
		goslack.MsgOptionText(text, false))
	if err != nil {
		return "", classify(fmt.Errorf("chat.postMessage failed: %w", err))
	}
	return ts, nil
}

// PostBlocks sends Block Kit blocks and returns the message timestamp.
func (c *Client) PostBlocks(ctx context.Context, blocks []goslack.Block) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, apiTimeout)
	defer cancel()

	_, ts, err := c.api.PostMessageContext(ctx, c.channelID,
		goslack.MsgOptionBlocks(blocks...))
	if err != nil {
		return "", classify(fmt.Errorf("chat.postMessage failed: %w", err))
	}
	return ts, nil
}

// UpdateText replaces the text of a previously sent message.
func (c *Client) UpdateText(ctx context.Context, ts, text string) error {
	ctx, cancel := context.WithTimeout(ctx, apiTimeout)
	defer cancel()

	_, _, _, err := c.api.UpdateMessageContext(ctx, c.channelID, ts,
		goslack.MsgOptionText(text, false))
	if err != nil {
		return classify(fmt.Errorf("chat.update failed: %w", err))
	}
	return nil
}

// classify maps slack-go errors onto the transport retry taxonomy.
// Rate limits and server errors are worth retrying; everything the API
// rejected outright (bad channel, missing scope) is permanent.
func classify(err error) error {
	var rle *goslack.RateLimitedError
	if errors.As(err, &rle) {
		return transport.Retryable(err)
	}
	var sce goslack.StatusCodeError
	if errors.As(err, &sce) {
		if sce.Code >= 500 {
			return transport.Retryable(err)
		}
		return transport.Permanent(err)
	}
	var ser goslack.SlackErrorResponse
	if errors.As(err, &ser) {
		return transport.Permanent(err)
	}
	// Network-level failure: the API may simply have been unreachable.
	return transport.Retryable(err)
}
