// Package webchat delivers assistant output to browser chat clients.
//
// The browser never holds a direct connection to the relay's sender.
// Outbound messages become persisted message.created events on the
// "chat:web" NOTIFY channel; the websocket layer fans them out to live
// subscribers and catchup replays them to reconnecting tabs. Because
// every send is a stored event, a browser that was closed during a turn
// still sees the answer when it comes back.
package webchat

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/elliebot/relay/pkg/events"
	"github.com/elliebot/relay/pkg/transport"
)

// Transport implements transport.Transport for the browser chat channel.
type Transport struct {
	pub *events.Publisher
}

// NewTransport creates the web transport. Returns nil when no publisher
// is available so callers can skip registration.
func NewTransport(pub *events.Publisher) *Transport {
	if pub == nil {
		return nil
	}
	return &Transport{pub: pub}
}

func (t *Transport) Channel() string { return transport.ChannelWeb }

// Send publishes the text as a message.created event. The event id
// doubles as the external id; Edit republishes under the same id and
// clients replace the rendered message in place.
func (t *Transport) Send(ctx context.Context, text string) (string, error) {
	id := uuid.New().String()
	if err := t.publish(ctx, id, text); err != nil {
		return "", err
	}
	return id, nil
}

func (t *Transport) Edit(ctx context.Context, externalID, text string) error {
	return t.publish(ctx, externalID, text)
}

func (t *Transport) Typing(ctx context.Context) error {
	if err := t.pub.Typing(ctx, transport.ChannelWeb); err != nil {
		return transport.Retryable(fmt.Errorf("typing event: %w", err))
	}
	return nil
}

// SendConfirmation publishes an approval.requested event; the browser
// renders its own approve/deny buttons and answers over the webhook-free
// websocket message action.
func (t *Transport) SendConfirmation(ctx context.Context, actionID, description string) (string, error) {
	err := t.pub.ApprovalRequested(ctx, events.ApprovalRequestedPayload{
		ApprovalID:  actionID,
		Channel:     transport.ChannelWeb,
		Description: description,
	})
	if err != nil {
		return "", transport.Retryable(fmt.Errorf("approval event: %w", err))
	}
	return actionID, nil
}

func (t *Transport) publish(ctx context.Context, id, text string) error {
	err := t.pub.MessageCreated(ctx, events.MessageCreatedPayload{
		MessageID: id,
		Channel:   transport.ChannelWeb,
		Role:      "assistant",
		Content:   text,
	})
	if err != nil {
		// Event inserts fail only when the database is down, which a
		// later attempt can survive.
		return transport.Retryable(fmt.Errorf("message event: %w", err))
	}
	return nil
}
