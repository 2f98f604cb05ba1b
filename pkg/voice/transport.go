package voice

import (
	"context"
	"fmt"

	"github.com/elliebot/relay/pkg/transport"
)

// Transport implements transport.Transport over the active call.
// Sends synthesize into the live media stream; there is no edit on a
// phone line.
type Transport struct {
	handler *Handler
}

// NewTransport builds the voice transport.
func NewTransport(handler *Handler) *Transport {
	return &Transport{handler: handler}
}

// Channel returns the logical channel name.
func (t *Transport) Channel() string { return transport.ChannelVoice }

// Send speaks text into the active call; the playback mark is the
// external id. Fails permanently when no call is up: retrying a
// reminder at a hung-up line helps nobody.
func (t *Transport) Send(ctx context.Context, text string) (string, error) {
	id, err := t.handler.Say(ctx, text)
	if err != nil {
		return "", transport.Permanent(err)
	}
	return id, nil
}

// Edit is unsupported: audio already played cannot be replaced.
func (t *Transport) Edit(ctx context.Context, externalID, text string) error {
	return transport.Permanent(fmt.Errorf("voice channel cannot edit delivered audio"))
}

// Typing is a no-op; the line carries silence naturally.
func (t *Transport) Typing(ctx context.Context) error { return nil }
