package slackchat

import (
	"fmt"
	"net/http"

	goslack "github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
)

// Inbound is a normalized inbound webhook event.
type Inbound struct {
	// Kind is one of "challenge", "message", or "" for events the relay
	// does not act on.
	Kind string

	// Challenge echo for url_verification handshakes.
	Challenge string

	// Message fields.
	Text      string
	UserID    string
	ChannelID string
	FromBot   bool
}

// VerifySignature checks the webhook signature headers against the
// signing secret. Rejects replayed or forged requests.
func VerifySignature(header http.Header, body []byte, signingSecret string) error {
	verifier, err := goslack.NewSecretsVerifier(header, signingSecret)
	if err != nil {
		return fmt.Errorf("invalid signature headers: %w", err)
	}
	if _, err := verifier.Write(body); err != nil {
		return fmt.Errorf("failed to hash request body: %w", err)
	}
	if err := verifier.Ensure(); err != nil {
		return fmt.Errorf("signature mismatch: %w", err)
	}
	return nil
}

// ParseInbound interprets an events-API webhook body.
// Bot-authored messages are surfaced with FromBot=true so the caller can
// skip them instead of replying to the relay's own sends.
func ParseInbound(body []byte) (Inbound, error) {
	event, err := slackevents.ParseEvent(body, slackevents.OptionNoVerifyToken())
	if err != nil {
		return Inbound{}, fmt.Errorf("failed to parse events payload: %w", err)
	}

	switch event.Type {
	case slackevents.URLVerification:
		challenge, ok := event.Data.(*slackevents.EventsAPIURLVerificationEvent)
		if !ok {
			return Inbound{}, fmt.Errorf("malformed url_verification payload")
		}
		return Inbound{Kind: "challenge", Challenge: challenge.Challenge}, nil

	case slackevents.CallbackEvent:
		msg, ok := event.InnerEvent.Data.(*slackevents.MessageEvent)
		if !ok {
			return Inbound{}, nil
		}
		if msg.SubType != "" && msg.SubType != "file_share" {
			// Edits, deletions, joins. Not user turns.
			return Inbound{}, nil
		}
		return Inbound{
			Kind:      "message",
			Text:      msg.Text,
			UserID:    msg.User,
			ChannelID: msg.Channel,
			FromBot:   msg.BotID != "",
		}, nil
	}

	return Inbound{}, nil
}
