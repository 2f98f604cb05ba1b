// Package transport defines the narrow contract the relay has with
// user-facing channels. Concrete adapters (Bot API chat, Slack,
// browser websocket, telephony) live in their own packages; the
// delivery engine and dispatcher only ever see this interface.
package transport

import (
	"context"
	"errors"
	"fmt"
)

// Channel names used across the relay.
const (
	ChannelTelegram  = "telegram"
	ChannelWeb       = "web"
	ChannelSlack     = "slack"
	ChannelVoice     = "voice"
	ChannelAssistant = "assistant"
)

// Transport is one outbound channel adapter.
type Transport interface {
	// Channel returns the logical channel name this adapter serves.
	Channel() string

	// Send delivers text and returns a transport-assigned external id.
	Send(ctx context.Context, text string) (string, error)

	// Edit replaces the content of a previously sent message.
	Edit(ctx context.Context, externalID, text string) error

	// Typing emits a typing/keepalive indicator. Best-effort.
	Typing(ctx context.Context) error
}

// ConfirmationSender is implemented by transports that can render a
// proposal with inline approve/deny handles. Others receive the plain
// description text.
type ConfirmationSender interface {
	SendConfirmation(ctx context.Context, actionID, description string) (string, error)
}

// Error wraps a transport failure with retry classification.
type Error struct {
	Retryable bool
	Err       error
}

func (e *Error) Error() string { return e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

// Retryable marks err as transient (timeouts, 5xx, rate limits).
func Retryable(err error) error {
	return &Error{Retryable: true, Err: err}
}

// Permanent marks err as definitive (4xx); retrying cannot help.
func Permanent(err error) error {
	return &Error{Retryable: false, Err: err}
}

// IsRetryable reports whether err should count against the retry
// budget rather than fail the delivery outright. Unclassified errors
// are treated as retryable: the transport may simply have been
// unreachable.
func IsRetryable(err error) bool {
	var te *Error
	if errors.As(err, &te) {
		return te.Retryable
	}
	return true
}

// FromStatusCode classifies an HTTP-style status code.
func FromStatusCode(code int, op string) error {
	err := fmt.Errorf("%s returned status %d", op, code)
	if code == 429 || code >= 500 {
		return Retryable(err)
	}
	if code >= 400 {
		return Permanent(err)
	}
	return nil
}
