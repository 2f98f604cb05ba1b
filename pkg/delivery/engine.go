// Package delivery sends assistant output to transports with retry,
// cross-channel fallback, and unacknowledged-response nudging.
package delivery

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/elliebot/relay/pkg/config"
	"github.com/elliebot/relay/pkg/transport"
)

// Status of a completed delivery attempt.
type Status string

const (
	StatusSent     Status = "sent"
	StatusFallback Status = "fallback"
	StatusFailed   Status = "failed"
)

// Options control one delivery.
type Options struct {
	// Channel is the primary target.
	Channel string

	// Fallback enables one degraded attempt on the fallback channel
	// after the primary exhausts its retries.
	Fallback bool

	// MessageID, when set, receives the persisted delivery record in
	// its metadata.
	MessageID string

	// SkipPendingResponse suppresses nudge tracking (used for nudges
	// themselves and for system notices).
	SkipPendingResponse bool
}

// Result describes how a delivery ended.
type Result struct {
	Status     Status
	Channel    string
	ExternalID string
	Attempts   int
	Err        error
}

// MetadataWriter persists the delivery record onto the originating
// message. Implemented by services.MessageService.
type MetadataWriter interface {
	MergeDeliveryRecord(ctx context.Context, messageID string, record map[string]interface{}) error
}

// Engine retries sends on the primary channel and falls back once.
type Engine struct {
	cfg        config.DeliveryConfig
	transports *transport.Registry
	metadata   MetadataWriter
	pending    *PendingResponses
	logger     *slog.Logger

	// sleep is replaced in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewEngine creates a delivery engine. metadata and pending may be nil
// (metadata persistence and nudge tracking disabled respectively).
func NewEngine(cfg config.DeliveryConfig, transports *transport.Registry, metadata MetadataWriter, pending *PendingResponses) *Engine {
	return &Engine{
		cfg:        cfg,
		transports: transports,
		metadata:   metadata,
		pending:    pending,
		logger:     slog.Default().With("component", "delivery"),
		sleep:      sleepCtx,
	}
}

// Deliver sends text to the channel in opts, retrying with exponential
// backoff and falling back once when allowed. The returned result is
// always populated; Err is set only when Status is failed.
func (e *Engine) Deliver(ctx context.Context, text string, opts Options) Result {
	result := e.sendWithRetries(ctx, opts.Channel, text)

	if result.Status == StatusFailed && opts.Fallback && e.cfg.FallbackChannel != "" && e.cfg.FallbackChannel != opts.Channel {
		fallbackText := fmt.Sprintf("(via %s, %s unreachable) %s", e.cfg.FallbackChannel, opts.Channel, text)
		fb := e.sendOnce(ctx, e.cfg.FallbackChannel, fallbackText)
		fb.Attempts += result.Attempts
		if fb.Status == StatusSent {
			fb.Status = StatusFallback
			result = fb
		} else {
			result.Attempts = fb.Attempts
		}
	}

	e.recordDelivery(ctx, opts.MessageID, result)

	if result.Status != StatusFailed && e.pending != nil && !opts.SkipPendingResponse {
		e.pending.Register(result.Channel)
	}

	return result
}

// sendWithRetries attempts the primary channel up to MaxRetries times
// with backoff base·2^(attempt-1). A permanent transport error stops
// retrying immediately.
func (e *Engine) sendWithRetries(ctx context.Context, channel, text string) Result {
	tr, err := e.transports.Get(channel)
	if err != nil {
		return Result{Status: StatusFailed, Channel: channel, Err: err}
	}

	var lastErr error
	for attempt := 1; attempt <= e.cfg.MaxRetries; attempt++ {
		externalID, err := tr.Send(ctx, text)
		if err == nil {
			return Result{Status: StatusSent, Channel: channel, ExternalID: externalID, Attempts: attempt}
		}
		lastErr = err

		if !transport.IsRetryable(err) {
			e.logger.Warn("Permanent transport error, not retrying",
				"channel", channel, "attempt", attempt, "error", err)
			return Result{Status: StatusFailed, Channel: channel, Attempts: attempt, Err: err}
		}

		e.logger.Warn("Send failed, will retry",
			"channel", channel, "attempt", attempt, "max", e.cfg.MaxRetries, "error", err)

		if attempt < e.cfg.MaxRetries {
			backoff := e.cfg.BackoffBase << (attempt - 1)
			if err := e.sleep(ctx, backoff); err != nil {
				return Result{Status: StatusFailed, Channel: channel, Attempts: attempt, Err: err}
			}
		}
	}

	return Result{Status: StatusFailed, Channel: channel, Attempts: e.cfg.MaxRetries, Err: lastErr}
}

func (e *Engine) sendOnce(ctx context.Context, channel, text string) Result {
	tr, err := e.transports.Get(channel)
	if err != nil {
		return Result{Status: StatusFailed, Channel: channel, Err: err}
	}
	externalID, err := tr.Send(ctx, text)
	if err != nil {
		return Result{Status: StatusFailed, Channel: channel, Attempts: 1, Err: err}
	}
	return Result{Status: StatusSent, Channel: channel, ExternalID: externalID, Attempts: 1}
}

// recordDelivery merges the outcome into the originating message's
// metadata. Best-effort: a metadata failure never fails the delivery.
func (e *Engine) recordDelivery(ctx context.Context, messageID string, result Result) {
	if e.metadata == nil || messageID == "" {
		return
	}

	record := map[string]interface{}{
		"channel":  result.Channel,
		"attempts": result.Attempts,
		"status":   string(result.Status),
		"sent_at":  time.Now().Format(time.RFC3339),
	}
	if result.ExternalID != "" {
		record["external_id"] = result.ExternalID
	}
	if result.Err != nil {
		record["error"] = result.Err.Error()
	}

	if err := e.metadata.MergeDeliveryRecord(ctx, messageID, record); err != nil {
		e.logger.Warn("Failed to persist delivery record",
			"message_id", messageID, "error", err)
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
