package dispatch

import (
	"context"
	"log/slog"
	"time"

	"github.com/elliebot/relay/pkg/transport"
)

// Heartbeat emits typing/keepalive events on a channel's transport
// while a turn is running.
type Heartbeat struct {
	transports *transport.Registry
	interval   time.Duration
	logger     *slog.Logger
}

// NewHeartbeat creates a heartbeat source over the registry.
func NewHeartbeat(transports *transport.Registry, interval time.Duration) *Heartbeat {
	return &Heartbeat{
		transports: transports,
		interval:   interval,
		logger:     slog.Default().With("component", "heartbeat"),
	}
}

// Keep starts the typing loop for channel and returns a stop function.
// Callers must defer stop around the model call so the loop never
// outlives the turn. Unknown channels get a no-op stop.
func (h *Heartbeat) Keep(ctx context.Context, channel string) (stop func()) {
	tr, err := h.transports.Get(channel)
	if err != nil {
		return func() {}
	}

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)

		// Fire immediately so the user sees activity before the first
		// tick elapses.
		h.emit(loopCtx, tr, channel)

		ticker := time.NewTicker(h.interval)
		defer ticker.Stop()
		for {
			select {
			case <-loopCtx.Done():
				return
			case <-ticker.C:
				h.emit(loopCtx, tr, channel)
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}

func (h *Heartbeat) emit(ctx context.Context, tr transport.Transport, channel string) {
	if ctx.Err() != nil {
		return
	}
	if err := tr.Typing(ctx); err != nil {
		h.logger.Debug("Typing keepalive failed", "channel", channel, "error", err)
	}
}
