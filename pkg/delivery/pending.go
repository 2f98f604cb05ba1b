package delivery

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/elliebot/relay/pkg/config"
)

// NudgeFunc is invoked when a delivered reply has sat unacknowledged
// past the nudge window. count is the number of pending responses on
// that channel at nudge time.
type NudgeFunc func(channel string, count int)

// pendingResponse tracks one delivered reply awaiting the user's next
// inbound message on the same channel.
type pendingResponse struct {
	channel string
	sentAt  time.Time
	nudged  bool
}

// PendingResponses tracks unacknowledged replies per channel and fires
// at most one nudge per entry. Entries are acknowledged by the next
// inbound message on the channel and garbage-collected after the GC
// window regardless.
type PendingResponses struct {
	cfg     config.RelayConfig
	onNudge NudgeFunc
	logger  *slog.Logger

	mu      sync.Mutex
	pending map[string]*pendingResponse

	cancel context.CancelFunc
	done   chan struct{}
}

// NewPendingResponses creates the tracker. onNudge may be nil.
func NewPendingResponses(cfg config.RelayConfig, onNudge NudgeFunc) *PendingResponses {
	return &PendingResponses{
		cfg:     cfg,
		onNudge: onNudge,
		logger:  slog.Default().With("component", "pending-responses"),
		pending: make(map[string]*pendingResponse),
	}
}

// Register notes a freshly delivered reply on channel. A newer reply
// on the same channel restarts the clock and re-arms the nudge.
func (p *PendingResponses) Register(channel string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending[channel] = &pendingResponse{channel: channel, sentAt: time.Now()}
}

// Acknowledge clears the pending response for channel. Called on every
// inbound user message.
func (p *PendingResponses) Acknowledge(channel string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.pending, channel)
}

// Len returns the number of channels with an unacknowledged reply.
func (p *PendingResponses) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pending)
}

// Start launches the periodic nudge checker.
func (p *PendingResponses) Start(ctx context.Context) {
	if p.cancel != nil {
		return
	}
	ctx, p.cancel = context.WithCancel(ctx)
	p.done = make(chan struct{})
	go p.run(ctx)
}

// Stop signals the checker to exit and waits for it.
func (p *PendingResponses) Stop() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.done
}

func (p *PendingResponses) run(ctx context.Context) {
	defer close(p.done)

	ticker := time.NewTicker(p.cfg.NudgeCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.check(time.Now())
		}
	}
}

// check nudges entries past the nudge window (once each) and drops
// entries past the GC window. Callbacks fire outside the lock.
func (p *PendingResponses) check(now time.Time) {
	var nudges []string
	var count int

	p.mu.Lock()
	for channel, pr := range p.pending {
		age := now.Sub(pr.sentAt)
		switch {
		case age > p.cfg.NudgeGC:
			delete(p.pending, channel)
		case age > p.cfg.NudgeDelay && !pr.nudged:
			pr.nudged = true
			nudges = append(nudges, channel)
		}
	}
	count = len(p.pending)
	p.mu.Unlock()

	for _, channel := range nudges {
		p.logger.Info("Nudging unacknowledged channel", "channel", channel)
		if p.onNudge != nil {
			p.onNudge(channel, count)
		}
	}
}
