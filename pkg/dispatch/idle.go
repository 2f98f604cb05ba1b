package dispatch

import (
	"log/slog"
	"sync"
	"time"
)

// IdleTimers holds one resettable timer per channel. A channel's timer
// is reset on every inbound or outbound message; when it fires, the
// channel has gone quiet and its unsummarized history is ready for
// consolidation.
type IdleTimers struct {
	timeout time.Duration
	fire    func(channel string)
	logger  *slog.Logger

	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
}

// NewIdleTimers creates the timer set. fire runs on the timer
// goroutine; it should hand off real work elsewhere.
func NewIdleTimers(timeout time.Duration, fire func(channel string)) *IdleTimers {
	return &IdleTimers{
		timeout: timeout,
		fire:    fire,
		logger:  slog.Default().With("component", "idle_timers"),
		timers:  make(map[string]*time.Timer),
	}
}

// Touch resets the channel's idle countdown.
func (t *IdleTimers) Touch(channel string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}
	if timer, ok := t.timers[channel]; ok {
		timer.Reset(t.timeout)
		return
	}
	t.timers[channel] = time.AfterFunc(t.timeout, func() {
		t.expire(channel)
	})
}

func (t *IdleTimers) expire(channel string) {
	t.mu.Lock()
	delete(t.timers, channel)
	closed := t.closed
	t.mu.Unlock()

	if closed {
		return
	}
	t.logger.Info("Channel went idle", "channel", channel)
	t.fire(channel)
}

// Cancel stops the channel's timer without firing, e.g. on session
// close after an explicit consolidation.
func (t *IdleTimers) Cancel(channel string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if timer, ok := t.timers[channel]; ok {
		timer.Stop()
		delete(t.timers, channel)
	}
}

// Stop cancels every timer and rejects further touches.
func (t *IdleTimers) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true
	for channel, timer := range t.timers {
		timer.Stop()
		delete(t.timers, channel)
	}
}
