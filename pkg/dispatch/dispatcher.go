// Package dispatch serializes model turns behind a process-wide gate
// with FIFO queueing, and owns the per-channel idle timers and typing
// heartbeats.
package dispatch

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Item is one queued unit of work, usually a full response-pipeline
// turn for a single inbound message.
type Item struct {
	// Channel the work belongs to.
	Channel string

	// Preview is a short excerpt of the inbound message for status
	// reporting and queue-position replies.
	Preview string

	// Run executes the turn. The context is the dispatcher's lifecycle
	// context; it is cancelled on Stop.
	Run func(ctx context.Context)

	// OnQueued fires once, with the 1-based queue position, when the
	// gate is busy and the item had to wait.
	OnQueued func(position int)

	enqueuedAt time.Time
	startedAt  time.Time
}

// Snapshot is the observable dispatcher state for the status endpoint.
type Snapshot struct {
	Busy        bool         `json:"busy"`
	QueueLength int          `json:"queue_length"`
	Current     *CurrentItem `json:"current,omitempty"`
	Queued      []QueuedItem `json:"queued"`
}

// CurrentItem describes the in-flight turn.
type CurrentItem struct {
	Channel   string `json:"channel"`
	Preview   string `json:"preview"`
	RunningMS int64  `json:"running_ms"`
}

// QueuedItem describes one waiting turn.
type QueuedItem struct {
	Position  int    `json:"position"`
	Channel   string `json:"channel"`
	Preview   string `json:"preview"`
	WaitingMS int64  `json:"waiting_ms"`
}

// Dispatcher runs at most one item at a time, draining waiters in
// arrival order. Inbound order per channel is preserved because the
// queue is globally FIFO.
type Dispatcher struct {
	logger *slog.Logger

	mu      sync.Mutex
	busy    bool
	current *Item
	queue   []*Item

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	now func() time.Time
}

// NewDispatcher creates a stopped dispatcher; call Start before
// submitting work.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		logger: slog.Default().With("component", "dispatcher"),
		now:    time.Now,
	}
}

// Start arms the dispatcher with its lifecycle context.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ctx, d.cancel = context.WithCancel(ctx)
}

// Stop cancels the in-flight turn and waits for it to unwind. Queued
// items are dropped.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
	}
	d.queue = nil
	d.mu.Unlock()
	d.wg.Wait()
}

// Submit runs the item now if the gate is free, otherwise enqueues it
// and reports the queue position through item.OnQueued.
func (d *Dispatcher) Submit(item *Item) {
	d.mu.Lock()
	if d.ctx == nil || d.ctx.Err() != nil {
		d.mu.Unlock()
		d.logger.Warn("Dropping submission on stopped dispatcher", "channel", item.Channel)
		return
	}

	if d.busy {
		item.enqueuedAt = d.now()
		d.queue = append(d.queue, item)
		position := len(d.queue)
		d.mu.Unlock()
		d.logger.Info("Turn queued", "channel", item.Channel, "position", position)
		if item.OnQueued != nil {
			item.OnQueued(position)
		}
		return
	}

	d.busy = true
	item.startedAt = d.now()
	d.current = item
	d.wg.Add(1)
	d.mu.Unlock()

	go d.runLoop(item)
}

// runLoop executes item and then drains the queue until it is empty.
func (d *Dispatcher) runLoop(item *Item) {
	defer d.wg.Done()
	for item != nil {
		d.execute(item)

		d.mu.Lock()
		if len(d.queue) == 0 || d.ctx.Err() != nil {
			d.busy = false
			d.current = nil
			d.mu.Unlock()
			return
		}
		item = d.queue[0]
		d.queue = d.queue[1:]
		item.startedAt = d.now()
		d.current = item
		d.mu.Unlock()
	}
}

func (d *Dispatcher) execute(item *Item) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Turn panicked", "channel", item.Channel, "panic", r)
		}
	}()
	item.Run(d.ctx)
}

// Status returns a point-in-time snapshot for the status endpoint.
func (d *Dispatcher) Status() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	snap := Snapshot{
		Busy:        d.busy,
		QueueLength: len(d.queue),
		Queued:      make([]QueuedItem, 0, len(d.queue)),
	}
	if d.current != nil {
		snap.Current = &CurrentItem{
			Channel:   d.current.Channel,
			Preview:   d.current.Preview,
			RunningMS: now.Sub(d.current.startedAt).Milliseconds(),
		}
	}
	for i, item := range d.queue {
		snap.Queued = append(snap.Queued, QueuedItem{
			Position:  i + 1,
			Channel:   item.Channel,
			Preview:   item.Preview,
			WaitingMS: now.Sub(item.enqueuedAt).Milliseconds(),
		})
	}
	return snap
}
