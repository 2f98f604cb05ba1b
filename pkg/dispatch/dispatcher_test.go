package dispatch

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRunsImmediatelyWhenFree(t *testing.T) {
	d := NewDispatcher()
	d.Start(t.Context())
	defer d.Stop()

	ran := make(chan struct{})
	d.Submit(&Item{
		Channel: "telegram",
		Run:     func(ctx context.Context) { close(ran) },
		OnQueued: func(int) {
			t.Error("immediate run must not report a queue position")
		},
	})

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("item never ran")
	}
}

func TestSubmitQueuesAndDrainsFIFO(t *testing.T) {
	d := NewDispatcher()
	d.Start(t.Context())
	defer d.Stop()

	release := make(chan struct{})
	started := make(chan struct{})
	d.Submit(&Item{
		Channel: "telegram",
		Run: func(ctx context.Context) {
			close(started)
			<-release
		},
	})
	<-started

	var mu sync.Mutex
	var order []string
	var positions []int
	done := make(chan struct{})

	for _, name := range []string{"web", "slack", "voice"} {
		name := name
		d.Submit(&Item{
			Channel: name,
			Run: func(ctx context.Context) {
				mu.Lock()
				order = append(order, name)
				if len(order) == 3 {
					close(done)
				}
				mu.Unlock()
			},
			OnQueued: func(pos int) {
				mu.Lock()
				positions = append(positions, pos)
				mu.Unlock()
			},
		})
	}

	mu.Lock()
	assert.Equal(t, []int{1, 2, 3}, positions)
	mu.Unlock()

	close(release)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("queue never drained")
	}
	mu.Lock()
	assert.Equal(t, []string{"web", "slack", "voice"}, order)
	mu.Unlock()
}

func TestStatusSnapshot(t *testing.T) {
	d := NewDispatcher()
	d.Start(t.Context())
	defer d.Stop()

	snap := d.Status()
	assert.False(t, snap.Busy)
	assert.Zero(t, snap.QueueLength)
	assert.Nil(t, snap.Current)

	release := make(chan struct{})
	started := make(chan struct{})
	d.Submit(&Item{
		Channel: "telegram",
		Preview: "book flights to Lisbon",
		Run: func(ctx context.Context) {
			close(started)
			<-release
		},
	})
	<-started
	d.Submit(&Item{Channel: "web", Preview: "weekly review", Run: func(ctx context.Context) {}})

	snap = d.Status()
	assert.True(t, snap.Busy)
	assert.Equal(t, 1, snap.QueueLength)
	require.NotNil(t, snap.Current)
	assert.Equal(t, "telegram", snap.Current.Channel)
	assert.Equal(t, "book flights to Lisbon", snap.Current.Preview)
	require.Len(t, snap.Queued, 1)
	assert.Equal(t, 1, snap.Queued[0].Position)
	assert.Equal(t, "web", snap.Queued[0].Channel)

	close(release)
}

func TestStopDropsQueuedItems(t *testing.T) {
	d := NewDispatcher()
	d.Start(context.Background())

	release := make(chan struct{})
	started := make(chan struct{})
	d.Submit(&Item{
		Channel: "telegram",
		Run: func(ctx context.Context) {
			close(started)
			select {
			case <-release:
			case <-ctx.Done():
			}
		},
	})
	<-started

	queuedRan := false
	d.Submit(&Item{Channel: "web", Run: func(ctx context.Context) { queuedRan = true }})

	d.Stop()
	assert.False(t, queuedRan)

	// Submissions after Stop are dropped, not run.
	d.Submit(&Item{Channel: "web", Run: func(ctx context.Context) { queuedRan = true }})
	assert.False(t, queuedRan)
}

func TestPanicInTurnDoesNotJamTheGate(t *testing.T) {
	d := NewDispatcher()
	d.Start(t.Context())
	defer d.Stop()

	done := make(chan struct{})
	d.Submit(&Item{Channel: "telegram", Run: func(ctx context.Context) { panic("boom") }})
	d.Submit(&Item{Channel: "web", Run: func(ctx context.Context) { close(done) }})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("gate stayed busy after panic")
	}
}
