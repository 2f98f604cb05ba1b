package delivery

import (
	"sync"
	"testing"
	"time"

	"github.com/elliebot/relay/pkg/config"
	"github.com/stretchr/testify/assert"
)

type nudgeRecorder struct {
	mu    sync.Mutex
	calls []string
}

func (n *nudgeRecorder) nudge(channel string, _ int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, channel)
}

func (n *nudgeRecorder) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}

func TestAcknowledgeClearsPending(t *testing.T) {
	p := NewPendingResponses(config.DefaultConfig().Relay, nil)
	p.Register("telegram")
	assert.Equal(t, 1, p.Len())
	p.Acknowledge("telegram")
	assert.Equal(t, 0, p.Len())
}

func TestNudgeFiresExactlyOnce(t *testing.T) {
	rec := &nudgeRecorder{}
	cfg := config.DefaultConfig().Relay
	p := NewPendingResponses(cfg, rec.nudge)

	p.Register("telegram")
	future := time.Now().Add(cfg.NudgeDelay + time.Second)

	p.check(future)
	p.check(future.Add(time.Minute))
	p.check(future.Add(2 * time.Minute))

	assert.Equal(t, 1, rec.count())
	assert.Equal(t, []string{"telegram"}, rec.calls)
}

func TestNudgeNotFiredBeforeWindow(t *testing.T) {
	rec := &nudgeRecorder{}
	cfg := config.DefaultConfig().Relay
	p := NewPendingResponses(cfg, rec.nudge)

	p.Register("telegram")
	p.check(time.Now().Add(cfg.NudgeDelay - time.Minute))

	assert.Equal(t, 0, rec.count())
}

func TestPendingGarbageCollected(t *testing.T) {
	cfg := config.DefaultConfig().Relay
	p := NewPendingResponses(cfg, nil)

	p.Register("telegram")
	p.check(time.Now().Add(cfg.NudgeGC + time.Minute))

	assert.Equal(t, 0, p.Len())
}

func TestReRegisterReArmsNudge(t *testing.T) {
	rec := &nudgeRecorder{}
	cfg := config.DefaultConfig().Relay
	p := NewPendingResponses(cfg, rec.nudge)

	p.Register("telegram")
	p.check(time.Now().Add(cfg.NudgeDelay + time.Second))
	assert.Equal(t, 1, rec.count())

	// A fresh reply restarts the clock; its own nudge can fire again.
	p.Register("telegram")
	p.check(time.Now().Add(cfg.NudgeDelay + time.Second))
	assert.Equal(t, 2, rec.count())
}
