package dispatch

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/elliebot/relay/pkg/transport"
)

type typingCounter struct {
	channel string

	mu    sync.Mutex
	count int
}

func (c *typingCounter) Channel() string { return c.channel }

func (c *typingCounter) Send(ctx context.Context, text string) (string, error) {
	return "ext-1", nil
}

func (c *typingCounter) Edit(ctx context.Context, externalID, text string) error { return nil }

func (c *typingCounter) Typing(ctx context.Context) error {
	c.mu.Lock()
	c.count++
	c.mu.Unlock()
	return nil
}

func (c *typingCounter) typed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

func TestHeartbeatEmitsWhileRunning(t *testing.T) {
	tr := &typingCounter{channel: transport.ChannelTelegram}
	reg := transport.NewRegistry()
	reg.Register(tr)

	hb := NewHeartbeat(reg, 20*time.Millisecond)
	stop := hb.Keep(t.Context(), transport.ChannelTelegram)

	assert.Eventually(t, func() bool { return tr.typed() >= 3 },
		time.Second, 5*time.Millisecond)

	stop()
	settled := tr.typed()
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, settled, tr.typed(), "heartbeat kept emitting after stop")
}

func TestHeartbeatStopIsIdempotentPerTurn(t *testing.T) {
	tr := &typingCounter{channel: transport.ChannelWeb}
	reg := transport.NewRegistry()
	reg.Register(tr)

	hb := NewHeartbeat(reg, 10*time.Millisecond)
	stop := hb.Keep(t.Context(), transport.ChannelWeb)
	stop()
	stop()
}

func TestHeartbeatUnknownChannelIsNoop(t *testing.T) {
	hb := NewHeartbeat(transport.NewRegistry(), 10*time.Millisecond)
	stop := hb.Keep(t.Context(), "nowhere")
	stop()
}
