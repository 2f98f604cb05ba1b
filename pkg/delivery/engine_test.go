package delivery

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/elliebot/relay/pkg/config"
	"github.com/elliebot/relay/pkg/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTransport fails a configured number of sends before succeeding.
type fakeTransport struct {
	channel   string
	mu        sync.Mutex
	failures  int
	permanent bool
	sends     []string
}

func (f *fakeTransport) Channel() string { return f.channel }

func (f *fakeTransport) Send(_ context.Context, text string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sends = append(f.sends, text)
	if f.failures > 0 {
		f.failures--
		if f.permanent {
			return "", transport.Permanent(errors.New("bad request"))
		}
		return "", transport.Retryable(errors.New("gateway timeout"))
	}
	return "ext-42", nil
}

func (f *fakeTransport) Edit(context.Context, string, string) error { return nil }
func (f *fakeTransport) Typing(context.Context) error               { return nil }

func (f *fakeTransport) sendCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sends)
}

type fakeMetadata struct {
	mu      sync.Mutex
	records map[string]map[string]interface{}
}

func (f *fakeMetadata) MergeDeliveryRecord(_ context.Context, id string, record map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.records == nil {
		f.records = make(map[string]map[string]interface{})
	}
	f.records[id] = record
	return nil
}

func testEngine(t *testing.T, primary, fallback *fakeTransport, metadata MetadataWriter, pending *PendingResponses) *Engine {
	t.Helper()
	reg := transport.NewRegistry()
	reg.Register(primary)
	fallbackName := ""
	if fallback != nil {
		reg.Register(fallback)
		fallbackName = fallback.channel
	}
	e := NewEngine(config.DeliveryConfig{
		MaxRetries:      3,
		BackoffBase:     2 * time.Second,
		FallbackChannel: fallbackName,
	}, reg, metadata, pending)
	e.sleep = func(context.Context, time.Duration) error { return nil }
	return e
}

func TestDeliverFirstAttempt(t *testing.T) {
	primary := &fakeTransport{channel: "telegram"}
	meta := &fakeMetadata{}
	e := testEngine(t, primary, nil, meta, nil)

	res := e.Deliver(t.Context(), "hello", Options{Channel: "telegram", MessageID: "m1"})

	assert.Equal(t, StatusSent, res.Status)
	assert.Equal(t, "ext-42", res.ExternalID)
	assert.Equal(t, 1, res.Attempts)
	require.Contains(t, meta.records, "m1")
	assert.Equal(t, "sent", meta.records["m1"]["status"])
	assert.Equal(t, "ext-42", meta.records["m1"]["external_id"])
}

func TestDeliverRetriesThenSucceeds(t *testing.T) {
	primary := &fakeTransport{channel: "telegram", failures: 2}
	e := testEngine(t, primary, nil, nil, nil)

	res := e.Deliver(t.Context(), "hello", Options{Channel: "telegram"})

	assert.Equal(t, StatusSent, res.Status)
	assert.Equal(t, 3, res.Attempts)
}

func TestDeliverBackoffSchedule(t *testing.T) {
	primary := &fakeTransport{channel: "telegram", failures: 2}
	e := testEngine(t, primary, nil, nil, nil)

	var waits []time.Duration
	e.sleep = func(_ context.Context, d time.Duration) error {
		waits = append(waits, d)
		return nil
	}

	e.Deliver(t.Context(), "hello", Options{Channel: "telegram"})
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, waits)
}

func TestDeliverPermanentErrorFailsFast(t *testing.T) {
	primary := &fakeTransport{channel: "telegram", failures: 5, permanent: true}
	e := testEngine(t, primary, nil, nil, nil)

	res := e.Deliver(t.Context(), "hello", Options{Channel: "telegram"})

	assert.Equal(t, StatusFailed, res.Status)
	assert.Equal(t, 1, res.Attempts)
	assert.Equal(t, 1, primary.sendCount())
}

func TestDeliverFallsBackAfterExhaustion(t *testing.T) {
	primary := &fakeTransport{channel: "telegram", failures: 99}
	fallback := &fakeTransport{channel: "slack"}
	meta := &fakeMetadata{}
	e := testEngine(t, primary, fallback, meta, nil)

	res := e.Deliver(t.Context(), "hello", Options{Channel: "telegram", Fallback: true, MessageID: "m1"})

	assert.Equal(t, StatusFallback, res.Status)
	assert.Equal(t, "slack", res.Channel)
	assert.Equal(t, 4, res.Attempts)
	require.Equal(t, 1, fallback.sendCount())
	assert.Contains(t, fallback.sends[0], "telegram unreachable")
	assert.Equal(t, "fallback", meta.records["m1"]["status"])
}

func TestDeliverNoFallbackWhenDisabled(t *testing.T) {
	primary := &fakeTransport{channel: "telegram", failures: 99}
	fallback := &fakeTransport{channel: "slack"}
	e := testEngine(t, primary, fallback, nil, nil)

	res := e.Deliver(t.Context(), "hello", Options{Channel: "telegram"})

	assert.Equal(t, StatusFailed, res.Status)
	assert.Equal(t, 0, fallback.sendCount())
}

func TestDeliverRegistersPendingResponse(t *testing.T) {
	primary := &fakeTransport{channel: "telegram"}
	pending := NewPendingResponses(config.DefaultConfig().Relay, nil)
	e := testEngine(t, primary, nil, nil, pending)

	e.Deliver(t.Context(), "hello", Options{Channel: "telegram"})
	assert.Equal(t, 1, pending.Len())

	e.Deliver(t.Context(), "psst", Options{Channel: "telegram", SkipPendingResponse: true})
	assert.Equal(t, 1, pending.Len())
}

func TestDeliverUnknownChannel(t *testing.T) {
	primary := &fakeTransport{channel: "telegram"}
	e := testEngine(t, primary, nil, nil, nil)

	res := e.Deliver(t.Context(), "hello", Options{Channel: "carrier-pigeon"})
	assert.Equal(t, StatusFailed, res.Status)
	assert.Error(t, res.Err)
}
