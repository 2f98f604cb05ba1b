package cleanup

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/elliebot/relay/pkg/config"
)

type fakeEvents struct {
	mu     sync.Mutex
	cutoff time.Time
	calls  int
	err    error
}

func (f *fakeEvents) PurgeBefore(_ context.Context, cutoff time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cutoff = cutoff
	f.calls++
	return 3, f.err
}

func (f *fakeEvents) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeMessages struct {
	cutoff time.Time
	calls  int
}

func (f *fakeMessages) PurgeSummarizedBefore(_ context.Context, cutoff time.Time) (int, error) {
	f.cutoff = cutoff
	f.calls++
	return 1, nil
}

type fakeSessions struct {
	idle  time.Duration
	calls int
}

func (f *fakeSessions) ExpireIdle(_ context.Context, idle time.Duration) (int, error) {
	f.idle = idle
	f.calls++
	return 2, nil
}

type fakeQueue struct{ calls int }

func (f *fakeQueue) PurgeCompleted(_ context.Context) (int, error) {
	f.calls++
	return 0, nil
}

func testConfig() config.RetentionConfig {
	return config.RetentionConfig{
		CleanupInterval:  time.Hour,
		EventTTL:         10 * time.Minute,
		AgentSessionIdle: 2 * time.Hour,
		SummarizedTTL:    90 * 24 * time.Hour,
	}
}

func TestRunAll_InvokesEveryTask(t *testing.T) {
	events := &fakeEvents{}
	messages := &fakeMessages{}
	sessions := &fakeSessions{}
	queue := &fakeQueue{}

	s := NewService(testConfig(), events, messages, sessions, queue)
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	s.RunAll(context.Background())

	assert.Equal(t, 1, events.calls)
	assert.Equal(t, now.Add(-10*time.Minute), events.cutoff)
	assert.Equal(t, 1, sessions.calls)
	assert.Equal(t, 2*time.Hour, sessions.idle)
	assert.Equal(t, 1, queue.calls)
	assert.Equal(t, 1, messages.calls)
	assert.Equal(t, now.Add(-90*24*time.Hour), messages.cutoff)
}

func TestRunAll_FailureDoesNotStopOtherTasks(t *testing.T) {
	events := &fakeEvents{err: errors.New("db down")}
	messages := &fakeMessages{}

	s := NewService(testConfig(), events, messages, &fakeSessions{}, &fakeQueue{})
	s.RunAll(context.Background())

	assert.Equal(t, 1, events.calls)
	assert.Equal(t, 1, messages.calls)
}

func TestRunAll_ZeroTTLsSkipTasks(t *testing.T) {
	events := &fakeEvents{}
	messages := &fakeMessages{}

	cfg := testConfig()
	cfg.EventTTL = 0
	cfg.SummarizedTTL = 0

	s := NewService(cfg, events, messages, &fakeSessions{}, &fakeQueue{})
	s.RunAll(context.Background())

	assert.Zero(t, events.calls)
	assert.Zero(t, messages.calls)
}

func TestStartStop(t *testing.T) {
	events := &fakeEvents{}
	cfg := testConfig()
	cfg.CleanupInterval = 10 * time.Millisecond

	s := NewService(cfg, events, &fakeMessages{}, &fakeSessions{}, &fakeQueue{})
	s.Start(context.Background())

	assert.Eventually(t, func() bool { return events.callCount() >= 2 }, 2*time.Second, 5*time.Millisecond)
	s.Stop()

	calls := events.callCount()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, events.callCount())
}
