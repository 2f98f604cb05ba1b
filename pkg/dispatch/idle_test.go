package dispatch

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIdleTimerFiresAfterQuietPeriod(t *testing.T) {
	fired := make(chan string, 1)
	timers := NewIdleTimers(30*time.Millisecond, func(channel string) {
		fired <- channel
	})
	defer timers.Stop()

	timers.Touch("telegram")

	select {
	case channel := <-fired:
		assert.Equal(t, "telegram", channel)
	case <-time.After(time.Second):
		t.Fatal("idle timer never fired")
	}
}

func TestTouchResetsCountdown(t *testing.T) {
	var mu sync.Mutex
	fired := 0
	timers := NewIdleTimers(60*time.Millisecond, func(string) {
		mu.Lock()
		fired++
		mu.Unlock()
	})
	defer timers.Stop()

	timers.Touch("telegram")
	for i := 0; i < 3; i++ {
		time.Sleep(30 * time.Millisecond)
		timers.Touch("telegram")
	}

	mu.Lock()
	assert.Zero(t, fired, "timer fired despite constant activity")
	mu.Unlock()

	time.Sleep(120 * time.Millisecond)
	mu.Lock()
	assert.Equal(t, 1, fired)
	mu.Unlock()
}

func TestCancelStopsWithoutFiring(t *testing.T) {
	fired := make(chan string, 1)
	timers := NewIdleTimers(30*time.Millisecond, func(channel string) {
		fired <- channel
	})
	defer timers.Stop()

	timers.Touch("voice")
	timers.Cancel("voice")

	select {
	case <-fired:
		t.Fatal("cancelled timer fired")
	case <-time.After(80 * time.Millisecond):
	}
}

func TestStopSilencesAllChannels(t *testing.T) {
	fired := make(chan string, 4)
	timers := NewIdleTimers(30*time.Millisecond, func(channel string) {
		fired <- channel
	})

	timers.Touch("telegram")
	timers.Touch("web")
	timers.Stop()
	timers.Touch("slack")

	select {
	case channel := <-fired:
		t.Fatalf("timer for %s fired after Stop", channel)
	case <-time.After(80 * time.Millisecond):
	}
}
