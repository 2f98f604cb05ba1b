package approval

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAction(id string) PendingAction {
	return PendingAction{
		ID:          id,
		Description: "archive ticket PROJ-42",
		Agent:       "general",
		Channel:     "telegram",
		Handle:      TransportHandle{Channel: "telegram", ExternalID: "123", ChatID: "42"},
	}
}

func TestPutGetRemove(t *testing.T) {
	s := NewStore(time.Minute, nil)

	s.Put(newAction("a1"))
	got, ok := s.Get("a1")
	require.True(t, ok)
	assert.Equal(t, "archive ticket PROJ-42", got.Description)

	removed, ok := s.Remove("a1")
	require.True(t, ok)
	assert.Equal(t, "a1", removed.ID)

	_, ok = s.Get("a1")
	assert.False(t, ok)
}

func TestRemoveMissing(t *testing.T) {
	s := NewStore(time.Minute, nil)
	_, ok := s.Remove("ghost")
	assert.False(t, ok)
}

func TestSweepExpiresOldEntries(t *testing.T) {
	var mu sync.Mutex
	var expired []string
	s := NewStore(10*time.Minute, func(a PendingAction) {
		mu.Lock()
		expired = append(expired, a.ID)
		mu.Unlock()
	})

	old := newAction("old")
	old.CreatedAt = time.Now().Add(-11 * time.Minute)
	s.Put(old)
	s.Put(newAction("fresh"))

	s.sweep(time.Now())

	_, ok := s.Get("old")
	assert.False(t, ok)
	_, ok = s.Get("fresh")
	assert.True(t, ok)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"old"}, expired)
}

func TestConcurrentRemoveSingleWinner(t *testing.T) {
	s := NewStore(time.Minute, nil)
	s.Put(newAction("contested"))

	const goroutines = 16
	wins := make(chan bool, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, ok := s.Remove("contested")
			wins <- ok
		}()
	}
	wg.Wait()
	close(wins)

	winners := 0
	for ok := range wins {
		if ok {
			winners++
		}
	}
	assert.Equal(t, 1, winners)
}

func TestStartStop(t *testing.T) {
	s := NewStore(time.Minute, nil)
	s.Start(t.Context())
	s.Put(newAction("a1"))
	s.Stop()
	assert.Equal(t, 1, s.Len())
}
