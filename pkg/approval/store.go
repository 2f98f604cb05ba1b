// Package approval tracks side-effects awaiting explicit user consent.
//
// When the model proposes an action with a [CONFIRM: …] marker, the
// pipeline registers a PendingAction here and delivers the proposal
// with approve/deny handles. Actions are removed on approval, denial,
// or TTL expiry; a background sweeper owns the TTL decision so resume
// handlers and expiry never race.
package approval

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// TransportHandle carries enough information to edit or reply to the
// message that prompted the confirmation, without the store knowing
// anything about the transport.
type TransportHandle struct {
	Channel    string
	ExternalID string
	ChatID     string
}

// PendingAction is one confirmation awaiting an answer.
type PendingAction struct {
	ID          string
	Description string
	SessionID   string
	Agent       string
	Channel     string
	Handle      TransportHandle
	CreatedAt   time.Time
}

// ExpiredFunc is invoked for every action the sweeper expires, so the
// caller can clean up the prompting message on the transport.
type ExpiredFunc func(action PendingAction)

// Store is an in-memory map of pending actions with TTL expiry.
type Store struct {
	ttl       time.Duration
	onExpired ExpiredFunc

	mu      sync.Mutex
	actions map[string]PendingAction

	cancel context.CancelFunc
	done   chan struct{}
}

// NewStore creates a store expiring entries after ttl. onExpired may
// be nil.
func NewStore(ttl time.Duration, onExpired ExpiredFunc) *Store {
	return &Store{
		ttl:       ttl,
		onExpired: onExpired,
		actions:   make(map[string]PendingAction),
	}
}

// Put registers a pending action under its ID.
func (s *Store) Put(action PendingAction) {
	if action.CreatedAt.IsZero() {
		action.CreatedAt = time.Now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions[action.ID] = action
}

// Get returns the action for id, if still pending.
func (s *Store) Get(id string) (PendingAction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	action, ok := s.actions[id]
	return action, ok
}

// Remove deletes the action and reports whether this call won the
// delete. Exactly one of a concurrent Remove and the sweeper succeeds.
func (s *Store) Remove(id string) (PendingAction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	action, ok := s.actions[id]
	if ok {
		delete(s.actions, id)
	}
	return action, ok
}

// Len returns the number of pending actions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.actions)
}

// Start launches the background expiry sweeper.
func (s *Store) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	go s.run(ctx)
}

// Stop signals the sweeper to exit and waits for it.
func (s *Store) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}

func (s *Store) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.sweepInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(time.Now())
		}
	}
}

// sweep removes every action older than the TTL and fires the expiry
// callback outside the lock.
func (s *Store) sweep(now time.Time) {
	var expired []PendingAction

	s.mu.Lock()
	for id, action := range s.actions {
		if now.Sub(action.CreatedAt) > s.ttl {
			delete(s.actions, id)
			expired = append(expired, action)
		}
	}
	s.mu.Unlock()

	for _, action := range expired {
		slog.Info("Pending action expired",
			"action_id", action.ID, "channel", action.Channel)
		if s.onExpired != nil {
			s.onExpired(action)
		}
	}
}

func (s *Store) sweepInterval() time.Duration {
	interval := s.ttl / 10
	if interval < time.Second {
		interval = time.Second
	}
	if interval > time.Minute {
		interval = time.Minute
	}
	return interval
}
