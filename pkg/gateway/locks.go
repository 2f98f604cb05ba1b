package gateway

import (
	"sync"
	"time"
)

// RecoveryLocks tracks short-lived suppression windows armed after a
// model invocation is cut short. While a lock is held, dependent
// side-effects (tracker state changes, queue drains) back off so the
// user can decide what actually got done.
type RecoveryLocks struct {
	mu    sync.Mutex
	until map[string]time.Time
	now   func() time.Time
}

// NewRecoveryLocks creates an empty lock set.
func NewRecoveryLocks() *RecoveryLocks {
	return &RecoveryLocks{
		until: make(map[string]time.Time),
		now:   time.Now,
	}
}

// Arm holds name for the given duration, extending any existing hold.
func (r *RecoveryLocks) Arm(name string, d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	expiry := r.now().Add(d)
	if expiry.After(r.until[name]) {
		r.until[name] = expiry
	}
}

// Held reports whether name is currently locked. Expired entries are
// dropped on read.
func (r *RecoveryLocks) Held(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	expiry, ok := r.until[name]
	if !ok {
		return false
	}
	if r.now().After(expiry) {
		delete(r.until, name)
		return false
	}
	return true
}

// Release drops name immediately.
func (r *RecoveryLocks) Release(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.until, name)
}
