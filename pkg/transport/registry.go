package transport

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds the configured transports by channel name.
type Registry struct {
	mu         sync.RWMutex
	transports map[string]Transport
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{transports: make(map[string]Transport)}
}

// Register adds a transport; later registrations for the same channel
// replace earlier ones.
func (r *Registry) Register(t Transport) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transports[t.Channel()] = t
}

// Get returns the transport for channel.
func (r *Registry) Get(channel string) (Transport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.transports[channel]
	if !ok {
		return nil, fmt.Errorf("no transport registered for channel %q", channel)
	}
	return t, nil
}

// Channels returns the registered channel names, sorted.
func (r *Registry) Channels() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.transports))
	for name := range r.transports {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
