package transport

import "sync"

// Registry holds the transports known to the process.
//
// The first transport registered under an id wins; later registrations
// with the same id are ignored.
type Registry struct {
	mu         sync.RWMutex
	transports []Transport
	index      map[string]Transport
}

// NewRegistry creates a registry and registers ts in order.
func NewRegistry(ts ...Transport) *Registry {
	r := &Registry{index: make(map[string]Transport)}
	for _, t := range ts {
		r.Register(t)
	}

	return r
}

// Register adds t and reports whether it was stored.
func (r *Registry) Register(t Transport) bool {
	if t == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[t.ID()]; exists {
		return false
	}

	r.index[t.ID()] = t
	r.transports = append(r.transports, t)

	return true
}

// Locate returns the transport registered under id.
func (r *Registry) Locate(id string) (Transport, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.index[id]
	return t, ok
}

// IDs returns registered ids in registration order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.transports))
	for _, t := range r.transports {
		ids = append(ids, t.ID())
	}

	return ids
}

// Len returns the number of registered transports.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.transports)
}
