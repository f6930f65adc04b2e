package taxprovider

import (
	"sync"
)

// Registry holds the configured tax-data providers in registration order.
type Registry struct {
	providers []Provider
	mu        sync.RWMutex
}

// NewRegistry creates a new provider registry seeded with providers.
func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{}
	for _, p := range providers {
		r.Register(p)
	}
	return r
}

// Register appends a provider to the registry. Nil providers are ignored.
func (r *Registry) Register(p Provider) {
	if p == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers = append(r.providers, p)
}

// Select returns the first registered provider whose type matches t.
// A nil registry behaves like an empty one.
func (r *Registry) Select(t ProviderType) (Provider, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.providers {
		if p.Type() == t {
			return p, true
		}
	}
	return nil, false
}

// All returns all registered providers in registration order.
func (r *Registry) All() []Provider {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]Provider, len(r.providers))
	copy(result, r.providers)
	return result
}

// Types returns the type tags of all registered providers.
func (r *Registry) Types() []ProviderType {
	all := r.All()
	types := make([]ProviderType, 0, len(all))
	for _, p := range all {
		types = append(types, p.Type())
	}
	return types
}

// Count returns the number of registered providers.
func (r *Registry) Count() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}
