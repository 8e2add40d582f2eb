// Package source tracks the registered content providers and which one the
// user has selected.
package source

import (
	"fmt"
	"slices"
	"sync"

	"github.com/vmunix/couchtv/pkg/provider"
)

// Registry is an ordered, read-mostly set of content providers. It is safe
// for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers []provider.Provider
}

// NewRegistry creates a registry holding providers in the given order.
func NewRegistry(providers ...provider.Provider) (*Registry, error) {
	r := &Registry{}
	for _, p := range providers {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register appends p. Names must be unique.
func (r *Registry) Register(p provider.Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(p.Name()) >= 0 {
		return fmt.Errorf("register %s: %w", p.Name(), ErrDuplicateProvider)
	}
	r.providers = append(r.providers, p)
	return nil
}

// Get returns the provider registered under name.
func (r *Registry) Get(name string) (provider.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(name)
	if i < 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrProviderNotFound)
	}
	return r.providers[i], nil
}

// All returns a snapshot of the providers in registration order.
func (r *Registry) All() []provider.Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.providers)
}

// Names returns provider names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.providers))
	for i, p := range r.providers {
		names[i] = p.Name()
	}
	return names
}

func (r *Registry) indexOf(name string) int {
	return slices.IndexFunc(r.providers, func(p provider.Provider) bool { return p.Name() == name })
}
