package entity

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Registry errors.
var (
	// ErrDuplicateEntity indicates a name was registered twice.
	ErrDuplicateEntity = errors.New("entity: already registered")

	// ErrUnknownEntity indicates a lookup for an unregistered name.
	ErrUnknownEntity = errors.New("entity: not registered")
)

// Registry manages entity registration by name.
type Registry struct {
	mu       sync.RWMutex
	entities map[string]Dispatcher
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entities: make(map[string]Dispatcher),
	}
}

// Register adds an entity under a name. Registering an existing name fails;
// use Replace to swap an entity out.
func (r *Registry) Register(name string, d Dispatcher) error {
	if name == "" {
		return errors.New("entity: empty name")
	}
	if d == nil {
		return fmt.Errorf("entity: nil dispatcher for %q", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entities[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateEntity, name)
	}
	r.entities[name] = d
	return nil
}

// Replace adds or swaps an entity under a name.
func (r *Registry) Replace(name string, d Dispatcher) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entities[name] = d
}

// Remove unregisters an entity.
func (r *Registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entities, name)
}

// Resolve returns the entity registered under name.
func (r *Registry) Resolve(name string) (Dispatcher, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.entities[name]
	return d, ok
}

// Names returns the registered entity names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entities))
	for name := range r.entities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered entities.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entities)
}
