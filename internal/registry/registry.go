package registry

import (
	"errors"
	"fmt"
	"sort"

	"refactorings/internal/domain"
)

var (
	// ErrEntryPointNotFound is returned when no entry point is registered
	// under the requested namespace.
	ErrEntryPointNotFound = errors.New("entry point not found")

	// ErrSealed is returned by Register once the registry has been sealed.
	ErrSealed = errors.New("registry: sealed")

	// ErrDuplicateKey is returned when a namespace is registered twice.
	ErrDuplicateKey = errors.New("registry: duplicate key")
)

// Registry maps namespace paths to the factories of their entry points.
//
// It is populated once at start-up, sealed, and only read afterwards. There is
// no locking: registration and lookups happen on the same goroutine.
type Registry struct {
	items  map[string]domain.Factory
	sealed bool
}

// New creates an empty Registry
func New() *Registry {
	return &Registry{items: map[string]domain.Factory{}}
}

// Register stores factory under key.
func (r *Registry) Register(key string, factory domain.Factory) error {
	if r.sealed {
		return fmt.Errorf("%w: cannot register %q", ErrSealed, key)
	}
	if key == "" {
		return errors.New("registry: empty key")
	}
	if factory == nil {
		return fmt.Errorf("registry: nil factory for %q", key)
	}
	if _, ok := r.items[key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	r.items[key] = factory
	return nil
}

// MustRegister is Register that panics on error. Useful in tests where a bad
// registration should fail fast.
func (r *Registry) MustRegister(key string, factory domain.Factory) *Registry {
	if err := r.Register(key, factory); err != nil {
		panic(err)
	}
	return r
}

// Seal ends the registration phase.
func (r *Registry) Seal() {
	r.sealed = true
}

// Sealed reports whether Seal has been called.
func (r *Registry) Sealed() bool {
	return r.sealed
}

// Lookup returns the factory registered under key.
func (r *Registry) Lookup(key string) (domain.Factory, error) {
	factory, ok := r.items[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s::Tests", ErrEntryPointNotFound, key)
	}
	return factory, nil
}

// Has reports whether key is registered.
func (r *Registry) Has(key string) bool {
	_, ok := r.items[key]
	return ok
}

// Keys returns every registered key in sorted order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.items))
	for key := range r.items {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of registered entry points.
func (r *Registry) Len() int {
	return len(r.items)
}
