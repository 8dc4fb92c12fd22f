package registry

import (
	"slices"
	"sync"

	"github.com/samber/lo"
)

// Registry is a thread-safe, name-keyed registry of values.
// The zero value is not usable; create instances with New.
type Registry[V any] struct {
	mu    sync.RWMutex
	items map[string]V
}

// New creates an empty registry.
func New[V any]() *Registry[V] {
	return &Registry[V]{items: make(map[string]V)}
}

// Put stores a value under name, overwriting any previous entry.
// Returns the previous value and whether one existed.
func (r *Registry[V]) Put(name string, value V) (V, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, existed := r.items[name]
	r.items[name] = value
	return prev, existed
}

// PutIfAbsent stores a value under name only when the name is free.
// Returns true when the value was stored, false when an entry already
// existed (the original entry is retained untouched).
func (r *Registry[V]) PutIfAbsent(name string, value V) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, existed := r.items[name]; existed {
		return false
	}
	r.items[name] = value
	return true
}

// Get retrieves the value registered under name.
// Returns the value and true if found, zero value and false otherwise.
func (r *Registry[V]) Get(name string) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.items[name]
	return v, ok
}

// Has reports whether name is registered.
func (r *Registry[V]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.items[name]
	return ok
}

// Remove deletes the entry under name.
// Returns the removed value and true if it existed, zero value and false
// otherwise.
func (r *Registry[V]) Remove(name string) (V, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.items[name]
	if ok {
		delete(r.items, name)
	}
	return v, ok
}

// Len returns the number of registered entries.
func (r *Registry[V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Names returns the registered names in lexical order.
func (r *Registry[V]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := lo.Keys(r.items)
	slices.Sort(names)
	return names
}

// Clear removes all entries.
func (r *Registry[V]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.items)
}
