package filter

import (
	"fmt"
	"sort"
	"sync"

	"github.com/kbukum/utilkit/errors"
)

// Names of the built-in filters.
const (
	NameStripTags            = "stripTags"
	NameStripNonAlphanumeric = "stripNonAlphanumeric"
)

// Func transforms text.
type Func func(string) string

// Registry is a concurrency-safe set of named filters.
type Registry struct {
	mu      sync.RWMutex
	filters map[string]Func
}

// NewRegistry returns a registry preloaded with the built-in filters.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	r.Register(NameStripTags, StripTags)
	r.Register(NameStripNonAlphanumeric, StripNonAlphanumeric)
	return r
}

// NewEmptyRegistry returns a registry with no filters.
func NewEmptyRegistry() *Registry {
	return &Registry{filters: make(map[string]Func)}
}

// Register adds or replaces the filter stored under name.
func (r *Registry) Register(name string, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if fn == nil {
		delete(r.filters, name)
		return
	}
	r.filters[name] = fn
}

// Get returns the filter stored under name.
func (r *Registry) Get(name string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.filters[name]
	return fn, ok
}

// Names returns the registered filter names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.filters))
	for name := range r.filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply runs the named filter over text.
func (r *Registry) Apply(name, text string) (string, error) {
	fn, ok := r.Get(name)
	if !ok {
		return "", errors.InvalidArgument("filter", fmt.Sprintf("unknown filter %q", name))
	}
	return fn(text), nil
}
