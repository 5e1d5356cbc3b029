package fdict

import (
	"fmt"
	"sort"
	"sync"
)

// Transform rewrites a resolved value. arg carries the modifier suffix parsed
// from the transform token, empty when the token matched a registered name
// exactly.
type Transform func(value, arg string) (string, error)

// Registry stores transforms keyed by name. The expected discipline is
// register during initialization, read thereafter; the lock makes late
// registration safe regardless.
type Registry struct {
	mu         sync.RWMutex
	transforms map[string]Transform
}

// NewRegistry constructs a registry seeded with the builtin transform set.
func NewRegistry() *Registry {
	r := &Registry{
		transforms: make(map[string]Transform),
	}
	registerBuiltins(r)
	return r
}

// Register stores fn under name. Registering an existing name replaces the
// previous transform.
func (r *Registry) Register(name string, fn Transform) error {
	if fn == nil {
		return fmt.Errorf("fdict: transform %q is nil", name)
	}
	if name == "" {
		return fmt.Errorf("fdict: transform name must not be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.transforms == nil {
		r.transforms = make(map[string]Transform)
	}
	r.transforms[name] = fn
	return nil
}

// Lookup returns the transform registered for name.
func (r *Registry) Lookup(name string) (Transform, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	fn, ok := r.transforms[name]
	r.mu.RUnlock()
	return fn, ok
}

// Match splits a transform token into a registered name and a modifier
// suffix. An exact match has an empty suffix; otherwise the longest
// registered name that prefixes token wins and the remainder is the suffix.
func (r *Registry) Match(token string) (name, suffix string, ok bool) {
	if r == nil || token == "" {
		return "", "", false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, exact := r.transforms[token]; exact {
		return token, "", true
	}
	best := ""
	for registered := range r.transforms {
		if len(registered) > len(best) && len(registered) < len(token) && token[:len(registered)] == registered {
			best = registered
		}
	}
	if best == "" {
		return "", "", false
	}
	return best, token[len(best):], true
}

// Names returns registered transform names sorted alphabetically.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.transforms))
	for name := range r.transforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a shallow copy of the registry.
func (r *Registry) Clone() *Registry {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	clone := &Registry{
		transforms: make(map[string]Transform, len(r.transforms)),
	}
	for name, fn := range r.transforms {
		clone.transforms[name] = fn
	}
	return clone
}
