package fdict

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goliatone/go-formatdict/pkg/store"
)

// defaultRegistry backs Lookup calls made without an explicit registry,
// matching the historical single-shared-table behavior.
var defaultRegistry = sync.OnceValue(NewRegistry)

// Lookup resolves one extended key against reader: parse, resolve the
// alternatives, apply the transform chain. Failures from any stage propagate
// unchanged. A nil registry uses the process-wide builtin registry.
func Lookup(raw string, reader store.Reader, registry *Registry) (string, error) {
	if registry == nil {
		registry = defaultRegistry()
	}
	parsed, err := Parse(raw, registry)
	if err != nil {
		return "", err
	}
	value, err := resolveAlternatives(parsed, reader)
	if err != nil {
		return "", err
	}
	return applyTransforms(value, parsed.Transforms, registry)
}

// Dict is a string-keyed container whose read path speaks the extended-key
// protocol. Writes pass through to the backing store untouched.
type Dict struct {
	store    store.Store
	registry *Registry
	logger   Logger
	hooks    Hooks
}

// New constructs a Dict seeded with values. The default backing store is an
// in-memory one; the default registry carries the builtin transforms.
func New(values map[string]string, opts ...Option) *Dict {
	cfg := applyOptions(opts)
	if cfg.store == nil {
		cfg.store = store.NewMemory()
	}
	for name, value := range values {
		cfg.store.Set(name, value)
	}
	if cfg.registry == nil {
		cfg.registry = NewRegistry()
	}
	if cfg.logger == nil {
		cfg.logger = noopLogger{}
	}
	return &Dict{
		store:    cfg.store,
		registry: cfg.registry,
		logger:   cfg.logger,
		hooks:    cfg.hooks,
	}
}

// Get resolves an extended key. A key stored verbatim bypasses extended
// resolution, so stored names containing pipes or colons stay reachable.
func (d *Dict) Get(raw string) (string, error) {
	start := time.Now()
	value, err := d.get(raw)
	d.logger.LogLookup(LogEvent{
		Key:      raw,
		Value:    value,
		Duration: time.Since(start),
		Err:      err,
	})
	if d.hooks.Enabled() {
		var missing *MissingKeyError
		event := Event{
			Key:     raw,
			Value:   value,
			Missing: errors.As(err, &missing),
		}
		if hookErr := d.hooks.Notify(context.Background(), event); hookErr != nil {
			d.logger.LogLookup(LogEvent{Key: raw, Err: fmt.Errorf("fdict: hook: %w", hookErr)})
		}
	}
	return value, err
}

func (d *Dict) get(raw string) (string, error) {
	if value, ok := d.store.Get(raw); ok {
		return value, nil
	}
	return Lookup(raw, d.store, d.registry)
}

// Registry exposes the dict's transform registry so callers can register
// additional transforms before resolutions begin.
func (d *Dict) Registry() *Registry {
	return d.registry
}

// Store exposes the backing store.
func (d *Dict) Store() store.Store {
	return d.store
}

// Set stores value under name.
func (d *Dict) Set(name, value string) {
	d.store.Set(name, value)
}

// Delete removes name from the backing store.
func (d *Dict) Delete(name string) {
	d.store.Delete(name)
}

// Has reports whether name is present verbatim in the backing store.
func (d *Dict) Has(name string) bool {
	_, ok := d.store.Get(name)
	return ok
}

// Keys returns the stored key names sorted alphabetically.
func (d *Dict) Keys() []string {
	return d.store.Keys()
}

// Len returns the number of stored entries.
func (d *Dict) Len() int {
	return d.store.Len()
}
