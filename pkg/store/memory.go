package store

import (
	"sort"
	"sync"
)

// Memory is a minimal in-memory Store implementation. It is safe for
// concurrent use and makes no persistence assumptions.
type Memory struct {
	mu      sync.RWMutex
	records map[string]string
}

// NewMemory constructs an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{records: map[string]string{}}
}

// NewMemoryFrom constructs an in-memory store seeded with values.
func NewMemoryFrom(values map[string]string) *Memory {
	records := make(map[string]string, len(values))
	for name, value := range values {
		records[name] = value
	}
	return &Memory{records: records}
}

func (s *Memory) Get(name string) (string, bool) {
	s.mu.RLock()
	value, ok := s.records[name]
	s.mu.RUnlock()
	return value, ok
}

func (s *Memory) Set(name, value string) {
	s.mu.Lock()
	s.records[name] = value
	s.mu.Unlock()
}

func (s *Memory) Delete(name string) {
	s.mu.Lock()
	delete(s.records, name)
	s.mu.Unlock()
}

func (s *Memory) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Keys returns stored names sorted alphabetically.
func (s *Memory) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.records))
	for name := range s.records {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return keys
}
