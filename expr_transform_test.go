package fdict

import (
	"testing"
)

type countingCache struct {
	entries map[string]any
	sets    int
}

func newCountingCache() *countingCache {
	return &countingCache{entries: map[string]any{}}
}

func (c *countingCache) Get(key string) (any, bool) {
	value, ok := c.entries[key]
	return value, ok
}

func (c *countingCache) Set(key string, value any) {
	c.entries[key] = value
	c.sets++
}

func TestExprTransform(t *testing.T) {
	bracket, err := ExprTransform(`"[" + value + "]"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	registry := NewRegistry()
	if err := registry.Register("bracket", bracket); err != nil {
		t.Fatalf("register: %v", err)
	}
	dict := New(map[string]string{"name": "Barton"}, WithRegistry(registry))

	got, err := dict.Get("name:bracket")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "[Barton]" {
		t.Fatalf("unexpected value %q", got)
	}
}

func TestExprTransformSeesModifier(t *testing.T) {
	suffixed, err := ExprTransform("value + arg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	registry := NewRegistry()
	if err := registry.Register("append", suffixed); err != nil {
		t.Fatalf("register: %v", err)
	}
	dict := New(map[string]string{"name": "Barton"}, WithRegistry(registry))

	got, err := dict.Get("name:append!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Barton!" {
		t.Fatalf("expected modifier suffix appended, got %q", got)
	}
}

func TestExprTransformRejectsNonString(t *testing.T) {
	length, err := ExprTransform("len(value)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := length("Barton", ""); err == nil {
		t.Fatalf("expected error for non-string result")
	}
}

func TestExprTransformEmptyProgram(t *testing.T) {
	if _, err := ExprTransform(""); err == nil {
		t.Fatalf("expected error for empty program")
	}
}

func TestExprTransformUsesProgramCache(t *testing.T) {
	cache := newCountingCache()
	if _, err := ExprTransform("value + arg", ExprWithProgramCache(cache)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache store, got %d", cache.sets)
	}
	if _, err := ExprTransform("value + arg", ExprWithProgramCache(cache)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected second construction to reuse the cached program, got %d sets", cache.sets)
	}
}
