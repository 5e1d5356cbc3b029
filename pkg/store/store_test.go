package store

import (
	"testing"
)

func TestMemoryBasicOperations(t *testing.T) {
	s := NewMemory()
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d entries", s.Len())
	}

	s.Set("b", "2")
	s.Set("a", "1")
	if value, ok := s.Get("a"); !ok || value != "1" {
		t.Fatalf("Get(a) = (%q, %v)", value, ok)
	}
	if _, ok := s.Get("missing"); ok {
		t.Fatalf("expected missing key to report absent")
	}

	keys := s.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("expected sorted keys, got %v", keys)
	}

	s.Set("a", "override")
	if value, _ := s.Get("a"); value != "override" {
		t.Fatalf("expected override, got %q", value)
	}

	s.Delete("a")
	if _, ok := s.Get("a"); ok {
		t.Fatalf("expected a deleted")
	}
	if s.Len() != 1 {
		t.Fatalf("expected one entry, got %d", s.Len())
	}
}

func TestMemoryFromSeedsCopy(t *testing.T) {
	seed := map[string]string{"k": "v"}
	s := NewMemoryFrom(seed)
	seed["k"] = "mutated"
	if value, _ := s.Get("k"); value != "v" {
		t.Fatalf("store should not alias the seed map, got %q", value)
	}
}

func TestEnvReader(t *testing.T) {
	t.Setenv("FDICT_TEST_NAME", "Barton")

	plain := NewEnv("")
	if value, ok := plain.Get("FDICT_TEST_NAME"); !ok || value != "Barton" {
		t.Fatalf("Get = (%q, %v)", value, ok)
	}

	prefixed := NewEnv("FDICT_TEST_")
	if value, ok := prefixed.Get("NAME"); !ok || value != "Barton" {
		t.Fatalf("prefixed Get = (%q, %v)", value, ok)
	}
	if _, ok := prefixed.Get("ABSENT"); ok {
		t.Fatalf("expected absent variable to report missing")
	}
}
