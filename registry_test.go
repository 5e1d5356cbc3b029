package fdict

import (
	"slices"
	"testing"
)

func TestRegistrySeedsBuiltins(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{"lower", "lc", "upper", "uc", "capitalize", "urlquote", "xmlquote", "htmlquote", "unspace"} {
		if _, ok := registry.Lookup(name); !ok {
			t.Fatalf("expected builtin %q to be registered", name)
		}
	}
}

func TestRegistryRejectsBadRegistrations(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register("", func(value, arg string) (string, error) { return value, nil }); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if err := registry.Register("noop", nil); err == nil {
		t.Fatalf("expected error for nil transform")
	}
}

func TestRegistryLastRegistrationWins(t *testing.T) {
	registry := NewRegistry()
	first := func(value, arg string) (string, error) { return "first", nil }
	second := func(value, arg string) (string, error) { return "second", nil }
	if err := registry.Register("pick", first); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register("pick", second); err != nil {
		t.Fatalf("re-register: %v", err)
	}
	fn, ok := registry.Lookup("pick")
	if !ok {
		t.Fatalf("expected pick to be registered")
	}
	out, err := fn("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "second" {
		t.Fatalf("expected last registration to win, got %q", out)
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	registry := NewRegistry()
	names := registry.Names()
	if !slices.IsSorted(names) {
		t.Fatalf("expected sorted names, got %v", names)
	}
	if !slices.Contains(names, "urlquote") {
		t.Fatalf("expected urlquote in %v", names)
	}
}

func TestRegistryMatch(t *testing.T) {
	registry := NewRegistry()
	cases := []struct {
		token  string
		name   string
		suffix string
		ok     bool
	}{
		{"upper", "upper", "", true},
		{"urlquote", "urlquote", "", true},
		{"urlquote+", "urlquote", "+", true},
		{"lowerX", "lower", "X", true},
		{"reverse", "", "", false},
		{"", "", "", false},
	}
	for _, tc := range cases {
		name, suffix, ok := registry.Match(tc.token)
		if ok != tc.ok || name != tc.name || suffix != tc.suffix {
			t.Fatalf("Match(%q) = (%q, %q, %v), want (%q, %q, %v)", tc.token, name, suffix, ok, tc.name, tc.suffix, tc.ok)
		}
	}
}

func TestRegistryCloneIsolation(t *testing.T) {
	registry := NewRegistry()
	clone := registry.Clone()
	if err := registry.Register("later", func(value, arg string) (string, error) { return value, nil }); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, ok := clone.Lookup("later"); ok {
		t.Fatalf("clone should not observe registrations on the original")
	}
}
