package fdict

import "testing"

func TestCELTransform(t *testing.T) {
	angle, err := CELTransform(`"<" + value + ">"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	registry := NewRegistry()
	if err := registry.Register("angle", angle); err != nil {
		t.Fatalf("register: %v", err)
	}
	dict := New(map[string]string{"name": "Barton"}, WithRegistry(registry))

	got, err := dict.Get("name:angle")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "<Barton>" {
		t.Fatalf("unexpected value %q", got)
	}
}

func TestCELTransformSeesModifier(t *testing.T) {
	appendArg, err := CELTransform("value + arg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := appendArg("Barton", "?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Barton?" {
		t.Fatalf("unexpected value %q", got)
	}
}

func TestCELTransformRejectsNonString(t *testing.T) {
	length, err := CELTransform("size(value)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := length("Barton", ""); err == nil {
		t.Fatalf("expected error for non-string result")
	}
}

func TestCELTransformCompileError(t *testing.T) {
	if _, err := CELTransform("value +"); err == nil {
		t.Fatalf("expected compile error")
	}
	if _, err := CELTransform(""); err == nil {
		t.Fatalf("expected error for empty program")
	}
}

func TestCELTransformUsesProgramCache(t *testing.T) {
	cache := newCountingCache()
	if _, err := CELTransform("value + arg", CELWithProgramCache(cache)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache store, got %d", cache.sets)
	}
	if _, err := CELTransform("value + arg", CELWithProgramCache(cache)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected second construction to reuse the cached program, got %d sets", cache.sets)
	}
}
