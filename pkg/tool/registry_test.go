package tool

import (
	"context"
	"errors"
	"testing"
)

func newTestTool(t *testing.T, name string) *Tool {
	t.Helper()
	tl, err := New(name, func(_ context.Context, _ map[string]any) (Result, error) {
		return Success(name), nil
	}, "test tool "+name, nil)
	if err != nil {
		t.Fatalf("new tool: %v", err)
	}
	return tl
}

func TestRegistryLookupRoundTrip(t *testing.T) {
	r := NewRegistry()
	tl := newTestTool(t, "get_weather")
	if err := r.Register(tl); err != nil {
		t.Fatalf("register: %v", err)
	}
	got, err := r.Lookup("get_weather")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got != tl {
		t.Fatalf("lookup must return the registered tool unchanged")
	}
}

func TestRegistryLookupUnknown(t *testing.T) {
	r := NewRegistry()
	_, err := r.Lookup("missing")
	if !errors.Is(err, ErrToolNotFound) {
		t.Fatalf("expected ErrToolNotFound, got %v", err)
	}
}

func TestRegistryDuplicateAlwaysFails(t *testing.T) {
	r := NewRegistry()
	tl := newTestTool(t, "get_weather")
	if err := r.Register(tl); err != nil {
		t.Fatalf("first register: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := r.Register(tl); !errors.Is(err, ErrDuplicateTool) {
			t.Fatalf("register attempt %d: expected ErrDuplicateTool, got %v", i, err)
		}
	}
	if r.Len() != 1 {
		t.Fatalf("expected one tool, got %d", r.Len())
	}
}

func TestRegistryOrderIsStable(t *testing.T) {
	r := NewRegistry()
	names := []string{"charlie", "alpha", "bravo"}
	for _, name := range names {
		if err := r.Register(newTestTool(t, name)); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}
	got := r.Names()
	if len(got) != len(names) {
		t.Fatalf("expected %d names, got %d", len(names), len(got))
	}
	for i, name := range names {
		if got[i] != name {
			t.Fatalf("expected registration order %v, got %v", names, got)
		}
	}
	descriptors := r.Descriptors()
	for i, name := range names {
		if descriptors[i].Name != name {
			t.Fatalf("descriptors out of order: %v", descriptors)
		}
	}
}

func TestRegistrySealedRejectsRegistration(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(newTestTool(t, "early")); err != nil {
		t.Fatalf("register: %v", err)
	}
	r.Seal()
	if err := r.Register(newTestTool(t, "late")); !errors.Is(err, ErrRegistrySealed) {
		t.Fatalf("expected ErrRegistrySealed, got %v", err)
	}
	if _, err := r.Lookup("early"); err != nil {
		t.Fatalf("sealing must not affect lookups: %v", err)
	}
}

func TestRegistryDescriptions(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(newTestTool(t, "get_weather")); err != nil {
		t.Fatalf("register: %v", err)
	}
	descriptions := r.Descriptions()
	if descriptions["get_weather"] != "test tool get_weather" {
		t.Fatalf("unexpected descriptions: %v", descriptions)
	}
}
