package utils

import "testing"

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	a, b := g.Generate(), g.Generate()

	if !IsUUID(a) || !IsUUID(b) {
		t.Fatalf("expected valid UUIDs, got %q and %q", a, b)
	}
	if a == b {
		t.Error("expected distinct ids")
	}
}

func TestIsUUID(t *testing.T) {
	if IsUUID("not-a-uuid") {
		t.Error("expected false for garbage")
	}
	if IsUUID("") {
		t.Error("expected false for empty string")
	}
}
