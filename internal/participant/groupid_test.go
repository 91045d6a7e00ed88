package participant

import (
	"math/rand"
	"strings"
	"testing"
)

func TestGroupIDFormat(t *testing.T) {
	gen := NewGroupIDGenerator(rand.NewSource(1))

	id := gen.Next()
	if !strings.HasPrefix(id, "GRP-") {
		t.Fatalf("expected GRP- prefix, got %q", id)
	}
	if len(id) != len("GRP-")+8 {
		t.Fatalf("expected length %d, got %d (%q)", len("GRP-")+8, len(id), id)
	}
	for _, r := range id[len("GRP-"):] {
		if !strings.ContainsRune(groupIDCharset, r) {
			t.Fatalf("unexpected character %q in %q", r, id)
		}
	}
}

func TestGroupIDDeterministicSource(t *testing.T) {
	a := NewGroupIDGenerator(rand.NewSource(42)).Next()
	b := NewGroupIDGenerator(rand.NewSource(42)).Next()
	if a != b {
		t.Fatalf("same seed should give same id: %q vs %q", a, b)
	}
}

func TestGroupIDDistinctAcrossDraws(t *testing.T) {
	gen := NewGroupIDGenerator(rand.NewSource(7))

	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		id := gen.Next()
		if seen[id] {
			t.Fatalf("collision after %d draws: %q", i, id)
		}
		seen[id] = true
	}
}
