package id

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestPrefixedGenerator(t *testing.T) {
	gen := NewPrefixedGenerator(" match ")

	first, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	second, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}

	if !strings.HasPrefix(first, "match-") {
		t.Fatalf("missing prefix: %s", first)
	}
	if _, err := uuid.Parse(strings.TrimPrefix(first, "match-")); err != nil {
		t.Fatalf("suffix is not a uuid: %v", err)
	}
	if first == second {
		t.Fatalf("ids should be unique, got %s twice", first)
	}

	bare, err := NewPrefixedGenerator("").NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if _, err := uuid.Parse(bare); err != nil {
		t.Fatalf("unprefixed id is not a uuid: %v", err)
	}
}
