package core

import (
	"slices"
	"testing"
)

func TestRegisterIgnoresInvalidEntries(t *testing.T) {
	before := Names()
	Register("", func(map[string]string) Sim { return nil })
	Register("nil-factory", nil)
	if !slices.Equal(before, Names()) {
		t.Fatalf("registry changed: %v -> %v", before, Names())
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "World", Params: []Parameter{{Key: "size", Value: "256"}}},
		{Name: "Brush", Params: []Parameter{{Key: "material", Value: "sand"}}},
	}}
	p, ok := snap.Lookup("material")
	if !ok || p.Value != "sand" {
		t.Fatalf("Lookup(material) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("Lookup found a missing key")
	}
}
