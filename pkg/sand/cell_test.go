package sand

import "testing"

func TestZeroCellIsAir(t *testing.T) {
	var c Cell
	if c != Air || !c.IsAir() || c.Kind() != KindAir {
		t.Fatalf("zero Cell = %v, want air", c)
	}
	if NewSand().IsAir() {
		t.Fatal("sand must not be air")
	}
}

func TestCellPayloadAccessors(t *testing.T) {
	if got := NewWood(7).Fuel(); got != 7 {
		t.Fatalf("wood fuel = %d, want 7", got)
	}
	if got := NewFire(30).Heat(); got != 30 {
		t.Fatalf("fire heat = %d, want 30", got)
	}
	v := NewVine(12, true)
	if v.Growth() != 12 || !v.Grown() {
		t.Fatalf("vine = %v, want growth 12 grown", v)
	}
	if got := NewWater(-1).DX(); got != -1 {
		t.Fatalf("water dx = %d, want -1", got)
	}
	if got := NewAcid(1).T(); got != 1 {
		t.Fatalf("acid t = %d, want 1", got)
	}

	// Payload accessors only answer for their own kind.
	if got := NewFire(30).Fuel(); got != 0 {
		t.Fatalf("fire fuel = %d, want 0", got)
	}
	if NewWood(3).Grown() {
		t.Fatal("wood reported grown")
	}
}

func TestCellEquality(t *testing.T) {
	if NewWater(1) == NewWater(0) {
		t.Fatal("water with different drift compared equal")
	}
	if NewVine(3, false) == NewVine(3, true) {
		t.Fatal("vine phases compared equal")
	}
	if NewWood(5) != NewWood(5) {
		t.Fatal("identical wood compared unequal")
	}
}

func TestKindNames(t *testing.T) {
	for i := 0; i < NumKinds; i++ {
		k := Kind(i)
		parsed, ok := ParseKind(k.String())
		if !ok || parsed != k {
			t.Fatalf("ParseKind(%q) = %v,%v", k.String(), parsed, ok)
		}
	}
	if _, ok := ParseKind("lava"); ok {
		t.Fatal("ParseKind accepted an unknown material")
	}
	if got := NewFire(3).String(); got != "fire{heat:3}" {
		t.Fatalf("String = %q", got)
	}
}
