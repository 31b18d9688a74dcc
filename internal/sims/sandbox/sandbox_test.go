package sandbox

import (
	"image"
	"slices"
	"testing"

	"sand-ca/internal/core"
	"sand-ca/pkg/sand"
)

func demoConfig(size int) Config {
	cfg := DefaultConfig()
	cfg.Size = size
	cfg.Seed = 42
	cfg.Scene = SceneDemo
	return cfg
}

func checkDisplay(t *testing.T, w *World) {
	t.Helper()
	g := w.Engine().Grid()
	size := w.Size().W
	cells := w.Cells()
	if len(cells) != size*size {
		t.Fatalf("display has %d cells, want %d", len(cells), size*size)
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			want := uint8(g.ReadCell(x, y).Kind())
			if got := cells[y*size+x]; got != want {
				t.Fatalf("display(%d,%d) = %d, grid holds %d", x, y, got, want)
			}
		}
	}
}

func TestResetDeterministic(t *testing.T) {
	w := NewWithConfig(demoConfig(40))
	for i := 0; i < 60; i++ {
		w.Step()
	}
	first := append([]uint8(nil), w.Cells()...)

	w.Reset(0)
	if w.Engine().Ticks() != 0 {
		t.Fatalf("ticks = %d after Reset", w.Engine().Ticks())
	}
	for i := 0; i < 60; i++ {
		w.Step()
	}
	if !slices.Equal(first, w.Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}

	w.Reset(777)
	for i := 0; i < 60; i++ {
		w.Step()
	}
	other := append([]uint8(nil), w.Cells()...)
	w.Reset(777)
	for i := 0; i < 60; i++ {
		w.Step()
	}
	if !slices.Equal(other, w.Cells()) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
}

func TestDisplayTracksGrid(t *testing.T) {
	// 20 is not a multiple of the region size, so edge blocks are partial.
	w := NewWithConfig(demoConfig(20))
	checkDisplay(t, w)
	for i := 0; i < 120; i++ {
		w.Step()
		checkDisplay(t, w)
	}
	if w.Counts().Total() != 400 {
		t.Fatalf("census covers %d cells, want 400", w.Counts().Total())
	}
}

func TestBrushSpawnsSelectedMaterial(t *testing.T) {
	w := New(32)
	w.Select(sand.NewWater(0))
	w.SetBrush(16, 16)
	w.Step()
	if n := w.Counts().Of(sand.KindWater); n != 0 {
		t.Fatalf("idle brush spawned %d cells", n)
	}

	w.SetSpawning(true)
	if !w.Spawning() {
		t.Fatal("SetSpawning(true) did not enable the brush")
	}
	w.Step()
	if n := w.Counts().Of(sand.KindWater); n != 21 {
		t.Fatalf("brush spawned %d water cells, want 21", n)
	}
	checkDisplay(t, w)

	w.SetSpawning(false)
	w.Clear()
	if n := w.Counts().Of(sand.KindAir); n != 32*32 {
		t.Fatalf("air = %d after Clear", n)
	}
	if w.Selected() != sand.NewWater(0) {
		t.Fatalf("Clear changed the brush material to %v", w.Selected())
	}
	checkDisplay(t, w)
}

func TestSelectKey(t *testing.T) {
	w := New(16)
	if !w.SelectKey('T') {
		t.Fatal("T is bound")
	}
	if w.Selected().Kind() != sand.KindAcid {
		t.Fatalf("T selected %v, want acid", w.Selected())
	}
	if !w.SelectKey('q') || w.Selected() != sand.NewWood(DefaultConfig().WoodFuel) {
		t.Fatalf("q selected %v", w.Selected())
	}
	if w.SelectKey('z') {
		t.Fatal("z is not bound")
	}
	if w.Selected().Kind() != sand.KindWood {
		t.Fatal("unbound key changed the selection")
	}

	keys := map[string]bool{}
	for _, b := range w.Bindings() {
		if keys[b.Key] {
			t.Fatalf("key %s bound twice", b.Key)
		}
		keys[b.Key] = true
	}
	for _, k := range []string{"Q", "W", "E", "R", "T", "Y", "U", "DEL", "ESC"} {
		if !keys[k] {
			t.Fatalf("missing binding for %s", k)
		}
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"size":      "64",
		"seed":      "9",
		"brush":     "2",
		"wood_fuel": "5",
		"fire_heat": "12",
		"scene":     "demo",
	})
	want := Config{Size: 64, Seed: 9, Brush: 2, WoodFuel: 5, FireHeat: 12, Scene: SceneDemo}
	if cfg != want {
		t.Fatalf("FromMap = %+v, want %+v", cfg, want)
	}

	bad := FromMap(map[string]string{
		"size":      "-3",
		"seed":      "x",
		"brush":     "-1",
		"wood_fuel": "0",
		"fire_heat": "hot",
		"scene":     "volcano",
	})
	if bad != DefaultConfig() {
		t.Fatalf("invalid values should keep defaults, got %+v", bad)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map should yield defaults")
	}
}

func TestParameters(t *testing.T) {
	w := New(16)
	w.Engine().Place(sand.NewSand(), 3, 3)
	w.Engine().Place(sand.NewSand(), 4, 3)
	w.SelectKey('r')
	w.SetBrush(5, 6)

	snap := w.Parameters()
	cases := map[string]string{
		"size":     "16",
		"material": "water",
		"brush_x":  "5",
		"brush_y":  "6",
		"sand":     "2",
		"spawning": "false",
		"blocks":   "4",
	}
	for key, want := range cases {
		p, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("missing parameter %q", key)
		}
		if p.Value != want {
			t.Fatalf("%s = %q, want %q", key, p.Value, want)
		}
	}
}

func TestRegistered(t *testing.T) {
	f, ok := core.Sims()["sandbox"]
	if !ok {
		t.Fatal("sandbox is not registered")
	}
	sim := f(map[string]string{"size": "24"})
	if sim.Name() != "sandbox" {
		t.Fatalf("Name = %q", sim.Name())
	}
	if sim.Size() != (core.Size{W: 24, H: 24}) {
		t.Fatalf("Size = %+v", sim.Size())
	}
	if len(sim.Palette()) != sand.NumKinds {
		t.Fatalf("palette has %d entries, want %d", len(sim.Palette()), sand.NumKinds)
	}
	if _, ok := sim.(core.ParameterProvider); !ok {
		t.Fatal("sandbox should report parameters")
	}
}

func TestDirtyRegions(t *testing.T) {
	w := New(20)
	w.Step()
	if got := w.DirtyRegions(); len(got) != 0 {
		t.Fatalf("empty world reports dirty regions %v", got)
	}

	w.Engine().Place(sand.NewStone(), 18, 18)
	got := w.DirtyRegions()
	if len(got) != 1 {
		t.Fatalf("dirty regions = %v, want one", got)
	}
	if want := image.Rect(16, 16, 20, 20); got[0] != want {
		t.Fatalf("region = %v, want %v", got[0], want)
	}
}
