package sandbox

import (
	"sand-ca/internal/core"
	rng "sand-ca/pkg/core"
	"sand-ca/pkg/sand"
)

// World adapts the sand engine to core.Sim and adds the mouse brush.
type World struct {
	cfg Config

	rng    *rng.RNG
	engine *sand.Engine
	brush  *sand.RadialSpawner
	scene  []*sand.BurstSpawner

	display []uint8
}

// New returns a sandbox of the given size using defaults.
func New(size int) *World {
	cfg := DefaultConfig()
	cfg.Size = size
	return NewWithConfig(cfg)
}

// NewWithConfig returns a sandbox configured from the provided options. The
// world is ready to step; Reset reloads the scene.
func NewWithConfig(cfg Config) *World {
	if cfg.Size <= 0 {
		cfg.Size = DefaultConfig().Size
	}
	r := rng.NewRNG(cfg.Seed)
	w := &World{
		cfg:     cfg,
		rng:     r,
		engine:  sand.NewEngine(cfg.Size, r),
		brush:   sand.NewRadialSpawner(cfg.Brush),
		display: make([]uint8, cfg.Size*cfg.Size),
	}
	w.Reset(0)
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sandbox" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Size, H: w.cfg.Size} }

// Cells exposes the display buffer: one material code per cell.
func (w *World) Cells() []uint8 { return w.display }

// Engine exposes the underlying simulation.
func (w *World) Engine() *sand.Engine { return w.engine }

// Counts tallies the current grid by material.
func (w *World) Counts() sand.Counts { return w.engine.Grid().Counts() }

// Reset wipes the board and reloads the configured scene. A zero seed reuses
// the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Reseed(effective)
	w.engine.Clear()
	w.engine.ClearSpawners()
	w.brush.Disable()
	w.engine.AddSpawner(w.brush)
	w.scene = nil
	if w.cfg.Scene == SceneDemo {
		w.loadDemo()
	}
	w.rebuildDisplay()
}

// Step advances the world one tick and refreshes the display for every block
// that was evaluated or has just been dirtied.
func (w *World) Step() {
	before := w.engine.Grid().DirtyBlocks()
	w.engine.Step()
	g := w.engine.Grid()
	for _, bc := range before {
		w.refreshBlock(g, bc)
	}
	for _, bc := range g.DirtyBlocks() {
		w.refreshBlock(g, bc)
	}
}

// Clear empties the board but keeps spawners and the brush selection.
func (w *World) Clear() {
	w.engine.Clear()
	w.rebuildDisplay()
}

// SetBrush moves the brush centre to the given cell.
func (w *World) SetBrush(x, y int) { w.brush.SetPos(x, y) }

// Brush reports the brush centre.
func (w *World) Brush() (int, int) { return w.brush.Pos() }

// SetSpawning turns brush emission on or off.
func (w *World) SetSpawning(on bool) {
	if on {
		w.brush.Enable()
		return
	}
	w.brush.Disable()
}

// Spawning reports whether the brush emits.
func (w *World) Spawning() bool { return w.brush.Enabled() }

// Select changes the brush material.
func (w *World) Select(c sand.Cell) { w.brush.SetCell(c) }

// Selected returns the brush material.
func (w *World) Selected() sand.Cell { return w.brush.Cell() }

func (w *World) loadDemo() {
	s := w.cfg.Size
	for x := s / 8; x < s/2; x++ {
		w.engine.Place(sand.NewStone(), x, s*3/4)
	}
	for x := s / 2; x < s*7/8; x++ {
		w.engine.Place(sand.NewWood(w.cfg.WoodFuel), x, s/2)
	}
	w.scene = []*sand.BurstSpawner{
		sand.NewBurstSpawner(sand.NewSand(), s/4, 1, max(s/8, 1), 6, 40),
		sand.NewBurstSpawner(sand.NewWater(0), s*5/8, 1, max(s/8, 1), 8, 30),
		sand.NewBurstSpawner(sand.NewSeed(), s/6, 1, 4, 20, 5),
		sand.NewBurstSpawner(sand.NewFire(w.cfg.FireHeat), s*3/4, s/2-1, 3, 50, 3),
	}
	for _, b := range w.scene {
		w.engine.AddSpawner(b)
	}
}

func init() {
	core.Register("sandbox", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
