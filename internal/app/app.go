//go:build ebiten

package app

import (
	"sand-ca/internal/core"
	"sand-ca/internal/render"
	"sand-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// brushSim is the interactive surface of sims that accept painting.
type brushSim interface {
	SetBrush(x, y int)
	SetSpawning(on bool)
	SelectKey(key rune) bool
	Clear()
}

var materialKeys = map[ebiten.Key]rune{
	ebiten.KeyQ: 'q',
	ebiten.KeyW: 'w',
	ebiten.KeyE: 'e',
	ebiten.KeyR: 'r',
	ebiten.KeyT: 't',
	ebiten.KeyY: 'y',
	ebiten.KeyU: 'u',
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	brush   brushSim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale    int
	paused   bool
	tickOnce bool
	seed     int64

	keys []ebiten.Key
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64) *Game {
	if scale <= 0 {
		scale = 1
	}
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(sim.Size().W, sim.Size().H),
		overlay: ui.NewOverlay(sim, scale),
		hud:     ui.NewHUD(sim, hudWidth),
		scale:   scale,
		seed:    seed,
	}
	g.brush, _ = sim.(brushSim)
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.Reset(g.seed)
	}
	g.handleBrush()

	g.overlay.Update()

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	g.hud.Update()
	return nil
}

func (g *Game) handleBrush() {
	if g.brush == nil {
		return
	}
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if r, ok := materialKeys[k]; ok {
			g.brush.SelectKey(r)
		}
		if k == ebiten.KeyDelete {
			g.brush.Clear()
		}
	}

	mx, my := ebiten.CursorPosition()
	x, y := mx/g.scale, my/g.scale
	size := g.sim.Size()
	inside := mx >= 0 && my >= 0 && x < size.W && y < size.H
	if inside {
		g.brush.SetBrush(x, y)
	}
	g.brush.SetSpawning(inside && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.sim.Palette(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}

const hudWidth = 200
