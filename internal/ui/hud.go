//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"sand-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the key bindings and live parameters to the right of the
// simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	bindings   []core.KeyBinding
	title      string

	face text.Face
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, face: text.NewGoXFace(basicfont.Face7x13)}
	h.title = buildTitle(sim)
	if provider, ok := sim.(core.BindingProvider); ok {
		h.bindings = provider.Bindings()
	}
	return h
}

// Width is the panel width in screen pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached parameter snapshot from the simulation.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
}

// Draw paints the HUD panel at offsetX, to the right of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	y := panelPadding
	h.drawText(h.title, panelPadding, y, titleColor)
	y += lineHeight + sectionGap

	for _, b := range h.bindings {
		h.drawText(b.Key, panelPadding, y, keyColor)
		h.drawText(b.Action, panelPadding+keyColumn, y, labelColor)
		y += lineHeight
	}
	for _, group := range h.snapshot.Groups {
		y += sectionGap
		h.drawText(group.Name, panelPadding, y, titleColor)
		y += lineHeight
		for _, p := range group.Params {
			h.drawText(p.Label, panelPadding, y, labelColor)
			h.drawRight(p.Value, h.width-panelPadding, y, valueColor)
			y += lineHeight
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawText(s string, x, y int, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(h.panel, s, h.face, op)
}

func (h *HUD) drawRight(s string, right, y int, c color.Color) {
	w, _ := text.Measure(s, h.face, 0)
	h.drawText(s, right-int(w), y, c)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return fmt.Sprintf("%s%s", strings.ToUpper(name[:1]), name[1:])
}

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	keyColor   = color.RGBA{R: 230, G: 200, B: 120, A: 255}
	labelColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	valueColor = color.RGBA{R: 160, G: 200, B: 170, A: 255}
)

const (
	panelPadding = 12
	lineHeight   = 16
	sectionGap   = 8
	keyColumn    = 48
)
