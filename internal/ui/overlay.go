//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"sand-ca/internal/core"
	"sand-ca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type dirtyRegionProvider interface {
	DirtyRegions() []image.Rectangle
}

type brushProvider interface {
	Brush() (int, int)
}

// Overlay draws optional debugging visuals on top of the base simulation.
type Overlay struct {
	sim   core.Sim
	scale int
	dirty fader

	mask  *render.MaskPainter
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	size := sim.Size()
	o := &Overlay{sim: sim, scale: max(scale, 1)}
	o.mask = render.NewMaskPainter(size.W, size.H)
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the dirty-block view on D and advances its fade.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.dirty.Toggle()
	}
	o.dirty.Update(1 / float32(ebiten.TPS()))
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if alpha := o.dirty.Value(); alpha > 0 {
		if provider, ok := o.sim.(dirtyRegionProvider); ok {
			o.mask.Blit(screen, provider.DirtyRegions(), scaleRGBA(dirtyTint, alpha), o.scale)
		}
	}
	if provider, ok := o.sim.(brushProvider); ok {
		x, y := provider.Brush()
		o.drawCursor(screen, x, y)
	}
}

func (o *Overlay) drawCursor(screen *ebiten.Image, x, y int) {
	s := float64(o.scale)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(float64(x)*s, float64(y)*s)
	op.ColorScale.ScaleWithColor(cursorColor)
	screen.DrawImage(o.pixel, op)
}

var (
	// Premultiplied, as WritePixels expects.
	dirtyTint   = color.RGBA{R: 40, G: 40, B: 8, A: 56}
	cursorColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)
