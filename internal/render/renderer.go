//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a per-cell display buffer into one RGBA image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit colours cells through palette, uploads them and draws the image scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, cells, palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

// MaskPainter draws translucent rectangles in grid coordinates, such as the
// outline of blocks that were evaluated last tick.
type MaskPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewMaskPainter allocates a mask covering a w*h grid.
func NewMaskPainter(w, h int) *MaskPainter {
	return &MaskPainter{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Blit fills rects with c on a cleared mask and draws it scaled over dst.
func (mp *MaskPainter) Blit(dst *ebiten.Image, rects []image.Rectangle, c color.RGBA, scale int) {
	clear(mp.buf)
	for _, r := range rects {
		fillRegionRGBA(mp.buf, mp.w, r.Min.X, r.Min.Y, r.Dx(), r.Dy(), c)
	}
	mp.img.WritePixels(mp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(mp.img, op)
}
