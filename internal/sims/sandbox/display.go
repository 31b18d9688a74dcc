package sandbox

import (
	"image"
	"image/color"

	"sand-ca/pkg/sand"
)

var sandboxPalette = buildPalette()

// Palette maps the display value of each cell (its material) to a colour.
func (w *World) Palette() []color.RGBA {
	return sandboxPalette
}

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, sand.NumKinds)
	for i := range palette {
		palette[i] = kindColor(sand.Kind(i))
	}
	return palette
}

func kindColor(k sand.Kind) color.RGBA {
	switch k {
	case sand.KindSand:
		return color.RGBA{R: 180, G: 155, B: 3, A: 255}
	case sand.KindWood:
		return color.RGBA{R: 116, G: 43, B: 0, A: 255}
	case sand.KindFire:
		return color.RGBA{R: 255, G: 0, B: 0, A: 255}
	case sand.KindSeed, sand.KindVine:
		return color.RGBA{R: 0, G: 116, B: 11, A: 255}
	case sand.KindWater:
		return color.RGBA{R: 16, G: 16, B: 116, A: 255}
	case sand.KindAcid:
		return color.RGBA{R: 16, G: 116, B: 16, A: 255}
	case sand.KindStone:
		return color.RGBA{R: 116, G: 116, B: 116, A: 255}
	default:
		return color.RGBA{A: 255}
	}
}

// refreshBlock copies the materials of one block into the display buffer.
func (w *World) refreshBlock(g *sand.Grid, bc sand.BlockCoord) {
	b := g.Block(bc)
	if b == nil {
		return
	}
	size := w.cfg.Size
	ox, oy := bc.X*sand.RegionSize, bc.Y*sand.RegionSize
	b.Each(func(c sand.Cell, lx, ly int) {
		x, y := ox+lx, oy+ly
		if x >= size || y >= size {
			return
		}
		w.display[y*size+x] = uint8(c.Kind())
	})
}

func (w *World) rebuildDisplay() {
	g := w.engine.Grid()
	for bc := range g.Blocks() {
		w.refreshBlock(g, bc)
	}
}

// DirtyRegions returns the cell rectangles of the blocks queued for the next
// tick, clipped to the world.
func (w *World) DirtyRegions() []image.Rectangle {
	bounds := image.Rect(0, 0, w.cfg.Size, w.cfg.Size)
	dirty := w.engine.Grid().DirtyBlocks()
	out := make([]image.Rectangle, 0, len(dirty))
	for _, bc := range dirty {
		x, y := bc.X*sand.RegionSize, bc.Y*sand.RegionSize
		out = append(out, image.Rect(x, y, x+sand.RegionSize, y+sand.RegionSize).Intersect(bounds))
	}
	return out
}
