package render

import "image/color"

// fillPaletteRGBA converts material codes into RGBA pixels using a palette.
// Codes past the end of the palette take its last colour. When the palette is
// empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := min(int(c), last)
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// fillRegionRGBA paints the w×h rectangle at (x0, y0) of a stride-wide buffer
// with c. Parts outside the buffer are skipped.
func fillRegionRGBA(buf []byte, stride, x0, y0, w, h int, c color.RGBA) {
	rows := len(buf) / 4 / max(stride, 1)
	for y := max(y0, 0); y < min(y0+h, rows); y++ {
		for x := max(x0, 0); x < min(x0+w, stride); x++ {
			base := (y*stride + x) * 4
			buf[base+0] = c.R
			buf[base+1] = c.G
			buf[base+2] = c.B
			buf[base+3] = c.A
		}
	}
}
