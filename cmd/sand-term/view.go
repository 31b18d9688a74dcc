package main

import (
	"fmt"

	"sand-ca/internal/core"

	"github.com/gdamore/tcell/v2"
)

// Each terminal row shows two grid rows: the upper half block takes the top
// cell as foreground and the bottom cell as background.
const halfBlock = '▀'

// view maps a square world onto the terminal, leaving the last row for the
// status line.
type view struct {
	sim     core.Sim
	palette []tcell.Color
}

func newView(sim core.Sim) *view {
	pal := sim.Palette()
	colors := make([]tcell.Color, len(pal))
	for i, c := range pal {
		colors[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return &view{sim: sim, palette: colors}
}

// fitSize is the largest world that fits a cols×rows terminal.
func fitSize(cols, rows int) int {
	return max(min(cols, 2*(rows-1)), 8)
}

// gridPos converts a terminal position into a grid cell.
func gridPos(col, row int) (int, int) { return col, row * 2 }

func (v *view) color(code uint8) tcell.Color {
	if int(code) >= len(v.palette) {
		return tcell.ColorBlack
	}
	return v.palette[code]
}

func (v *view) draw(s tcell.Screen, status string) {
	cols, rows := s.Size()
	size := v.sim.Size()
	cells := v.sim.Cells()
	for row := 0; row < rows-1 && 2*row < size.H; row++ {
		for col := 0; col < cols && col < size.W; col++ {
			top := cells[2*row*size.W+col]
			bottom := uint8(0)
			if 2*row+1 < size.H {
				bottom = cells[(2*row+1)*size.W+col]
			}
			st := tcell.StyleDefault.Foreground(v.color(top)).Background(v.color(bottom))
			s.SetContent(col, row, halfBlock, nil, st)
		}
	}

	line := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	text := []rune(status)
	for col := 0; col < cols; col++ {
		r := ' '
		if col < len(text) {
			r = text[col]
		}
		s.SetContent(col, rows-1, r, nil, line)
	}
}

// statusLine summarises the brush and tick counters from the parameter
// snapshot, followed by notice when there is one.
func statusLine(sim core.Sim, paused bool, notice string) string {
	provider, ok := sim.(core.ParameterProvider)
	if !ok {
		return sim.Name()
	}
	snap := provider.Parameters()
	get := func(key string) string {
		if p, ok := snap.Lookup(key); ok {
			return p.Value
		}
		return "-"
	}
	state := "running"
	if paused {
		state = "paused"
	}
	line := fmt.Sprintf(" %s | brush %s | tick %s | blocks %s/%s | %s",
		sim.Name(), get("material"), get("tick"), get("evaluated"), get("blocks"), state)
	if notice != "" {
		line += " | " + notice
	}
	return line + " | QWERTYU material, DEL clear, ESC quit"
}
