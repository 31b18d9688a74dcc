package sand

import "testing"

// constRand always returns the same coin. false means "no perturbation, go
// left"; true means "perturb, go right".
type constRand bool

func (r constRand) Bool() bool { return bool(r) }

// seqRand replays vals in a loop.
type seqRand struct {
	vals []bool
	i    int
}

func (s *seqRand) Bool() bool {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

type point struct{ x, y int }

// find lists the coordinates holding kind k in row-major order.
func find(g *Grid, k Kind) []point {
	var out []point
	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			if g.ReadCell(x, y).Kind() == k {
				out = append(out, point{x, y})
			}
		}
	}
	return out
}

func snapshot(g *Grid) []Cell {
	out := make([]Cell, 0, g.Size()*g.Size())
	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			out = append(out, g.ReadCell(x, y))
		}
	}
	return out
}

func stoneRow(e *Engine, y int) {
	for x := 0; x < e.Size(); x++ {
		e.Place(NewStone(), x, y)
	}
}

func steps(e *Engine, n int) {
	for i := 0; i < n; i++ {
		e.Step()
	}
}

func expectCell(t *testing.T, g *Grid, x, y int, want Cell) {
	t.Helper()
	if got := g.ReadCell(x, y); got != want {
		t.Fatalf("cell (%d,%d) = %v, want %v", x, y, got, want)
	}
}
