package sand

// Rand supplies the coin flips the rules draw from. *core.RNG satisfies it;
// tests substitute scripted sources.
type Rand interface {
	Bool() bool
}

type fallResult uint8

const (
	onGround fallResult = iota
	falling
)

// tick carries the two generations through one pass of the rules. Neighbours
// are sensed in read; collisions with cells already placed this tick are
// detected in write.
type tick struct {
	read  *Grid
	write *Grid
	rng   Rand
}

func (t *tick) sign() int {
	if t.rng.Bool() {
		return 1
	}
	return -1
}

// perturb returns 0 half of the time, otherwise -1 or +1.
func (t *tick) perturb() int {
	if !t.rng.Bool() {
		return 0
	}
	return t.sign()
}

// randomDir perturbs each axis independently.
func (t *tick) randomDir() (int, int) {
	dx := t.perturb()
	dy := t.perturb()
	return dx, dy
}

// probe picks a random neighbour of (x, y). It may return (x, y) itself.
func (t *tick) probe(x, y int) (int, int, Cell) {
	dx, dy := t.randomDir()
	return x + dx, y + dy, t.read.ReadCell(x+dx, y+dy)
}

// free reports whether (x, y) is empty in both generations.
func (t *tick) free(x, y int) bool {
	return t.read.IsEmpty(x, y) && t.write.IsEmpty(x, y)
}

// stillAt reports whether the cell read at (x, y) has not been moved away or
// replaced this tick: either nothing claimed the coordinate yet, or what was
// written there is the same cell.
func (t *tick) stillAt(x, y int) bool {
	return !t.write.Claimed(x, y) || t.write.ReadCell(x, y) == t.read.ReadCell(x, y)
}

// gone reports whether the cell read at (x, y) left its coordinate this
// tick.
func (t *tick) gone(x, y int) bool {
	return t.write.Claimed(x, y) && t.write.IsEmpty(x, y) && !t.read.IsEmpty(x, y)
}

// vacate claims (x, y) as Air for a cell that left it and wakes the
// neighbourhood.
func (t *tick) vacate(x, y int) {
	t.write.WriteCell(Air, x, y, false)
	t.write.markAround(x, y)
}

// fall moves c from (x, y) one row down, straight first and then towards
// side. It writes nothing when both targets are taken.
func (t *tick) fall(c Cell, x, y, side int) bool {
	ny := y + 1
	for _, nx := range [2]int{x, x + side} {
		if t.free(nx, ny) {
			t.write.WriteCell(c, nx, ny, true)
			t.vacate(x, y)
			return true
		}
	}
	return false
}

// settle is fall followed by re-placement when the cell cannot move. The
// cell stays dirty if the diagonal it did not try is still open.
func (t *tick) settle(c Cell, x, y, side int) fallResult {
	if t.fall(c, x, y, side) {
		return falling
	}
	t.write.WriteCell(c, x, y, t.free(x-side, y+1))
	return onGround
}

// supported reports whether nothing below (x, y) can take a falling cell.
func (t *tick) supported(x, y int) bool {
	return !t.free(x-1, y+1) && !t.free(x, y+1) && !t.free(x+1, y+1)
}

// dissolve removes both the cell at (x, y) and the acid at (ax, ay). It
// reports false when the acid has already moved on this tick.
func (t *tick) dissolve(x, y, ax, ay int) bool {
	if !t.stillAt(ax, ay) {
		return false
	}
	t.write.WriteCell(Air, ax, ay, true)
	t.vacate(x, y)
	return true
}

func signOf(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
