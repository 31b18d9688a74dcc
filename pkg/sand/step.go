package sand

import (
	"fmt"

	"sand-ca/pkg/core"
)

// Advance builds the next generation into write from read.
//
// Clean blocks of read are copied into write; dirty ones are emptied and
// every cell they hold is re-evaluated. Spawners run after the copy and
// before the rules. read is not modified. It returns the number of blocks
// evaluated.
func Advance(read, write *Grid, spawners []Spawner, rng Rand) int {
	if read.size != write.size {
		panic(fmt.Sprintf("sand: advancing grids of different size %d and %d", read.size, write.size))
	}

	for _, bc := range read.order {
		rb := read.blocks[bc]
		wb := write.blocks[bc]
		if rb.dirty {
			wb.reset()
		} else {
			wb.copyFrom(rb)
		}
		wb.dirty = false
	}

	for _, s := range spawners {
		s.Spawn(write)
	}

	t := tick{read: read, write: write, rng: rng}
	evaluated := 0
	for _, bc := range read.order {
		rb := read.blocks[bc]
		if !rb.dirty {
			continue
		}
		evaluated++
		ox, oy := bc.X*RegionSize, bc.Y*RegionSize
		for i := range rb.cells {
			c := rb.cells[i]
			if c == Air {
				continue
			}
			t.update(c, ox+i%RegionSize, oy+i/RegionSize)
		}
	}
	return evaluated
}

// Engine owns the two generations of a world and advances them one tick at
// a time.
type Engine struct {
	read  *Grid
	write *Grid
	rng   Rand

	spawners  []Spawner
	ticks     uint64
	evaluated int
}

// NewEngine creates an empty world of size×size cells. A nil rng falls back
// to a fixed-seed source.
func NewEngine(size int, rng Rand) *Engine {
	if rng == nil {
		rng = core.NewRNG(1)
	}
	return &Engine{read: NewGrid(size), write: NewGrid(size), rng: rng}
}

// Grid returns the current generation. It must not be modified while Step
// runs.
func (e *Engine) Grid() *Grid { return e.read }

// Size is the world extent in cells.
func (e *Engine) Size() int { return e.read.size }

// AddSpawner registers s to run at the start of every tick.
func (e *Engine) AddSpawner(s Spawner) {
	if s != nil {
		e.spawners = append(e.spawners, s)
	}
}

// ClearSpawners removes every registered spawner.
func (e *Engine) ClearSpawners() { e.spawners = nil }

// Place writes c into the current generation and marks it for evaluation.
// It is meant for scene setup between ticks.
func (e *Engine) Place(c Cell, x, y int) {
	e.read.WriteCell(c, x, y, true)
}

// Step advances the world by one tick and swaps the generations.
func (e *Engine) Step() {
	e.evaluated = Advance(e.read, e.write, e.spawners, e.rng)
	e.read, e.write = e.write, e.read
	e.ticks++
}

// Ticks is the number of completed ticks.
func (e *Engine) Ticks() uint64 { return e.ticks }

// Evaluated is the number of blocks the last tick evaluated.
func (e *Engine) Evaluated() int { return e.evaluated }

// Clear wipes both generations and resets the tick counter.
func (e *Engine) Clear() {
	e.read.Clear()
	e.write.Clear()
	e.ticks = 0
	e.evaluated = 0
}
