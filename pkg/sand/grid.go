package sand

import (
	"fmt"
	"iter"
)

// Grid is one generation of the world: a square of size×size cells split
// into blocks. Coordinates outside the square read as Air and ignore writes.
//
// During a tick one Grid is read-only (the previous generation) and the other
// is being written; Engine swaps the two afterwards.
type Grid struct {
	size   int
	blocks map[BlockCoord]*Block
	order  []BlockCoord
}

// NewGrid allocates an Air-filled grid with every block dirty.
func NewGrid(size int) *Grid {
	if size <= 0 {
		size = 1
	}
	n := (size + RegionSize - 1) / RegionSize
	g := &Grid{
		size:   size,
		blocks: make(map[BlockCoord]*Block, n*n),
		order:  make([]BlockCoord, 0, n*n),
	}
	for by := 0; by < n; by++ {
		for bx := 0; bx < n; bx++ {
			bc := BlockCoord{X: bx, Y: by}
			g.blocks[bc] = newBlock()
			g.order = append(g.order, bc)
		}
	}
	return g
}

// Size is the grid extent in cells along each axis.
func (g *Grid) Size() int { return g.size }

// InBounds reports whether (x, y) is inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.size && y < g.size
}

// ReadCell returns the cell at (x, y), or Air outside the grid.
func (g *Grid) ReadCell(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Air
	}
	b := g.blocks[blockOf(x, y)]
	if b == nil {
		return Air
	}
	return b.cells[localIndex(x, y)]
}

// IsEmpty reports whether (x, y) holds Air. Coordinates outside the grid are
// never empty, so nothing can leave through the edge.
func (g *Grid) IsEmpty(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.ReadCell(x, y) == Air
}

// WriteCell stores c at (x, y) and claims the coordinate for the current
// tick. With markDirty set, the owning block and any block sharing the 3×3
// neighbourhood of (x, y) are marked dirty. Writes outside the grid are
// dropped.
func (g *Grid) WriteCell(c Cell, x, y int, markDirty bool) {
	if !g.InBounds(x, y) {
		return
	}
	b := g.mustBlock(x, y)
	i := localIndex(x, y)
	b.cells[i] = c
	b.claimed[i] = true
	if markDirty {
		g.markAround(x, y)
	}
}

// Claimed reports whether (x, y) was written since the grid was last
// prepared as a write target.
func (g *Grid) Claimed(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	b := g.blocks[blockOf(x, y)]
	return b != nil && b.claimed[localIndex(x, y)]
}

// MarkBlockDirty marks the block holding (x, y) dirty without writing a
// cell. Coordinates outside the grid are ignored.
func (g *Grid) MarkBlockDirty(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	if b := g.blocks[blockOf(x, y)]; b != nil {
		b.dirty = true
	}
}

// markAround dirties every block that (x±1, y±1) falls into. Interior cells
// touch only their own block.
func (g *Grid) markAround(x, y int) {
	bx, by := x/RegionSize, y/RegionSize
	lx, ly := x%RegionSize, y%RegionSize
	x0, x1, y0, y1 := bx, bx, by, by
	if lx == 0 {
		x0--
	}
	if lx == RegionSize-1 {
		x1++
	}
	if ly == 0 {
		y0--
	}
	if ly == RegionSize-1 {
		y1++
	}
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			if b := g.blocks[BlockCoord{X: cx, Y: cy}]; b != nil {
				b.dirty = true
			}
		}
	}
}

// ResetBlock replaces the block at bc with an empty, dirty one.
func (g *Grid) ResetBlock(bc BlockCoord) {
	if b := g.blocks[bc]; b != nil {
		b.reset()
	}
}

// Clear empties every block.
func (g *Grid) Clear() {
	for _, bc := range g.order {
		g.ResetBlock(bc)
	}
}

// Block returns the block at bc, or nil if bc lies outside the grid.
func (g *Grid) Block(bc BlockCoord) *Block { return g.blocks[bc] }

// Blocks iterates over all blocks in row-major block order.
func (g *Grid) Blocks() iter.Seq2[BlockCoord, *Block] {
	return func(yield func(BlockCoord, *Block) bool) {
		for _, bc := range g.order {
			if !yield(bc, g.blocks[bc]) {
				return
			}
		}
	}
}

// DirtyBlocks lists the coordinates of dirty blocks in scan order.
func (g *Grid) DirtyBlocks() []BlockCoord {
	var out []BlockCoord
	for _, bc := range g.order {
		if g.blocks[bc].dirty {
			out = append(out, bc)
		}
	}
	return out
}

// Counts is a per-kind census of a grid.
type Counts [NumKinds]int

// Of returns the number of cells of kind k.
func (c Counts) Of(k Kind) int { return c[k] }

// Total is the number of cells counted.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Counts tallies every in-bounds cell by kind. The total always equals
// Size()*Size().
func (g *Grid) Counts() Counts {
	var out Counts
	for _, bc := range g.order {
		b := g.blocks[bc]
		ox, oy := bc.X*RegionSize, bc.Y*RegionSize
		b.Each(func(c Cell, lx, ly int) {
			if g.InBounds(ox+lx, oy+ly) {
				out[c.kind]++
			}
		})
	}
	return out
}

func (g *Grid) mustBlock(x, y int) *Block {
	bc := blockOf(x, y)
	b := g.blocks[bc]
	if b == nil {
		panic(fmt.Sprintf("sand: no block allocated at %v for cell (%d,%d)", bc, x, y))
	}
	return b
}

func blockOf(x, y int) BlockCoord {
	return BlockCoord{X: x / RegionSize, Y: y / RegionSize}
}

func localIndex(x, y int) int {
	return (y%RegionSize)*RegionSize + x%RegionSize
}
