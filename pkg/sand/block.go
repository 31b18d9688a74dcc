package sand

// RegionSize is the edge length of a Block in cells.
const RegionSize = 8

const cellsPerBlock = RegionSize * RegionSize

// BlockCoord addresses a block; world cell (x, y) lives in block
// (x/RegionSize, y/RegionSize).
type BlockCoord struct {
	X, Y int
}

// Block is a square tile of cells and the unit of dirty tracking. A dirty
// block is re-evaluated cell by cell on the next tick; a clean one is copied
// forward untouched.
type Block struct {
	cells   [cellsPerBlock]Cell
	claimed [cellsPerBlock]bool
	dirty   bool
}

func newBlock() *Block {
	return &Block{dirty: true}
}

// Dirty reports whether the block must be evaluated on the next tick.
func (b *Block) Dirty() bool { return b.dirty }

// Cell returns the cell at local coordinates. Local coordinates must be in
// [0, RegionSize).
func (b *Block) Cell(lx, ly int) Cell {
	return b.cells[ly*RegionSize+lx]
}

// Each calls fn for every cell in row-major order with its local coordinates.
func (b *Block) Each(fn func(c Cell, lx, ly int)) {
	for i, c := range b.cells {
		fn(c, i%RegionSize, i/RegionSize)
	}
}

// reset empties the block and marks it dirty.
func (b *Block) reset() {
	*b = Block{dirty: true}
}

// copyFrom deep-copies src's cells. Claims are cleared.
func (b *Block) copyFrom(src *Block) {
	b.cells = src.cells
	b.claimed = [cellsPerBlock]bool{}
}
