package sand

// Spawner injects cells into the generation being built, before the rules
// run. Every write it makes should mark its block dirty.
type Spawner interface {
	Spawn(write *Grid)
}

// SpawnerFunc adapts a function to Spawner.
type SpawnerFunc func(write *Grid)

// Spawn calls f.
func (f SpawnerFunc) Spawn(write *Grid) { f(write) }

// RadialSpawner emits a sparse disc of cells around its position on every
// tick while enabled.
type RadialSpawner struct {
	enabled bool
	x, y    int
	radius  int
	offsets [][2]int
	cell    Cell
}

// NewRadialSpawner returns a disabled sand spawner with the given radius.
func NewRadialSpawner(radius int) *RadialSpawner {
	s := &RadialSpawner{cell: NewSand()}
	s.SetRadius(radius)
	return s
}

// SetRadius changes the disc radius. Negative values are treated as zero.
func (s *RadialSpawner) SetRadius(radius int) {
	if radius < 0 {
		radius = 0
	}
	s.radius = radius
	s.offsets = discOffsets(radius)
}

// Radius returns the disc radius.
func (s *RadialSpawner) Radius() int { return s.radius }

// SetPos moves the disc centre.
func (s *RadialSpawner) SetPos(x, y int) {
	s.x = x
	s.y = y
}

// Pos returns the disc centre.
func (s *RadialSpawner) Pos() (int, int) { return s.x, s.y }

// Enable starts emission.
func (s *RadialSpawner) Enable() { s.enabled = true }

// Disable stops emission.
func (s *RadialSpawner) Disable() { s.enabled = false }

// Enabled reports whether the spawner emits.
func (s *RadialSpawner) Enabled() bool { return s.enabled }

// SetCell selects the emitted cell.
func (s *RadialSpawner) SetCell(c Cell) { s.cell = c }

// Cell returns the emitted cell.
func (s *RadialSpawner) Cell() Cell { return s.cell }

// Spawn writes the disc into write when enabled.
func (s *RadialSpawner) Spawn(write *Grid) {
	if !s.enabled {
		return
	}
	for _, d := range s.offsets {
		write.WriteCell(s.cell, s.x+d[0], s.y+d[1], true)
	}
}

// discOffsets lists every even offset within radius of the origin, with a
// little slack so the rim is not too jagged.
func discOffsets(radius int) [][2]int {
	limit := radius*radius + radius
	var out [][2]int
	for dy := -radius; dy <= radius; dy++ {
		if dy%2 != 0 {
			continue
		}
		for dx := -radius; dx <= radius; dx++ {
			if dx%2 != 0 {
				continue
			}
			if dx*dx+dy*dy <= limit {
				out = append(out, [2]int{dx, dy})
			}
		}
	}
	return out
}

// BurstSpawner writes a horizontal run of cells every interval ticks, a fixed
// number of times.
type BurstSpawner struct {
	cell      Cell
	x, y      int
	width     int
	interval  int
	remaining int
	calls     int
}

// NewBurstSpawner emits count bursts of width cells starting at (x, y), the
// first on the next tick and then every interval ticks.
func NewBurstSpawner(c Cell, x, y, width, interval, count int) *BurstSpawner {
	if width <= 0 {
		width = 1
	}
	if interval <= 0 {
		interval = 1
	}
	if count < 0 {
		count = 0
	}
	return &BurstSpawner{cell: c, x: x, y: y, width: width, interval: interval, remaining: count}
}

// Remaining is the number of bursts left.
func (b *BurstSpawner) Remaining() int { return b.remaining }

// Done reports whether every burst has been emitted.
func (b *BurstSpawner) Done() bool { return b.remaining <= 0 }

// Spawn emits a burst when one is due.
func (b *BurstSpawner) Spawn(write *Grid) {
	if b.remaining <= 0 {
		return
	}
	due := b.calls%b.interval == 0
	b.calls++
	if !due {
		return
	}
	for i := 0; i < b.width; i++ {
		write.WriteCell(b.cell, b.x+i, b.y, true)
	}
	b.remaining--
}
