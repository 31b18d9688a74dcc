package sand

const (
	// IgniteHeat is the heat of fire produced by burning wood or vine.
	IgniteHeat = 30
	// RootGrowth is the growth budget of a vine sprouting from a seed.
	RootGrowth = 50
)

// update applies the transition rule for c, read at (x, y).
func (t *tick) update(c Cell, x, y int) {
	// Something else already decided what lives here this tick.
	if t.write.Claimed(x, y) {
		return
	}
	switch c.kind {
	case KindAir:
	case KindSand:
		t.sand(c, x, y)
	case KindWood:
		t.wood(c, x, y)
	case KindFire:
		t.fire(c, x, y)
	case KindSeed:
		t.seed(c, x, y)
	case KindVine:
		t.vine(c, x, y)
	case KindWater:
		t.water(c, x, y)
	case KindAcid:
		t.acid(c, x, y)
	case KindStone:
		t.write.WriteCell(c, x, y, false)
	}
}

func (t *tick) sand(c Cell, x, y int) {
	if ax, ay, n := t.probe(x, y); n.kind == KindAcid && t.dissolve(x, y, ax, ay) {
		return
	}
	t.settle(c, x, y, t.sign())
}

func (t *tick) wood(c Cell, x, y int) {
	if c.Fuel() <= 0 {
		t.write.WriteCell(Air, x, y, true)
		return
	}
	if nx, ny, n := t.probe(x, y); n.kind == KindFire && !t.gone(nx, ny) {
		t.write.WriteCell(NewFire(IgniteHeat), x, y, true)
		return
	}
	// Smoulder under a flame until ignited or burnt out.
	if t.read.ReadCell(x, y-1).kind == KindFire {
		t.write.WriteCell(NewWood(c.Fuel()-1), x, y, true)
		return
	}
	t.write.WriteCell(c, x, y, false)
}

func (t *tick) fire(c Cell, x, y int) {
	heat := c.Heat()
	if heat <= 0 {
		t.write.WriteCell(Air, x, y, true)
		return
	}
	nx, ny, n := t.probe(x, y)
	if n == Air && t.free(nx, ny) {
		decay := 1
		if t.rng.Bool() {
			decay = 2
		}
		// Fire relocates; the origin is left as Air.
		t.vacate(x, y)
		if heat-decay > 0 {
			t.write.WriteCell(NewFire(heat-decay), nx, ny, true)
		}
		return
	}
	if heat-1 <= 0 {
		t.write.WriteCell(Air, x, y, true)
		return
	}
	t.write.WriteCell(NewFire(heat-1), x, y, true)
}

func (t *tick) seed(c Cell, x, y int) {
	if t.fall(c, x, y, t.sign()) {
		return
	}
	if t.read.ReadCell(x, y+1).kind == KindSand {
		t.write.WriteCell(NewVine(RootGrowth, false), x, y, true)
		return
	}
	t.write.WriteCell(Air, x, y, true)
}

func (t *tick) vine(c Cell, x, y int) {
	nx, ny, n := t.probe(x, y)
	switch n.kind {
	case KindFire:
		if !t.gone(nx, ny) {
			t.write.WriteCell(NewFire(IgniteHeat), x, y, true)
			return
		}
	case KindAcid:
		if t.dissolve(x, y, nx, ny) {
			return
		}
	}

	growth := c.Growth()
	grown := c.Grown() || growth <= 0
	t.write.WriteCell(NewVine(growth, grown), x, y, false)
	if grown {
		return
	}

	dx, dy := t.randomDir()
	if dy > 0 {
		dy = 0
	}
	gx, gy := x+dx, y+dy
	if (dx != 0 || dy != 0) && t.free(gx, gy) {
		t.write.WriteCell(NewVine(growth-1, false), gx, gy, true)
		t.write.WriteCell(NewVine(growth, true), x, y, false)
		return
	}
	t.write.WriteCell(NewVine(growth-1, false), x, y, true)
}

func (t *tick) water(c Cell, x, y int) {
	if ax, ay, n := t.probe(x, y); n.kind == KindAcid && t.dissolve(x, y, ax, ay) {
		return
	}

	dx := signOf(c.DX())
	side := dx
	if side == 0 {
		side = t.sign()
	}
	if t.fall(c, x, y, side) {
		return
	}

	// Water sinks through sand that is still resting below it.
	if below := t.read.ReadCell(x, y+1); below.kind == KindSand && t.stillAt(x, y+1) {
		t.write.WriteCell(below, x, y, true)
		t.write.WriteCell(c, x, y+1, true)
		return
	}

	if dx == 0 {
		dx = t.perturb()
	}
	if dx != 0 && t.free(x+dx, y) {
		t.write.WriteCell(NewWater(dx), x+dx, y, true)
		t.vacate(x, y)
		return
	}
	// Only go dormant when neither side can take the water.
	boxed := t.supported(x, y) && !t.free(x-1, y) && !t.free(x+1, y)
	t.write.WriteCell(NewWater(0), x, y, !boxed)
}

func (t *tick) acid(c Cell, x, y int) {
	if t.fall(NewAcid(1), x, y, t.sign()) {
		return
	}
	t.write.MarkBlockDirty(x, y+1)
	if c.T() > 0 {
		t.write.WriteCell(Air, x, y, true)
		return
	}
	t.write.WriteCell(c, x, y, true)
}
