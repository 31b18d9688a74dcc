// Package sand implements a falling-sand cellular automaton over a
// block-partitioned, double-buffered grid.
//
// Each tick reads a frozen grid and builds the next one. Blocks that nothing
// touched during the previous tick are copied forward without evaluating
// their cells.
package sand

import "fmt"

// Kind identifies the material stored in a Cell.
type Kind uint8

const (
	KindAir Kind = iota
	KindSand
	KindWood
	KindFire
	KindSeed
	KindVine
	KindWater
	KindAcid
	KindStone

	// NumKinds is the number of distinct materials.
	NumKinds = int(KindStone) + 1
)

var kindNames = [NumKinds]string{
	KindAir:   "air",
	KindSand:  "sand",
	KindWood:  "wood",
	KindFire:  "fire",
	KindSeed:  "seed",
	KindVine:  "vine",
	KindWater: "water",
	KindAcid:  "acid",
	KindStone: "stone",
}

func (k Kind) String() string {
	if int(k) < NumKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind looks a material up by its String name.
func ParseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return KindAir, false
}

// Cell is a material plus the per-instance state that material carries.
// Cells are values: rules build a new Cell instead of mutating one. The zero
// value is Air.
type Cell struct {
	kind  Kind
	grown bool
	n     int32
}

// Air is the empty cell.
var Air = Cell{}

// NewSand returns a sand cell.
func NewSand() Cell { return Cell{kind: KindSand} }

// NewWood returns wood with the given fuel.
func NewWood(fuel int) Cell { return Cell{kind: KindWood, n: int32(fuel)} }

// NewFire returns fire with the given heat.
func NewFire(heat int) Cell { return Cell{kind: KindFire, n: int32(heat)} }

// NewSeed returns a seed cell.
func NewSeed() Cell { return Cell{kind: KindSeed} }

// NewVine returns a vine segment with the remaining growth budget.
func NewVine(growth int, grown bool) Cell {
	return Cell{kind: KindVine, n: int32(growth), grown: grown}
}

// NewWater returns water drifting horizontally by dx.
func NewWater(dx int) Cell { return Cell{kind: KindWater, n: int32(dx)} }

// NewAcid returns acid with the given fall marker.
func NewAcid(t int) Cell { return Cell{kind: KindAcid, n: int32(t)} }

// NewStone returns a stone cell.
func NewStone() Cell { return Cell{kind: KindStone} }

// Kind reports the material.
func (c Cell) Kind() Kind { return c.kind }

// IsAir reports whether c is the empty cell.
func (c Cell) IsAir() bool { return c == Air }

// Fuel is the remaining fuel of wood.
func (c Cell) Fuel() int { return c.payload(KindWood) }

// Heat is the heat of fire.
func (c Cell) Heat() int { return c.payload(KindFire) }

// Growth is the remaining growth budget of a vine segment.
func (c Cell) Growth() int { return c.payload(KindVine) }

// Grown reports whether a vine segment has finished growing.
func (c Cell) Grown() bool { return c.kind == KindVine && c.grown }

// DX is the horizontal drift carried by water.
func (c Cell) DX() int { return c.payload(KindWater) }

// T is the acid fall marker.
func (c Cell) T() int { return c.payload(KindAcid) }

func (c Cell) payload(k Kind) int {
	if c.kind != k {
		return 0
	}
	return int(c.n)
}

func (c Cell) String() string {
	switch c.kind {
	case KindWood:
		return fmt.Sprintf("wood{fuel:%d}", c.n)
	case KindFire:
		return fmt.Sprintf("fire{heat:%d}", c.n)
	case KindVine:
		return fmt.Sprintf("vine{growth:%d grown:%t}", c.n, c.grown)
	case KindWater:
		return fmt.Sprintf("water{dx:%d}", c.n)
	case KindAcid:
		return fmt.Sprintf("acid{t:%d}", c.n)
	default:
		return c.kind.String()
	}
}
