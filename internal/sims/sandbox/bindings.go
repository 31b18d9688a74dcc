package sandbox

import (
	"strings"
	"unicode"

	"sand-ca/internal/core"
	"sand-ca/pkg/sand"
)

// Material is a brush material selectable with a key.
type Material struct {
	Key  rune
	Cell sand.Cell
}

// Materials lists the selectable brush materials.
func (w *World) Materials() []Material {
	return []Material{
		{Key: 'q', Cell: sand.NewWood(w.cfg.WoodFuel)},
		{Key: 'w', Cell: sand.NewFire(w.cfg.FireHeat)},
		{Key: 'e', Cell: sand.NewSeed()},
		{Key: 'r', Cell: sand.NewWater(0)},
		{Key: 't', Cell: sand.NewAcid(0)},
		{Key: 'y', Cell: sand.NewSand()},
		{Key: 'u', Cell: sand.NewStone()},
	}
}

// SelectKey selects the material bound to key, ignoring case.
func (w *World) SelectKey(key rune) bool {
	key = unicode.ToLower(key)
	for _, m := range w.Materials() {
		if m.Key == key {
			w.Select(m.Cell)
			return true
		}
	}
	return false
}

// Bindings lists every key the front ends understand.
func (w *World) Bindings() []core.KeyBinding {
	var out []core.KeyBinding
	for _, m := range w.Materials() {
		out = append(out, core.KeyBinding{
			Key:    strings.ToUpper(string(m.Key)),
			Action: titleCase(m.Cell.Kind().String()),
		})
	}
	return append(out,
		core.KeyBinding{Key: "LMB", Action: "Spawn"},
		core.KeyBinding{Key: "SPACE", Action: "Pause"},
		core.KeyBinding{Key: "N", Action: "Step"},
		core.KeyBinding{Key: "D", Action: "Dirty"},
		core.KeyBinding{Key: "F5", Action: "Reset"},
		core.KeyBinding{Key: "DEL", Action: "Clear"},
		core.KeyBinding{Key: "ESC", Action: "Exit"},
	)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
