package sandbox

import "strconv"

const (
	// SceneEmpty starts from an empty board.
	SceneEmpty = "empty"
	// SceneDemo starts with ledges, a wooden beam and a few emitters.
	SceneDemo = "demo"
)

// Config controls the sandbox world.
type Config struct {
	Size int
	Seed int64

	// Brush is the radius of the mouse spawner disc.
	Brush int
	// WoodFuel and FireHeat set the state of painted wood and fire.
	WoodFuel int
	FireHeat int

	Scene string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:     256,
		Seed:     1337,
		Brush:    4,
		WoodFuel: 20,
		FireHeat: 30,
		Scene:    SceneEmpty,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["brush"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Brush = parsed
		}
	}
	if v, ok := cfg["wood_fuel"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.WoodFuel = parsed
		}
	}
	if v, ok := cfg["fire_heat"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.FireHeat = parsed
		}
	}
	if v, ok := cfg["scene"]; ok && (v == SceneEmpty || v == SceneDemo) {
		c.Scene = v
	}
	return c
}
