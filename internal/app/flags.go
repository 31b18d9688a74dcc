package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters shared by the front ends.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	Size  int
	Scene string
	Brush int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "sandbox", Scale: 3, TPS: 60, Seed: 42, Size: 256, Scene: "empty", Brush: 4}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Size, "size", c.Size, "world width and height in cells")
	fs.StringVar(&c.Scene, "scene", c.Scene, "initial scene (empty|demo)")
	fs.IntVar(&c.Brush, "brush", c.Brush, "brush radius in cells")
}

// SimConfig renders the sim-facing options as the string map factories take.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"size":  strconv.Itoa(c.Size),
		"seed":  strconv.FormatInt(c.Seed, 10),
		"scene": c.Scene,
		"brush": strconv.Itoa(c.Brush),
	}
}
