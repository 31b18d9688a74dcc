package main

import (
	"fmt"
	"time"

	"sand-ca/internal/sims/sandbox"
	"sand-ca/pkg/sand"
)

type scenario struct {
	seed     int64
	material rune
	size     int
	steps    int
	pour     int
}

func (s scenario) String() string {
	return fmt.Sprintf("seed=%d material=%c size=%d", s.seed, s.material, s.size)
}

type scenarioResult struct {
	scenario scenario

	census     sand.Counts
	blocks     int
	meanActive float64
	peakActive int
	quietAt    int
	perStep    time.Duration
}

// runScenario pours the chosen material from the top of a demo scene for the
// first pour ticks and records how much of the grid stays active.
func runScenario(sc scenario) scenarioResult {
	cfg := sandbox.DefaultConfig()
	cfg.Size = sc.size
	cfg.Seed = sc.seed
	cfg.Scene = sandbox.SceneDemo

	world := sandbox.NewWithConfig(cfg)
	world.SelectKey(sc.material)
	world.SetBrush(sc.size/2, sc.size/8)

	res := scenarioResult{scenario: sc, quietAt: -1}
	for range world.Engine().Grid().Blocks() {
		res.blocks++
	}

	var active int
	start := time.Now()
	for step := 0; step < sc.steps; step++ {
		world.SetSpawning(step < sc.pour)
		world.Step()

		n := world.Engine().Evaluated()
		active += n
		res.peakActive = max(res.peakActive, n)
		if n == 0 && res.quietAt < 0 && step >= sc.pour {
			res.quietAt = step
		}
		if n > 0 {
			res.quietAt = -1
		}
	}
	if sc.steps > 0 {
		res.perStep = time.Since(start) / time.Duration(sc.steps)
		res.meanActive = float64(active) / float64(sc.steps)
	}
	res.census = world.Counts()
	return res
}

func (r scenarioResult) activeRatio() float64 {
	if r.blocks == 0 {
		return 0
	}
	return r.meanActive / float64(r.blocks)
}

func (r scenarioResult) summary() string {
	quiet := "never"
	if r.quietAt >= 0 {
		quiet = fmt.Sprint(r.quietAt)
	}
	return fmt.Sprintf("%s active=%.1f%% peak=%d/%d quiet=%s step=%s sand=%d water=%d wood=%d fire=%d vine=%d acid=%d",
		r.scenario, 100*r.activeRatio(), r.peakActive, r.blocks, quiet, r.perStep.Round(time.Microsecond),
		r.census.Of(sand.KindSand), r.census.Of(sand.KindWater), r.census.Of(sand.KindWood),
		r.census.Of(sand.KindFire), r.census.Of(sand.KindVine), r.census.Of(sand.KindAcid))
}
