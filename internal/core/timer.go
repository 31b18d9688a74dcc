package core

import "time"

// FixedStep turns wall-clock time into a whole number of simulation ticks.
// Hosts that do not get a fixed update rate from their toolkit use it to
// call Step at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
	maxCatchUp  int
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now, maxCatchUp: 4}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. Non-positive values select 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval is the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Due reports how many ticks should run now. It never reports more than a
// few ticks at once, dropping time the host could not keep up with.
func (f *FixedStep) Due() int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
		return 1
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	n := int(f.accumulator / f.step)
	f.accumulator -= time.Duration(n) * f.step
	if n > f.maxCatchUp {
		n = f.maxCatchUp
		f.accumulator = 0
	}
	return n
}
