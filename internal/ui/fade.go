package ui

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const fadeSeconds = 0.25

// fader eases an opacity between 0 and 1 whenever a layer is toggled.
type fader struct {
	tween *gween.Tween
	value float32
	on    bool
}

// Toggle flips the target opacity and restarts the ease from the current
// value.
func (f *fader) Toggle() {
	f.on = !f.on
	target := float32(0)
	if f.on {
		target = 1
	}
	f.tween = gween.New(f.value, target, fadeSeconds, ease.OutQuad)
}

// On reports the target state.
func (f *fader) On() bool { return f.on }

// Update advances the ease by dt seconds and returns the opacity.
func (f *fader) Update(dt float32) float32 {
	if f.tween == nil {
		return f.value
	}
	v, done := f.tween.Update(dt)
	f.value = v
	if done {
		f.tween = nil
	}
	return f.value
}

// Value is the current opacity.
func (f *fader) Value() float32 { return f.value }

// scaleRGBA multiplies a premultiplied colour by opacity a.
func scaleRGBA(c color.RGBA, a float32) color.RGBA {
	a = min(max(a, 0), 1)
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}
