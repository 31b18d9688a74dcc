// Package sound plays short tones when the brush material changes. Audio is
// optional: a Player whose speaker failed to open stays silent.
package sound

import (
	"time"

	"sand-ca/pkg/sand"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	cueLength  = 60 * time.Millisecond
)

// Player emits one tone per cue.
type Player struct {
	rate  beep.SampleRate
	ready bool
}

// New returns a silent player; call Init to open the speaker.
func New() *Player { return &Player{rate: sampleRate} }

// Init opens the audio device.
func (p *Player) Init() error {
	if err := speaker.Init(p.rate, p.rate.N(time.Second/10)); err != nil {
		return err
	}
	p.ready = true
	return nil
}

// Ready reports whether cues are audible.
func (p *Player) Ready() bool { return p.ready }

// Cue plays the tone of kind k.
func (p *Player) Cue(k sand.Kind) {
	if !p.ready {
		return
	}
	s, err := p.tone(Pitch(k))
	if err != nil {
		return
	}
	speaker.Play(s)
}

// Close releases the audio device.
func (p *Player) Close() {
	if p.ready {
		speaker.Close()
		p.ready = false
	}
}

func (p *Player) tone(freq float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(p.rate, freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(p.rate.N(cueLength), sine), nil
}

// Pitch maps a material to its cue frequency in Hz. Heavier materials sound
// lower.
func Pitch(k sand.Kind) float64 {
	switch k {
	case sand.KindStone:
		return 196
	case sand.KindSand:
		return 262
	case sand.KindWood:
		return 330
	case sand.KindWater:
		return 392
	case sand.KindSeed, sand.KindVine:
		return 440
	case sand.KindAcid:
		return 523
	case sand.KindFire:
		return 659
	default:
		return 0
	}
}
