package sound

import (
	"testing"

	"sand-ca/pkg/sand"
)

func TestPitchIsAudibleForMaterials(t *testing.T) {
	seen := map[float64]sand.Kind{}
	for k := sand.KindSand; int(k) < sand.NumKinds; k++ {
		f := Pitch(k)
		if f <= 0 {
			t.Fatalf("%v has no cue", k)
		}
		if other, dup := seen[f]; dup && !(k == sand.KindVine && other == sand.KindSeed) {
			t.Fatalf("%v and %v share %v Hz", k, other, f)
		}
		seen[f] = k
	}
	if Pitch(sand.KindAir) != 0 {
		t.Fatal("air should be silent")
	}
}

func TestToneLength(t *testing.T) {
	p := New()
	s, err := p.tone(Pitch(sand.KindSand))
	if err != nil {
		t.Fatalf("tone: %v", err)
	}
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if want := sampleRate.N(cueLength); total != want {
		t.Fatalf("tone has %d samples, want %d", total, want)
	}
}

func TestSilentPlayer(t *testing.T) {
	p := New()
	if p.Ready() {
		t.Fatal("player should start silent")
	}
	p.Cue(sand.KindFire)
	p.Close()
}
