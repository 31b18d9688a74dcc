package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"sand-ca/internal/app"
	"sand-ca/internal/core"
	_ "sand-ca/internal/sims/sandbox"
	"sand-ca/internal/sound"
	"sand-ca/pkg/sand"

	"github.com/gdamore/tcell/v2"
)

type brushSim interface {
	core.Sim
	SetBrush(x, y int)
	SetSpawning(on bool)
	SelectKey(key rune) bool
	Selected() sand.Cell
	Clear()
}

type term struct {
	screen tcell.Screen
	sim    brushSim
	view   *view
	clock  *core.FixedStep
	sound  *sound.Player
	seed   int64
	paused bool
	notice string
}

type audioDevice interface {
	Init() error
}

// startSound opens the audio device when asked to and returns a notice for
// the status line when it could not.
func startSound(dev audioDevice, enabled bool) string {
	if !enabled {
		return ""
	}
	if err := dev.Init(); err != nil {
		return fmt.Sprintf("audio off: %v", err)
	}
	return ""
}

func main() {
	cfg := app.NewConfig()
	cfg.Size = 0
	cfg.Bind(flag.CommandLine)
	withSound := flag.Bool("sound", false, "play a tone when the material changes")
	flag.Parse()

	t, err := newTerm(cfg, *withSound)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sand-term: %v\n", err)
		os.Exit(1)
	}
	defer t.cleanup()
	t.run()
}

func newTerm(cfg *app.Config, withSound bool) (*term, error) {
	// Audio comes up before the terminal enters raw mode so a failure can
	// still be logged plainly.
	player := sound.New()
	notice := startSound(player, withSound)
	if notice != "" {
		log.Printf("sand-term: %s", notice)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		player.Close()
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		player.Close()
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	if cfg.Size <= 0 {
		cfg.Size = fitSize(screen.Size())
	}
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		screen.Fini()
		player.Close()
		return nil, fmt.Errorf("unknown sim %q (have %v)", cfg.Sim, core.Names())
	}
	sim, ok := factory(cfg.SimConfig()).(brushSim)
	if !ok {
		screen.Fini()
		player.Close()
		return nil, fmt.Errorf("sim %q does not accept a brush", cfg.Sim)
	}
	sim.Reset(cfg.Seed)

	t := &term{
		screen: screen,
		sim:    sim,
		view:   newView(sim),
		clock:  core.NewFixedStep(cfg.TPS),
		sound:  player,
		seed:   cfg.Seed,
		notice: notice,
	}
	return t, nil
}

func (t *term) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			if !t.handle(ev) {
				return
			}
		case <-ticker.C:
			due := t.clock.Due()
			for i := 0; i < due && !t.paused; i++ {
				t.sim.Step()
			}
			t.view.draw(t.screen, statusLine(t.sim, t.paused, t.notice))
			t.screen.Show()
		}
	}
}

func (t *term) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyDelete:
			t.sim.Clear()
		case tcell.KeyF5:
			t.sim.Reset(t.seed)
		case tcell.KeyRune:
			switch r := ev.Rune(); r {
			case ' ':
				t.paused = !t.paused
			case 'n', 'N':
				t.sim.Step()
			default:
				if t.sim.SelectKey(r) {
					t.sound.Cue(t.sim.Selected().Kind())
				}
			}
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := gridPos(col, row)
		size := t.sim.Size()
		inside := x < size.W && y < size.H
		if inside {
			t.sim.SetBrush(x, y)
		}
		t.sim.SetSpawning(inside && ev.Buttons()&tcell.Button1 != 0)
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *term) cleanup() {
	t.sound.Close()
	t.screen.Fini()
}
