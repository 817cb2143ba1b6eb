package catcher

import (
	"context"
	"errors"
	"testing"
	"time"
)

type recordingAudio struct {
	calls []string
}

func (a *recordingAudio) Catch()       { a.calls = append(a.calls, "catch") }
func (a *recordingAudio) GoldenCatch() { a.calls = append(a.calls, "golden") }
func (a *recordingAudio) Miss()        { a.calls = append(a.calls, "miss") }
func (a *recordingAudio) Bomb()        { a.calls = append(a.calls, "bomb") }

type panickingAudio struct{}

func (panickingAudio) Catch()       { panic("speaker unplugged") }
func (panickingAudio) GoldenCatch() { panic("speaker unplugged") }
func (panickingAudio) Miss()        { panic("speaker unplugged") }
func (panickingAudio) Bomb()        { panic("speaker unplugged") }

func newTestController(t *testing.T, opts Options) *Controller {
	t.Helper()
	if opts.Rand == nil {
		opts.Rand = &scriptRand{vals: []float64{0.5}}
	}
	return NewController(newTestSim(t), opts)
}

func TestControllerDispatchesCues(t *testing.T) {
	audio := &recordingAudio{}
	c := newTestController(t, Options{Audio: audio})
	t0 := time.Unix(0, 0)

	c.state.Objects = []FallingObject{onBasket(&c.state, KindGolden), onBasket(&c.state, KindBomb)}
	c.Frame(t0)

	if len(audio.calls) != 2 || audio.calls[0] != "golden" || audio.calls[1] != "bomb" {
		t.Errorf("audio calls = %v, expected [golden bomb]", audio.calls)
	}
}

func TestControllerSwallowsCollaboratorPanics(t *testing.T) {
	rendered := 0
	c := newTestController(t, Options{
		Audio: panickingAudio{},
		Renderers: []Renderer{
			RendererFunc(func(Snapshot) { panic("display gone") }),
			RendererFunc(func(Snapshot) { rendered++ }),
		},
	})
	t0 := time.Unix(0, 0)

	c.state.Objects = []FallingObject{onBasket(&c.state, KindNormal)}
	if !c.Frame(t0) {
		t.Fatal("frame should continue after collaborator panics")
	}
	if c.State().Score != 1 {
		t.Errorf("score = %d, expected 1", c.State().Score)
	}
	if rendered != 1 {
		t.Errorf("second renderer called %d times, expected 1", rendered)
	}
}

func TestControllerSessionEndReportedOnce(t *testing.T) {
	var ends []int
	c := newTestController(t, Options{
		OnSessionEnd: func(score int) { ends = append(ends, score) },
	})
	t0 := time.Unix(0, 0)

	c.state.Score = 42
	c.state.Lives = 1
	c.state.Objects = []FallingObject{pastFloor(c.sim, &c.state, KindNormal)}

	if c.Frame(t0) {
		t.Error("frame that ends the session should not ask to be rescheduled")
	}
	for i := 1; i <= 3; i++ {
		c.Frame(t0.Add(time.Duration(i) * 16 * time.Millisecond))
	}

	if len(ends) != 1 || ends[0] != 42 {
		t.Errorf("session end calls = %v, expected [42]", ends)
	}
	if !c.Last().GameOver {
		t.Error("snapshot should show game over")
	}
}

func TestControllerRendersWhilePaused(t *testing.T) {
	var snaps []Snapshot
	c := newTestController(t, Options{
		Renderers: []Renderer{RendererFunc(func(s Snapshot) { snaps = append(snaps, s) })},
	})
	t0 := time.Unix(0, 0)

	c.Frame(t0)
	c.TogglePause()
	c.Input().KeyDown(DirLeft)
	x := c.State().Catcher.X
	for i := 1; i <= 5; i++ {
		if !c.Frame(t0.Add(time.Duration(i) * 100 * time.Millisecond)) {
			t.Fatal("paused session should keep its frame loop alive")
		}
	}

	if len(snaps) != 6 {
		t.Fatalf("renderer called %d times, expected 6", len(snaps))
	}
	for _, s := range snaps[1:] {
		if !s.Paused || s.Catcher.X != x {
			t.Errorf("paused snapshot = paused:%v x:%g", s.Paused, s.Catcher.X)
		}
	}

	// Resuming continues from the latest timestamp, not from the pause
	c.TogglePause()
	c.Frame(t0.Add(600 * time.Millisecond))
	if moved := x - c.State().Catcher.X; moved != 500*0.1 {
		t.Errorf("first frame after resume moved %g, expected 50", moved)
	}
}

func TestControllerClampsStalledFrames(t *testing.T) {
	c := newTestController(t, Options{})
	t0 := time.Unix(0, 0)

	c.Frame(t0)
	c.Frame(t0.Add(30 * time.Second))
	if got := c.State().Played; got != 0.25 {
		t.Errorf("stalled frame advanced %gs, expected the 0.25s clamp", got)
	}
}

func TestControllerStop(t *testing.T) {
	rendered := 0
	c := newTestController(t, Options{
		Renderers: []Renderer{RendererFunc(func(Snapshot) { rendered++ })},
	})

	c.Stop()
	if c.Frame(time.Unix(0, 0)) {
		t.Error("stopped controller should not be rescheduled")
	}
	if rendered != 0 {
		t.Error("stopped controller should not render")
	}
	if !c.Stopped() {
		t.Error("Stopped() should report true")
	}
}

func TestControllerRun(t *testing.T) {
	t.Run("closed source", func(t *testing.T) {
		c := newTestController(t, Options{})
		ticks := make(chan time.Time, 3)
		t0 := time.Unix(0, 0)
		for i := 0; i < 3; i++ {
			ticks <- t0.Add(time.Duration(i) * 16 * time.Millisecond)
		}
		close(ticks)

		if err := c.Run(context.Background(), ticks); err != nil {
			t.Errorf("Run() = %v, expected nil", err)
		}
		if c.Last().Frame != 3 {
			t.Errorf("ran %d frames, expected 3", c.Last().Frame)
		}
	})

	t.Run("context cancelled", func(t *testing.T) {
		c := newTestController(t, Options{})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := c.Run(ctx, make(chan time.Time)); !errors.Is(err, context.Canceled) {
			t.Errorf("Run() = %v, expected context.Canceled", err)
		}
	})

	t.Run("stop from renderer", func(t *testing.T) {
		var c *Controller
		c = newTestController(t, Options{
			Renderers: []Renderer{RendererFunc(func(s Snapshot) {
				if s.Frame == 2 {
					c.Stop()
				}
			})},
		})
		ticks := make(chan time.Time, 10)
		for i := 0; i < 10; i++ {
			ticks <- time.Unix(0, int64(i)*int64(16*time.Millisecond))
		}

		if err := c.Run(context.Background(), ticks); err != nil {
			t.Errorf("Run() = %v", err)
		}
		if c.Last().Frame != 2 {
			t.Errorf("loop kept running after Stop: frame %d", c.Last().Frame)
		}
	})
}
