package catcher

import (
	"context"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// Audio receives fire-and-forget sound notifications.
type Audio interface {
	Catch()
	GoldenCatch()
	Miss()
	Bomb()
}

// Renderer receives one snapshot per frame.
type Renderer interface {
	Render(Snapshot)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Snapshot)

// Render calls f.
func (f RendererFunc) Render(s Snapshot) { f(s) }

// Options wires a Controller to its collaborators. Every field is optional.
type Options struct {
	Audio     Audio
	Renderers []Renderer

	// OnSessionEnd is called once per session with the final score.
	OnSessionEnd func(finalScore int)

	Rand   Rand
	Logger *log.Logger
}

// Controller owns a running session: the state, the clock, the input
// aggregator and the collaborators. Frame and the input methods belong to one
// goroutine; Stop may be called from anywhere.
type Controller struct {
	sim   *Sim
	state State
	clock Clock
	input Aggregator
	rng   Rand

	audio     Audio
	renderers []Renderer
	onEnd     func(int)
	logger    *log.Logger

	frame    uint64
	last     Snapshot
	reported bool
	stopped  atomic.Bool
}

// NewController starts a fresh session.
func NewController(sim *Sim, opts Options) *Controller {
	c := &Controller{
		sim:       sim,
		rng:       opts.Rand,
		audio:     opts.Audio,
		renderers: opts.Renderers,
		onEnd:     opts.OnSessionEnd,
		logger:    opts.Logger,
	}
	if c.rng == nil {
		c.rng = NewRand(0)
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	c.clock.MaxStep = sim.Config().Clock.MaxStep
	c.Reset()
	return c
}

// Reset begins a new session with the same collaborators.
func (c *Controller) Reset() {
	c.state = c.sim.NewState()
	c.clock.Reset()
	c.input.Reset()
	c.frame = 0
	c.reported = false
	c.last = c.sim.Snapshot(c.state, 0)
}

// Input exposes the aggregator for the host's key and pointer events.
func (c *Controller) Input() *Aggregator {
	return &c.input
}

// TogglePause flips pause. The clock keeps running while paused so resuming
// does not produce one long frame.
func (c *Controller) TogglePause() {
	c.state = TogglePause(c.state)
}

// State returns the current session state.
func (c *Controller) State() State {
	return c.state
}

// Last returns the most recent snapshot.
func (c *Controller) Last() Snapshot {
	return c.last
}

// Stop marks the controller torn down. Frame stops doing work and reports
// that it should not be rescheduled.
func (c *Controller) Stop() {
	c.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (c *Controller) Stopped() bool {
	return c.stopped.Load()
}

// Frame performs one update-then-snapshot pass for the timestamp and reports
// whether the host should schedule another frame.
func (c *Controller) Frame(now time.Time) bool {
	if c.stopped.Load() {
		return false
	}

	dt := c.clock.Tick(now)
	next, out := c.sim.Update(c.state, dt, c.input.Intent(), c.rng)
	c.state = next
	c.frame++

	for _, cue := range out.Cues {
		c.play(cue)
	}

	c.last = c.sim.Snapshot(c.state, c.frame)
	for _, r := range c.renderers {
		c.safely("render", func() { r.Render(c.last) })
	}

	if out.Ended && !c.reported {
		c.reported = true
		c.logger.Debug("session ended", "score", c.state.Score, "frames", c.frame)
		if c.onEnd != nil {
			score := c.state.Score
			c.safely("session end", func() { c.onEnd(score) })
		}
	}

	return !c.state.Over && !c.stopped.Load()
}

// Run drives frames from a tick source until the context is cancelled, the
// source closes, Stop is called or the session ends.
func (c *Controller) Run(ctx context.Context, ticks <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now, ok := <-ticks:
			if !ok {
				return nil
			}
			if !c.Frame(now) {
				return nil
			}
		}
	}
}

func (c *Controller) play(cue Cue) {
	if c.audio == nil {
		return
	}
	c.safely("audio", func() {
		switch cue {
		case CueCatch:
			c.audio.Catch()
		case CueGolden:
			c.audio.GoldenCatch()
		case CueMiss:
			c.audio.Miss()
		case CueBomb:
			c.audio.Bomb()
		}
	})
}

// safely runs a collaborator call, swallowing any panic.
func (c *Controller) safely(what string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Warn("collaborator failed", "call", what, "panic", r)
		}
	}()
	fn()
}
