// Package catcher implements the egg catcher: a basket at the bottom of the
// field catches falling eggs and dodges bombs while the fall speeds up.
//
// The simulation (Sim.Update) is pure. Controller owns a running session and
// talks to the audio, render and session-end collaborators; Game adapts it to
// the platform registry.
package catcher

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/eggcatch/internal/config"
	"github.com/vovakirdan/eggcatch/internal/core"
	"github.com/vovakirdan/eggcatch/internal/registry"
)

// Mode selects the registered variant.
type Mode int

const (
	ModeClassic Mode = iota
	ModeHard
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// Hooks are the collaborators a Game passes to each session it starts.
type Hooks struct {
	Audio     Audio
	Renderers []Renderer

	// OnSessionEnd receives the mode ID and the final score, once per session.
	OnSessionEnd func(gameID string, finalScore int)

	Logger *log.Logger
}

// Game adapts a Controller to registry.Game.
type Game struct {
	mode    Mode
	runtime core.RuntimeConfig
	cfg     config.CatcherConfig
	sim     *Sim
	ctrl    *Controller
	hooks   Hooks

	best    int
	newBest bool

	left, right bool // held state last forwarded to the aggregator
}

// New creates a classic-mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewHard creates a game that starts on the hard preset.
func NewHard() *Game {
	return &Game{mode: ModeHard}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	if g.mode == ModeHard {
		return "eggcatch_hard"
	}
	return "eggcatch"
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	if g.mode == ModeHard {
		return "Egg Catcher (Hard)"
	}
	return "Egg Catcher"
}

// Attach sets the collaborators used from the next Reset on.
func (g *Game) Attach(h Hooks) {
	g.hooks = h
}

// SetBest seeds the best score shown in the HUD, usually from storage.
func (g *Game) SetBest(best int) {
	g.best = best
}

// Best returns the best score known to this game.
func (g *Game) Best() int {
	return g.best
}

// Reset starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadCatcher(configPath)
	if err != nil {
		if g.hooks.Logger != nil {
			g.hooks.Logger.Warn("using default catcher config", "err", err)
		}
		cfg = config.DefaultCatcherConfig()
	}

	// The hard mode's scores are kept apart, so it always plays the hard preset
	preset := difficultyPreset
	if g.mode == ModeHard {
		preset = config.DifficultyHard
	}
	config.ApplyCatcherPreset(&cfg, preset)

	g.cfg = cfg
	g.sim = NewSim(cfg)

	if g.ctrl != nil {
		g.ctrl.Stop()
	}
	g.ctrl = NewController(g.sim, Options{
		Audio:        g.hooks.Audio,
		Renderers:    g.hooks.Renderers,
		OnSessionEnd: g.sessionEnded,
		Rand:         NewRand(runtime.Seed),
		Logger:       g.hooks.Logger,
	})
	g.left, g.right = false, false
	g.newBest = false
}

func (g *Game) sessionEnded(score int) {
	if score > g.best {
		g.best = score
		g.newBest = true
	}
	if g.hooks.OnSessionEnd != nil {
		g.hooks.OnSessionEnd(g.ID(), score)
	}
}

// Step runs one frame at the host timestamp.
func (g *Game) Step(now time.Time, in core.InputFrame) core.StepResult {
	if g.ctrl == nil {
		return core.StepResult{}
	}

	if in.Has(core.ActionPause) {
		g.ctrl.TogglePause()
	}

	agg := g.ctrl.Input()
	forwardKey(agg, DirLeft, &g.left, in.Left)
	forwardKey(agg, DirRight, &g.right, in.Right)
	if in.HasPointer {
		agg.PointerMove(in.PointerX, in.PointerScale)
	} else {
		agg.PointerUp()
	}

	g.ctrl.Frame(now)
	return core.StepResult{State: g.State()}
}

// forwardKey turns a level state into the aggregator's down/up events.
func forwardKey(agg *Aggregator, d Direction, last *bool, held bool) {
	if held == *last {
		return
	}
	if held {
		agg.KeyDown(d)
	} else {
		agg.KeyUp(d)
	}
	*last = held
}

// DisplayScale returns display cells per field unit for a screen screenW
// columns wide, the factor pointer coordinates are divided by.
func (g *Game) DisplayScale(screenW int) float64 {
	if g.cfg.Field.Width <= 0 || screenW <= 0 {
		return 1
	}
	return float64(screenW) / g.cfg.Field.Width
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{}
	}
	st := g.ctrl.State()
	return core.GameState{
		Score:       st.Score,
		Lives:       st.Lives,
		GameOver:    st.Over,
		Paused:      st.Paused,
		ComboActive: st.Combo.Active,
	}
}

// Snapshot returns the last frame's snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.ctrl == nil {
		return Snapshot{}
	}
	return g.ctrl.Last()
}

// Stop tears down the running session.
func (g *Game) Stop() {
	if g.ctrl != nil {
		g.ctrl.Stop()
	}
}

func init() {
	registry.Register("eggcatch", func() registry.Game {
		return New()
	})
	registry.Register("eggcatch_hard", func() registry.Game {
		return NewHard()
	})
}
