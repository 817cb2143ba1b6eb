package catcher

import "github.com/vovakirdan/eggcatch/internal/config"

// State is one session's full simulation state. Update never mutates the
// State it is given; it returns a new value.
type State struct {
	Catcher Catcher
	Objects []FallingObject
	Texts   []FloatingText
	Combo   ComboState
	Shake   ShakeState

	Score  int
	Lives  int
	Paused bool
	Over   bool

	Difficulty float64 // level used by the last unpaused frame
	SpawnTimer float64 // seconds accumulated toward the next spawn
	Played     float64 // unpaused seconds, feeds time-based progression
	NextID     uint64
}

// Sim holds the rules for a session: tunables plus the difficulty curve.
type Sim struct {
	cfg        config.CatcherConfig
	difficulty *config.DifficultyManager
}

// NewSim builds the rules from a configuration.
func NewSim(cfg config.CatcherConfig) *Sim {
	return &Sim{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// Config returns the tunables the simulation runs with.
func (s *Sim) Config() config.CatcherConfig {
	return s.cfg
}

// NewState returns the state at the start of a session: catcher centred on
// the floor, full lives, nothing falling.
func (s *Sim) NewState() State {
	c := s.cfg.Catcher
	st := State{
		Catcher: Catcher{
			X:             (s.cfg.Field.Width - c.Width) / 2,
			Y:             s.cfg.Field.Height - c.Height,
			W:             c.Width,
			H:             c.Height,
			BasketW:       c.BasketWidth,
			BasketH:       c.BasketHeight,
			BasketOffsetY: c.BasketOffsetY,
		},
		Lives:  s.cfg.Scoring.Lives,
		NextID: 1,
	}
	st.Difficulty = s.Level(st)
	return st
}

// Level returns the difficulty in [0,1] for the given state.
func (s *Sim) Level(st State) float64 {
	return s.difficulty.Level(st.Score, st.Played)
}

// TogglePause flips the paused flag. A finished session stays as it is.
func TogglePause(st State) State {
	if st.Over {
		return st
	}
	st.Paused = !st.Paused
	return st
}

func (st State) clone() State {
	out := st
	out.Objects = append([]FallingObject(nil), st.Objects...)
	out.Texts = append([]FloatingText(nil), st.Texts...)
	return out
}
