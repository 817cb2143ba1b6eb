package catcher

import (
	"fmt"

	"github.com/vovakirdan/eggcatch/internal/core"
)

// Cue is a sound notification raised by a frame.
type Cue uint8

const (
	CueCatch Cue = iota
	CueGolden
	CueMiss
	CueBomb
)

func (c Cue) String() string {
	switch c {
	case CueCatch:
		return "catch"
	case CueGolden:
		return "golden"
	case CueMiss:
		return "miss"
	case CueBomb:
		return "bomb"
	default:
		return fmt.Sprintf("Cue(%d)", uint8(c))
	}
}

// points returns the base value of a scoring kind.
func (s *Sim) points(k Kind) int {
	switch k {
	case KindNormal:
		return s.cfg.Scoring.Normal
	case KindGolden:
		return s.cfg.Scoring.Golden
	default:
		return 0
	}
}

// tickCombo runs the active window down. The counter survives a lapse.
func tickCombo(c ComboState, dtMs float64) ComboState {
	if !c.Active {
		return c
	}
	c.RemainingMs -= dtMs
	if c.RemainingMs <= 0 {
		c.RemainingMs = 0
		c.Active = false
	}
	return c
}

func (s *Sim) applyCatch(st *State, o FallingObject, out *Outcome) {
	switch o.Kind {
	case KindNormal, KindGolden:
		pts := s.points(o.Kind)
		st.Combo.Counter++
		if st.Combo.Counter >= s.cfg.Combo.Threshold {
			st.Combo.Active = true
			st.Combo.RemainingMs = s.cfg.Combo.DurationMs
		}
		if st.Combo.Active {
			pts *= s.cfg.Combo.Multiplier
		}
		st.Score += pts
		st.Texts = append(st.Texts, s.newText(fmt.Sprintf("+%d", pts), o.X, o.Y))
		if o.Kind == KindGolden {
			out.Cues = append(out.Cues, CueGolden)
		} else {
			out.Cues = append(out.Cues, CueCatch)
		}
	case KindRotten:
		st.Lives--
		st.Shake = st.Shake.Trigger(s.cfg.Effects.SmallShake.Magnitude, s.cfg.Effects.SmallShake.DurationMs)
		out.Cues = append(out.Cues, CueMiss)
	case KindBomb:
		st.Lives--
		st.Shake = st.Shake.Trigger(s.cfg.Effects.BombShake.Magnitude, s.cfg.Effects.BombShake.DurationMs)
		out.Cues = append(out.Cues, CueBomb)
	default:
		panic(fmt.Sprintf("catcher: unhandled kind %d", uint8(o.Kind)))
	}
}

// applyMiss punishes only scoring kinds; a dodged rotten egg or bomb is free.
func (s *Sim) applyMiss(st *State, o FallingObject, out *Outcome) {
	switch o.Kind {
	case KindNormal, KindGolden:
		st.Lives--
		st.Combo = ComboState{}
		st.Shake = st.Shake.Trigger(s.cfg.Effects.SmallShake.Magnitude, s.cfg.Effects.SmallShake.DurationMs)
		out.Cues = append(out.Cues, CueMiss)
	case KindRotten, KindBomb:
	default:
		panic(fmt.Sprintf("catcher: unhandled kind %d", uint8(o.Kind)))
	}
}

func (s *Sim) newText(text string, x, y float64) FloatingText {
	life := s.cfg.Effects.TextLife
	return FloatingText{
		Text:    text,
		X:       x,
		Y:       y,
		VY:      s.cfg.Effects.TextVelocity,
		Life:    life,
		Opacity: core.ClampF(life, 0, 1),
	}
}
