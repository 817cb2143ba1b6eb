package catcher

import "github.com/vovakirdan/eggcatch/internal/core"

// Trigger starts a shake, replacing any shake in progress.
func (sh ShakeState) Trigger(magnitude, durationMs float64) ShakeState {
	sh.Magnitude = magnitude
	sh.RemainingMs = durationMs
	return sh
}

// Active reports whether the shake still displaces the scene.
func (sh ShakeState) Active() bool {
	return sh.RemainingMs > 0 && sh.Magnitude > 0
}

// Advance runs the shake down by dtMs and draws this frame's offset, uniform
// in [-magnitude/2, magnitude/2) per axis. Once the duration is spent the
// magnitude drops to zero and no offset remains.
func (sh ShakeState) Advance(dtMs float64, rng Rand) ShakeState {
	if sh.RemainingMs > 0 {
		sh.RemainingMs -= dtMs
	}
	if !sh.Active() {
		return ShakeState{}
	}
	sh.DX = (rng.Float64() - 0.5) * sh.Magnitude
	sh.DY = (rng.Float64() - 0.5) * sh.Magnitude
	return sh
}

// advanceTexts drifts labels, fades them and drops the expired ones.
// The slice is filtered in place.
func advanceTexts(texts []FloatingText, dt float64) []FloatingText {
	kept := texts[:0]
	for _, t := range texts {
		t.Y += t.VY * dt
		t.Life -= dt
		t.Opacity = core.ClampF(t.Life, 0, 1)
		if t.Life <= 0 {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}
