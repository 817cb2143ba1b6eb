package catcher

// Outcome reports what a single Update did, for the collaborators that
// react to it (audio, session end, spectators).
type Outcome struct {
	Spawned []FallingObject
	Caught  []FallingObject
	Missed  []FallingObject
	Cues    []Cue

	// Ended is set on the one frame where lives ran out.
	Ended bool
}

// Update advances the session by dt seconds. Paused and finished sessions
// are returned unchanged.
//
// Frame order: catcher and objects move, the spawner may add one object,
// collisions partition the objects, catches then misses are scored, and
// finally shake and floating texts advance. Labels created by this frame's
// catches start moving on the next frame. When lives run out during scoring
// the frame stops there.
func (s *Sim) Update(prev State, dt float64, in Intent, rng Rand) (State, Outcome) {
	var out Outcome
	if prev.Paused || prev.Over {
		return prev, out
	}
	if dt < 0 {
		dt = 0
	}
	dtMs := dt * 1000

	st := prev.clone()
	st.Played += dt
	level := s.Level(st)
	st.Difficulty = level

	st.Catcher = s.moveCatcher(st.Catcher, dt, in)
	fall(st.Objects, s.FallSpeed(level), dt)

	if obj, ok := s.spawn(&st, dt, level, rng); ok {
		out.Spawned = append(out.Spawned, obj)
	}

	part := Resolve(st.Objects, st.Catcher.Basket(), s.cfg.Field.Height)
	st.Objects = part.Active
	out.Caught = part.Caught
	out.Missed = part.Missed

	st.Combo = tickCombo(st.Combo, dtMs)
	born := len(st.Texts)
	for _, o := range part.Caught {
		s.applyCatch(&st, o, &out)
		if st.Lives <= 0 {
			return end(st, out)
		}
	}
	for _, o := range part.Missed {
		s.applyMiss(&st, o, &out)
		if st.Lives <= 0 {
			return end(st, out)
		}
	}

	st.Shake = st.Shake.Advance(dtMs, rng)
	fresh := st.Texts[born:]
	st.Texts = append(advanceTexts(st.Texts[:born:born], dt), fresh...)
	return st, out
}

func end(st State, out Outcome) (State, Outcome) {
	st.Lives = 0
	st.Over = true
	out.Ended = true
	return st, out
}
