package catcher

import "github.com/vovakirdan/eggcatch/internal/config"

// SpawnInterval returns the seconds between spawns at a difficulty level.
func (s *Sim) SpawnInterval(level float64) float64 {
	return config.Lerp(s.cfg.Spawn.InitialInterval, s.cfg.Spawn.FloorInterval, level)
}

// spawn advances the accumulator and appends at most one object.
func (s *Sim) spawn(st *State, dt, level float64, rng Rand) (FallingObject, bool) {
	st.SpawnTimer += dt
	if st.SpawnTimer <= s.SpawnInterval(level) {
		return FallingObject{}, false
	}
	st.SpawnTimer = 0

	obj := s.newObject(st.NextID, PickKind(rng.Float64(), s.cfg.Objects.Kinds), rng)
	st.NextID++
	st.Objects = append(st.Objects, obj)
	return obj, true
}

func (s *Sim) newObject(id uint64, kind Kind, rng Rand) FallingObject {
	o := s.cfg.Objects
	w, h := o.EggWidth, o.EggHeight
	if kind == KindBomb {
		w, h = 2*o.BombRadius, 2*o.BombRadius
	}
	return FallingObject{
		ID:   id,
		Kind: kind,
		X:    rng.Float64() * (s.cfg.Field.Width - w),
		Y:    -o.EggHeight,
		W:    w,
		H:    h,
	}
}
