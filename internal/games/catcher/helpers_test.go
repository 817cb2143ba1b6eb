package catcher

import (
	"testing"

	"github.com/vovakirdan/eggcatch/internal/config"
)

// scriptRand replays a fixed sequence of draws, cycling when exhausted.
type scriptRand struct {
	vals []float64
	i    int
}

func (r *scriptRand) Float64() float64 {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

// tick is a frame short enough that nothing spawns and nothing moves far.
const tick = 0.001

func newTestSim(t *testing.T) *Sim {
	t.Helper()
	return NewSim(config.DefaultCatcherConfig())
}

// onBasket returns an object overlapping the catcher's basket.
func onBasket(st *State, kind Kind) FallingObject {
	b := st.Catcher.Basket()
	o := FallingObject{ID: st.NextID, Kind: kind, X: b.X + 10, Y: b.Y - 10, W: 30, H: 40}
	st.NextID++
	return o
}

// pastFloor returns an object whose top edge is below the field, away from the basket.
func pastFloor(s *Sim, st *State, kind Kind) FallingObject {
	o := FallingObject{ID: st.NextID, Kind: kind, X: 0, Y: s.Config().Field.Height + 1, W: 30, H: 40}
	st.NextID++
	return o
}

// catchOne runs a frame with a single object of the kind in the basket.
func catchOne(s *Sim, st State, kind Kind) (State, Outcome) {
	st.Objects = append(st.Objects, onBasket(&st, kind))
	return s.Update(st, tick, Intent{}, &scriptRand{vals: []float64{0.5}})
}

func missOne(s *Sim, st State, kind Kind) (State, Outcome) {
	st.Objects = append(st.Objects, pastFloor(s, &st, kind))
	return s.Update(st, tick, Intent{}, &scriptRand{vals: []float64{0.5}})
}
