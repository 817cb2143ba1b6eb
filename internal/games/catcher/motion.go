package catcher

import (
	"github.com/vovakirdan/eggcatch/internal/config"
	"github.com/vovakirdan/eggcatch/internal/core"
)

// FallSpeed returns the uniform fall speed at a difficulty level.
func (s *Sim) FallSpeed(level float64) float64 {
	o := s.cfg.Objects
	return config.Lerp(o.InitialSpeed, o.InitialSpeed+o.MaxSpeedBonus, level)
}

// moveCatcher applies the intent. The pointer wins over the keys and closes a
// fixed fraction of the gap per frame; keys move at constant speed.
func (s *Sim) moveCatcher(c Catcher, dt float64, in Intent) Catcher {
	body := s.cfg.Catcher
	if in.HasPointer {
		target := in.PointerX - c.W/2
		c.X += (target - c.X) * body.PointerSmoothing
	} else {
		if in.Left {
			c.X -= body.Speed * dt
		}
		if in.Right {
			c.X += body.Speed * dt
		}
	}
	c.X = core.ClampF(c.X, 0, s.cfg.Field.Width-c.W)
	return c
}

// fall moves every object straight down.
func fall(objects []FallingObject, speed, dt float64) {
	for i := range objects {
		objects[i].VY = speed
		objects[i].Y += speed * dt
	}
}
