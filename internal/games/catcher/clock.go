package catcher

import "time"

// Elapsed converts two frame timestamps into seconds.
// Zero or negative elapsed time yields 0. When maxStep > 0 the result never
// exceeds it, so a stalled frame cannot carry objects through the basket in
// one step.
func Elapsed(prev, now time.Time, maxStep float64) float64 {
	dt := now.Sub(prev).Seconds()
	if dt <= 0 {
		return 0
	}
	if maxStep > 0 && dt > maxStep {
		return maxStep
	}
	return dt
}

// Clock remembers the previous frame timestamp.
type Clock struct {
	MaxStep float64

	prev    time.Time
	started bool
}

// Tick returns the seconds since the previous tick. The first tick returns 0.
func (c *Clock) Tick(now time.Time) float64 {
	if !c.started {
		c.prev = now
		c.started = true
		return 0
	}
	dt := Elapsed(c.prev, now, c.MaxStep)
	if now.After(c.prev) {
		c.prev = now
	}
	return dt
}

// Reset forgets the previous timestamp; the next tick returns 0.
func (c *Clock) Reset() {
	c.started = false
	c.prev = time.Time{}
}
