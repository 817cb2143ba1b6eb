package catcher

import (
	"testing"
	"time"
)

func TestElapsed(t *testing.T) {
	base := time.Unix(1000, 0)

	tests := []struct {
		name     string
		now      time.Time
		maxStep  float64
		expected float64
	}{
		{"normal frame", base.Add(16 * time.Millisecond), 0.25, 0.016},
		{"zero", base, 0.25, 0},
		{"backwards", base.Add(-time.Second), 0.25, 0},
		{"stall clamped", base.Add(10 * time.Second), 0.25, 0.25},
		{"stall unclamped", base.Add(10 * time.Second), 0, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Elapsed(base, tc.now, tc.maxStep); got != tc.expected {
				t.Errorf("Elapsed() = %g, expected %g", got, tc.expected)
			}
		})
	}
}

func TestClockTick(t *testing.T) {
	c := Clock{MaxStep: 0.25}
	t0 := time.Unix(1000, 0)

	if dt := c.Tick(t0); dt != 0 {
		t.Errorf("first tick = %g, expected 0", dt)
	}
	if dt := c.Tick(t0.Add(100 * time.Millisecond)); dt != 0.1 {
		t.Errorf("second tick = %g, expected 0.1", dt)
	}
	// A timestamp from the past is ignored and does not rewind the clock
	if dt := c.Tick(t0); dt != 0 {
		t.Errorf("backwards tick = %g, expected 0", dt)
	}
	if dt := c.Tick(t0.Add(200 * time.Millisecond)); dt != 0.1 {
		t.Errorf("tick after backwards = %g, expected 0.1", dt)
	}

	c.Reset()
	if dt := c.Tick(t0.Add(time.Hour)); dt != 0 {
		t.Errorf("tick after reset = %g, expected 0", dt)
	}
}
