package tui

import (
	"time"

	"github.com/vovakirdan/eggcatch/internal/games/catcher"
)

// Terminals report key presses and auto-repeats but never releases. A key
// counts as held until no press arrives for a while. The first window covers
// the keyboard's repeat delay; later ones only the repeat interval.
const (
	holdFirst  = 300 * time.Millisecond
	holdRepeat = 120 * time.Millisecond
)

// HoldTracker turns a stream of key presses into held/released state.
type HoldTracker struct {
	first, repeat time.Duration
	until         [2]time.Time
}

// NewHoldTracker creates a tracker with the default windows.
func NewHoldTracker() *HoldTracker {
	return &HoldTracker{first: holdFirst, repeat: holdRepeat}
}

func dirIndex(d catcher.Direction) int {
	if d == catcher.DirRight {
		return 1
	}
	return 0
}

// Press records a press at now. Pressing one direction releases the other.
func (h *HoldTracker) Press(d catcher.Direction, now time.Time) {
	i := dirIndex(d)
	window := h.first
	if now.Before(h.until[i]) {
		window = h.repeat
	}
	if until := now.Add(window); until.After(h.until[i]) {
		h.until[i] = until
	}
	h.until[1-i] = time.Time{}
}

// Held reports whether d is still down at now.
func (h *HoldTracker) Held(d catcher.Direction, now time.Time) bool {
	return now.Before(h.until[dirIndex(d)])
}

// Release drops both directions.
func (h *HoldTracker) Release() {
	h.until = [2]time.Time{}
}
