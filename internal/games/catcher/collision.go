package catcher

import "github.com/vovakirdan/eggcatch/internal/core"

// Partition is the collision result for one frame. Every input object lands
// in exactly one of the three slices.
type Partition struct {
	Caught []FallingObject
	Missed []FallingObject
	Active []FallingObject
}

// Resolve splits objects into caught, missed and still falling. The caught
// test runs first, so an object overlapping the basket below the floor counts
// as caught. Missed means the top edge is past the field bottom.
func Resolve(objects []FallingObject, basket core.Box, fieldHeight float64) Partition {
	var p Partition
	remaining := make([]FallingObject, 0, len(objects))
	for _, o := range objects {
		if o.Bounds().Overlaps(basket) {
			p.Caught = append(p.Caught, o)
			continue
		}
		remaining = append(remaining, o)
	}

	for _, o := range remaining {
		if o.Y > fieldHeight {
			p.Missed = append(p.Missed, o)
			continue
		}
		p.Active = append(p.Active, o)
	}
	return p
}
