package catcher

// Direction is a discrete horizontal input.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// Intent is the movement request for one frame.
type Intent struct {
	Left, Right bool

	// PointerX is in field units. When HasPointer is set it overrides the keys.
	PointerX   float64
	HasPointer bool
}

// Aggregator folds key and pointer events into an Intent.
type Aggregator struct {
	left, right bool
	pointerX    float64
	hasPointer  bool
}

// KeyDown marks a direction as held.
func (a *Aggregator) KeyDown(d Direction) {
	switch d {
	case DirLeft:
		a.left = true
	case DirRight:
		a.right = true
	}
}

// KeyUp releases a direction.
func (a *Aggregator) KeyUp(d Direction) {
	switch d {
	case DirLeft:
		a.left = false
	case DirRight:
		a.right = false
	}
}

// PointerMove records a pointer position given in host display coordinates.
// scale is display units per field unit; non-positive scales are treated as 1.
func (a *Aggregator) PointerMove(displayX, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	a.pointerX = displayX / scale
	a.hasPointer = true
}

// PointerUp ends pointer control; the keys take over again.
func (a *Aggregator) PointerUp() {
	a.hasPointer = false
}

// Intent returns the current movement request.
func (a *Aggregator) Intent() Intent {
	return Intent{
		Left:       a.left,
		Right:      a.right,
		PointerX:   a.pointerX,
		HasPointer: a.hasPointer,
	}
}

// Reset releases every input.
func (a *Aggregator) Reset() {
	*a = Aggregator{}
}
