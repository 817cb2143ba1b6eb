package catcher

import "github.com/vovakirdan/eggcatch/internal/core"

// FallingObject is a live egg or bomb.
type FallingObject struct {
	ID   uint64
	Kind Kind
	X, Y float64 // top-left corner
	W, H float64
	VY   float64 // units per second, positive = down
}

// Bounds returns the object's bounding box.
func (o FallingObject) Bounds() core.Box {
	return core.NewBox(o.X, o.Y, o.W, o.H)
}

// Catcher is the player's body. Only the basket participates in collisions.
type Catcher struct {
	X, Y float64
	W, H float64

	BasketW, BasketH float64
	BasketOffsetY    float64
}

// Basket returns the receiving hitbox: centred on the body, offset down from its top.
func (c Catcher) Basket() core.Box {
	return core.NewBox(c.X+(c.W-c.BasketW)/2, c.Y+c.BasketOffsetY, c.BasketW, c.BasketH)
}

// Body returns the full catcher rectangle.
func (c Catcher) Body() core.Box {
	return core.NewBox(c.X, c.Y, c.W, c.H)
}

// FloatingText is a short-lived score label drifting up from a catch.
type FloatingText struct {
	Text    string
	X, Y    float64
	VY      float64
	Life    float64 // seconds remaining
	Opacity float64
}

// ComboState tracks consecutive scoring catches.
type ComboState struct {
	Counter     int
	Active      bool
	RemainingMs float64
}

// ShakeState is the screen shake effect. DX/DY is the offset drawn this frame.
type ShakeState struct {
	Magnitude   float64
	RemainingMs float64
	DX, DY      float64
}
