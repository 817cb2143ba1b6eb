// Package core provides fundamental types and utilities for the eggcatch platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in terminal cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box is an axis-aligned bounding box in field units (float coordinates).
// The simulation works in field units; the platform projects them onto cells.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewBox creates a box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Overlaps reports strict overlap: boxes that only touch along an edge do not overlap.
func (b Box) Overlaps(other Box) bool {
	return b.Right() > other.X && b.X < other.Right() &&
		b.Bottom() > other.Y && b.Y < other.Bottom()
}

// ToCells projects the box onto a cell grid using per-axis scale factors
// (cells per field unit). Every non-empty box covers at least one cell.
func (b Box) ToCells(scaleX, scaleY float64) Rect {
	x := int(math.Floor(b.X * scaleX))
	y := int(math.Floor(b.Y * scaleY))
	w := int(math.Round(b.W * scaleX))
	h := int(math.Round(b.H * scaleY))
	if w < 1 && b.W > 0 {
		w = 1
	}
	if h < 1 && b.H > 0 {
		h = 1
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
