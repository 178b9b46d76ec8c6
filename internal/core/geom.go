// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an integer rectangle in screen cells, used for drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned box in world units described by its center and
// half extents. X is the lateral axis, Z the direction of travel.
type Box struct {
	X, Z   float64 // Center
	HW, HL float64 // Half width (X), half length (Z)
}

// NewBox creates a box centered on (x, z).
func NewBox(x, z, halfW, halfL float64) Box {
	return Box{X: x, Z: z, HW: halfW, HL: halfL}
}

// Overlaps reports whether both axis intervals overlap.
// Boxes that only touch on an edge do not overlap.
func (b Box) Overlaps(o Box) bool {
	return math.Abs(b.X-o.X) < b.HW+o.HW && math.Abs(b.Z-o.Z) < b.HL+o.HL
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
