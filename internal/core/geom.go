// Package core holds the screen buffer, input frame and geometry shared by
// the game and its frontends. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Vec2 is a point in simulation space.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned area of screen cells.
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

// RectsOverlap reports whether two axis-aligned rectangles, given by center and
// full width/height, intersect. Touching edges do not count as overlap.
func RectsOverlap(cx1, cy1, w1, h1, cx2, cy2, w2, h2 float64) bool {
	if math.Abs(cx1-cx2)*2 >= w1+w2 {
		return false
	}
	if math.Abs(cy1-cy2)*2 >= h1+h2 {
		return false
	}
	return true
}

// CirclesWithin reports whether the distance between (ax, ay) and (bx, by)
// is strictly less than threshold.
func CirclesWithin(ax, ay, bx, by, threshold float64) bool {
	dx := ax - bx
	dy := ay - by
	return dx*dx+dy*dy < threshold*threshold
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
