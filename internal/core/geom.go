// Package core provides the contract between a game and the host that drives it.
// It contains no external dependencies (especially no Bubble Tea or Ebitengine)
// to keep game logic pure and testable.
package core

// Rect is an axis-aligned box in world cells. Right and Bottom are exclusive.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// WithExact creates a rectangle from its two corners (x1, y1) and (x2, y2).
func WithExact(x1, y1, x2, y2 int) Rect {
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// CrossesColumn reports whether column x lies in (X, Right]. A wall on the
// box's left edge has already been cleared; one on the right edge is touching.
func (r Rect) CrossesColumn(x int) bool {
	return r.X < x && x <= r.Right()
}

// LeavesBand reports whether any row of r lies outside [top, bottom).
func (r Rect) LeavesBand(top, bottom int) bool {
	return r.Y < top || r.Bottom() > bottom
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	return max(lo, min(val, hi))
}
