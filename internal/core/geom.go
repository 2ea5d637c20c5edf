// Package core provides the platform types shared by the terminal front end
// and the game adapters: input frames, the cell screen buffer, colors and
// small geometry helpers. It has no UI dependencies.
package core

// Rect represents an axis-aligned box on the screen, used for panels and HUD layout.
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
