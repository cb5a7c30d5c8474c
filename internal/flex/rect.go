package flex

// Rect represents a rectangle with integer pixel coordinates.
// X and Y are the top-left corner; Width and Height are dimensions.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inset returns a new Rect inset by the given Edges.
// Positive values shrink the rectangle; negative values expand it.
func (r Rect) Inset(edges Edges) Rect {
	return Rect{
		X:      r.X + edges.Left,
		Y:      r.Y + edges.Top,
		Width:  r.Width - edges.Left - edges.Right,
		Height: r.Height - edges.Top - edges.Bottom,
	}
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}
