package declwin

// Point is a position in pixels relative to the parent's client area.
type Point struct {
	X, Y int
}

// Size is a width/height pair in pixels.
type Size struct {
	W, H int
}

// Rect is a positioned rectangle in pixels.
type Rect struct {
	X, Y, W, H int
}

// Pos returns the rectangle's origin.
func (r Rect) Pos() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

// Insets is a per-edge pixel budget used for layout margins and
// padding, in CSS order.
type Insets struct {
	Top, Right, Bottom, Left int
}

// InsetsAll returns uniform insets on every edge.
func InsetsAll(n int) Insets {
	return Insets{Top: n, Right: n, Bottom: n, Left: n}
}

// IsZero reports whether every edge is zero.
func (i Insets) IsZero() bool {
	return i == Insets{}
}
