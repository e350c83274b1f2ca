package geom

// Bounds is a rectangle in left/bottom/right/top form.
// Unlike Rect, a Bounds is not normalized: an intersection of disjoint areas
// keeps its inverted edges so callers can detect it with IsDegenerate.
type Bounds struct {
	Left, Bottom, Right, Top float64
}

// NewBounds creates a Bounds from its four edges.
func NewBounds(left, bottom, right, top float64) Bounds {
	return Bounds{Left: left, Bottom: bottom, Right: right, Top: top}
}

// Width returns Right - Left. It is negative for inverted bounds.
func (b Bounds) Width() float64 {
	return b.Right - b.Left
}

// Height returns Top - Bottom. It is negative for inverted bounds.
func (b Bounds) Height() float64 {
	return b.Top - b.Bottom
}

// IsDegenerate returns true when the bounds enclose no area.
func (b Bounds) IsDegenerate() bool {
	return b.Right <= b.Left || b.Top <= b.Bottom
}

// Intersect keeps the larger left/bottom and the smaller right/top.
func (b Bounds) Intersect(other Bounds) Bounds {
	return Bounds{
		Left:   max(b.Left, other.Left),
		Bottom: max(b.Bottom, other.Bottom),
		Right:  min(b.Right, other.Right),
		Top:    min(b.Top, other.Top),
	}
}

// Shrink moves every edge inward by the matching padding value.
func (b Bounds) Shrink(e Edges) Bounds {
	return Bounds{
		Left:   b.Left + e.Left,
		Bottom: b.Bottom + e.Bottom,
		Right:  b.Right - e.Right,
		Top:    b.Top - e.Top,
	}
}

// Translate returns the bounds moved by (dx, dy).
func (b Bounds) Translate(dx, dy float64) Bounds {
	return Bounds{Left: b.Left + dx, Bottom: b.Bottom + dy, Right: b.Right + dx, Top: b.Top + dy}
}

// Rect converts the bounds back to origin-plus-size form.
// Degenerate bounds produce an empty Rect at the origin.
func (b Bounds) Rect() Rect {
	if b.IsDegenerate() {
		return Rect{}
	}
	return Rect{X: b.Left, Y: b.Bottom, Width: b.Width(), Height: b.Height()}
}
