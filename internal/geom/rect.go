package geom

// Rect is an axis-aligned rectangle in y-up coordinates.
// X and Y are the bottom-left corner; Width and Height are dimensions.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectOf builds a Rect from a position and a dimensions vector.
func RectOf(pos, dim Vec) Rect {
	return Rect{X: pos.X, Y: pos.Y, Width: dim.X, Height: dim.Y}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y + r.Height
}

// Position returns the bottom-left corner.
func (r Rect) Position() Vec {
	return Vec{X: r.X, Y: r.Y}
}

// Size returns the dimensions as a vector.
func (r Rect) Size() Vec {
	return Vec{X: r.Width, Y: r.Height}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the point (x, y) is inside the rectangle.
// Points on the left and bottom edges are inside; points on the right and top edges are outside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Top()
}

// ContainsRect returns true if the other rectangle is fully contained within this rectangle.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Top() <= r.Top()
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Bounds returns the rectangle in left/bottom/right/top form.
func (r Rect) Bounds() Bounds {
	return Bounds{Left: r.X, Bottom: r.Y, Right: r.Right(), Top: r.Top()}
}
