// geom.go re-exports geometry types from internal/geom.
// Any changes to internal/geom types must be mirrored here.
package uitree

import "github.com/grindlemire/go-uitree/internal/geom"

// Vec is a 2D vector used for positions and dimensions.
type Vec = geom.Vec

// Rect is an axis-aligned rectangle in y-up coordinates.
type Rect = geom.Rect

// Bounds is a rectangle in left/bottom/right/top form, used for clip regions.
type Bounds = geom.Bounds

// Edges represents padding on four sides (left, right, top, bottom).
type Edges = geom.Edges

// V creates a Vec.
func V(x, y float64) Vec {
	return geom.V(x, y)
}

// NewRect creates a Rect from its bottom-left corner and size.
func NewRect(x, y, width, height float64) Rect {
	return geom.NewRect(x, y, width, height)
}

// NewBounds creates a Bounds from its four edges.
func NewBounds(left, bottom, right, top float64) Bounds {
	return geom.NewBounds(left, bottom, right, top)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return geom.EdgeAll(n)
}

// EdgeLRTB creates Edges in left, right, top, bottom order.
func EdgeLRTB(l, r, t, b float64) Edges {
	return geom.EdgeLRTB(l, r, t, b)
}

// RectOf creates a Rect from a position and a size.
func RectOf(pos, dim Vec) Rect {
	return geom.RectOf(pos, dim)
}
