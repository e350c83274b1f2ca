package geom

// Edges represents padding values for four sides of a box.
// Positive values shrink a Bounds inward.
type Edges struct {
	Left, Right, Top, Bottom float64
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return Edges{Left: n, Right: n, Top: n, Bottom: n}
}

// EdgeLRTB creates Edges in left, right, top, bottom order.
func EdgeLRTB(l, r, t, b float64) Edges {
	return Edges{Left: l, Right: r, Top: t, Bottom: b}
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() float64 {
	return e.Top + e.Bottom
}

// IsZero returns true if all edge values are zero.
func (e Edges) IsZero() bool {
	return e.Top == 0 && e.Right == 0 && e.Bottom == 0 && e.Left == 0
}
