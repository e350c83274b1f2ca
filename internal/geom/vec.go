package geom

// Vec is a 2D vector used for positions and dimensions.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v offset by other.
func (v Vec) Add(other Vec) Vec {
	return Vec{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v with other subtracted.
func (v Vec) Sub(other Vec) Vec {
	return Vec{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns v with each axis multiplied by the matching axis of f.
func (v Vec) Scale(f Vec) Vec {
	return Vec{X: v.X * f.X, Y: v.Y * f.Y}
}

// Ratio returns v divided axis-wise by other.
// A zero axis in other yields zero for that axis rather than Inf or NaN.
func (v Vec) Ratio(other Vec) Vec {
	var r Vec
	if other.X != 0 {
		r.X = v.X / other.X
	}
	if other.Y != 0 {
		r.Y = v.Y / other.Y
	}
	return r
}

// Max returns the axis-wise maximum of v and other.
func (v Vec) Max(other Vec) Vec {
	return Vec{X: max(v.X, other.X), Y: max(v.Y, other.Y)}
}

// In returns true if the point is inside the given rectangle.
func (v Vec) In(r Rect) bool {
	return r.Contains(v.X, v.Y)
}

// Clamp constrains v to [lo, hi]. If hi < lo, lo wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
