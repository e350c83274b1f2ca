package geom

import "testing"

func TestBounds_Intersect(t *testing.T) {
	type tc struct {
		a, b       Bounds
		expected   Bounds
		degenerate bool
	}

	tests := map[string]tc{
		"nested": {
			a:        NewBounds(0, 0, 100, 100),
			b:        NewBounds(20, 20, 80, 80),
			expected: NewBounds(20, 20, 80, 80),
		},
		"overlapping": {
			a:        NewBounds(0, 0, 50, 50),
			b:        NewBounds(25, 10, 75, 60),
			expected: NewBounds(25, 10, 50, 50),
		},
		"disjoint": {
			a:          NewBounds(0, 0, 10, 10),
			b:          NewBounds(50, 50, 60, 60),
			expected:   NewBounds(50, 50, 10, 10),
			degenerate: true,
		},
		"touching edges": {
			a:          NewBounds(0, 0, 10, 10),
			b:          NewBounds(10, 0, 20, 10),
			expected:   NewBounds(10, 0, 10, 10),
			degenerate: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.a.Intersect(tt.b)
			if got != tt.expected {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.expected)
			}
			if got.IsDegenerate() != tt.degenerate {
				t.Errorf("IsDegenerate() = %v, want %v", got.IsDegenerate(), tt.degenerate)
			}
		})
	}
}

func TestBounds_Shrink(t *testing.T) {
	type tc struct {
		bounds   Bounds
		edges    Edges
		expected Bounds
	}

	tests := map[string]tc{
		"uniform": {
			bounds:   NewBounds(0, 0, 100, 100),
			edges:    EdgeAll(5),
			expected: NewBounds(5, 5, 95, 95),
		},
		"per side": {
			bounds:   NewBounds(0, 0, 100, 100),
			edges:    EdgeLRTB(1, 2, 3, 4),
			expected: NewBounds(1, 4, 98, 97),
		},
		"negative expands": {
			bounds:   NewBounds(10, 10, 20, 20),
			edges:    EdgeAll(-2),
			expected: NewBounds(8, 8, 22, 22),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.bounds.Shrink(tt.edges); got != tt.expected {
				t.Errorf("Shrink(%+v) = %+v, want %+v", tt.edges, got, tt.expected)
			}
		})
	}
}

func TestBounds_Rect(t *testing.T) {
	if got := NewBounds(10, 20, 40, 60).Rect(); got != NewRect(10, 20, 30, 40) {
		t.Errorf("Rect() = %+v, want {10 20 30 40}", got)
	}
	if got := NewBounds(50, 50, 10, 10).Rect(); got != (Rect{}) {
		t.Errorf("Rect() of degenerate bounds = %+v, want zero Rect", got)
	}
}

func TestClamp(t *testing.T) {
	type tc struct {
		v, lo, hi, want float64
	}

	tests := map[string]tc{
		"within":        {v: 5, lo: 0, hi: 10, want: 5},
		"below":         {v: -1, lo: 0, hi: 10, want: 0},
		"above":         {v: 11, lo: 0, hi: 10, want: 10},
		"inverted wins": {v: 5, lo: 8, hi: 2, want: 8},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestVec_Ratio(t *testing.T) {
	if got := V(50, 25).Ratio(V(200, 100)); got != V(0.25, 0.25) {
		t.Errorf("Ratio() = %+v, want {0.25 0.25}", got)
	}
	if got := V(50, 25).Ratio(V(0, 100)); got != V(0, 0.25) {
		t.Errorf("Ratio() with zero axis = %+v, want {0 0.25}", got)
	}
}
