package uitree

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZOrder_ScreenRoots(t *testing.T) {
	s, rec := newTestScreen(t)
	a := mustRoot(t, s, "a", V(0, 0), V(10, 10))
	b := mustRoot(t, s, "b", V(0, 0), V(10, 10))
	c := mustRoot(t, s, "c", V(0, 0), V(10, 10))

	assert.Equal(t, 10.0, a.ZOrder())
	assert.Equal(t, 20.0, b.ZOrder())
	assert.Equal(t, 30.0, c.ZOrder())
	assert.Equal(t, 30.0, rec.depths[c])
}

func TestZOrder_ChildrenShareParentSpan(t *testing.T) {
	type tc struct {
		withText  []bool
		wantZ     []float64
		wantTextZ []float64
	}

	// Root span is the screen step of 10.
	tests := map[string]tc{
		"plain children": {
			withText: []bool{false, false, false},
			wantZ:    []float64{2.5, 5, 7.5},
		},
		"text layer takes the next slot": {
			withText:  []bool{false, true, false},
			wantZ:     []float64{2, 4, 8},
			wantTextZ: []float64{0, 6, 0},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, _ := newTestScreen(t)
			p := mustRoot(t, s, "P", V(0, 0), V(100, 100))
			texts := make([]*textRecorder, len(tt.withText))
			for i, hasText := range tt.withText {
				var opts []Option
				if hasText {
					texts[i] = &textRecorder{}
					opts = append(opts, WithTextLayer(texts[i]))
				}
				mustChild(t, p, fmt.Sprintf("c%d", i), V(0, 0), V(10, 10), opts...)
			}

			for i, c := range p.Children() {
				assert.Equal(t, tt.wantZ[i], c.ZOrder(), c.Key())
				if texts[i] != nil {
					assert.Equal(t, tt.wantTextZ[i], c.TextZOrder())
					assert.Equal(t, tt.wantTextZ[i], texts[i].depth)
				}
			}
		})
	}
}

// buildTree attaches a fixed-shape tree of the given depth and fan-out,
// giving every other element a text layer.
func buildTree(t *testing.T, parent *Element, prefix string, depth, fanout int) {
	t.Helper()
	if depth == 0 {
		return
	}
	for i := 0; i < fanout; i++ {
		key := fmt.Sprintf("%s.%d", prefix, i)
		var opts []Option
		if i%2 == 1 {
			opts = append(opts, WithTextLayer(&textRecorder{}))
		}
		c := mustChild(t, parent, key, V(0, 0), V(10, 10), opts...)
		buildTree(t, c, key, depth-1, fanout)
	}
}

func TestZOrder_SiblingsStrictlyIncreaseAndNeverOverlap(t *testing.T) {
	s, _ := newTestScreen(t)
	r := mustRoot(t, s, "R", V(0, 0), V(100, 100))
	buildTree(t, r, "R", 3, 3)
	mustRoot(t, s, "S", V(0, 0), V(100, 100))

	s.Walk(func(e *Element) {
		seen := map[float64]bool{}
		last := 0.0
		for _, c := range e.Children() {
			assert.Greater(t, c.ZOrder(), last, c.Key())
			assert.False(t, seen[c.ZOrder()], "duplicate z for %s", c.Key())
			seen[c.ZOrder()] = true
			last = c.ZOrder()
			if c.TextLayer() != nil {
				assert.Greater(t, c.TextZOrder(), c.ZOrder())
				assert.False(t, seen[c.TextZOrder()])
				seen[c.TextZOrder()] = true
				last = c.TextZOrder()
			}
		}
		assert.Less(t, last, e.ZSpan(), "children stay inside the parent's span")

		// Every descendant stacks above e and below the next slot.
		base := e.AbsoluteZOrder()
		e.Walk(func(d *Element) {
			if d == e {
				return
			}
			assert.Greater(t, d.AbsoluteZOrder(), base)
			assert.Less(t, d.AbsoluteZOrder(), base+e.ZSpan())
		})
	})
}

func TestZOrder_ReassignedAfterRemoval(t *testing.T) {
	s, _ := newTestScreen(t)
	p := mustRoot(t, s, "P", V(0, 0), V(100, 100))
	a := mustChild(t, p, "a", V(0, 0), V(10, 10))
	b := mustChild(t, p, "b", V(0, 0), V(10, 10))
	c := mustChild(t, p, "c", V(0, 0), V(10, 10))

	require.NoError(t, p.RemoveChild(b))

	assert.Equal(t, 10.0/3, a.ZOrder())
	assert.Equal(t, 20.0/3, c.ZOrder())
}

func TestBringToFront(t *testing.T) {
	s, rec := newTestScreen(t)
	cleaned := false
	p := mustRoot(t, s, "P", V(0, 0), V(100, 100))
	a := mustChild(t, p, "a", V(0, 0), V(10, 10), WithOnCleanup(func(*Element) { cleaned = true }))
	mustChild(t, p, "b", V(0, 0), V(10, 10))
	c := mustChild(t, p, "c", V(0, 0), V(10, 10))
	p.AddClippingLayer(p)

	a.BringToFront()

	assert.Equal(t, []string{"b", "c", "a"}, keys(p.Children()))
	assert.Greater(t, a.ZOrder(), c.ZOrder())
	assert.Equal(t, a.ZOrder(), rec.depths[a])
	assert.False(t, cleaned, "no lifecycle hooks run")
	assert.True(t, a.HasClippingLayers(), "providers are kept")
	assert.Same(t, p, a.Parent())

	a.BringToFront()
	assert.Equal(t, []string{"b", "c", "a"}, keys(p.Children()))
}

func TestBringToFront_ScreenRoot(t *testing.T) {
	s, _ := newTestScreen(t)
	a := mustRoot(t, s, "a", V(0, 0), V(10, 10))
	b := mustRoot(t, s, "b", V(0, 0), V(10, 10))

	a.BringToFront()

	assert.Equal(t, []string{"b", "a"}, keys(s.Roots()))
	assert.Equal(t, 20.0, a.ZOrder())
	assert.Equal(t, 10.0, b.ZOrder())
}

func TestSetTextLayer_ReassignsSiblings(t *testing.T) {
	s, _ := newTestScreen(t)
	p := mustRoot(t, s, "P", V(0, 0), V(100, 100))
	a := mustChild(t, p, "a", V(0, 0), V(10, 10))
	b := mustChild(t, p, "b", V(0, 0), V(10, 10))
	require.Equal(t, 10.0/3, a.ZOrder())

	text := &textRecorder{}
	a.SetTextLayer(text)

	assert.Equal(t, 2.5, a.ZOrder())
	assert.Equal(t, 5.0, a.TextZOrder())
	assert.Equal(t, 7.5, b.ZOrder())
	assert.Equal(t, 5.0, text.depth)
}
