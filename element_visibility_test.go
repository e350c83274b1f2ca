package uitree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hookCounter struct {
	shows, hides int
}

func (h *hookCounter) opts() []Option {
	return []Option{
		WithOnShow(func(*Element) { h.shows++ }),
		WithOnHide(func(*Element) { h.hides++ }),
	}
}

func TestShow_AlreadyVisibleIsNoop(t *testing.T) {
	s, rec := newTestScreen(t)
	var hooks hookCounter
	e := mustRoot(t, s, "e", V(0, 0), V(10, 10), hooks.opts()...)
	clipsBefore := rec.clips[e]

	e.Show()
	e.Show()

	assert.Equal(t, 0, hooks.shows)
	assert.True(t, e.IsVisible())
	assert.Equal(t, clipsBefore, rec.clips[e])
}

func TestHide_FiresHooksOnTransitionOnly(t *testing.T) {
	s, rec := newTestScreen(t)
	var hooks hookCounter
	e := mustRoot(t, s, "e", V(0, 0), V(10, 10), hooks.opts()...)

	e.Hide()
	e.Hide()

	assert.Equal(t, 1, hooks.hides)
	assert.False(t, e.IsVisible())
	assert.False(t, rec.attached[e])

	e.Show()
	assert.Equal(t, 1, hooks.shows)
	assert.True(t, rec.attached[e], "show reattaches to the scene graph")
	assert.Nil(t, rec.sceneParents[e])
}

// visibilityTree builds
//
//	R
//	├── a
//	│   └── aa (hidden)
//	└── b (hidden)
//	    └── bb
func visibilityTree(t *testing.T) (s *Screen, r, a, aa, b, bb *Element) {
	t.Helper()
	s, _ = newTestScreen(t)
	r = mustRoot(t, s, "R", V(0, 0), V(400, 400))
	a = mustChild(t, r, "a", V(0, 0), V(100, 100))
	aa = mustChild(t, a, "aa", V(0, 0), V(10, 10))
	b = mustChild(t, r, "b", V(0, 0), V(100, 100))
	bb = mustChild(t, b, "bb", V(0, 0), V(10, 10))
	aa.Hide()
	b.Hide()
	return s, r, a, aa, b, bb
}

func visibility(list ...*Element) []bool {
	out := make([]bool, len(list))
	for i, e := range list {
		out[i] = e.IsVisible()
	}
	return out
}

func TestHideShow_RoundTrip(t *testing.T) {
	_, r, a, aa, b, bb := visibilityTree(t)
	before := visibility(r, a, aa, b, bb)
	require.Equal(t, []bool{true, true, false, false, false}, before)

	r.Hide()
	assert.Equal(t, []bool{false, false, false, false, false}, visibility(r, a, aa, b, bb))

	r.Show()
	assert.Equal(t, before, visibility(r, a, aa, b, bb))

	b.Show()
	assert.True(t, bb.IsVisible(), "bb was visible when b was hidden")
}

func TestHideShow_RepeatedAncestorHideKeepsSnapshot(t *testing.T) {
	_, r, a, aa, b, bb := visibilityTree(t)
	before := visibility(r, a, aa, b, bb)

	r.Hide()
	r.Hide()
	r.Show()

	assert.Equal(t, before, visibility(r, a, aa, b, bb))
}

func TestHideShow_NestedHides(t *testing.T) {
	s, _ := newTestScreen(t)
	r := mustRoot(t, s, "R", V(0, 0), V(400, 400))
	m := mustChild(t, r, "M", V(0, 0), V(100, 100))
	l := mustChild(t, m, "L", V(0, 0), V(10, 10))

	m.Hide()
	r.Hide()
	r.Show()

	assert.True(t, r.IsVisible())
	assert.False(t, m.IsVisible())
	assert.False(t, l.IsVisible())

	m.Show()
	assert.True(t, l.IsVisible())
}

func TestHideShow_ReparentedElementSnapshotsAgain(t *testing.T) {
	s, r, a, aa, _, _ := visibilityTree(t)
	q := mustRoot(t, s, "Q", V(0, 0), V(400, 400))

	r.Hide()
	require.NoError(t, r.RemoveChild(a))
	require.NoError(t, q.AddChild(a))
	assert.False(t, a.WasVisible(), "the old ancestor's snapshot is dropped on detach")

	before := visibility(a, aa)
	require.Equal(t, []bool{false, false}, before)

	q.Hide()
	q.Show()
	assert.Equal(t, before, visibility(a, aa))

	a.Show()
	assert.True(t, a.IsVisible())
	assert.False(t, aa.IsVisible(), "aa was hidden on its own before r hid")
}

func TestHide_ExplicitHideUnderHiddenAncestorSticks(t *testing.T) {
	_, r, a, _, _, _ := visibilityTree(t)

	r.Hide()
	a.Hide()
	r.Show()

	assert.False(t, a.IsVisible())
}

func TestShow_DescendantHooks(t *testing.T) {
	s, _ := newTestScreen(t)
	var hooks hookCounter
	r := mustRoot(t, s, "R", V(0, 0), V(400, 400))
	c := mustChild(t, r, "c", V(0, 0), V(10, 10), hooks.opts()...)
	hidden := mustChild(t, r, "hidden", V(0, 0), V(10, 10), hooks.opts()...)
	hidden.Hide()
	hooks = hookCounter{}

	r.Hide()
	assert.Equal(t, 1, hooks.hides, "only c changes state")

	r.Show()
	assert.Equal(t, 1, hooks.shows)
	assert.True(t, c.IsVisible())
	assert.True(t, c.WasVisible())
	assert.False(t, hidden.WasVisible())
}

func TestHide_ClearsModal(t *testing.T) {
	s, _ := newTestScreen(t)
	e := mustRoot(t, s, "dialog", V(0, 0), V(100, 100))
	e.Hide()

	e.ShowAsModal()
	assert.True(t, e.IsVisible())
	assert.True(t, e.IsModallyVisible())
	assert.Same(t, e, s.Modal())

	e.Hide()
	assert.False(t, e.IsModallyVisible())
	assert.Nil(t, s.Modal())
}

func TestSetVisibleAndToggle(t *testing.T) {
	s, _ := newTestScreen(t)
	e := mustRoot(t, s, "e", V(0, 0), V(10, 10))

	e.SetVisible(false)
	assert.False(t, e.IsVisible())
	e.ToggleVisible()
	assert.True(t, e.IsVisible())
	e.ToggleVisible()
	assert.False(t, e.IsVisible())
}

func TestShow_DetachedElementStaysOutOfScene(t *testing.T) {
	s, rec := newTestScreen(t)
	e := New(s, "e", V(0, 0), V(10, 10))

	e.Hide()
	e.Show()

	assert.False(t, rec.attached[e])
}

func TestSetEnabled_Propagates(t *testing.T) {
	s, _ := newTestScreen(t)
	var seen []string
	hook := WithOnEnabled(func(e *Element, enabled bool) {
		if !enabled {
			seen = append(seen, e.Key())
		}
	})
	r := mustRoot(t, s, "R", V(0, 0), V(100, 100), hook)
	c := mustChild(t, r, "c", V(0, 0), V(10, 10), hook)
	g := mustChild(t, c, "g", V(0, 0), V(10, 10), hook)

	r.SetEnabled(false)

	assert.False(t, g.IsEnabled())
	assert.Equal(t, []string{"R", "c", "g"}, seen)

	r.SetEnabled(true)
	assert.True(t, c.IsEnabled())
}
