package uitree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type clipState struct {
	enabled bool
	clip    Bounds
}

// recorder is a Renderer and SceneGraph that remembers the last call per element.
type recorder struct {
	attached      map[*Element]bool
	sceneParents  map[*Element]*Element
	depths        map[*Element]float64
	clips         map[*Element]clipState
	boundsUpdates map[*Element]int
}

func newRecorder() *recorder {
	return &recorder{
		attached:      make(map[*Element]bool),
		sceneParents:  make(map[*Element]*Element),
		depths:        make(map[*Element]float64),
		clips:         make(map[*Element]clipState),
		boundsUpdates: make(map[*Element]int),
	}
}

func (r *recorder) UpdateModelBounds(e *Element) {
	r.boundsUpdates[e]++
}

func (r *recorder) SetClipping(e *Element, enabled bool, clip Bounds) {
	r.clips[e] = clipState{enabled: enabled, clip: clip}
}

func (r *recorder) Attach(parent, child *Element) {
	r.attached[child] = true
	r.sceneParents[child] = parent
}

func (r *recorder) Detach(e *Element) {
	delete(r.attached, e)
	delete(r.sceneParents, e)
}

func (r *recorder) SetDepth(e *Element, z float64) {
	r.depths[e] = z
}

// textRecorder is a TextLayer that keeps the last values it was given.
type textRecorder struct {
	position    Vec
	width       float64
	height      float64
	clipEnabled bool
	clip        Bounds
	depth       float64
}

func (t *textRecorder) SetPosition(p Vec) {
	t.position = p
}

func (t *textRecorder) SetBox(width, height float64) {
	t.width, t.height = width, height
}

func (t *textRecorder) SetClipping(enabled bool, clip Bounds) {
	t.clipEnabled, t.clip = enabled, clip
}

func (t *textRecorder) SetDepth(z float64) {
	t.depth = z
}

// layoutRecorder is a LayoutManager that records its calls.
type layoutRecorder struct {
	handles  bool
	resized  []*Element
	laidOut  []*Element
	onLayout func(owner *Element)
}

func (l *layoutRecorder) HandlesResize() bool {
	return l.handles
}

func (l *layoutRecorder) Resize(owner *Element) {
	l.resized = append(l.resized, owner)
}

func (l *layoutRecorder) LayoutChildren(owner *Element) {
	l.laidOut = append(l.laidOut, owner)
	if l.onLayout != nil {
		l.onLayout(owner)
	}
}

// newTestScreen returns an 800x600 screen wired to a recorder.
func newTestScreen(t *testing.T, opts ...ScreenOption) (*Screen, *recorder) {
	t.Helper()
	rec := newRecorder()
	base := []ScreenOption{WithSize(800, 600), WithRenderer(rec), WithSceneGraph(rec)}
	s, err := NewScreen(append(base, opts...)...)
	require.NoError(t, err)
	return s, rec
}

// mustRoot adds a screen-level element and places it at the y-up position pos.
func mustRoot(t *testing.T, s *Screen, key string, pos, dim Vec, opts ...Option) *Element {
	t.Helper()
	e := New(s, key, pos, dim, opts...)
	require.NoError(t, s.AddElement(e))
	e.SetPosition(pos)
	return e
}

// mustChild attaches a child and places it at the y-up position pos.
func mustChild(t *testing.T, parent *Element, key string, pos, dim Vec, opts ...Option) *Element {
	t.Helper()
	e := New(parent.Screen(), key, pos, dim, opts...)
	require.NoError(t, parent.AddChild(e))
	e.SetPosition(pos)
	return e
}

func keys(list []*Element) []string {
	out := make([]string, 0, len(list))
	for _, e := range list {
		out = append(out, e.Key())
	}
	return out
}
