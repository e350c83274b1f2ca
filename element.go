package uitree

import (
	"github.com/google/uuid"
)

// Docking is the corner of the parent an element stays pinned to when it
// does not scale with a parent resize.
type Docking uint8

const (
	DockNW Docking = iota // Pinned to the top-left corner (default)
	DockNE                // Pinned to the top-right corner
	DockSW                // Pinned to the bottom-left corner
	DockSE                // Pinned to the bottom-right corner
)

var dockingNames = [...]string{"NW", "NE", "SW", "SE"}

func (d Docking) String() string {
	if int(d) < len(dockingNames) {
		return dockingNames[d]
	}
	return "Docking(?)"
}

// pinnedNorth reports whether the element keeps its distance to the parent's top edge.
func (d Docking) pinnedNorth() bool {
	return d == DockNW || d == DockNE
}

// pinnedEast reports whether the element keeps its distance to the parent's right edge.
func (d Docking) pinnedEast() bool {
	return d == DockNE || d == DockSE
}

// DefaultMinDimensions is the minimum size floor given to new elements.
var DefaultMinDimensions = V(10, 10)

// Element is a rectangular node in the UI tree.
//
// Position is relative to the parent's origin with y growing upward.
// A parent owns its children; the parent pointer is a back-reference only.
type Element struct {
	screen *Screen
	key    string

	// Tree structure; children stay in insertion order
	parent   *Element
	children []*Element

	// Geometry
	position         Vec
	dimensions       Vec
	minDimensions    Vec
	orgPosition      Vec
	orgDimensions    Vec
	orgRelDimensions Vec
	initialized      bool // y axis already flipped by a first attach

	// Resize policy
	resizeN, resizeS, resizeE, resizeW bool
	lockToParentBounds                 bool
	docking                            Docking
	scaleNS, scaleEW                   bool

	// Clipping
	clipLayers      []ClipProvider
	clipBounds      Bounds
	clipped         bool
	clipPadding     Edges // applied when this element clips others
	textClipPadding Edges

	// Visibility
	visible          bool
	wasVisible       bool
	hiddenByAncestor bool
	modallyVisible   bool
	sceneAttached    bool
	enabled          bool

	// Z-order, relative to the parent
	zOrder     float64
	zSpan      float64
	textZOrder float64

	// Text layer
	text         TextLayer
	textPosition Vec
	textPadding  Edges

	// Rendering state consumed by the backend
	tileImage   bool
	atlasRegion Rect
	hasAtlas    bool

	layout LayoutManager

	// Lifecycle hooks
	onResize  func(*Element)
	onMove    func(*Element)
	onShow    func(*Element)
	onHide    func(*Element)
	onCleanup func(*Element)
	onEnabled func(*Element, bool)

	userData any
}

// New creates an element on screen s. An empty key is replaced with a
// generated UUID. Position and dimensions are in pixels; the y position is
// measured from the top of the parent until the element is first attached.
func New(s *Screen, key string, position, dimensions Vec, opts ...Option) *Element {
	if s == nil {
		panic("uitree: nil screen in New")
	}
	if key == "" {
		key = uuid.NewString()
	}
	e := &Element{
		screen:           s,
		key:              key,
		position:         position,
		dimensions:       dimensions,
		minDimensions:    DefaultMinDimensions,
		orgDimensions:    dimensions,
		orgRelDimensions: V(1, 1),
		resizeN:          true,
		resizeS:          true,
		resizeE:          true,
		resizeW:          true,
		docking:          DockNW,
		scaleNS:          true,
		scaleEW:          true,
		visible:          true,
		wasVisible:       true,
		enabled:          true,
		zSpan:            s.zOrderStep,
		clipBounds:       s.Bounds(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.updateTextLayer()
	return e
}

// Screen returns the screen this element was created on.
func (e *Element) Screen() *Screen {
	return e.screen
}

// Key returns the element's unique key.
func (e *Element) Key() string {
	return e.key
}

func (e *Element) callHook(fn func(*Element)) {
	if fn != nil {
		fn(e)
	}
}

// refresh recomputes clipping for the whole tree containing e. When the tree
// is on the screen every screen-level tree is refreshed, since providers may
// live in a sibling tree.
func (e *Element) refresh() {
	root := e.AbsoluteParent()
	if e.screen.isRoot(root) {
		e.screen.refreshClipping()
		return
	}
	root.updateClipping()
}

// syncGeometry pushes committed dimensions to the backend and the text layer.
func (e *Element) syncGeometry() {
	e.screen.renderer.UpdateModelBounds(e)
	e.updateTextLayer()
}
