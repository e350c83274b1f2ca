package uitree

import (
	"fmt"
	"math"
	"strings"
)

// Handle names one of the eight resize affordances on an element's border.
//
// West and north handles move the element's origin edge and hold the
// opposite edge fixed. East and south handles move the far edge.
type Handle uint8

const (
	HandleNW Handle = iota
	HandleN
	HandleNE
	HandleW
	HandleE
	HandleSW
	HandleS
	HandleSE
)

var handleNames = [...]string{"NW", "N", "NE", "W", "E", "SW", "S", "SE"}

func (h Handle) String() string {
	if int(h) < len(handleNames) {
		return handleNames[h]
	}
	return "Handle(?)"
}

func (h Handle) north() bool { return h == HandleNW || h == HandleN || h == HandleNE }
func (h Handle) south() bool { return h == HandleSW || h == HandleS || h == HandleSE }
func (h Handle) west() bool  { return h == HandleNW || h == HandleW || h == HandleSW }
func (h Handle) east() bool  { return h == HandleNE || h == HandleE || h == HandleSE }

// vertical reports whether h belongs to the north/south handle family.
func (h Handle) vertical() bool { return h.north() || h.south() }

// horizontal reports whether h belongs to the west/east handle family.
func (h Handle) horizontal() bool { return h.west() || h.east() }

// ParseHandle parses a compass name such as "se" or "N".
func ParseHandle(s string) (Handle, error) {
	for i, name := range handleNames {
		if strings.EqualFold(s, name) {
			return Handle(i), nil
		}
	}
	return 0, fmt.Errorf("unknown resize handle %q", s)
}

// ParseDocking parses a corner name such as "ne".
func ParseDocking(s string) (Docking, error) {
	for i, name := range dockingNames {
		if strings.EqualFold(s, name) {
			return Docking(i), nil
		}
	}
	return 0, fmt.Errorf("unknown docking corner %q", s)
}

// parentSize is the size of e's parent, or of the screen for a root.
func (e *Element) parentSize() Vec {
	if e.parent != nil {
		return e.parent.dimensions
	}
	return e.screen.Size()
}

// --- Resize ---

// Resize drags handle h to the absolute point (x, y).
//
// The west/east axis is resolved before the north/south axis. Each axis is
// clamped to the parent when the element is locked to its parent bounds,
// then floored at the minimum dimensions, and committed only when the
// matching border is enabled. The size delta is then handed to the layout
// manager or propagated to every descendant by its scale and docking policy.
func (e *Element) Resize(x, y float64, h Handle) {
	prev := e.dimensions
	local := V(x, y).Sub(e.AbsolutePosition().Sub(e.position))
	bound := e.parentSize()
	pos, dim := e.position, e.dimensions

	switch {
	case h.west():
		left := local.X
		if e.lockToParentBounds {
			left = max(left, 0)
		}
		if pos.X+dim.X-left <= e.minDimensions.X {
			left = pos.X + dim.X - e.minDimensions.X
		}
		if e.resizeW {
			dim.X = pos.X + dim.X - left
			pos.X = left
		}
	case h.east():
		width := local.X - pos.X
		if e.lockToParentBounds {
			width = min(width, bound.X-pos.X)
		}
		width = max(width, e.minDimensions.X)
		if e.resizeE {
			dim.X = width
		}
	}

	switch {
	case h.north():
		bottom := local.Y
		if e.lockToParentBounds {
			bottom = max(bottom, 0)
		}
		if pos.Y+dim.Y-bottom <= e.minDimensions.Y {
			bottom = pos.Y + dim.Y - e.minDimensions.Y
		}
		if e.resizeN {
			dim.Y = pos.Y + dim.Y - bottom
			pos.Y = bottom
		}
	case h.south():
		height := local.Y - pos.Y
		if e.lockToParentBounds {
			height = min(height, bound.Y-pos.Y)
		}
		height = max(height, e.minDimensions.Y)
		if e.resizeS {
			dim.Y = height
		}
	}

	e.position, e.dimensions = pos, dim
	delta := prev.Sub(dim)

	var affected []*Element
	if e.layout != nil && e.layout.HandlesResize() {
		e.layout.Resize(e)
	} else {
		for _, c := range e.children {
			c.childResize(delta, h, &affected)
		}
	}
	e.syncGeometry()
	e.refresh()
	e.screen.logger.Debug("resized element", "key", e.key, "handle", h, "width", dim.X, "height", dim.Y)

	e.callHook(e.onResize)
	for _, c := range affected {
		c.callHook(c.onResize)
	}
}

// childResize applies a parent's size delta to e and its subtree. A scaled
// axis absorbs the delta; an unscaled axis docked to the moving side is
// translated instead.
func (e *Element) childResize(delta Vec, h Handle, affected *[]*Element) {
	if h.vertical() {
		if e.scaleNS {
			e.dimensions.Y = max(e.dimensions.Y-delta.Y, e.minDimensions.Y)
		} else if e.docking.pinnedNorth() {
			e.position.Y -= delta.Y
		}
	}
	if h.horizontal() {
		if e.scaleEW {
			e.dimensions.X = max(e.dimensions.X-delta.X, e.minDimensions.X)
		} else if e.docking.pinnedEast() {
			e.position.X -= delta.X
		}
	}
	e.syncGeometry()
	*affected = append(*affected, e)

	for _, c := range e.children {
		c.childResize(delta, h, affected)
	}
}

// --- Move ---

// MoveTo sets the position relative to the parent. When locked to its parent
// bounds the element is clamped into [0, parent size - own size] per axis.
func (e *Element) MoveTo(x, y float64) {
	if e.lockToParentBounds {
		bound := e.parentSize()
		x = min(max(x, 0), bound.X-e.dimensions.X)
		y = min(max(y, 0), bound.Y-e.dimensions.Y)
	}
	e.position = V(x, y)
	e.refresh()
	e.screen.logger.Debug("moved element", "key", e.key, "x", x, "y", y)
	e.callHook(e.onMove)
}

// CenterToParent centers e inside its parent, or the screen for a root.
func (e *Element) CenterToParent() {
	bound := e.parentSize()
	e.position = bound.Sub(e.dimensions).Scale(V(0.5, 0.5))
	e.refresh()
}

// CenterToParentH centers e horizontally.
func (e *Element) CenterToParentH() {
	e.position.X = (e.parentSize().X - e.dimensions.X) / 2
	e.refresh()
}

// CenterToParentV centers e vertically.
func (e *Element) CenterToParentV() {
	e.position.Y = (e.parentSize().Y - e.dimensions.Y) / 2
	e.refresh()
}

// SizeToContent fits e around its children. The horizontal margin on the
// right matches the left-most child's offset, and the margin at the bottom
// matches the smallest gap at the top; every child keeps its distance from
// the top edge.
func (e *Element) SizeToContent() {
	if len(e.children) == 0 {
		return
	}
	left, topGap := math.Inf(1), math.Inf(1)
	right, depth := math.Inf(-1), math.Inf(-1)
	height := e.dimensions.Y
	bottoms := make([]float64, len(e.children))
	for i, c := range e.children {
		bottom := height - c.position.Y // distance from e's top to c's bottom
		left = min(left, c.position.X)
		topGap = min(topGap, bottom-c.dimensions.Y)
		right = max(right, c.position.X+c.dimensions.X)
		depth = max(depth, bottom)
		bottoms[i] = bottom
	}

	e.dimensions = V(right+left, depth+topGap)
	for i, c := range e.children {
		c.position.Y = depth - (bottoms[i] - topGap)
	}
	e.syncGeometry()
	e.refresh()
}

// SetGlobalUIScale multiplies the position and dimensions of every
// descendant by the given factors. The element itself is not scaled.
func (e *Element) SetGlobalUIScale(widthFactor, heightFactor float64) {
	e.scaleDescendants(V(widthFactor, heightFactor))
	e.refresh()
}

func (e *Element) scaleDescendants(f Vec) {
	for _, c := range e.children {
		c.position = c.position.Scale(f)
		c.dimensions = c.dimensions.Scale(f)
		c.syncGeometry()
		c.scaleDescendants(f)
	}
}

// PercentToPixels converts every component below 1 into a fraction of the
// parent's (or screen's) size. Components of 1 or more are already pixels.
func (e *Element) PercentToPixels(v Vec) Vec {
	return ToPixels(v, e.parentSize())
}

// ToPixels treats each component of v below 1 as a fraction of size.
func ToPixels(v, size Vec) Vec {
	if v.X < 1 {
		v.X *= size.X
	}
	if v.Y < 1 {
		v.Y *= size.Y
	}
	return v
}

// ValidateLayout converts fractional dimensions and positions into pixels
// for e and every descendant. Elements not yet attached anywhere also have
// their y position flipped from top-down into the y-up convention, exactly
// once; attached elements were flipped on attach and keep their position.
func (e *Element) ValidateLayout() {
	e.validateLayout()
	e.refresh()
}

func (e *Element) validateLayout() {
	if e.dimensions.X < 1 || e.dimensions.Y < 1 {
		d := e.PercentToPixels(e.dimensions)
		abs := e.AbsolutePosition()
		e.Resize(abs.X+d.X, abs.Y+d.Y, HandleSE)
	}
	if e.position.X < 1 || e.position.Y < 1 {
		e.position = e.PercentToPixels(e.position)
	}
	if !e.initialized {
		e.position.Y = e.parentSize().Y - e.dimensions.Y - e.position.Y
		e.orgPosition = e.position
		e.initialized = true
	}

	for _, c := range e.children {
		c.validateLayout()
	}
}

// --- Layout ---

// Layout returns the installed layout manager, or nil.
func (e *Element) Layout() LayoutManager {
	return e.layout
}

// SetLayout installs a layout manager for e's children.
func (e *Element) SetLayout(l LayoutManager) {
	e.layout = l
}

// LayoutChildren runs the layout manager of e and of every descendant, top-down.
func (e *Element) LayoutChildren() {
	e.layoutChildren()
	e.refresh()
}

func (e *Element) layoutChildren() {
	if e.layout != nil {
		e.layout.LayoutChildren(e)
	}
	for _, c := range e.children {
		c.layoutChildren()
	}
}
