package uitree

// Renderer is the rendering backend seen from the element tree. It is called
// after every dimension change and whenever an element's clip state changes.
type Renderer interface {
	// UpdateModelBounds is called after an element's dimensions, tiling, or
	// atlas region changed.
	UpdateModelBounds(e *Element)

	// SetClipping uploads the clip flag and the clip rectangle in screen pixels.
	SetClipping(e *Element, enabled bool, clip Bounds)
}

// SceneGraph adapts the element tree onto the host's scene graph. Elements are
// detached while hidden and reattached when shown.
type SceneGraph interface {
	// Attach places child under parent. A nil parent means the screen's root node.
	Attach(parent, child *Element)

	// Detach removes e from its rendering parent.
	Detach(e *Element)

	// SetDepth applies a z-order value relative to the element's parent.
	SetDepth(e *Element, z float64)
}

// TextLayer is the narrow interface to an element's attached text. The tree
// repositions it on every dimension change and clips it with the owner's
// clip rectangle shrunk by the owner's text clip padding.
type TextLayer interface {
	SetPosition(p Vec)
	SetBox(width, height float64)
	SetClipping(enabled bool, clip Bounds)
	SetDepth(z float64)
}

// LayoutManager places an element's children. When HandlesResize returns
// true the manager replaces the default scale/dock propagation on resize.
type LayoutManager interface {
	HandlesResize() bool
	Resize(owner *Element)
	LayoutChildren(owner *Element)
}

type nopRenderer struct{}

func (nopRenderer) UpdateModelBounds(*Element) {}
func (nopRenderer) SetClipping(*Element, bool, Bounds) {}

type nopSceneGraph struct{}

func (nopSceneGraph) Attach(*Element, *Element) {}
func (nopSceneGraph) Detach(*Element) {}
func (nopSceneGraph) SetDepth(*Element, float64) {}
