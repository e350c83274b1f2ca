package uitree

import "fmt"

// SetKey renames the element. Keys are only mutable while the element has
// no parent; a screen-level element is re-registered under the new key.
func (e *Element) SetKey(key string) error {
	if e.parent != nil {
		return fmt.Errorf("set key %q: %w", key, ErrKeyLocked)
	}
	if key == e.key {
		return nil
	}
	if e.screen.isRoot(e) {
		if other, ok := e.screen.registry.Lookup(key); ok && other != e {
			return &DuplicateKeyError{Key: key}
		}
		delete(e.screen.registry.elements, e.key)
		e.key = key
		e.screen.registry.elements[key] = e
		return nil
	}
	if e.FindByID(key) != nil {
		return &DuplicateKeyError{Key: key}
	}
	e.key = key
	return nil
}

// --- Geometry ---

// Position returns the position relative to the parent's origin.
func (e *Element) Position() Vec {
	return e.position
}

// X returns the x position relative to the parent.
func (e *Element) X() float64 {
	return e.position.X
}

// Y returns the y position relative to the parent.
func (e *Element) Y() float64 {
	return e.position.Y
}

// Dimensions returns the element's width and height.
func (e *Element) Dimensions() Vec {
	return e.dimensions
}

// Width returns the element's width.
func (e *Element) Width() float64 {
	return e.dimensions.X
}

// Height returns the element's height.
func (e *Element) Height() float64 {
	return e.dimensions.Y
}

// MinDimensions returns the size floor.
func (e *Element) MinDimensions() Vec {
	return e.minDimensions
}

// OrgPosition returns the position recorded at first attach.
func (e *Element) OrgPosition() Vec {
	return e.orgPosition
}

// OrgDimensions returns the dimensions recorded at construction.
func (e *Element) OrgDimensions() Vec {
	return e.orgDimensions
}

// OrgRelDimensions returns the child-to-parent size ratio recorded at the
// last attach.
func (e *Element) OrgRelDimensions() Vec {
	return e.orgRelDimensions
}

// Rect returns the element's rectangle in parent coordinates.
func (e *Element) Rect() Rect {
	return RectOf(e.position, e.dimensions)
}

// SetPosition moves the element without clamping and without the move hook.
func (e *Element) SetPosition(p Vec) {
	e.position = p
	e.refresh()
}

// SetX sets the x position.
func (e *Element) SetX(x float64) {
	e.SetPosition(V(x, e.position.Y))
}

// SetY sets the y position.
func (e *Element) SetY(y float64) {
	e.SetPosition(V(e.position.X, y))
}

// SetDimensions sets the element's size directly. Unlike Resize, children are
// not adjusted and the minimum floor is not applied.
func (e *Element) SetDimensions(d Vec) {
	e.dimensions = d
	e.syncGeometry()
	e.refresh()
}

// SetWidth sets the element's width.
func (e *Element) SetWidth(w float64) {
	e.SetDimensions(V(w, e.dimensions.Y))
}

// SetHeight sets the element's height.
func (e *Element) SetHeight(h float64) {
	e.SetDimensions(V(e.dimensions.X, h))
}

// SetMinDimensions sets the size floor used by Resize.
func (e *Element) SetMinDimensions(min Vec) {
	e.minDimensions = min
}

// --- Absolute Geometry ---

// AbsolutePosition sums positions up the parent chain. It is never cached.
func (e *Element) AbsolutePosition() Vec {
	var p Vec
	for el := e; el != nil; el = el.parent {
		p = p.Add(el.position)
	}
	return p
}

// AbsoluteX returns the x coordinate relative to the screen.
func (e *Element) AbsoluteX() float64 {
	return e.AbsolutePosition().X
}

// AbsoluteY returns the y coordinate relative to the screen.
func (e *Element) AbsoluteY() float64 {
	return e.AbsolutePosition().Y
}

// AbsoluteRight returns the absolute x of the right edge.
func (e *Element) AbsoluteRight() float64 {
	return e.AbsoluteX() + e.dimensions.X
}

// AbsoluteTop returns the absolute y of the top edge.
func (e *Element) AbsoluteTop() float64 {
	return e.AbsoluteY() + e.dimensions.Y
}

// AbsoluteBounds returns the element's rectangle in screen coordinates.
func (e *Element) AbsoluteBounds() Bounds {
	return RectOf(e.AbsolutePosition(), e.dimensions).Bounds()
}

// --- Policy ---

// ResizeBorders reports which borders accept resizing.
func (e *Element) ResizeBorders() (north, south, east, west bool) {
	return e.resizeN, e.resizeS, e.resizeE, e.resizeW
}

// SetResizeBorders enables or disables each resize border.
func (e *Element) SetResizeBorders(north, south, east, west bool) {
	e.resizeN, e.resizeS, e.resizeE, e.resizeW = north, south, east, west
}

// IsResizable reports whether any border accepts resizing.
func (e *Element) IsResizable() bool {
	return e.resizeN || e.resizeS || e.resizeE || e.resizeW
}

// LockToParentBounds reports whether moves and resizes are clamped to the parent.
func (e *Element) LockToParentBounds() bool {
	return e.lockToParentBounds
}

// SetLockToParentBounds sets parent-bound clamping.
func (e *Element) SetLockToParentBounds(lock bool) {
	e.lockToParentBounds = lock
}

// Docking returns the docking corner.
func (e *Element) Docking() Docking {
	return e.docking
}

// SetDocking sets the docking corner.
func (e *Element) SetDocking(d Docking) {
	e.docking = d
}

// Scale returns the north/south and east/west scale flags.
func (e *Element) Scale() (ns, ew bool) {
	return e.scaleNS, e.scaleEW
}

// SetScaleNS sets whether the element scales vertically with its parent.
func (e *Element) SetScaleNS(scale bool) {
	e.scaleNS = scale
}

// SetScaleEW sets whether the element scales horizontally with its parent.
func (e *Element) SetScaleEW(scale bool) {
	e.scaleEW = scale
}

// --- Misc ---

// IsEnabled reports whether the element accepts interaction.
func (e *Element) IsEnabled() bool {
	return e.enabled
}

// UserData returns the application data attached with WithUserData.
func (e *Element) UserData() any {
	return e.userData
}

// SetUserData attaches arbitrary application data.
func (e *Element) SetUserData(v any) {
	e.userData = v
}
