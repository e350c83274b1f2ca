package uitree

// ElementAt finds the deepest visible element under the absolute point
// (x, y). Hidden elements and the parts of an element outside its clip are
// never hit. Returns nil if no element contains the point.
func (e *Element) ElementAt(x, y float64) *Element {
	if !e.visible {
		return nil
	}
	if !e.AbsoluteBounds().Rect().Contains(x, y) {
		return nil
	}
	if e.clipped && !e.clipBounds.Rect().Contains(x, y) {
		return nil
	}

	// Check children in reverse order (last child stacks on top)
	for i := len(e.children) - 1; i >= 0; i-- {
		if hit := e.children[i].ElementAt(x, y); hit != nil {
			return hit
		}
	}
	return e
}
