package uitree

import "slices"

// --- Z-order ---

// assignZOrder gives each element in list a depth of k*step in insertion
// order, with k starting at 1. An element with a text layer gives the next
// slot to its text, so the counter skips past it before the next sibling.
// Each element's subtree is then squeezed into its own step.
func assignZOrder(list []*Element, step float64, scene SceneGraph) {
	next := step
	for _, e := range list {
		e.initZOrder(next, step, scene)
		next += step
		if e.text != nil {
			e.textZOrder = next
			e.text.SetDepth(next)
			next += step
		}
	}
}

// initZOrder seeds e's depth and span and reassigns its subtree.
func (e *Element) initZOrder(z, span float64, scene SceneGraph) {
	e.zOrder = z
	e.zSpan = span
	scene.SetDepth(e, z)
	e.ResetChildZOrder()
}

// ResetChildZOrder reassigns depths to e's children in insertion order.
// Children and their text layers share e's span evenly, so sibling subtrees
// never overlap.
func (e *Element) ResetChildZOrder() {
	if len(e.children) == 0 {
		return
	}
	slots := len(e.children)
	for _, c := range e.children {
		if c.text != nil {
			slots++
		}
	}
	assignZOrder(e.children, e.zSpan/float64(slots+1), e.screen.scene)
}

// BringToFront moves e to the end of its parent's (or the screen's)
// insertion order so it stacks above its siblings. No attach or cleanup
// hooks run.
func (e *Element) BringToFront() {
	if e.parent == nil {
		e.screen.BringToFront(e)
		return
	}
	p := e.parent
	i := slices.Index(p.children, e)
	if i < 0 || i == len(p.children)-1 {
		return
	}
	p.children = append(slices.Delete(p.children, i, i+1), e)
	p.ResetChildZOrder()
	e.screen.logger.Debug("brought element to front", "key", e.key, "parent", p.key)
}

// ZOrder returns e's depth relative to its parent.
func (e *Element) ZOrder() float64 {
	return e.zOrder
}

// ZSpan returns the depth range available to e's subtree.
func (e *Element) ZSpan() float64 {
	return e.zSpan
}

// TextZOrder returns the depth of e's text layer relative to e's parent.
func (e *Element) TextZOrder() float64 {
	return e.textZOrder
}

// AbsoluteZOrder sums depths up the parent chain.
func (e *Element) AbsoluteZOrder() float64 {
	var z float64
	for el := e; el != nil; el = el.parent {
		z += el.zOrder
	}
	return z
}
