package uitree

import (
	"fmt"
	"slices"
)

// --- Element's own API ---

// AddChild attaches child to e.
//
// The child inherits every clip provider active on e. On its first attach
// the child's y position is flipped from top-down into the y-up convention.
// A key already present on the screen (or in e's detached tree) is rejected
// with a *DuplicateKeyError and nothing is inserted.
func (e *Element) AddChild(child *Element) error {
	return e.addChild(child, false)
}

// AddChildHidden attaches child and hides it.
func (e *Element) AddChildHidden(child *Element) error {
	return e.addChild(child, true)
}

func (e *Element) addChild(child *Element, hide bool) error {
	if child.screen != e.screen {
		return fmt.Errorf("add %q to %q: %w", child.key, e.key, ErrWrongScreen)
	}
	if child.parent != nil || e.screen.isRoot(child) {
		return fmt.Errorf("add %q to %q: %w", child.key, e.key, ErrAlreadyAttached)
	}
	for p := e; p != nil; p = p.parent {
		if p == child {
			return fmt.Errorf("add %q to %q would create a cycle: %w", child.key, e.key, ErrAlreadyAttached)
		}
	}
	if key := e.keyConflict(child); key != "" {
		e.screen.logger.Warn("conflicting element key", "key", key, "parent", e.key)
		return &DuplicateKeyError{Key: key, Parent: e.key}
	}

	child.parent = e
	for _, cp := range e.clipLayers {
		child.addClipLayerTree(cp, false)
	}
	if !child.initialized {
		child.position.Y = e.dimensions.Y - child.dimensions.Y - child.position.Y
		child.orgPosition = child.position
		child.initialized = true
	}
	child.orgRelDimensions = child.dimensions.Ratio(e.dimensions)

	e.children = append(e.children, child)
	if e.inScreen() {
		e.screen.registry.registerTree(child)
	}
	if child.visible {
		e.screen.scene.Attach(e, child)
		child.sceneAttached = true
	}
	if hide {
		child.Hide()
	}

	e.ResetChildZOrder()
	e.refresh()
	e.screen.logger.Debug("attached element", "key", child.key, "parent", e.key)
	return nil
}

// keyConflict returns the first key in child's subtree that already exists
// on the screen, or in e's tree when e is not on the screen.
func (e *Element) keyConflict(child *Element) string {
	if e.inScreen() {
		return e.screen.registry.firstConflict(child)
	}
	root := e.AbsoluteParent()
	return firstRepeat(child, func(key string) bool {
		return root.FindByID(key) != nil
	})
}

// RemoveChild detaches child from e.
//
// Clip providers that trace back to e, or to any of e's own providers, are
// stripped from the child's subtree. Cleanup hooks run bottom-up.
func (e *Element) RemoveChild(child *Element) error {
	i := slices.Index(e.children, child)
	if i < 0 {
		return fmt.Errorf("remove %q from %q: %w", child.key, e.key, ErrNotChild)
	}
	e.children = slices.Delete(e.children, i, i+1)
	e.detachChild(child)

	e.ResetChildZOrder()
	e.refresh()
	e.screen.logger.Debug("removed element", "key", child.key, "parent", e.key)
	return nil
}

// RemoveAllChildren detaches every child of e.
func (e *Element) RemoveAllChildren() {
	children := e.children
	e.children = nil
	for _, child := range children {
		e.detachChild(child)
	}
	e.refresh()
	e.screen.logger.Debug("removed all children", "parent", e.key, "count", len(children))
}

// detachChild undoes the attach bookkeeping for a child already dropped from
// e.children.
func (e *Element) detachChild(child *Element) {
	if e.inScreen() {
		e.screen.registry.unregisterTree(child)
	}
	child.parent = nil
	child.releaseAncestorHide()
	if child.sceneAttached {
		e.screen.scene.Detach(child)
		child.sceneAttached = false
	}

	child.removeClipLayerTree(e)
	for _, cp := range e.clipLayers {
		child.removeClipLayerTree(cp.Source)
	}

	e.screen.clearModalWithin(child)
	child.cleanup()
	child.ResetChildZOrder()
	child.updateClipping()
}

// cleanup runs the cleanup hooks of e's subtree, children first.
func (e *Element) cleanup() {
	for _, c := range e.children {
		c.cleanup()
	}
	e.callHook(e.onCleanup)
}

// Children returns the child elements in insertion order.
func (e *Element) Children() []*Element {
	return e.children
}

// Parent returns the parent element, or nil if this is a root.
func (e *Element) Parent() *Element {
	return e.parent
}

// AbsoluteParent walks parent links to the root of e's tree.
func (e *Element) AbsoluteParent() *Element {
	root := e
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// FindByID searches e's subtree depth-first and returns the first element
// whose key matches, or nil.
func (e *Element) FindByID(key string) *Element {
	if e.key == key {
		return e
	}
	for _, c := range e.children {
		if found := c.FindByID(key); found != nil {
			return found
		}
	}
	return nil
}

// Walk calls fn for e and every descendant, depth-first pre-order.
func (e *Element) Walk(fn func(*Element)) {
	fn(e)
	for _, c := range e.children {
		c.Walk(fn)
	}
}

// IsDescendantOf reports whether ancestor appears on e's parent chain.
func (e *Element) IsDescendantOf(ancestor *Element) bool {
	for p := e.parent; p != nil; p = p.parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

// inScreen reports whether e's tree is attached to the screen.
func (e *Element) inScreen() bool {
	return e.screen.isRoot(e.AbsoluteParent())
}
