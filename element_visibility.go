package uitree

// --- Visibility ---

// IsVisible reports whether e is currently shown.
func (e *Element) IsVisible() bool {
	return e.visible
}

// WasVisible returns the visibility e had when an ancestor last hid it.
func (e *Element) WasVisible() bool {
	return e.wasVisible
}

// IsModallyVisible reports whether e is shown as the screen's modal.
func (e *Element) IsModallyVisible() bool {
	return e.modallyVisible
}

// Show makes e visible and restores each descendant to the visibility it had
// before the matching Hide. Showing a visible element does nothing.
func (e *Element) Show() {
	if e.visible {
		return
	}
	e.visible = true
	e.hiddenByAncestor = false
	e.attachScene()
	e.callHook(e.onShow)

	for _, c := range e.children {
		c.childShow()
	}
	e.refresh()
}

// childShow restores a descendant hidden by an ancestor's Hide.
func (e *Element) childShow() {
	if !e.hiddenByAncestor {
		return
	}
	e.hiddenByAncestor = false
	e.visible = e.wasVisible
	if !e.visible {
		return
	}
	e.attachScene()
	e.callHook(e.onShow)
	for _, c := range e.children {
		c.childShow()
	}
}

// Hide hides e and its whole subtree and detaches e from the scene graph.
// The descendant pass always runs, even when e was already hidden.
func (e *Element) Hide() {
	if e.visible {
		if e.modallyVisible {
			e.modallyVisible = false
			e.screen.hideModal(e)
		}
		e.wasVisible = true
		e.visible = false
		e.callHook(e.onHide)
	} else if e.hiddenByAncestor {
		// An explicit Hide outlives the ancestor's next Show.
		e.wasVisible = false
	}
	if e.sceneAttached {
		e.screen.scene.Detach(e)
		e.sceneAttached = false
	}

	for _, c := range e.children {
		c.childHide()
	}
	e.refresh()
}

// childHide hides a descendant, snapshotting its own visibility the first
// time an ancestor hides it.
func (e *Element) childHide() {
	if !e.hiddenByAncestor {
		e.wasVisible = e.visible
		e.hiddenByAncestor = true
	}
	if e.visible {
		e.visible = false
		e.callHook(e.onHide)
	}
	for _, c := range e.children {
		c.childHide()
	}
}

// releaseAncestorHide turns a hide inherited from a former ancestor into e's
// own hide, so a new ancestor takes a fresh snapshot. Descendants keep their
// markers: e is still hidden and its Show restores them.
func (e *Element) releaseAncestorHide() {
	if !e.hiddenByAncestor {
		return
	}
	e.hiddenByAncestor = false
	e.wasVisible = e.visible
}

// attachScene reattaches e to its rendering parent if it has none and e is
// part of a tree.
func (e *Element) attachScene() {
	if e.sceneAttached {
		return
	}
	if e.parent == nil && !e.screen.isRoot(e) {
		return
	}
	e.screen.scene.Attach(e.parent, e)
	e.sceneAttached = true
}

// SetVisible shows or hides e.
func (e *Element) SetVisible(visible bool) {
	if visible {
		e.Show()
	} else {
		e.Hide()
	}
}

// ToggleVisible flips e's visibility.
func (e *Element) ToggleVisible() {
	e.SetVisible(!e.visible)
}

// ShowAsModal shows e and registers it as the screen's modal element.
func (e *Element) ShowAsModal() {
	e.modallyVisible = true
	e.screen.showAsModal(e)
	e.Show()
}

// SetEnabled enables or disables e and every descendant.
func (e *Element) SetEnabled(enabled bool) {
	e.enabled = enabled
	if e.onEnabled != nil {
		e.onEnabled(e, enabled)
	}
	for _, c := range e.children {
		c.SetEnabled(enabled)
	}
}
