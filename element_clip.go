package uitree

import "slices"

// ClipProvider constrains an element to the bounds of Source.
//
// A nil Padding clips to the source's absolute bounds. Otherwise Padding is
// a rectangle relative to the source's origin that replaces those bounds.
type ClipProvider struct {
	Source  *Element
	Padding *Bounds
}

// bounds returns the provider's rectangle in screen coordinates as seen by
// the clipped element. The source's clip padding applies unless the source
// clips itself.
func (cp ClipProvider) bounds(clipped *Element) Bounds {
	abs := cp.Source.AbsolutePosition()
	var b Bounds
	if cp.Padding == nil {
		b = RectOf(abs, cp.Source.dimensions).Bounds()
	} else {
		b = cp.Padding.Translate(abs.X, abs.Y)
	}
	if cp.Source != clipped {
		b = b.Shrink(cp.Source.clipPadding)
	}
	return b
}

// --- Provider registry ---

// AddClippingLayer clips e and its whole subtree to provider's bounds.
// Children attached later inherit the provider when they are attached.
func (e *Element) AddClippingLayer(provider *Element) {
	e.addClipLayerTree(ClipProvider{Source: provider}, true)
	e.refresh()
}

// AddClippingLayerRegion clips e and its subtree to region, a rectangle
// relative to provider's origin.
func (e *Element) AddClippingLayerRegion(provider *Element, region Bounds) {
	e.addClipLayerTree(ClipProvider{Source: provider, Padding: &region}, true)
	e.refresh()
}

// UpdateClippingLayer replaces the region of an existing provider throughout
// e's subtree. Elements that do not have the provider are left alone.
func (e *Element) UpdateClippingLayer(provider *Element, region Bounds) {
	e.updateClipLayerTree(provider, region)
	e.refresh()
}

// RemoveClippingLayer removes provider from e and every descendant.
func (e *Element) RemoveClippingLayer(provider *Element) {
	e.removeClipLayerTree(provider)
	e.refresh()
}

// SetClippingLayer is a convenience for AddClippingLayer. A nil provider
// is ignored.
func (e *Element) SetClippingLayer(provider *Element) {
	if provider == nil {
		return
	}
	e.AddClippingLayer(provider)
}

// ClippingLayers returns the providers active on e, in registration order.
func (e *Element) ClippingLayers() []ClipProvider {
	return e.clipLayers
}

// HasClippingLayers reports whether any provider is active on e.
func (e *Element) HasClippingLayers() bool {
	return len(e.clipLayers) > 0
}

// ClippingLayer returns the provider record for source on e.
func (e *Element) ClippingLayer(source *Element) (ClipProvider, bool) {
	i := e.clipLayerIndex(source)
	if i < 0 {
		return ClipProvider{}, false
	}
	return e.clipLayers[i], true
}

func (e *Element) clipLayerIndex(source *Element) int {
	return slices.IndexFunc(e.clipLayers, func(cp ClipProvider) bool {
		return cp.Source == source
	})
}

// addClipLayerTree registers cp on e and its subtree. When the provider is
// already present, replace overwrites its padding; otherwise it is kept.
func (e *Element) addClipLayerTree(cp ClipProvider, replace bool) {
	if i := e.clipLayerIndex(cp.Source); i < 0 {
		e.clipLayers = append(e.clipLayers, cp)
	} else if replace {
		e.clipLayers[i].Padding = cp.Padding
	}
	for _, c := range e.children {
		c.addClipLayerTree(cp, replace)
	}
}

func (e *Element) updateClipLayerTree(source *Element, region Bounds) {
	if i := e.clipLayerIndex(source); i >= 0 {
		r := region
		e.clipLayers[i].Padding = &r
	}
	for _, c := range e.children {
		c.updateClipLayerTree(source, region)
	}
}

func (e *Element) removeClipLayerTree(source *Element) {
	e.clipLayers = slices.DeleteFunc(e.clipLayers, func(cp ClipProvider) bool {
		return cp.Source == source
	})
	for _, c := range e.children {
		c.removeClipLayerTree(source)
	}
}

// --- Effective clip ---

// isStale reports whether cp's source has left every tree e can see: it is
// neither on the screen nor in e's own tree.
func (e *Element) isStale(cp ClipProvider) bool {
	root := cp.Source.AbsoluteParent()
	return !e.screen.isRoot(root) && root != e.AbsoluteParent()
}

// EffectiveClip intersects the screen bounds with every provider active on e.
// An element without providers gets the full screen. A provider whose source
// has been removed from the tree yields a *StaleProviderError.
func (e *Element) EffectiveClip() (Bounds, error) {
	clip := e.screen.Bounds()
	for _, cp := range e.clipLayers {
		if e.isStale(cp) {
			return Bounds{}, &StaleProviderError{Element: e.key, Provider: cp.Source.key}
		}
		clip = clip.Intersect(cp.bounds(e))
	}
	return clip, nil
}

// ClipBounds returns the clip rectangle last pushed to the renderer. It is
// all zero while e is hidden.
func (e *Element) ClipBounds() Bounds {
	return e.clipBounds
}

// IsClipped reports whether a clip is applied to e: it is hidden or has at
// least one provider.
func (e *Element) IsClipped() bool {
	return e.clipped
}

// IsClippedAway reports whether e is clipped to an empty area.
func (e *Element) IsClippedAway() bool {
	return e.clipped && e.clipBounds.IsDegenerate()
}

// ClipPadding returns the padding applied when e clips other elements.
func (e *Element) ClipPadding() Edges {
	return e.clipPadding
}

// SetClipPadding sets the padding applied when e clips other elements.
func (e *Element) SetClipPadding(p Edges) {
	e.clipPadding = p
	e.refresh()
}

// TextClipPadding returns the padding applied to the text layer's clip.
func (e *Element) TextClipPadding() Edges {
	return e.textClipPadding
}

// SetTextClipPadding sets the padding applied to the text layer's clip.
func (e *Element) SetTextClipPadding(p Edges) {
	e.textClipPadding = p
	e.updateTextClipping()
}

// updateClipping recomputes e's clip state and then its subtree's.
func (e *Element) updateClipping() {
	e.updateLocalClipping()
	for _, c := range e.children {
		c.updateClipping()
	}
}

func (e *Element) updateLocalClipping() {
	switch {
	case !e.visible:
		e.clipped = true
		e.clipBounds = Bounds{}
	case len(e.clipLayers) == 0:
		e.clipped = false
		e.clipBounds = e.screen.Bounds()
	default:
		e.clipped = true
		e.clipBounds = e.computeClip()
	}
	e.screen.renderer.SetClipping(e, e.clipped, e.clipBounds)
	e.updateTextClipping()
}

// computeClip is EffectiveClip for background recomputation: stale providers
// are logged and skipped.
func (e *Element) computeClip() Bounds {
	clip := e.screen.Bounds()
	for _, cp := range e.clipLayers {
		if e.isStale(cp) {
			e.screen.logger.Warn("skipping stale clip provider", "key", e.key, "provider", cp.Source.key)
			continue
		}
		clip = clip.Intersect(cp.bounds(e))
	}
	return clip
}

func (e *Element) updateTextClipping() {
	if e.text == nil {
		return
	}
	switch {
	case !e.visible:
		e.text.SetClipping(true, Bounds{})
	case e.clipped:
		e.text.SetClipping(true, e.clipBounds.Shrink(e.textClipPadding))
	default:
		e.text.SetClipping(false, e.clipBounds)
	}
}
