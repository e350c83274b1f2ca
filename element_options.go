package uitree

// Option configures an Element.
type Option func(*Element)

// --- Geometry Options ---

// WithMinDimensions sets the size floor enforced on every resize.
func WithMinDimensions(min Vec) Option {
	return func(e *Element) {
		e.minDimensions = min
	}
}

// WithResizeBorders enables or disables each resize border.
func WithResizeBorders(north, south, east, west bool) Option {
	return func(e *Element) {
		e.resizeN = north
		e.resizeS = south
		e.resizeE = east
		e.resizeW = west
	}
}

// WithLockToParentBounds keeps moves and resizes inside the parent.
func WithLockToParentBounds(lock bool) Option {
	return func(e *Element) {
		e.lockToParentBounds = lock
	}
}

// WithDocking sets the parent corner the element stays pinned to.
func WithDocking(d Docking) Option {
	return func(e *Element) {
		e.docking = d
	}
}

// WithScale sets whether the element scales with its parent's resizes
// along each axis.
func WithScale(ns, ew bool) Option {
	return func(e *Element) {
		e.scaleNS = ns
		e.scaleEW = ew
	}
}

// WithLayout installs a layout manager for the element's children.
func WithLayout(l LayoutManager) Option {
	return func(e *Element) {
		e.layout = l
	}
}

// --- Clip and Text Options ---

// WithClipPadding sets the padding applied when this element clips others.
func WithClipPadding(p Edges) Option {
	return func(e *Element) {
		e.clipPadding = p
	}
}

// WithTextClipPadding sets the padding applied to the text layer's clip.
func WithTextClipPadding(p Edges) Option {
	return func(e *Element) {
		e.textClipPadding = p
	}
}

// WithTextLayer attaches a text layer.
func WithTextLayer(t TextLayer) Option {
	return func(e *Element) {
		e.text = t
	}
}

// WithTextPadding sets the padding between the element edges and its text box.
func WithTextPadding(p Edges) Option {
	return func(e *Element) {
		e.textPadding = p
	}
}

// WithTextPosition offsets the text box from the element's top-left corner.
func WithTextPosition(p Vec) Option {
	return func(e *Element) {
		e.textPosition = p
	}
}

// WithTileImage marks the element's image as tiled rather than stretched.
func WithTileImage(tile bool) Option {
	return func(e *Element) {
		e.tileImage = tile
	}
}

// --- Lifecycle Hooks ---

// WithOnResize sets a hook called after the element's dimensions change.
func WithOnResize(fn func(*Element)) Option {
	return func(e *Element) {
		e.onResize = fn
	}
}

// WithOnMove sets a hook called after MoveTo commits.
func WithOnMove(fn func(*Element)) Option {
	return func(e *Element) {
		e.onMove = fn
	}
}

// WithOnShow sets a hook called when the element becomes visible.
func WithOnShow(fn func(*Element)) Option {
	return func(e *Element) {
		e.onShow = fn
	}
}

// WithOnHide sets a hook called when the element becomes hidden.
func WithOnHide(fn func(*Element)) Option {
	return func(e *Element) {
		e.onHide = fn
	}
}

// WithOnCleanup sets a hook called when the element's subtree is removed.
// Children run their cleanup before their parent.
func WithOnCleanup(fn func(*Element)) Option {
	return func(e *Element) {
		e.onCleanup = fn
	}
}

// WithOnEnabled sets a hook called when the enabled state changes.
func WithOnEnabled(fn func(*Element, bool)) Option {
	return func(e *Element) {
		e.onEnabled = fn
	}
}

// WithUserData attaches arbitrary application data.
func WithUserData(v any) Option {
	return func(e *Element) {
		e.userData = v
	}
}
