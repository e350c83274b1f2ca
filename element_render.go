package uitree

import (
	"github.com/grindlemire/go-uitree/internal/atlas"
)

// --- Backend state ---

// SetAtlasRegion selects the region of a texture atlas used for e's image.
// The query has the form "x=<n>|y=<n>|w=<n>|h=<n>"; a malformed query is
// returned as an error wrapping atlas.ErrMalformedQuery and leaves the
// current region untouched.
func (e *Element) SetAtlasRegion(query string) error {
	r, err := atlas.Parse(query)
	if err != nil {
		return err
	}
	e.atlasRegion = r
	e.hasAtlas = true
	e.screen.renderer.UpdateModelBounds(e)
	return nil
}

// AtlasRegion returns the atlas region and whether one is set.
func (e *Element) AtlasRegion() (Rect, bool) {
	return e.atlasRegion, e.hasAtlas
}

// ClearAtlasRegion drops the atlas region so the full image is used.
func (e *Element) ClearAtlasRegion() {
	e.atlasRegion = Rect{}
	e.hasAtlas = false
	e.screen.renderer.UpdateModelBounds(e)
}

// TileImage reports whether e's image is tiled.
func (e *Element) TileImage() bool {
	return e.tileImage
}

// SetTileImage sets whether e's image is tiled rather than stretched.
func (e *Element) SetTileImage(tile bool) {
	e.tileImage = tile
	e.screen.renderer.UpdateModelBounds(e)
}

// --- Text layer ---

// TextLayer returns the attached text layer, or nil.
func (e *Element) TextLayer() TextLayer {
	return e.text
}

// SetTextLayer attaches a text layer and reassigns the parent's z-order so
// the layer gets its own slot.
func (e *Element) SetTextLayer(t TextLayer) {
	e.text = t
	e.updateTextLayer()
	e.updateTextClipping()
	if e.parent != nil {
		e.parent.ResetChildZOrder()
	} else if e.screen.isRoot(e) {
		e.screen.ResetZOrder()
	}
}

// TextPadding returns the padding around the text box.
func (e *Element) TextPadding() Edges {
	return e.textPadding
}

// SetTextPadding sets the padding around the text box.
func (e *Element) SetTextPadding(p Edges) {
	e.textPadding = p
	e.updateTextLayer()
}

// TextPosition returns the text box offset from the top-left corner.
func (e *Element) TextPosition() Vec {
	return e.textPosition
}

// SetTextPosition offsets the text box from the top-left corner.
func (e *Element) SetTextPosition(p Vec) {
	e.textPosition = p
	e.updateTextLayer()
}

// TextBox returns the text layer's rectangle in e's local coordinates.
// The box hangs from the top edge, inset by the text padding.
func (e *Element) TextBox() Rect {
	w := max(e.dimensions.X-e.textPadding.Horizontal(), 0)
	h := max(e.dimensions.Y-e.textPadding.Vertical(), 0)
	x := e.textPadding.Left + e.textPosition.X
	top := e.dimensions.Y - e.textPadding.Top - e.textPosition.Y
	return NewRect(x, top-h, w, h)
}

func (e *Element) updateTextLayer() {
	if e.text == nil {
		return
	}
	box := e.TextBox()
	e.text.SetPosition(V(box.X, box.Top()))
	e.text.SetBox(box.Width, box.Height)
}
