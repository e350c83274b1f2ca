// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package uitree

import "github.com/grindlemire/go-uitree/internal/layout"

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

// ParseDirection accepts "row" or "column".
func ParseDirection(s string) (Direction, error) {
	return layout.ParseDirection(s)
}

// ParseJustify accepts "start", "end", "center", "space-between",
// "space-around" or "space-evenly".
func ParseJustify(s string) (Justify, error) {
	return layout.ParseJustify(s)
}

// ParseAlign accepts "start", "end", "center" or "stretch".
func ParseAlign(s string) (Align, error) {
	return layout.ParseAlign(s)
}

// StackLayout is a LayoutManager that lines visible children up along one
// axis of their owner. It takes over resize propagation: after the owner is
// resized its children are re-arranged instead of scaled and docked.
//
// Children keep their own size on the main axis unless Grow gives them a
// share of the free space. Hidden children are left where they are.
type StackLayout struct {
	Direction Direction
	Justify   Justify
	Align     Align
	Gap       float64
	Padding   Edges

	// Grow maps child keys to their share of free main-axis space.
	Grow map[string]float64
}

// HandlesResize is always true for a stack.
func (l *StackLayout) HandlesResize() bool {
	return true
}

// Resize re-arranges owner's subtree after a resize.
func (l *StackLayout) Resize(owner *Element) {
	owner.layoutChildren()
}

// LayoutChildren positions owner's visible children. Positions are converted
// from the stack's top-down order into owner's y-up space.
func (l *StackLayout) LayoutChildren(owner *Element) {
	var kids []*Element
	var items []layout.Item
	for _, c := range owner.children {
		if !c.visible {
			continue
		}
		kids = append(kids, c)
		items = append(items, layout.Item{Size: c.dimensions, Min: c.minDimensions, Grow: l.Grow[c.key]})
	}

	style := layout.Style{Direction: l.Direction, Justify: l.Justify, Align: l.Align, Gap: l.Gap, Padding: l.Padding}
	rects := layout.Arrange(owner.dimensions, style, items)
	for i, c := range kids {
		r := rects[i]
		c.position = V(r.X, owner.dimensions.Y-r.Y-r.Height)
		c.dimensions = r.Size()
		c.syncGeometry()
	}
	owner.screen.logger.Debug("stacked children", "key", owner.key, "direction", l.Direction, "count", len(kids))
}
