package layout

import "github.com/grindlemire/go-uitree/internal/geom"

// axis reads and writes a Vec along the main or cross axis of a direction.
type axis struct {
	row bool
}

func (a axis) main(v geom.Vec) float64 {
	if a.row {
		return v.X
	}
	return v.Y
}

func (a axis) cross(v geom.Vec) float64 {
	if a.row {
		return v.Y
	}
	return v.X
}

func (a axis) vec(main, cross float64) geom.Vec {
	if a.row {
		return geom.V(main, cross)
	}
	return geom.V(cross, main)
}

// Arrange places items inside a container of the given size and returns one
// rectangle per item, in order, relative to the container's top-left corner.
//
// Free main-axis space is handed to items by grow weight. When items overflow
// they shrink in proportion to how far each is above its minimum. Whatever
// space is left over is distributed by the justify mode.
func Arrange(container geom.Vec, s Style, items []Item) []geom.Rect {
	if len(items) == 0 {
		return nil
	}
	ax := axis{row: s.Direction == Row}
	pad := s.Padding

	var padMain, padCross, startMain, startCross float64
	if ax.row {
		padMain, padCross = pad.Horizontal(), pad.Vertical()
		startMain, startCross = pad.Left, pad.Top
	} else {
		padMain, padCross = pad.Vertical(), pad.Horizontal()
		startMain, startCross = pad.Top, pad.Left
	}
	mainSpace := max(ax.main(container)-padMain, 0)
	crossSpace := max(ax.cross(container)-padCross, 0)

	gaps := s.Gap * float64(len(items)-1)
	sizes := make([]float64, len(items))
	var used, grow float64
	for i, it := range items {
		sizes[i] = max(ax.main(it.Size), ax.main(it.Min))
		used += sizes[i]
		grow += max(it.Grow, 0)
	}
	free := mainSpace - used - gaps

	switch {
	case free > 0 && grow > 0:
		for i, it := range items {
			sizes[i] += free * max(it.Grow, 0) / grow
		}
		free = 0
	case free < 0:
		free = shrink(sizes, items, ax, -free)
	}

	offset, between := justify(s.Justify, max(free, 0), len(items))
	rects := make([]geom.Rect, len(items))
	pos := startMain + offset
	for i, it := range items {
		cross := ax.cross(it.Size)
		var at float64
		switch s.Align {
		case AlignStretch:
			cross = max(crossSpace, ax.cross(it.Min))
		case AlignEnd:
			at = crossSpace - cross
		case AlignCenter:
			at = (crossSpace - cross) / 2
		}
		rects[i] = geom.RectOf(ax.vec(pos, startCross+at), ax.vec(sizes[i], cross))
		pos += sizes[i] + s.Gap + between
	}
	return rects
}

// shrink removes overflow from sizes in proportion to each item's slack above
// its minimum. It returns the negated overflow that could not be absorbed.
func shrink(sizes []float64, items []Item, ax axis, overflow float64) float64 {
	var slack float64
	for i, it := range items {
		slack += sizes[i] - ax.main(it.Min)
	}
	if slack <= 0 {
		return -overflow
	}
	take := min(overflow, slack)
	for i, it := range items {
		s := sizes[i] - ax.main(it.Min)
		sizes[i] -= take * s / slack
	}
	return take - overflow
}

// justify returns the leading offset and the extra space between items.
func justify(j Justify, free float64, n int) (offset, between float64) {
	switch j {
	case JustifyEnd:
		return free, 0
	case JustifyCenter:
		return free / 2, 0
	case JustifySpaceBetween:
		if n > 1 {
			return 0, free / float64(n-1)
		}
		return 0, 0
	case JustifySpaceAround:
		each := free / float64(n)
		return each / 2, each
	case JustifySpaceEvenly:
		each := free / float64(n+1)
		return each, each
	default:
		return 0, 0
	}
}
