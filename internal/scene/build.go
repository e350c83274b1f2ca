package scene

import (
	"fmt"
	"strings"

	uitree "github.com/grindlemire/go-uitree"
	"github.com/grindlemire/go-uitree/internal/theme"
)

// styleKeys are the theme keys applied when an element names a style.
var styleKeys = []struct {
	key   string
	apply func(e *uitree.Element, style, key string) error
}{
	{"clipPadding", (*uitree.Element).SetClipPaddingByKey},
	{"textPadding", (*uitree.Element).SetTextPaddingByKey},
	{"textClipPadding", (*uitree.Element).SetTextClipPaddingByKey},
	{"tileImage", (*uitree.Element).SetTileImageByKey},
	{"minDimensions", (*uitree.Element).SetMinDimensionsByKey},
}

type pendingClip struct {
	element *uitree.Element
	keys    []string
}

type builder struct {
	screen  *uitree.Screen
	pending []pendingClip
}

// Build creates a screen and attaches every element in f. Options are
// applied after the screen settings from the file, so they take precedence.
func (f *File) Build(opts ...uitree.ScreenOption) (*uitree.Screen, error) {
	var base []uitree.ScreenOption
	if f.Screen.Width != 0 || f.Screen.Height != 0 {
		base = append(base, uitree.WithSize(f.Screen.Width, f.Screen.Height))
	}
	if f.Screen.ZOrderStep != 0 {
		base = append(base, uitree.WithZOrderStep(f.Screen.ZOrderStep))
	}
	if f.Screen.Theme != "" {
		th, err := theme.Load(f.resolve(f.Screen.Theme))
		if err != nil {
			return nil, err
		}
		base = append(base, uitree.WithTheme(th))
	}

	s, err := uitree.NewScreen(append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	b := &builder{screen: s}
	for _, def := range f.Elements {
		e, err := b.element(def, s.Size())
		if err != nil {
			return nil, err
		}
		if def.Hidden {
			err = s.AddElementHidden(e)
		} else {
			err = s.AddElement(e)
		}
		if err != nil {
			return nil, err
		}
	}

	if err := b.resolveClips(); err != nil {
		return nil, err
	}
	for _, r := range s.Roots() {
		r.LayoutChildren()
	}
	s.Logger().Debug("built scene", "elements", s.Registry().Len())
	return s, nil
}

func (b *builder) element(def ElementDef, parentSize uitree.Vec) (*uitree.Element, error) {
	if def.Key == "" {
		return nil, fmt.Errorf("%w: element without a key", ErrInvalid)
	}
	pos, err := vec(def.Key, "position", def.Position, uitree.V(0, 0))
	if err != nil {
		return nil, err
	}
	if def.Size == nil {
		return nil, fmt.Errorf("%w: element %q: size is required", ErrInvalid, def.Key)
	}
	size, err := vec(def.Key, "size", def.Size, uitree.Vec{})
	if err != nil {
		return nil, err
	}
	pos = uitree.ToPixels(pos, parentSize)
	size = uitree.ToPixels(size, parentSize)

	opts, err := elementOptions(def)
	if err != nil {
		return nil, err
	}
	e := uitree.New(b.screen, def.Key, pos, size, opts...)

	if def.Style != "" {
		if err := applyStyle(e, def.Style); err != nil {
			return nil, err
		}
	}
	if def.Atlas != "" {
		if err := e.SetAtlasRegion(def.Atlas); err != nil {
			return nil, fmt.Errorf("element %q: %w", def.Key, err)
		}
	}

	for _, cd := range def.Children {
		c, err := b.element(cd, size)
		if err != nil {
			return nil, err
		}
		if cd.Hidden {
			err = e.AddChildHidden(c)
		} else {
			err = e.AddChild(c)
		}
		if err != nil {
			return nil, err
		}
	}

	if def.Layout != nil {
		l, err := stackLayout(def)
		if err != nil {
			return nil, err
		}
		e.SetLayout(l)
	}

	if len(def.ClipTo) > 0 {
		b.pending = append(b.pending, pendingClip{element: e, keys: def.ClipTo})
	}
	return e, nil
}

func elementOptions(def ElementDef) ([]uitree.Option, error) {
	opts := []uitree.Option{uitree.WithLockToParentBounds(def.LockToParent)}

	if def.MinSize != nil {
		floor, err := vec(def.Key, "minSize", def.MinSize, uitree.Vec{})
		if err != nil {
			return nil, err
		}
		opts = append(opts, uitree.WithMinDimensions(floor))
	}
	if def.Resize != nil {
		n, s, e, w, err := borders(*def.Resize)
		if err != nil {
			return nil, fmt.Errorf("%w: element %q: %w", ErrInvalid, def.Key, err)
		}
		opts = append(opts, uitree.WithResizeBorders(n, s, e, w))
	}
	if def.Docking != "" {
		d, err := uitree.ParseDocking(def.Docking)
		if err != nil {
			return nil, fmt.Errorf("%w: element %q: %w", ErrInvalid, def.Key, err)
		}
		opts = append(opts, uitree.WithDocking(d))
	}

	ns, ew := true, true
	if def.ScaleNS != nil {
		ns = *def.ScaleNS
	}
	if def.ScaleEW != nil {
		ew = *def.ScaleEW
	}
	opts = append(opts, uitree.WithScale(ns, ew))
	return opts, nil
}

func stackLayout(def ElementDef) (*uitree.StackLayout, error) {
	ld := def.Layout
	l := &uitree.StackLayout{Align: uitree.AlignStretch, Gap: ld.Gap}

	var err error
	if ld.Direction != "" {
		if l.Direction, err = uitree.ParseDirection(ld.Direction); err != nil {
			return nil, fmt.Errorf("%w: element %q: %w", ErrInvalid, def.Key, err)
		}
	}
	if ld.Justify != "" {
		if l.Justify, err = uitree.ParseJustify(ld.Justify); err != nil {
			return nil, fmt.Errorf("%w: element %q: %w", ErrInvalid, def.Key, err)
		}
	}
	if ld.Align != "" {
		if l.Align, err = uitree.ParseAlign(ld.Align); err != nil {
			return nil, fmt.Errorf("%w: element %q: %w", ErrInvalid, def.Key, err)
		}
	}

	switch len(ld.Padding) {
	case 0:
	case 1:
		l.Padding = uitree.EdgeAll(ld.Padding[0])
	case 4:
		l.Padding = uitree.EdgeLRTB(ld.Padding[0], ld.Padding[1], ld.Padding[2], ld.Padding[3])
	default:
		return nil, fmt.Errorf("%w: element %q: layout padding needs 1 or 4 values, got %d", ErrInvalid, def.Key, len(ld.Padding))
	}

	for _, cd := range def.Children {
		if cd.Grow != 0 {
			if l.Grow == nil {
				l.Grow = map[string]float64{}
			}
			l.Grow[cd.Key] = cd.Grow
		}
	}
	return l, nil
}

func applyStyle(e *uitree.Element, name string) error {
	th := e.Screen().Theme()
	if th == nil {
		return fmt.Errorf("element %q uses style %q: %w", e.Key(), name, uitree.ErrNoTheme)
	}
	style, err := th.Style(name)
	if err != nil {
		return fmt.Errorf("element %q: %w", e.Key(), err)
	}
	for _, sk := range styleKeys {
		if !style.Has(sk.key) {
			continue
		}
		if err := sk.apply(e, name, sk.key); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) resolveClips() error {
	for _, p := range b.pending {
		for _, key := range p.keys {
			provider := b.screen.ElementByID(key)
			if provider == nil {
				return fmt.Errorf("%w: element %q is clipped by unknown element %q", ErrInvalid, p.element.Key(), key)
			}
			p.element.AddClippingLayer(provider)
		}
	}
	return nil
}

// borders parses a set of enabled resize borders such as "NE" or "nsew".
func borders(s string) (north, south, east, west bool, err error) {
	for _, r := range strings.ToUpper(s) {
		switch r {
		case 'N':
			north = true
		case 'S':
			south = true
		case 'E':
			east = true
		case 'W':
			west = true
		default:
			return false, false, false, false, fmt.Errorf("unknown resize border %q", r)
		}
	}
	return north, south, east, west, nil
}

func vec(key, field string, v []float64, def uitree.Vec) (uitree.Vec, error) {
	switch len(v) {
	case 0:
		return def, nil
	case 2:
		return uitree.V(v[0], v[1]), nil
	default:
		return uitree.Vec{}, fmt.Errorf("%w: element %q: %s needs 2 values, got %d", ErrInvalid, key, field, len(v))
	}
}
