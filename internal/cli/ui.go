package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	uitree "github.com/grindlemire/go-uitree"
)

// =============================================================================
// Styles
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorWhite  = lipgloss.Color("255")
	colorDim    = lipgloss.Color("240")
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleKey    = lipgloss.NewStyle().Foreground(colorCyan)
	styleValue  = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleClip   = lipgloss.NewStyle().Foreground(colorYellow)
	styleHidden = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// Tree View
// =============================================================================

// printTree writes the element tree of s. A non-empty key restricts the
// output to that element's subtree.
func printTree(w io.Writer, s *uitree.Screen, key string) error {
	var t *tree.Tree
	if key != "" {
		e, err := lookup(s, key)
		if err != nil {
			return err
		}
		t = elementTree(e)
	} else {
		t = tree.Root(styleTitle.Render(fmt.Sprintf("screen %gx%g", s.Width(), s.Height())))
		for _, r := range s.Roots() {
			t.Child(elementTree(r))
		}
	}
	_, err := fmt.Fprintln(w, t.Enumerator(tree.RoundedEnumerator).EnumeratorStyle(styleDim))
	return err
}

func elementTree(e *uitree.Element) *tree.Tree {
	t := tree.Root(describe(e))
	for _, c := range e.Children() {
		t.Child(elementTree(c))
	}
	return t
}

// describe renders one line per element: key, absolute rect, z-order and,
// when relevant, the clip rectangle or the hidden marker.
func describe(e *uitree.Element) string {
	pos, dim := e.AbsolutePosition(), e.Dimensions()
	parts := []string{
		styleKey.Render(e.Key()),
		styleValue.Render(fmt.Sprintf("%g,%g %gx%g", pos.X, pos.Y, dim.X, dim.Y)),
		styleDim.Render(fmt.Sprintf("z=%g", e.AbsoluteZOrder())),
	}
	switch {
	case !e.IsVisible():
		parts = append(parts, styleHidden.Render("hidden"))
	case e.IsClipped():
		b := e.ClipBounds()
		parts = append(parts, styleClip.Render(fmt.Sprintf("clip=%g,%g..%g,%g", b.Left, b.Bottom, b.Right, b.Top)))
	}
	return strings.Join(parts, " ")
}

// path joins the keys from the screen root down to e.
func path(e *uitree.Element) string {
	var keys []string
	for p := e; p != nil; p = p.Parent() {
		keys = append([]string{p.Key()}, keys...)
	}
	return strings.Join(keys, "/")
}
