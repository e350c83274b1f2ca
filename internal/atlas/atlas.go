// Package atlas parses texture-atlas region queries of the form
// "x=<n>|y=<n>|w=<n>|h=<n>".
//
// The region is expressed in image pixels with the origin at the top-left of
// the atlas image, the way atlas tools export it. FlipY converts a region
// into the y-up convention used by the element tree.
package atlas

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/grindlemire/go-uitree/internal/geom"
)

// ErrMalformedQuery is matched by every ParseError.
var ErrMalformedQuery = errors.New("atlas query does not conform to x=(int)|y=(int)|w=(int)|h=(int)")

// ParseError reports which part of a query could not be parsed.
type ParseError struct {
	Query  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse atlas query %q: %s", e.Query, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrMalformedQuery
}

// IsQuery reports whether s looks like an atlas query rather than a file path.
func IsQuery(s string) bool {
	return strings.Contains(s, "|") && strings.Contains(s, "=")
}

// Parse converts a query into a region. All four of x, y, w and h are
// required, each exactly once; w and h must be positive.
func Parse(query string) (geom.Rect, error) {
	fail := func(format string, args ...any) (geom.Rect, error) {
		return geom.Rect{}, &ParseError{Query: query, Reason: fmt.Sprintf(format, args...)}
	}

	parts := strings.Split(query, "|")
	if len(parts) != 4 {
		return fail("expected 4 fields, got %d", len(parts))
	}

	values := make(map[string]float64, 4)
	for _, part := range parts {
		name, raw, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			return fail("field %q has no '='", part)
		}
		name = strings.ToLower(strings.TrimSpace(name))
		switch name {
		case "x", "y", "w", "h":
		default:
			return fail("unknown field %q", name)
		}
		if _, dup := values[name]; dup {
			return fail("field %q given twice", name)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fail("field %q: %v", name, err)
		}
		values[name] = v
	}

	if values["w"] <= 0 || values["h"] <= 0 {
		return fail("width and height must be positive")
	}
	return geom.NewRect(values["x"], values["y"], values["w"], values["h"]), nil
}

// Format renders a region back into query form.
func Format(r geom.Rect) string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return "x=" + f(r.X) + "|y=" + f(r.Y) + "|w=" + f(r.Width) + "|h=" + f(r.Height)
}

// FlipY converts a top-left-origin region into y-up coordinates for an image
// of the given height.
func FlipY(r geom.Rect, imageHeight float64) geom.Rect {
	r.Y = imageHeight - r.Y - r.Height
	return r
}
