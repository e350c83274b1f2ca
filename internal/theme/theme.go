// Package theme loads style definitions from TOML and answers key lookups.
//
// A theme file is a set of named tables, one per style:
//
//	[Window]
//	clipPadding = 2
//	textPadding = [4, 4, 2, 2] # left, right, top, bottom
//	minDimensions = [40, 20]
//	tileImage = false
//
// Values are consumed at construction and configuration time only.
package theme

import (
	"errors"
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/grindlemire/go-uitree/internal/geom"
)

var (
	// ErrMissingStyle is returned when a style name is not defined.
	ErrMissingStyle = errors.New("style not defined")
	// ErrMissingKey is returned when a style has no value for a key.
	ErrMissingKey = errors.New("style key not defined")
	// ErrWrongType is returned when a value cannot be converted to the requested type.
	ErrWrongType = errors.New("style value has the wrong type")
)

// Theme is a set of named styles.
type Theme struct {
	styles map[string]Style
}

// Style is a single named table of values.
type Style struct {
	name   string
	values map[string]any
}

// Load reads and parses a theme file.
func Load(path string) (*Theme, error) {
	raw := map[string]map[string]any{}
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("load theme %s: %w", path, err)
	}
	return fromRaw(raw), nil
}

// Parse parses theme data held in memory.
func Parse(data string) (*Theme, error) {
	raw := map[string]map[string]any{}
	if _, err := toml.Decode(data, &raw); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	return fromRaw(raw), nil
}

// New builds a theme directly from values, mainly for tests and embedding.
func New(styles map[string]map[string]any) *Theme {
	return fromRaw(styles)
}

func fromRaw(raw map[string]map[string]any) *Theme {
	t := &Theme{styles: make(map[string]Style, len(raw))}
	for name, values := range raw {
		t.styles[name] = Style{name: name, values: values}
	}
	return t
}

// Names returns the defined style names in sorted order.
func (t *Theme) Names() []string {
	names := make([]string, 0, len(t.styles))
	for name := range t.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Style returns the named style.
func (t *Theme) Style(name string) (Style, error) {
	s, ok := t.styles[name]
	if !ok {
		return Style{}, fmt.Errorf("%w: %q", ErrMissingStyle, name)
	}
	return s, nil
}

// Name returns the style's name.
func (s Style) Name() string {
	return s.name
}

// Has reports whether the style defines key.
func (s Style) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

func (s Style) lookup(key string) (any, error) {
	v, ok := s.values[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrMissingKey, s.name, key)
	}
	return v, nil
}

// Float returns a numeric value.
func (s Style) Float(key string) (float64, error) {
	v, err := s.lookup(key)
	if err != nil {
		return 0, err
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, fmt.Errorf("%w: %s.%s is %T, want number", ErrWrongType, s.name, key, v)
	}
	return f, nil
}

// Bool returns a boolean value.
func (s Style) Bool(key string) (bool, error) {
	v, err := s.lookup(key)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s.%s is %T, want bool", ErrWrongType, s.name, key, v)
	}
	return b, nil
}

// Text returns a string value.
func (s Style) Text(key string) (string, error) {
	v, err := s.lookup(key)
	if err != nil {
		return "", err
	}
	str, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s.%s is %T, want string", ErrWrongType, s.name, key, v)
	}
	return str, nil
}

// Vec returns a two-element array as a vector.
func (s Style) Vec(key string) (geom.Vec, error) {
	nums, err := s.floats(key, 2)
	if err != nil {
		return geom.Vec{}, err
	}
	return geom.V(nums[0], nums[1]), nil
}

// Edges returns padding. A single number applies to all four sides; a
// four-element array is read as left, right, top, bottom.
func (s Style) Edges(key string) (geom.Edges, error) {
	v, err := s.lookup(key)
	if err != nil {
		return geom.Edges{}, err
	}
	if f, ok := toFloat(v); ok {
		return geom.EdgeAll(f), nil
	}
	nums, err := s.floats(key, 4)
	if err != nil {
		return geom.Edges{}, err
	}
	return geom.EdgeLRTB(nums[0], nums[1], nums[2], nums[3]), nil
}

func (s Style) floats(key string, n int) ([]float64, error) {
	v, err := s.lookup(key)
	if err != nil {
		return nil, err
	}
	arr, ok := v.([]any)
	if !ok || len(arr) != n {
		return nil, fmt.Errorf("%w: %s.%s is %T, want array of %d numbers", ErrWrongType, s.name, key, v, n)
	}
	out := make([]float64, n)
	for i, item := range arr {
		f, ok := toFloat(item)
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s[%d] is %T, want number", ErrWrongType, s.name, key, i, item)
		}
		out[i] = f
	}
	return out, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
