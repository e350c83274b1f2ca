package uitree

import (
	"fmt"

	"github.com/grindlemire/go-uitree/internal/theme"
)

// Theme is a set of named styles loaded from TOML.
type Theme = theme.Theme

// LoadTheme reads a TOML theme file.
func LoadTheme(path string) (*Theme, error) {
	return theme.Load(path)
}

// ParseTheme parses TOML theme data.
func ParseTheme(data string) (*Theme, error) {
	return theme.Parse(data)
}

func (e *Element) style(name string) (theme.Style, error) {
	if e.screen.theme == nil {
		return theme.Style{}, ErrNoTheme
	}
	return e.screen.theme.Style(name)
}

// SetClipPaddingByKey reads the clip padding from the screen's theme.
func (e *Element) SetClipPaddingByKey(style, key string) error {
	s, err := e.style(style)
	if err != nil {
		return fmt.Errorf("clip padding for %q: %w", e.key, err)
	}
	p, err := s.Edges(key)
	if err != nil {
		return fmt.Errorf("clip padding for %q: %w", e.key, err)
	}
	e.SetClipPadding(p)
	return nil
}

// SetTextPaddingByKey reads the text padding from the screen's theme.
func (e *Element) SetTextPaddingByKey(style, key string) error {
	s, err := e.style(style)
	if err != nil {
		return fmt.Errorf("text padding for %q: %w", e.key, err)
	}
	p, err := s.Edges(key)
	if err != nil {
		return fmt.Errorf("text padding for %q: %w", e.key, err)
	}
	e.SetTextPadding(p)
	return nil
}

// SetTextClipPaddingByKey reads the text clip padding from the screen's theme.
func (e *Element) SetTextClipPaddingByKey(style, key string) error {
	s, err := e.style(style)
	if err != nil {
		return fmt.Errorf("text clip padding for %q: %w", e.key, err)
	}
	p, err := s.Edges(key)
	if err != nil {
		return fmt.Errorf("text clip padding for %q: %w", e.key, err)
	}
	e.SetTextClipPadding(p)
	return nil
}

// SetTileImageByKey reads the tile flag from the screen's theme.
func (e *Element) SetTileImageByKey(style, key string) error {
	s, err := e.style(style)
	if err != nil {
		return fmt.Errorf("tile image for %q: %w", e.key, err)
	}
	tile, err := s.Bool(key)
	if err != nil {
		return fmt.Errorf("tile image for %q: %w", e.key, err)
	}
	e.SetTileImage(tile)
	return nil
}

// SetMinDimensionsByKey reads the size floor from the screen's theme.
func (e *Element) SetMinDimensionsByKey(style, key string) error {
	s, err := e.style(style)
	if err != nil {
		return fmt.Errorf("min dimensions for %q: %w", e.key, err)
	}
	floor, err := s.Vec(key)
	if err != nil {
		return fmt.Errorf("min dimensions for %q: %w", e.key, err)
	}
	e.SetMinDimensions(floor)
	return nil
}
