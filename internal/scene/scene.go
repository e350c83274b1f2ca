// Package scene loads element trees from declarative TOML files.
//
// A scene file describes the screen and a nested list of elements:
//
//	[screen]
//	width = 800
//	height = 600
//	theme = "theme.toml" # relative to the scene file
//
//	[[element]]
//	key = "window"
//	position = [100, 50] # top-down, like the element constructor
//	size = [400, 300]
//	style = "Window"
//
//	  [[element.child]]
//	  key = "title"
//	  size = [0.5, 30] # values below 1 are fractions of the parent
//	  clipTo = ["window"]
//
//	  [element.layout]
//	  direction = "column"
//	  gap = 4
//
// Clip providers are resolved by key once the whole tree is attached, so an
// element may be clipped by any element on the screen. Stack layouts run
// last, top-down.
package scene

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ErrInvalid is wrapped by every error describing a malformed scene.
var ErrInvalid = errors.New("invalid scene")

// File is a decoded scene file.
type File struct {
	Screen   ScreenDef    `toml:"screen"`
	Elements []ElementDef `toml:"element"`

	dir string // directory relative paths are resolved against
}

// ScreenDef configures the screen. Zero values keep the library defaults.
type ScreenDef struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	Theme      string  `toml:"theme"`
	ZOrderStep float64 `toml:"zOrderStep"`
}

// ElementDef describes one element and its children.
type ElementDef struct {
	Key          string    `toml:"key"`
	Position     []float64 `toml:"position"`
	Size         []float64 `toml:"size"`
	MinSize      []float64 `toml:"minSize"`
	Resize       *string   `toml:"resize"` // enabled borders, any of "NSEW"
	LockToParent bool      `toml:"lockToParent"`
	Docking      string    `toml:"docking"`
	ScaleNS      *bool     `toml:"scaleNS"`
	ScaleEW      *bool     `toml:"scaleEW"`
	ClipTo       []string  `toml:"clipTo"`
	Style        string    `toml:"style"`
	Atlas        string    `toml:"atlas"`
	Hidden       bool      `toml:"hidden"`
	Grow         float64   `toml:"grow"` // share of free space in a stacking parent

	Layout   *LayoutDef   `toml:"layout"`
	Children []ElementDef `toml:"child"`
}

// LayoutDef stacks an element's children along one axis.
type LayoutDef struct {
	Direction string    `toml:"direction"` // "row" or "column"
	Justify   string    `toml:"justify"`
	Align     string    `toml:"align"`
	Gap       float64   `toml:"gap"`
	Padding   []float64 `toml:"padding"` // one value, or left, right, top, bottom
}

// Load reads a scene file. Relative theme paths resolve against the
// file's directory.
func Load(path string) (*File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("load scene %s: %w", path, err)
	}
	f.dir = filepath.Dir(path)
	return &f, nil
}

// Parse decodes scene data held in memory. Relative paths resolve against
// the working directory.
func Parse(data string) (*File, error) {
	var f File
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return &f, nil
}

// checkUndecoded rejects keys the scene schema does not know, which are
// almost always typos.
func checkUndecoded(md toml.MetaData) error {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}
	return nil
}

func (f *File) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || f.dir == "" {
		return path
	}
	return filepath.Join(f.dir, path)
}

// Count returns the number of element definitions in the file.
func (f *File) Count() int {
	var count func([]ElementDef) int
	count = func(defs []ElementDef) int {
		n := len(defs)
		for _, d := range defs {
			n += count(d.Children)
		}
		return n
	}
	return count(f.Elements)
}
