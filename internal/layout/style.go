package layout

import (
	"fmt"
	"strings"

	"github.com/grindlemire/go-uitree/internal/geom"
)

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Stretch to fill cross axis
)

var (
	directionNames = [...]string{"row", "column"}
	justifyNames   = [...]string{"start", "end", "center", "space-between", "space-around", "space-evenly"}
	alignNames     = [...]string{"start", "end", "center", "stretch"}
)

func (d Direction) String() string { return name(directionNames[:], int(d)) }
func (j Justify) String() string   { return name(justifyNames[:], int(j)) }
func (a Align) String() string     { return name(alignNames[:], int(a)) }

func name(names []string, i int) string {
	if i < len(names) {
		return names[i]
	}
	return fmt.Sprintf("%d", i)
}

// ParseDirection accepts "row" or "column" in any case.
func ParseDirection(s string) (Direction, error) {
	i, err := parse("direction", directionNames[:], s)
	return Direction(i), err
}

// ParseJustify accepts a justify mode such as "space-between".
func ParseJustify(s string) (Justify, error) {
	i, err := parse("justify mode", justifyNames[:], s)
	return Justify(i), err
}

// ParseAlign accepts an align mode such as "stretch".
func ParseAlign(s string) (Align, error) {
	i, err := parse("align mode", alignNames[:], s)
	return Align(i), err
}

func parse(kind string, names []string, s string) (int, error) {
	for i, n := range names {
		if strings.EqualFold(s, n) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", kind, s)
}

// Style contains the container properties used by Arrange.
type Style struct {
	Direction Direction
	Justify   Justify
	Align     Align
	Gap       float64 // Space between children (main axis only)
	Padding   geom.Edges
}

// Item is one child taking part in an arrangement.
type Item struct {
	Size geom.Vec // Preferred size
	Min  geom.Vec // Floor applied when shrinking or stretching
	Grow float64  // Share of free main-axis space relative to siblings
}
