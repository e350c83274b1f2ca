// Package layout distributes child boxes along one axis of a container.
//
// It supports row and column directions, justify and align modes, padding,
// gap, grow weights and minimum sizes. Coordinates are top-down: X grows to
// the right and Y grows downward from the container's top-left corner.
// Types are re-exported through the root uitree package.
//
// The main entry point is [Arrange].
package layout
