// Package geom holds the float geometry value types used by the element tree.
//
// Coordinates follow the y-up convention: the origin is the bottom-left
// corner of the screen and y grows upward. A [Rect] is stored as origin plus
// size; a [Bounds] is the same area in left/bottom/right/top form, which is
// what clip computations and rendering backends consume.
// Types are re-exported through the root uitree package.
package geom
