// Package uitree provides the geometric and structural core of a retained-mode
// UI element tree.
//
// Users import this single package for the complete public API: screens,
// element construction, resize/dock/scale behavior, clip providers,
// visibility, z-order, and the adapter interfaces a rendering host implements.
//
// Coordinates are y-up with the origin at the bottom-left of the parent.
package uitree
