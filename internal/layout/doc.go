// Package layout implements a grid layout engine with Pixel, Auto and Star
// sized rows and columns.
//
// Children declare the row and column they start in and how many tracks
// they span. Pixel tracks have a fixed size, Auto tracks fit the largest
// child that needs them, and Star tracks share the remaining space by
// weight. Types are re-exported through the root gridview package for
// public consumption.
//
// The entry point is [Engine]: the host calls [Engine.Measure] with the
// width and height constraints of the grid, then [Engine.Layout] with the
// final bounds, and the engine measures and places each [Element].
package layout
