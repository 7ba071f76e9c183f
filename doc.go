// Package gridview arranges child elements in rows and columns whose
// sizes are fixed (Pixel), fitted to content (Auto) or proportional
// shares of the remaining space (Star).
//
// Users import this single package for the public API: track lengths,
// placement parameters, the measurement protocol, and the Engine that
// sizes and places children. The host supplies children by implementing
// Element.
package gridview
