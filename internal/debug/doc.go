// Package debug provides the structured logger shared by the CLI and the
// layout engine.
//
// When the GRIDVIEW_DEBUG environment variable is set to a file path,
// debug-level JSON records are also written to that file, rotated by
// size. Until Init is called, Logger returns a no-op logger.
package debug
