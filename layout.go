// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package gridview

import (
	"go.uber.org/zap"

	"github.com/grindlemire/go-gridview/internal/dimension"
	"github.com/grindlemire/go-gridview/internal/layout"
)

// Unit specifies how a GridLength is interpreted.
type Unit = layout.Unit

const (
	UnitAuto  = layout.UnitAuto
	UnitPixel = layout.UnitPixel
	UnitStar  = layout.UnitStar
)

// GridLength is the declared size of a row or column.
type GridLength = layout.GridLength

// Definition is the declared length of one row or column.
type Definition = layout.Definition

// Metrics describes the display dimension strings are converted for.
type Metrics = dimension.Metrics

// Mode is how a Constraint bounds a measured size.
type Mode = layout.Mode

const (
	Unconstrained = layout.Unconstrained
	Exactly       = layout.Exactly
	AtMost        = layout.AtMost
)

// Constraint is one axis of a measurement request.
type Constraint = layout.Constraint

// Size is a measured width and height in pixels.
type Size = layout.Size

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Axis selects the columns (Horizontal) or rows (Vertical) of the grid.
type Axis = layout.Axis

const (
	Horizontal = layout.Horizontal
	Vertical   = layout.Vertical
)

// SizeHint is the host's own sizing request for a child.
type SizeHint = layout.SizeHint

const (
	MatchParent = layout.MatchParent
	WrapContent = layout.WrapContent
)

// Params is the placement of a child in the grid.
type Params = layout.Params

// Element is a child of the grid as seen by the engine.
type Element = layout.Element

// Engine measures and places the children of one grid.
type Engine = layout.Engine

// EngineOption is a functional option for configuring an Engine.
type EngineOption = layout.EngineOption

// ArgumentError names the argument that failed validation.
type ArgumentError = layout.ArgumentError

// FormatError describes a malformed length or dimension string.
type FormatError = dimension.FormatError

var (
	ErrInvalidArgument = layout.ErrInvalidArgument
	ErrFormat          = layout.ErrFormat
)

// Auto returns a length sized to content.
func Auto() GridLength {
	return layout.Auto()
}

// Pixel returns a fixed length of v pixels.
func Pixel(v float64) (GridLength, error) {
	return layout.Pixel(v)
}

// Star returns a proportional length with weight w.
func Star(w float64) (GridLength, error) {
	return layout.Star(w)
}

// NewLength returns a length of the given unit.
func NewLength(value float64, unit Unit) (GridLength, error) {
	return layout.NewLength(value, unit)
}

// ParseLength parses "auto", "*", "<weight>*" or a dimension such as "48dp".
func ParseLength(text string, metrics Metrics) (GridLength, error) {
	return layout.ParseLength(text, metrics)
}

// MustParseLength is like ParseLength with default metrics but panics on error.
func MustParseLength(text string) GridLength {
	return layout.MustParseLength(text)
}

// DefaultMetrics returns the 160 dpi baseline display.
func DefaultMetrics() Metrics {
	return dimension.DefaultMetrics()
}

// PixelSize converts a dimension string to whole pixels.
func PixelSize(text string, metrics Metrics) (int, error) {
	return dimension.PixelSize(text, metrics)
}

// Definitions wraps lengths into track definitions.
func Definitions(lengths ...GridLength) []Definition {
	return layout.Definitions(lengths...)
}

// DefaultParams places a child in the first cell with wrap-content hints.
func DefaultParams() Params {
	return layout.DefaultParams()
}

// NewParams validates and returns a placement.
func NewParams(row, rowSpan, column, columnSpan int) (Params, error) {
	return layout.NewParams(row, rowSpan, column, columnSpan)
}

// ExactlyOf returns a constraint requiring exactly n pixels.
func ExactlyOf(n int) Constraint {
	return layout.ExactlyOf(n)
}

// AtMostOf returns a constraint allowing up to n pixels.
func AtMostOf(n int) Constraint {
	return layout.AtMostOf(n)
}

// None returns an unconstrained measurement request.
func None() Constraint {
	return layout.None()
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// NewEngine creates an engine for the given rows and columns.
func NewEngine(rows, columns []Definition, opts ...EngineOption) (*Engine, error) {
	return layout.NewEngine(rows, columns, opts...)
}

// WithLogger sets the logger used for per-stage debug output.
func WithLogger(l *zap.Logger) EngineOption {
	return layout.WithLogger(l)
}
