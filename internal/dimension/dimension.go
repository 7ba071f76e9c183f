// Package dimension converts dimension strings such as "12dp" or "3.5mm"
// into pixel values for a given set of display metrics.
//
// The format is a non-negative decimal number followed by a unit suffix:
// px, dip, dp, sp, pt, in or mm. Whitespace around the number and unit is
// ignored and the unit is matched case-insensitively.
package dimension

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrFormat reports a malformed dimension string or an unknown unit.
var ErrFormat = errors.New("format error")

// FormatError describes why a dimension string could not be parsed.
type FormatError struct {
	Text   string
	Reason string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("format error: %q: %s", e.Text, e.Reason)
}

// Unwrap lets errors.Is match ErrFormat.
func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// Unit is a dimension unit suffix.
type Unit uint8

const (
	UnitPx  Unit = iota // raw pixels
	UnitDip             // density-independent pixels
	UnitSp              // scale-independent pixels
	UnitPt              // points, 1/72 inch
	UnitIn              // inches
	UnitMm              // millimeters
)

var unitNames = map[string]Unit{
	"px":  UnitPx,
	"dip": UnitDip,
	"dp":  UnitDip,
	"sp":  UnitSp,
	"pt":  UnitPt,
	"in":  UnitIn,
	"mm":  UnitMm,
}

// String returns the canonical suffix for the unit.
func (u Unit) String() string {
	switch u {
	case UnitPx:
		return "px"
	case UnitDip:
		return "dp"
	case UnitSp:
		return "sp"
	case UnitPt:
		return "pt"
	case UnitIn:
		return "in"
	case UnitMm:
		return "mm"
	default:
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
}

// Metrics describes the display the dimensions are converted for.
type Metrics struct {
	Density       float64 `mapstructure:"density"`        // pixels per dp
	ScaledDensity float64 `mapstructure:"scaled_density"` // pixels per sp
	XDPI          float64 `mapstructure:"xdpi"`           // physical pixels per inch
}

// DefaultMetrics returns the 160 dpi baseline display.
func DefaultMetrics() Metrics {
	return Metrics{Density: 1, ScaledDensity: 1, XDPI: 160}
}

// Apply converts value in the given unit to pixels.
func (m Metrics) Apply(unit Unit, value float64) float64 {
	switch unit {
	case UnitDip:
		return value * m.Density
	case UnitSp:
		return value * m.ScaledDensity
	case UnitPt:
		return value * m.XDPI / 72
	case UnitIn:
		return value * m.XDPI
	case UnitMm:
		return value * m.XDPI / 25.4
	default:
		return value
	}
}

var pattern = regexp.MustCompile(`^\s*(\d+(\.\d+)*)\s*([a-zA-Z]+)\s*$`)

// Parse splits text into its numeric value and unit.
func Parse(text string) (float64, Unit, error) {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, &FormatError{Text: text, Reason: "expected <number><unit>"}
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, 0, &FormatError{Text: text, Reason: "invalid number " + m[1]}
	}
	unit, ok := unitNames[strings.ToLower(m[3])]
	if !ok {
		return 0, 0, &FormatError{Text: text, Reason: "unknown unit " + m[3]}
	}
	return value, unit, nil
}

// Dimension returns the pixel value of text without rounding.
func Dimension(text string, m Metrics) (float64, error) {
	value, unit, err := Parse(text)
	if err != nil {
		return 0, err
	}
	return m.Apply(unit, value), nil
}

// PixelSize returns the pixel value of text rounded to a whole pixel.
// A non-zero dimension never rounds to zero: it becomes one pixel instead.
func PixelSize(text string, m Metrics) (int, error) {
	value, unit, err := Parse(text)
	if err != nil {
		return 0, err
	}
	px := int(m.Apply(unit, value) + 0.5)
	switch {
	case px != 0:
		return px, nil
	case value == 0:
		return 0, nil
	case value > 0:
		return 1, nil
	default:
		return -1, nil
	}
}
