package layout

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/grindlemire/go-gridview/internal/dimension"
)

// Unit specifies how a GridLength is interpreted.
type Unit uint8

const (
	UnitAuto  Unit = iota // Sized to the largest attached child
	UnitPixel             // Absolute pixels
	UnitStar              // Weighted share of the remaining space
)

// String returns the unit name.
func (u Unit) String() string {
	switch u {
	case UnitAuto:
		return "auto"
	case UnitPixel:
		return "pixel"
	case UnitStar:
		return "star"
	default:
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
}

// GridLength is the declared size of a row or column.
// The zero value is a zero-pixel length.
type GridLength struct {
	value float64
	unit  Unit
}

// NewLength returns a length of the given unit. The value is a pixel size
// for UnitPixel and a weight for UnitStar; it must be finite and not
// negative.
func NewLength(value float64, unit Unit) (GridLength, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return GridLength{}, &ArgumentError{Name: "value", Value: value, Want: "finite"}
	}
	if value < 0 {
		return GridLength{}, &ArgumentError{Name: "value", Value: value, Want: ">= 0"}
	}
	if unit > UnitStar {
		return GridLength{}, &ArgumentError{Name: "unit", Value: unit, Want: "auto, pixel or star"}
	}
	return GridLength{value: value, unit: unit}, nil
}

// Auto returns a length sized to content.
func Auto() GridLength {
	return GridLength{value: 1, unit: UnitAuto}
}

// Pixel returns a fixed length of v pixels.
func Pixel(v float64) (GridLength, error) {
	return NewLength(v, UnitPixel)
}

// Star returns a proportional length with weight w.
func Star(w float64) (GridLength, error) {
	return NewLength(w, UnitStar)
}

// ParseLength parses "auto", "*", "<weight>*" or a dimension string such
// as "48dp". Dimensions are converted to whole pixels using metrics.
func ParseLength(text string, metrics dimension.Metrics) (GridLength, error) {
	s := strings.TrimSpace(text)
	switch {
	case strings.EqualFold(s, "auto"):
		return Auto(), nil
	case s == "*":
		return GridLength{value: 1, unit: UnitStar}, nil
	case strings.HasSuffix(s, "*"):
		w, err := strconv.ParseFloat(strings.TrimSpace(s[:len(s)-1]), 64)
		// ParseFloat accepts "NaN" and "Inf".
		if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
			return GridLength{}, &dimension.FormatError{Text: text, Reason: "invalid star weight"}
		}
		return Star(w)
	}

	px, err := dimension.PixelSize(s, metrics)
	if err != nil {
		return GridLength{}, err
	}
	return Pixel(float64(px))
}

// MustParseLength is like ParseLength with default metrics but panics on
// error. It is intended for literals.
func MustParseLength(text string) GridLength {
	l, err := ParseLength(text, dimension.DefaultMetrics())
	if err != nil {
		panic(err)
	}
	return l
}

// Value returns the pixel size or star weight.
func (l GridLength) Value() float64 { return l.value }

// Unit returns how the length is interpreted.
func (l GridLength) Unit() Unit { return l.unit }

// IsAuto returns true if the length is sized to content.
func (l GridLength) IsAuto() bool { return l.unit == UnitAuto }

// IsPixel returns true if the length is a fixed pixel size.
func (l GridLength) IsPixel() bool { return l.unit == UnitPixel }

// IsStar returns true if the length is a weighted share.
func (l GridLength) IsStar() bool { return l.unit == UnitStar }

// String returns "auto", "<weight>*" or the bare pixel value.
func (l GridLength) String() string {
	v := strconv.FormatFloat(l.value, 'g', -1, 64)
	switch l.unit {
	case UnitAuto:
		return "auto"
	case UnitStar:
		return v + "*"
	default:
		return v
	}
}
