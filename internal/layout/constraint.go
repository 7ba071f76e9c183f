package layout

import "fmt"

// Mode is how a Constraint bounds a measured size.
type Mode uint8

const (
	Unconstrained Mode = iota // No limit, size to content
	Exactly                   // Size must equal the constraint
	AtMost                    // Size may not exceed the constraint
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Unconstrained:
		return "unconstrained"
	case Exactly:
		return "exactly"
	case AtMost:
		return "atmost"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Constraint is one axis of a measurement request.
type Constraint struct {
	Size int
	Mode Mode
}

// ExactlyOf returns a constraint requiring exactly n pixels.
func ExactlyOf(n int) Constraint {
	return Constraint{Size: max(0, n), Mode: Exactly}
}

// AtMostOf returns a constraint allowing up to n pixels.
func AtMostOf(n int) Constraint {
	return Constraint{Size: max(0, n), Mode: AtMost}
}

// None returns an unconstrained measurement request.
func None() Constraint {
	return Constraint{Mode: Unconstrained}
}

// Bounded returns true if the constraint carries a finite budget.
func (c Constraint) Bounded() bool {
	return c.Mode != Unconstrained
}

// Resolve applies the constraint to a natural content size.
func (c Constraint) Resolve(natural int) int {
	switch c.Mode {
	case Exactly:
		return c.Size
	case AtMost:
		return min(natural, c.Size)
	default:
		return natural
	}
}

// String formats the constraint as "exactly:N", "atmost:N" or "unconstrained".
func (c Constraint) String() string {
	if c.Mode == Unconstrained {
		return c.Mode.String()
	}
	return fmt.Sprintf("%s:%d", c.Mode, c.Size)
}

// Size is a measured width and height in pixels.
type Size struct {
	Width, Height int
}

// along returns the extent of s on the given axis.
func (s Size) along(a Axis) int {
	if a == Horizontal {
		return s.Width
	}
	return s.Height
}

// Axis selects the columns (Horizontal) or rows (Vertical) of the grid.
type Axis uint8

const (
	Horizontal Axis = iota // Columns, measured along the width
	Vertical               // Rows, measured along the height
)

// String returns the axis name.
func (a Axis) String() string {
	if a == Horizontal {
		return "columns"
	}
	return "rows"
}

// cross returns the other axis.
func (a Axis) cross() Axis {
	return 1 - a
}
