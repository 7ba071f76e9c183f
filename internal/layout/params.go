package layout

import "fmt"

// SizeHint is the host's own sizing request for a child: fill the offered
// space, wrap the content, or a fixed pixel size (any value >= 0).
type SizeHint int

const (
	MatchParent SizeHint = -1
	WrapContent SizeHint = -2
)

// String returns "match_parent", "wrap_content" or the pixel size.
func (h SizeHint) String() string {
	switch h {
	case MatchParent:
		return "match_parent"
	case WrapContent:
		return "wrap_content"
	default:
		return fmt.Sprintf("%dpx", int(h))
	}
}

// Measure resolves the hint against a constraint and natural content size,
// the way a plain host element measures itself.
func (h SizeHint) Measure(c Constraint, natural int) int {
	switch {
	case c.Mode == Exactly:
		return c.Size
	case h >= 0:
		return c.Resolve(int(h))
	case h == MatchParent && c.Mode == AtMost:
		return c.Size
	default:
		return c.Resolve(natural)
	}
}

// Params is the placement of a child in the grid.
// Use NewParams or the setters; direct field writes skip validation.
type Params struct {
	Row        int
	RowSpan    int
	Column     int
	ColumnSpan int

	// Width and Height are the host's size hints for the child.
	Width  SizeHint
	Height SizeHint
}

// DefaultParams places a child in the first cell with wrap-content hints.
func DefaultParams() Params {
	return Params{RowSpan: 1, ColumnSpan: 1, Width: WrapContent, Height: WrapContent}
}

// NewParams validates and returns a placement with wrap-content hints.
func NewParams(row, rowSpan, column, columnSpan int) (Params, error) {
	p := DefaultParams()
	if err := p.SetRow(row); err != nil {
		return Params{}, err
	}
	if err := p.SetRowSpan(rowSpan); err != nil {
		return Params{}, err
	}
	if err := p.SetColumn(column); err != nil {
		return Params{}, err
	}
	if err := p.SetColumnSpan(columnSpan); err != nil {
		return Params{}, err
	}
	return p, nil
}

// SetRow sets the first row. It must not be negative.
func (p *Params) SetRow(row int) error {
	if row < 0 {
		return &ArgumentError{Name: "row", Value: row, Want: ">= 0"}
	}
	p.Row = row
	return nil
}

// SetRowSpan sets how many rows the child covers. It must be at least 1.
func (p *Params) SetRowSpan(span int) error {
	if span < 1 {
		return &ArgumentError{Name: "rowSpan", Value: span, Want: ">= 1"}
	}
	p.RowSpan = span
	return nil
}

// SetColumn sets the first column. It must not be negative.
func (p *Params) SetColumn(column int) error {
	if column < 0 {
		return &ArgumentError{Name: "column", Value: column, Want: ">= 0"}
	}
	p.Column = column
	return nil
}

// SetColumnSpan sets how many columns the child covers. It must be at least 1.
func (p *Params) SetColumnSpan(span int) error {
	if span < 1 {
		return &ArgumentError{Name: "columnSpan", Value: span, Want: ">= 1"}
	}
	p.ColumnSpan = span
	return nil
}

// Validate checks a Params built by direct field writes.
func (p Params) Validate() error {
	_, err := NewParams(p.Row, p.RowSpan, p.Column, p.ColumnSpan)
	return err
}

// span returns the first track and track count on an axis.
func (p Params) span(a Axis) (start, count int) {
	if a == Horizontal {
		return p.Column, p.ColumnSpan
	}
	return p.Row, p.RowSpan
}

// sameSpans reports whether two placements cover the same tracks.
func (p Params) sameSpans(o Params) bool {
	return p.Row == o.Row && p.RowSpan == o.RowSpan &&
		p.Column == o.Column && p.ColumnSpan == o.ColumnSpan
}
