package layout

import (
	"math"
	"strings"
	"testing"
)

// testElement is a minimal Element with a natural content size.
// It records every measurement and placement it receives.
type testElement struct {
	params   Params
	natural  Size
	measures []measureCall
	placed   Rect
	layouts  int
}

type measureCall struct {
	width, height Constraint
}

// newTestElement creates a single-cell element at (row, column).
func newTestElement(row, column, width, height int) *testElement {
	p := DefaultParams()
	p.Row = row
	p.Column = column
	return &testElement{params: p, natural: Size{Width: width, Height: height}}
}

// spans sets the row and column spans.
func (t *testElement) spans(rowSpan, columnSpan int) *testElement {
	t.params.RowSpan = rowSpan
	t.params.ColumnSpan = columnSpan
	return t
}

func (t *testElement) GridParams() Params { return t.params }

func (t *testElement) Measure(width, height Constraint) Size {
	t.measures = append(t.measures, measureCall{width: width, height: height})
	return Size{
		Width:  t.params.Width.Measure(width, t.natural.Width),
		Height: t.params.Height.Measure(height, t.natural.Height),
	}
}

func (t *testElement) Layout(r Rect) {
	t.placed = r
	t.layouts++
}

// lastMeasure returns the most recent measurement request.
func (t *testElement) lastMeasure() (measureCall, bool) {
	if len(t.measures) == 0 {
		return measureCall{}, false
	}
	return t.measures[len(t.measures)-1], true
}

// parseDefs parses space-separated track lengths such as "auto 2* 30px".
func parseDefs(t *testing.T, s string) []Definition {
	t.Helper()
	var lengths []GridLength
	for _, field := range strings.Fields(s) {
		lengths = append(lengths, MustParseLength(field))
	}
	return Definitions(lengths...)
}

// newTestEngine creates an engine from row and column length strings.
func newTestEngine(t *testing.T, rows, columns string) *Engine {
	t.Helper()
	e, err := NewEngine(parseDefs(t, rows), parseDefs(t, columns))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

// elements converts test elements to the Element interface.
func elements(children ...*testElement) []Element {
	result := make([]Element, len(children))
	for i, child := range children {
		result[i] = child
	}
	return result
}

// approx reports whether two lengths agree to well below a pixel.
func approx(got, want float64) bool {
	return math.Abs(got-want) < 1e-4
}
