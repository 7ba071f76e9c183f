package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEngine_PixelTracks(t *testing.T) {
	type tc struct {
		width, height Constraint
	}

	tests := map[string]tc{
		"exactly":       {width: ExactlyOf(500), height: ExactlyOf(500)},
		"at most":       {width: AtMostOf(40), height: AtMostOf(10)},
		"unconstrained": {width: None(), height: None()},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := newTestEngine(t, "30px 20px", "100px 50px")
			big := newTestElement(0, 0, 500, 500)
			small := newTestElement(1, 1, 1, 1)

			got := e.Measure(elements(big, small), tt.width, tt.height)

			if diff := cmp.Diff([]float64{100, 50}, e.TrackLengths(Horizontal)); diff != "" {
				t.Errorf("column lengths mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff([]float64{30, 20}, e.TrackLengths(Vertical)); diff != "" {
				t.Errorf("row lengths mismatch (-want +got):\n%s", diff)
			}
			if want := (Size{Width: 150, Height: 50}); got != want {
				t.Errorf("Measure() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestEngine_SingleStarFillsBudget(t *testing.T) {
	e := newTestEngine(t, "*", "*")
	child := newTestElement(0, 0, 10, 10)

	got := e.Measure(elements(child), ExactlyOf(300), AtMostOf(200))
	if want := (Size{Width: 300, Height: 200}); got != want {
		t.Fatalf("Measure() = %+v, want %+v", got, want)
	}

	if len(child.measures) != 0 {
		t.Errorf("child measured %d times during Measure, want 0", len(child.measures))
	}

	e.Layout(NewRect(0, 0, 300, 200))

	if want := NewRect(0, 0, 300, 200); child.placed != want {
		t.Errorf("placed = %+v, want %+v", child.placed, want)
	}
	call, ok := child.lastMeasure()
	if !ok {
		t.Fatal("child was never measured")
	}
	if call.width != ExactlyOf(300) || call.height != ExactlyOf(200) {
		t.Errorf("layout measure = %v x %v, want exactly 300 x exactly 200", call.width, call.height)
	}
}

func TestEngine_StarWeights(t *testing.T) {
	type tc struct {
		columns string
		budget  int
		want    []float64
	}

	tests := map[string]tc{
		"one two three": {
			columns: "1* 2* 3*",
			budget:  600,
			want:    []float64{100, 200, 300},
		},
		"equal halves of odd budget": {
			columns: "* *",
			budget:  101,
			want:    []float64{50.5, 50.5},
		},
		"fractional weights": {
			columns: "0.5* 1.5*",
			budget:  200,
			want:    []float64{50, 150},
		},
		"zero weight track": {
			columns: "0* 1*",
			budget:  80,
			want:    []float64{0, 80},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := newTestEngine(t, "10px", tt.columns)
			got := e.Measure(nil, ExactlyOf(tt.budget), None())

			lengths := e.TrackLengths(Horizontal)
			if diff := cmp.Diff(tt.want, lengths); diff != "" {
				t.Errorf("column lengths mismatch (-want +got):\n%s", diff)
			}
			if got.Width != tt.budget {
				t.Errorf("Measure().Width = %d, want %d", got.Width, tt.budget)
			}
		})
	}
}

func TestEngine_AutoTrack(t *testing.T) {
	type tc struct {
		columns  string
		children []*testElement
		want     []float64
	}

	tests := map[string]tc{
		"single child": {
			columns:  "auto",
			children: []*testElement{newTestElement(0, 0, 40, 10)},
			want:     []float64{40},
		},
		"max of children": {
			columns: "auto",
			children: []*testElement{
				newTestElement(0, 0, 40, 10),
				newTestElement(0, 0, 60, 10),
				newTestElement(0, 0, 25, 10),
			},
			want: []float64{60},
		},
		"pixel contribution is subtracted": {
			columns:  "30px auto",
			children: []*testElement{newTestElement(0, 0, 100, 10).spans(1, 2)},
			want:     []float64{30, 70},
		},
		"spanning child and wider sibling": {
			columns: "30px auto",
			children: []*testElement{
				newTestElement(0, 0, 100, 10).spans(1, 2),
				newTestElement(0, 1, 90, 10),
			},
			want: []float64{30, 90},
		},
		"child smaller than pixel span": {
			columns:  "30px auto",
			children: []*testElement{newTestElement(0, 0, 20, 10).spans(1, 2)},
			want:     []float64{30, 0},
		},
		"empty auto track": {
			columns:  "auto 50px",
			children: []*testElement{newTestElement(0, 1, 20, 10)},
			want:     []float64{0, 50},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := newTestEngine(t, "auto", tt.columns)
			e.Measure(elements(tt.children...), AtMostOf(300), AtMostOf(100))

			if diff := cmp.Diff(tt.want, e.TrackLengths(Horizontal)); diff != "" {
				t.Errorf("column lengths mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEngine_AutoAndStarShareBudget(t *testing.T) {
	e := newTestEngine(t, "auto", "auto *")
	a := newTestElement(0, 0, 40, 10)
	b := newTestElement(0, 0, 60, 20)
	c := newTestElement(0, 1, 10, 10)

	got := e.Measure(elements(a, b, c), ExactlyOf(200), AtMostOf(100))

	if diff := cmp.Diff([]float64{60, 140}, e.TrackLengths(Horizontal)); diff != "" {
		t.Errorf("column lengths mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{20}, e.TrackLengths(Vertical)); diff != "" {
		t.Errorf("row lengths mismatch (-want +got):\n%s", diff)
	}
	if want := (Size{Width: 200, Height: 20}); got != want {
		t.Errorf("Measure() = %+v, want %+v", got, want)
	}

	// c sits in a Star column, so it is measured for the Auto row with
	// the resolved column width as its budget.
	call, ok := c.lastMeasure()
	if !ok {
		t.Fatal("c was never measured")
	}
	if call.width != AtMostOf(140) || call.height != AtMostOf(100) {
		t.Errorf("c measured with %v x %v, want atmost:140 x atmost:100", call.width, call.height)
	}
}

func TestEngine_AutoConsumesStarBudget(t *testing.T) {
	// x cannot be measured up front: its row is a Star row on a bounded
	// axis. The Auto column is resolved after the Star column took the
	// whole budget, and the Star column is re-shared afterwards.
	e := newTestEngine(t, "*", "auto *")
	x := newTestElement(0, 0, 60, 30)

	e.Measure(elements(x), ExactlyOf(200), ExactlyOf(100))

	if diff := cmp.Diff([]float64{60, 140}, e.TrackLengths(Horizontal)); diff != "" {
		t.Errorf("column lengths mismatch (-want +got):\n%s", diff)
	}
	call, _ := x.lastMeasure()
	if call.width != AtMostOf(200) || call.height != AtMostOf(100) {
		t.Errorf("x measured with %v x %v, want atmost:200 x atmost:100", call.width, call.height)
	}
}

func TestEngine_AutoLargerThanBudgetCollapsesStars(t *testing.T) {
	e := newTestEngine(t, "auto", "auto *")
	wide := newTestElement(0, 0, 250, 10)

	got := e.Measure(elements(wide), AtMostOf(200), AtMostOf(50))

	if diff := cmp.Diff([]float64{200, 0}, e.TrackLengths(Horizontal)); diff != "" {
		t.Errorf("column lengths mismatch (-want +got):\n%s", diff)
	}
	if got.Width != 200 {
		t.Errorf("Measure().Width = %d, want 200", got.Width)
	}
}

func TestEngine_ShrinkToFit(t *testing.T) {
	// wide spans the Auto and the Star column and first claims its whole
	// width for the Auto column. Once the Star column is resolved, wide
	// needs less and the Auto column shrinks to narrow's width; the freed
	// space goes to the Star column.
	e := newTestEngine(t, "auto", "auto *")
	wide := newTestElement(0, 0, 200, 10).spans(1, 2)
	narrow := newTestElement(0, 0, 50, 10)

	got := e.Measure(elements(wide, narrow), ExactlyOf(300), AtMostOf(100))

	if diff := cmp.Diff([]float64{50, 250}, e.TrackLengths(Horizontal)); diff != "" {
		t.Errorf("column lengths mismatch (-want +got):\n%s", diff)
	}
	if got.Width != 300 {
		t.Errorf("Measure().Width = %d, want 300", got.Width)
	}
}

func TestEngine_ShrinkConvergesByWeight(t *testing.T) {
	// wide keeps needing 200 - col1 from the Auto column, and every pixel
	// the Auto column frees only gives col1 a quarter of it. The loop
	// converges on col0 = 120, col1 = 80, col2 = 240.
	e := newTestEngine(t, "auto", "auto 1* 3*")
	wide := newTestElement(0, 0, 200, 10).spans(1, 2)
	narrow := newTestElement(0, 0, 40, 10)

	got := e.Measure(elements(wide, narrow), ExactlyOf(440), AtMostOf(100))

	lengths := e.TrackLengths(Horizontal)
	for i, want := range []float64{120, 80, 240} {
		if !approx(lengths[i], want) {
			t.Errorf("column %d = %v, want %v", i, lengths[i], want)
		}
	}
	if !approx(lengths[2], 3*lengths[1]) {
		t.Errorf("star columns %v and %v do not keep a 1:3 ratio", lengths[1], lengths[2])
	}
	if !approx(lengths[0]+lengths[1]+lengths[2], 440) {
		t.Errorf("total = %v, want 440", lengths[0]+lengths[1]+lengths[2])
	}
	if got.Width < 439 || got.Width > 440 {
		t.Errorf("Measure().Width = %d, want 439 or 440", got.Width)
	}
}

func TestEngine_ShrinkTerminates(t *testing.T) {
	e := newTestEngine(t, "auto auto", "auto auto auto *")
	children := []*testElement{
		newTestElement(0, 0, 300, 10).spans(1, 4),
		newTestElement(0, 1, 280, 10).spans(1, 3),
		newTestElement(1, 2, 270, 10).spans(1, 2),
		newTestElement(1, 0, 5, 10),
	}

	first := e.Measure(elements(children...), ExactlyOf(300), AtMostOf(100))
	lengths := e.TrackLengths(Horizontal)
	for i, l := range lengths {
		if l < 0 {
			t.Errorf("column %d has negative length %v", i, l)
		}
	}
	if first.Height != 20 {
		t.Errorf("Measure().Height = %d, want 20", first.Height)
	}

	second := e.Measure(elements(children...), ExactlyOf(300), AtMostOf(100))
	if second != first {
		t.Errorf("second Measure() = %+v, want %+v", second, first)
	}
	if diff := cmp.Diff(lengths, e.TrackLengths(Horizontal)); diff != "" {
		t.Errorf("column lengths changed between passes (-first +second):\n%s", diff)
	}
}

func TestEngine_UnconstrainedStars(t *testing.T) {
	e := newTestEngine(t, "auto", "* 2*")
	a := newTestElement(0, 0, 30, 10)
	b := newTestElement(0, 1, 40, 12)

	got := e.Measure(elements(a, b), None(), None())

	// a needs a full extent of 90 to get 30 pixels from a 1/3 share;
	// b only needs 60. The larger extent wins and keeps the 1:2 ratio.
	if diff := cmp.Diff([]float64{30, 60}, e.TrackLengths(Horizontal)); diff != "" {
		t.Errorf("column lengths mismatch (-want +got):\n%s", diff)
	}
	if want := (Size{Width: 90, Height: 12}); got != want {
		t.Errorf("Measure() = %+v, want %+v", got, want)
	}
	call, _ := a.lastMeasure()
	if call.width != None() || call.height != None() {
		t.Errorf("a measured with %v x %v, want unconstrained", call.width, call.height)
	}
}

func TestEngine_UnconstrainedStarsWithoutContent(t *testing.T) {
	e := newTestEngine(t, "*", "* *")
	got := e.Measure(nil, None(), None())

	if want := (Size{}); got != want {
		t.Errorf("Measure() = %+v, want %+v", got, want)
	}
}

func TestEngine_UnconstrainedSpanningStarChild(t *testing.T) {
	e := newTestEngine(t, "auto", "* 3*")
	child := newTestElement(0, 0, 80, 10).spans(1, 2)

	got := e.Measure(elements(child), None(), None())

	if diff := cmp.Diff([]float64{20, 60}, e.TrackLengths(Horizontal)); diff != "" {
		t.Errorf("column lengths mismatch (-want +got):\n%s", diff)
	}
	if got.Width != 80 {
		t.Errorf("Measure().Width = %d, want 80", got.Width)
	}
}

func TestEngine_SpanOverSeveralAutosChargesFirst(t *testing.T) {
	e := newTestEngine(t, "auto", "auto auto")
	wide := newTestElement(0, 0, 100, 10).spans(1, 2)
	narrow := newTestElement(0, 1, 10, 10)

	got := e.Measure(elements(wide, narrow), None(), None())

	// The second column keeps its own child's width on top of the span.
	if diff := cmp.Diff([]float64{100, 10}, e.TrackLengths(Horizontal)); diff != "" {
		t.Errorf("column lengths mismatch (-want +got):\n%s", diff)
	}
	if got.Width != 110 {
		t.Errorf("Measure().Width = %d, want 110", got.Width)
	}
}

func TestEngine_FirstStageBudgetExcludesOtherPixelTracks(t *testing.T) {
	e := newTestEngine(t, "auto", "50px auto")
	child := newTestElement(0, 1, 500, 10)

	e.Measure(elements(child), AtMostOf(200), AtMostOf(100))

	call, _ := child.lastMeasure()
	if call.width != AtMostOf(150) {
		t.Errorf("child width constraint = %v, want atmost:150", call.width)
	}
	if diff := cmp.Diff([]float64{50, 150}, e.TrackLengths(Horizontal)); diff != "" {
		t.Errorf("column lengths mismatch (-want +got):\n%s", diff)
	}
}

func TestEngine_DefaultDefinitions(t *testing.T) {
	e, err := NewEngine(nil, nil)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	for _, a := range []Axis{Horizontal, Vertical} {
		defs := e.Definitions(a)
		if len(defs) != 1 || !defs[0].Length.IsAuto() {
			t.Errorf("%v definitions = %v, want a single auto track", a, defs)
		}
	}

	child := newTestElement(0, 0, 33, 44)
	got := e.Measure(elements(child), AtMostOf(100), AtMostOf(100))
	if want := (Size{Width: 33, Height: 44}); got != want {
		t.Errorf("Measure() = %+v, want %+v", got, want)
	}
}

func TestNewEngine_NilLogger(t *testing.T) {
	if _, err := NewEngine(nil, nil, WithLogger(nil)); err == nil {
		t.Error("NewEngine(WithLogger(nil)) error = nil, want error")
	}
}
