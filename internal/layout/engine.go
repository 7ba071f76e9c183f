package layout

import (
	"errors"

	"go.uber.org/zap"
)

// Engine measures and places the children of one grid.
// It is not safe for concurrent use; Measure and Layout are called in
// that order by the host for every layout pass.
type Engine struct {
	axes [2]*axisState

	elements []*elementInfo // arena indexed by handle, nil when free
	free     []int
	handles  map[Element]int
	order    []int // handles in the child order of the last Measure

	measured Size
	logger   *zap.Logger
}

// EngineOption is a functional option for configuring an Engine.
type EngineOption func(*Engine) error

// WithLogger sets the logger used for per-stage debug output.
// Default is a no-op logger.
func WithLogger(l *zap.Logger) EngineOption {
	return func(e *Engine) error {
		if l == nil {
			return errors.New("logger must not be nil")
		}
		e.logger = l
		return nil
	}
}

// NewEngine creates an engine for the given rows and columns.
// An empty definition list becomes a single Auto track.
func NewEngine(rows, columns []Definition, opts ...EngineOption) (*Engine, error) {
	e := &Engine{logger: zap.NewNop()}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	e.SetDefinitions(rows, columns)
	return e, nil
}

// SetDefinitions replaces the track lists. Every cached measurement is
// discarded and children are re-attached on the next Measure.
func (e *Engine) SetDefinitions(rows, columns []Definition) {
	e.axes[Horizontal] = newAxisState(Horizontal, columns)
	e.axes[Vertical] = newAxisState(Vertical, rows)
	e.elements = nil
	e.free = nil
	e.handles = make(map[Element]int)
	e.order = nil
	e.measured = Size{}
}

// Definitions returns a copy of the track definitions on axis a.
func (e *Engine) Definitions(a Axis) []Definition {
	return append([]Definition(nil), e.axes[a].defs...)
}

// TrackLengths returns the resolved track lengths on axis a from the last Measure.
func (e *Engine) TrackLengths(a Axis) []float64 {
	s := e.axes[a]
	lengths := make([]float64, len(s.tracks))
	for i, t := range s.tracks {
		lengths[i] = t.length
	}
	return lengths
}

// TrackElements returns the children attached to track index on axis a.
func (e *Engine) TrackElements(a Axis, index int) []Element {
	s := e.axes[a]
	if index < 0 || index >= len(s.tracks) {
		return nil
	}
	elems := make([]Element, 0, len(s.tracks[index].attached))
	for _, h := range s.tracks[index].attached {
		elems = append(elems, e.elements[h].elem)
	}
	return elems
}

// MeasuredSize returns the size reported by the last Measure.
func (e *Engine) MeasuredSize() Size {
	return e.measured
}

// Len returns the number of cached children.
func (e *Engine) Len() int {
	return len(e.handles)
}

// sync reconciles the element cache with the current children.
// Children with invalid placements are dropped from the cache.
// No sizing happens here.
func (e *Engine) sync(children []Element) {
	live := make(map[Element]bool, len(children))
	e.order = e.order[:0]
	for _, child := range children {
		if live[child] {
			continue
		}
		params := child.GridParams()
		if err := params.Validate(); err != nil {
			e.logger.Warn("skipping element with invalid placement", zap.Error(err))
			continue
		}
		live[child] = true

		h, ok := e.handles[child]
		if ok && !e.elements[h].params.sameSpans(params) {
			e.evict(h)
			ok = false
		}
		if !ok {
			h = e.attach(child, params)
		}
		e.elements[h].params = params
		e.order = append(e.order, h)
	}

	for child, h := range e.handles {
		if !live[child] {
			e.evict(h)
		}
	}

	for _, h := range e.order {
		e.elements[h].measured = false
	}
}

// attach creates the cache entry for child and links it to its tracks.
func (e *Engine) attach(child Element, params Params) int {
	var h int
	if n := len(e.free); n > 0 {
		h = e.free[n-1]
		e.free = e.free[:n-1]
	} else {
		h = len(e.elements)
		e.elements = append(e.elements, nil)
	}

	info := &elementInfo{handle: h, elem: child, params: params}
	for _, s := range e.axes {
		start, count := params.span(s.axis)
		info.spans[s.axis] = s.spanOf(start, count)
		for _, i := range info.spans[s.axis] {
			s.tracks[i].attach(h)
		}
	}
	e.elements[h] = info
	e.handles[child] = h

	e.logger.Debug("attached element",
		zap.Int("handle", h),
		zap.Ints("rows", info.spans[Vertical]),
		zap.Ints("columns", info.spans[Horizontal]))
	return h
}

// evict removes the cache entry h and every back-reference to it.
func (e *Engine) evict(h int) {
	info := e.elements[h]
	for _, s := range e.axes {
		for _, i := range info.spans[s.axis] {
			s.tracks[i].detach(h)
		}
	}
	delete(e.handles, info.elem)
	e.elements[h] = nil
	e.free = append(e.free, h)

	e.logger.Debug("evicted element", zap.Int("handle", h))
}

// Measure resolves every track against the width and height constraints
// and returns the grid's size: the sum of the track lengths on each axis.
func (e *Engine) Measure(children []Element, width, height Constraint) Size {
	e.sync(children)

	e.axes[Horizontal].begin(width)
	e.axes[Vertical].begin(height)

	e.measureFirstStage()
	for _, s := range e.axes {
		e.resolveStars(s)
	}
	for _, s := range e.axes {
		e.resolveAutos(s)
	}
	for _, s := range e.axes {
		e.shrinkAutos(s)
	}

	e.measured = Size{
		Width:  int(e.axes[Horizontal].total()),
		Height: int(e.axes[Vertical].total()),
	}
	e.logger.Debug("measured grid",
		zap.Stringer("width", width),
		zap.Stringer("height", height),
		zap.Float64s("columns", e.TrackLengths(Horizontal)),
		zap.Float64s("rows", e.TrackLengths(Vertical)),
		zap.Int("measuredWidth", e.measured.Width),
		zap.Int("measuredHeight", e.measured.Height))
	return e.measured
}

// Layout places every child measured by the last Measure. Rectangles are
// prefix sums of the resolved track lengths, offset by the bounds origin.
// A child that was not measured during Measure is measured now at exactly
// its rectangle's size.
func (e *Engine) Layout(bounds Rect) {
	for _, h := range e.order {
		info := e.elements[h]
		r := e.cellRect(info).Translate(bounds.X, bounds.Y)
		if !info.measured {
			info.measure(ExactlyOf(r.Width), ExactlyOf(r.Height))
		}
		info.elem.Layout(r)
	}
}

// cellRect returns the rectangle covered by info's spans, relative to the grid.
func (e *Engine) cellRect(info *elementInfo) Rect {
	cols, rows := e.axes[Horizontal], e.axes[Vertical]
	p := info.params
	return FromEdges(
		int(cols.offset(p.Column)),
		int(rows.offset(p.Row)),
		int(cols.offset(p.Column+p.ColumnSpan)),
		int(rows.offset(p.Row+p.RowSpan)),
	)
}

// CellRect returns the rectangle child would be placed at, relative to
// the grid origin. It returns false if child is not cached.
func (e *Engine) CellRect(child Element) (Rect, bool) {
	h, ok := e.handles[child]
	if !ok {
		return Rect{}, false
	}
	return e.cellRect(e.elements[h]), true
}
