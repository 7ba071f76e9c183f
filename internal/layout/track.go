package layout

import "slices"

// Definition is the declared length of one row or column.
type Definition struct {
	Length GridLength
}

// DefaultDefinition is an Auto track.
func DefaultDefinition() Definition {
	return Definition{Length: Auto()}
}

// Definitions wraps lengths into track definitions.
func Definitions(lengths ...GridLength) []Definition {
	defs := make([]Definition, len(lengths))
	for i, l := range lengths {
		defs[i] = Definition{Length: l}
	}
	return defs
}

// trackState holds the measurement state of one track for the current pass.
type trackState struct {
	def      Definition
	index    int
	length   float64
	measured bool
	attached []int // element handles in attach order
}

func newTrackState(def Definition, index int) *trackState {
	t := &trackState{def: def, index: index}
	t.reset()
	return t
}

func (t *trackState) setLength(length float64) {
	t.measured = true
	t.length = length
}

// reset forgets the previous pass. Pixel tracks are always resolved.
func (t *trackState) reset() {
	if t.def.Length.IsPixel() {
		t.setLength(t.def.Length.Value())
		return
	}
	t.measured = false
	t.length = 0
}

func (t *trackState) attach(handle int) {
	t.attached = append(t.attached, handle)
}

func (t *trackState) detach(handle int) {
	t.attached = slices.DeleteFunc(t.attached, func(h int) bool { return h == handle })
}

// axisState is the ordered track list of one axis.
type axisState struct {
	axis    Axis
	defs    []Definition
	tracks  []*trackState
	starSum float64

	// Per-pass state.
	constraint Constraint
	available  float64
}

func newAxisState(axis Axis, defs []Definition) *axisState {
	if len(defs) == 0 {
		defs = []Definition{DefaultDefinition()}
	}
	s := &axisState{axis: axis, defs: slices.Clone(defs)}
	s.tracks = make([]*trackState, len(s.defs))
	for i, def := range s.defs {
		s.tracks[i] = newTrackState(def, i)
		if def.Length.IsStar() {
			s.starSum += def.Length.Value()
		}
	}
	return s
}

// begin resets every track for a pass under constraint c.
func (s *axisState) begin(c Constraint) {
	s.constraint = c
	s.available = float64(c.Size)
	for _, t := range s.tracks {
		t.reset()
	}
}

// setStars shares space among the Star tracks by weight.
// Non-positive space resolves every Star track to zero.
func (s *axisState) setStars(space float64) {
	for _, t := range s.tracks {
		if !t.def.Length.IsStar() {
			continue
		}
		if space <= 0 || s.starSum <= 0 {
			t.setLength(0)
			continue
		}
		t.setLength(space * t.def.Length.Value() / s.starSum)
	}
}

// growStars adds extra to the Star tracks by weight.
func (s *axisState) growStars(extra float64) {
	if s.starSum <= 0 {
		return
	}
	for _, t := range s.tracks {
		if t.def.Length.IsStar() {
			t.setLength(t.length + extra*t.def.Length.Value()/s.starSum)
		}
	}
}

// pixelTotal returns the sum of all Pixel tracks.
func (s *axisState) pixelTotal() float64 {
	var sum float64
	for _, t := range s.tracks {
		if t.def.Length.IsPixel() {
			sum += t.length
		}
	}
	return sum
}

// resolvedFixed returns the sum of resolved non-Star tracks.
func (s *axisState) resolvedFixed() float64 {
	var sum float64
	for _, t := range s.tracks {
		if t.measured && !t.def.Length.IsStar() {
			sum += t.length
		}
	}
	return sum
}

// total returns the sum of all track lengths.
func (s *axisState) total() float64 {
	var sum float64
	for _, t := range s.tracks {
		sum += t.length
	}
	return sum
}

// offset returns the start of track index, clipped to the track list.
func (s *axisState) offset(index int) float64 {
	var sum float64
	for _, t := range s.tracks[:min(max(index, 0), len(s.tracks))] {
		sum += t.length
	}
	return sum
}

// autoCount returns the number of Auto tracks.
func (s *axisState) autoCount() int {
	n := 0
	for _, t := range s.tracks {
		if t.def.Length.IsAuto() {
			n++
		}
	}
	return n
}

// spanOf returns the indices of the tracks covered by [start, start+count).
func (s *axisState) spanOf(start, count int) []int {
	end := min(start+count, len(s.tracks))
	start = max(start, 0)
	if start >= end {
		return nil
	}
	span := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		span = append(span, i)
	}
	return span
}
