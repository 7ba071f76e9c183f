package layout

// Element is a child of the grid as seen by the engine.
// Implementations must be comparable, typically pointer types: the engine
// recognizes children across passes by identity.
type Element interface {
	// GridParams returns the child's row, column and spans.
	GridParams() Params

	// Measure asks the child for its size under the given constraints.
	Measure(width, height Constraint) Size

	// Layout places the child at its final rectangle.
	Layout(r Rect)
}

// elementInfo is the cached association of a child to its tracks.
type elementInfo struct {
	handle int
	elem   Element
	params Params
	spans  [2][]int // track indices per Axis

	// Per-pass state.
	measured bool
	size     Size
}

func (e *elementInfo) measure(width, height Constraint) {
	e.size = e.elem.Measure(width, height)
	e.measured = true
}

// spanClass summarizes the tracks an element covers on one axis.
// It is derived from the current definitions on every pass.
type spanClass struct {
	starSum   float64
	pixelSum  float64
	firstAuto int // -1 when no Auto track is covered
}

func (c spanClass) inAuto() bool    { return c.firstAuto >= 0 }
func (c spanClass) inStar() bool    { return c.starSum > 0 }
func (c spanClass) onlyPixel() bool { return !c.inAuto() && !c.inStar() }

// classify derives the span class of e on the axis of s.
func classify(e *elementInfo, s *axisState) spanClass {
	c := spanClass{firstAuto: -1}
	for _, i := range e.spans[s.axis] {
		l := s.tracks[i].def.Length
		switch {
		case l.IsStar():
			c.starSum += l.Value()
		case l.IsAuto():
			if c.firstAuto < 0 {
				c.firstAuto = i
			}
		default:
			c.pixelSum += l.Value()
		}
	}
	return c
}

// overflow returns how far e's measured extent exceeds its Pixel tracks.
func overflow(e *elementInfo, a Axis, c spanClass) float64 {
	return max(0, float64(e.size.along(a))-c.pixelSum)
}
