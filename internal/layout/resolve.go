package layout

import "go.uber.org/zap"

const (
	// shrinkEpsilon is the smallest change, in pixels, the shrink loop acts on.
	shrinkEpsilon = 1e-6

	// shrinkPassesPerTrack bounds the shrink loop at this many passes per
	// Auto track, plus one pass that confirms the fixed point.
	shrinkPassesPerTrack = 64
)

// measureFirstStage measures every child whose size can be known before
// any Star or Auto track is resolved, and seeds the Auto tracks (and, on
// an unconstrained axis, the Star tracks) with the space each child needs
// beyond its Pixel tracks.
func (e *Engine) measureFirstStage() {
	cols, rows := e.axes[Horizontal], e.axes[Vertical]
	for _, h := range e.order {
		info := e.elements[h]
		cc, rc := classify(info, cols), classify(info, rows)
		if !measurableEarly(cols, cc) || !measurableEarly(rows, rc) {
			continue
		}

		info.measure(firstStageConstraint(cols, cc), firstStageConstraint(rows, rc))
		seedTracks(info, cols, cc)
		seedTracks(info, rows, rc)
	}

	e.logStage("first stage")
}

// measurableEarly reports whether a child's extent on the axis of s can be
// measured before Star tracks are resolved.
func measurableEarly(s *axisState, c spanClass) bool {
	return !s.constraint.Bounded() || c.inAuto() || c.onlyPixel()
}

// firstStageConstraint offers a child the axis budget minus the Pixel
// tracks it does not cover.
func firstStageConstraint(s *axisState, c spanClass) Constraint {
	if !s.constraint.Bounded() {
		return None()
	}
	outside := s.pixelTotal() - c.pixelSum
	return AtMostOf(int(float64(s.constraint.Size) - outside))
}

// seedTracks raises the tracks info covers to fit its overflow.
// The first Auto track takes the whole overflow; without one, an
// unconstrained axis splits it over the Star tracks by weight.
func seedTracks(info *elementInfo, s *axisState, c spanClass) {
	need := overflow(info, s.axis, c)
	switch {
	case c.inAuto():
		t := s.tracks[c.firstAuto]
		if !t.measured || t.length < need {
			t.setLength(need)
		}
	case c.inStar() && !s.constraint.Bounded():
		for _, i := range info.spans[s.axis] {
			t := s.tracks[i]
			if !t.def.Length.IsStar() {
				continue
			}
			share := need * t.def.Length.Value() / c.starSum
			if !t.measured || t.length < share {
				t.setLength(share)
			}
		}
	}
}

// resolveStars sizes the Star tracks of one axis.
//
// Unconstrained: the Star track whose content needs the largest full
// extent (length × starSum / weight) sets the scale, and every Star
// track gets its weighted share of that extent.
//
// Bounded: the budget left after resolved Pixel and Auto tracks is
// shared by weight.
func (e *Engine) resolveStars(s *axisState) {
	if !s.constraint.Bounded() {
		var full float64
		for _, t := range s.tracks {
			w := t.def.Length.Value()
			if !t.def.Length.IsStar() || !t.measured || w <= 0 {
				continue
			}
			full = max(full, t.length*s.starSum/w)
		}
		s.setStars(full)
		e.logAxis("stars (unconstrained)", s, zap.Float64("extent", full))
		return
	}

	s.available = float64(s.constraint.Size) - s.resolvedFixed()
	s.setStars(s.available)
	e.logAxis("stars", s, zap.Float64("available", s.available))
}

// resolveAutos sizes every Auto track that is still unresolved or has
// children that were not measured yet, then re-shares the remaining
// budget among the Star tracks if the Auto tracks consumed any of it.
func (e *Engine) resolveAutos(s *axisState) {
	consumed := false
	for _, t := range s.tracks {
		if !t.def.Length.IsAuto() || !e.autoPending(t) {
			continue
		}

		var length, previous float64
		if t.measured {
			previous = t.length
			length = t.length
		}
		for _, h := range t.attached {
			info := e.elements[h]
			if !info.measured {
				e.measureForAuto(info, s)
			}
			c := classify(info, s)
			if c.firstAuto != t.index {
				continue
			}
			length = max(length, overflow(info, s.axis, c))
		}

		t.setLength(length)
		if delta := length - previous; delta != 0 {
			s.available -= delta
			consumed = true
		}
	}

	if consumed && s.constraint.Bounded() {
		s.setStars(s.available)
	}
	e.logAxis("autos", s, zap.Float64("available", s.available))
}

// autoPending reports whether t is unresolved or has unmeasured children.
func (e *Engine) autoPending(t *trackState) bool {
	if !t.measured {
		return true
	}
	for _, h := range t.attached {
		if !e.elements[h].measured {
			return true
		}
	}
	return false
}

// measureForAuto measures a child for an Auto track on the axis of s.
// The Auto axis gets the whole budget; the cross axis gets the resolved
// tracks the child covers.
func (e *Engine) measureForAuto(info *elementInfo, s *axisState) {
	cross := e.axes[s.axis.cross()]
	var crossLen float64
	for _, i := range info.spans[cross.axis] {
		if t := cross.tracks[i]; t.measured {
			crossLen += t.length
		}
	}

	along := None()
	if s.constraint.Bounded() {
		along = AtMostOf(s.constraint.Size)
	}
	if s.axis == Horizontal {
		info.measure(along, AtMostOf(int(crossLen)))
	} else {
		info.measure(AtMostOf(int(crossLen)), along)
	}
}

// shrinkAutos shrinks Auto tracks whose children need less than the
// track's current length, giving the freed space to the Star tracks on a
// bounded axis. It repeats until no track changes.
func (e *Engine) shrinkAutos(s *axisState) {
	autos := s.autoCount()
	if autos == 0 {
		return
	}

	limit := autos*shrinkPassesPerTrack + 1
	for pass := 0; pass < limit; pass++ {
		changed := false
		for _, t := range s.tracks {
			if !t.def.Length.IsAuto() {
				continue
			}
			required := e.requiredLength(s, t)
			if t.length-required <= shrinkEpsilon {
				continue
			}

			freed := t.length - required
			t.setLength(required)
			if s.constraint.Bounded() {
				s.available += freed
				s.growStars(freed)
			}
			changed = true
		}
		if !changed {
			e.logAxis("shrink", s, zap.Int("passes", pass+1))
			return
		}
	}
	e.logger.Warn("shrink loop hit its pass limit",
		zap.Stringer("axis", s.axis), zap.Int("limit", limit))
}

// requiredLength returns the largest space any child attached to t needs
// from it: the child's overflow beyond its Pixel tracks, minus what the
// other Star tracks it covers already supply.
func (e *Engine) requiredLength(s *axisState, t *trackState) float64 {
	var required float64
	for _, h := range t.attached {
		info := e.elements[h]
		if !info.measured {
			continue
		}
		need := overflow(info, s.axis, classify(info, s))
		for _, i := range info.spans[s.axis] {
			if need == 0 {
				break
			}
			u := s.tracks[i]
			if u == t || !u.def.Length.IsStar() {
				continue
			}
			need = max(0, need-u.length)
		}
		required = max(required, need)
	}
	return required
}

func (e *Engine) logStage(stage string) {
	if ce := e.logger.Check(zap.DebugLevel, stage); ce != nil {
		ce.Write(
			zap.Float64s("columns", e.TrackLengths(Horizontal)),
			zap.Float64s("rows", e.TrackLengths(Vertical)))
	}
}

func (e *Engine) logAxis(stage string, s *axisState, fields ...zap.Field) {
	if ce := e.logger.Check(zap.DebugLevel, stage); ce != nil {
		fields = append(fields,
			zap.Stringer("axis", s.axis),
			zap.Float64s("lengths", e.TrackLengths(s.axis)))
		ce.Write(fields...)
	}
}
