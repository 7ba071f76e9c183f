package main

import (
	"github.com/grindlemire/go-gridview/internal/config"
	"github.com/grindlemire/go-gridview/internal/dimension"
	"github.com/grindlemire/go-gridview/internal/layout"
)

// box is a leaf element standing in for a host view: it has a natural
// content size and measures itself through its size hints.
type box struct {
	name    string
	params  layout.Params
	content layout.Size

	measures int
	last     layout.Size
	bounds   layout.Rect
	placed   bool
}

func newBox(spec config.ChildSpec, m dimension.Metrics) (*box, error) {
	p, err := spec.Params(m)
	if err != nil {
		return nil, err
	}
	return &box{
		name:    spec.Name,
		params:  p,
		content: layout.Size{Width: spec.ContentWidth, Height: spec.ContentHeight},
	}, nil
}

func (b *box) GridParams() layout.Params { return b.params }

func (b *box) Measure(width, height layout.Constraint) layout.Size {
	b.measures++
	b.last = layout.Size{
		Width:  b.params.Width.Measure(width, b.content.Width),
		Height: b.params.Height.Measure(height, b.content.Height),
	}
	return b.last
}

func (b *box) Layout(r layout.Rect) {
	b.bounds = r
	b.placed = true
}
