package main

import (
	"github.com/grindlemire/go-gridview/internal/layout"
)

// report is the machine-readable result of measuring a scene.
type report struct {
	Scene    string        `json:"scene"`
	Width    string        `json:"width"`
	Height   string        `json:"height"`
	Measured sizeReport    `json:"measured"`
	Columns  []float64     `json:"columns"`
	Rows     []float64     `json:"rows"`
	Children []childReport `json:"children"`
}

type sizeReport struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type childReport struct {
	Name       string      `json:"name"`
	Row        int         `json:"row"`
	RowSpan    int         `json:"rowSpan"`
	Column     int         `json:"column"`
	ColumnSpan int         `json:"columnSpan"`
	Measured   sizeReport  `json:"measured"`
	Measures   int         `json:"measures"`
	Rect       rectReport  `json:"rect"`
}

type rectReport struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func newReport(path string, run *sceneRun) report {
	r := report{
		Scene:    path,
		Width:    run.width.String(),
		Height:   run.height.String(),
		Measured: sizeReport{Width: run.measured.Width, Height: run.measured.Height},
		Columns:  run.engine.TrackLengths(layout.Horizontal),
		Rows:     run.engine.TrackLengths(layout.Vertical),
		Children: make([]childReport, 0, len(run.boxes)),
	}
	for _, b := range run.boxes {
		p := b.GridParams()
		r.Children = append(r.Children, childReport{
			Name:       b.name,
			Row:        p.Row,
			RowSpan:    p.RowSpan,
			Column:     p.Column,
			ColumnSpan: p.ColumnSpan,
			Measured:   sizeReport{Width: b.last.Width, Height: b.last.Height},
			Measures:   b.measures,
			Rect:       rectReport{X: b.bounds.X, Y: b.bounds.Y, Width: b.bounds.Width, Height: b.bounds.Height},
		})
	}
	return r
}
