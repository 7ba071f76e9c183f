package main

import (
	"fmt"

	"github.com/grindlemire/go-gridview/internal/config"
	"github.com/grindlemire/go-gridview/internal/layout"
)

// sceneRun is a scene after measure and layout.
type sceneRun struct {
	engine   *layout.Engine
	boxes    []*box
	width    layout.Constraint
	height   layout.Constraint
	measured layout.Size
}

// overrides replaces the scene's constraints when non-empty.
type overrides struct {
	width, height string
}

// runScene loads a scene file, measures it and lays it out at the origin.
func (a *app) runScene(path string, o overrides) (*sceneRun, error) {
	scene, err := config.LoadScene(path)
	if err != nil {
		return nil, err
	}
	if o.width != "" {
		scene.Width = o.width
	}
	if o.height != "" {
		scene.Height = o.height
	}

	rows, columns, err := scene.Definitions(a.cfg.Metrics)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	width, height, err := scene.Constraints()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	engine, err := layout.NewEngine(rows, columns, layout.WithLogger(a.logger.Named("engine")))
	if err != nil {
		return nil, err
	}

	run := &sceneRun{engine: engine, width: width, height: height}
	children := make([]layout.Element, 0, len(scene.Children))
	for _, spec := range scene.Children {
		b, err := newBox(spec, a.cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		run.boxes = append(run.boxes, b)
		children = append(children, b)
	}

	run.measured = engine.Measure(children, width, height)
	engine.Layout(layout.NewRect(0, 0, run.measured.Width, run.measured.Height))
	return run, nil
}
