package gridview

import (
	"io"

	"github.com/grindlemire/go-gridview/internal/markup"
)

// StructuralError describes where a grid markup document went wrong.
type StructuralError = markup.StructuralError

// ErrStructural reports a grid markup document with the wrong element structure.
var ErrStructural = markup.ErrStructural

// FromMarkup creates an engine whose tracks are read from a grid markup
// document.
func FromMarkup(r io.Reader, metrics Metrics, opts ...EngineOption) (*Engine, error) {
	g, err := markup.Parse(r, metrics)
	if err != nil {
		return nil, err
	}
	return NewEngine(g.Rows, g.Columns, opts...)
}

// FromMarkupFile is like FromMarkup but reads the document at path.
func FromMarkupFile(path string, metrics Metrics, opts ...EngineOption) (*Engine, error) {
	g, err := markup.ParseFile(path, metrics)
	if err != nil {
		return nil, err
	}
	return NewEngine(g.Rows, g.Columns, opts...)
}
