// Package markup loads grid track definitions from XML.
//
// A document looks like:
//
//	<GridMarkup>
//	  <ColumnDefinitions>
//	    <ColumnDefinition width="48dp"/>
//	    <ColumnDefinition width="*"/>
//	  </ColumnDefinitions>
//	  <RowDefinitions>
//	    <RowDefinition height="auto"/>
//	    <RowDefinition/>
//	  </RowDefinitions>
//	</GridMarkup>
//
// A member without its length attribute is an Auto track. A group that
// is missing from the document yields a single Auto track.
package markup

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"

	"github.com/grindlemire/go-gridview/internal/dimension"
	"github.com/grindlemire/go-gridview/internal/layout"
)

const rootTag = "GridMarkup"

// ErrStructural reports a markup document whose element structure is wrong.
var ErrStructural = errors.New("invalid grid markup")

// StructuralError describes where a markup document went wrong.
type StructuralError struct {
	Path   string
	Reason string
}

// Error implements the error interface.
func (e *StructuralError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("grid markup: %s", e.Reason)
	}
	return fmt.Sprintf("grid markup %s: %s", e.Path, e.Reason)
}

// Unwrap lets errors.Is match ErrStructural.
func (e *StructuralError) Unwrap() error {
	return ErrStructural
}

// group describes one definitions group and the members it accepts.
type group struct {
	member    string
	attribute string
}

var groups = map[string]group{
	"ColumnDefinitions": {member: "ColumnDefinition", attribute: "width"},
	"RowDefinitions":    {member: "RowDefinition", attribute: "height"},
}

// Grid is the result of loading a markup document.
type Grid struct {
	Rows    []layout.Definition
	Columns []layout.Definition
}

// Parse reads a markup document from r, converting dimensions with metrics.
func Parse(r io.Reader, metrics dimension.Metrics) (Grid, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return Grid{}, fmt.Errorf("reading grid markup: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return Grid{}, &StructuralError{Reason: "empty document"}
	}
	if root.Tag != rootTag {
		return Grid{}, &StructuralError{
			Path:   root.GetPath(),
			Reason: fmt.Sprintf("root element is <%s>, want <%s>", root.Tag, rootTag),
		}
	}

	found := make(map[string][]layout.Definition, len(groups))
	for _, el := range root.ChildElements() {
		g, ok := groups[el.Tag]
		if !ok {
			return Grid{}, &StructuralError{
				Path:   el.GetPath(),
				Reason: fmt.Sprintf("unknown group <%s>", el.Tag),
			}
		}
		if _, dup := found[el.Tag]; dup {
			return Grid{}, &StructuralError{
				Path:   el.GetPath(),
				Reason: fmt.Sprintf("duplicate group <%s>", el.Tag),
			}
		}

		defs, err := readGroup(el, g, metrics)
		if err != nil {
			return Grid{}, err
		}
		found[el.Tag] = defs
	}

	return Grid{
		Rows:    orDefault(found["RowDefinitions"]),
		Columns: orDefault(found["ColumnDefinitions"]),
	}, nil
}

// ParseFile reads the markup document at path.
func ParseFile(path string, metrics dimension.Metrics) (Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return Grid{}, err
	}
	defer f.Close()

	g, err := Parse(f, metrics)
	if err != nil {
		return Grid{}, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

func readGroup(el *etree.Element, g group, metrics dimension.Metrics) ([]layout.Definition, error) {
	members := el.ChildElements()
	if len(members) == 0 {
		return nil, &StructuralError{Path: el.GetPath(), Reason: "empty definitions group"}
	}

	defs := make([]layout.Definition, 0, len(members))
	for i, m := range members {
		if m.Tag != g.member {
			return nil, &StructuralError{
				Path:   m.GetPath(),
				Reason: fmt.Sprintf("unexpected <%s> in <%s>, want <%s>", m.Tag, el.Tag, g.member),
			}
		}

		def := layout.DefaultDefinition()
		if attr := m.SelectAttr(g.attribute); attr != nil {
			l, err := layout.ParseLength(attr.Value, metrics)
			if err != nil {
				return nil, fmt.Errorf("%s[%d] %s: %w", el.Tag, i, g.attribute, err)
			}
			def.Length = l
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func orDefault(defs []layout.Definition) []layout.Definition {
	if len(defs) == 0 {
		return []layout.Definition{layout.DefaultDefinition()}
	}
	return defs
}
