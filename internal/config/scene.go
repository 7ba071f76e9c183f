package config

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/grindlemire/go-gridview/internal/dimension"
	"github.com/grindlemire/go-gridview/internal/layout"
	"github.com/grindlemire/go-gridview/internal/markup"
)

// Scene describes a grid and its children for the CLI. Tracks come from
// a markup file or from inline length strings; the markup wins when both
// are present.
type Scene struct {
	Markup   string      `mapstructure:"markup"`
	Rows     []string    `mapstructure:"rows"`
	Columns  []string    `mapstructure:"columns"`
	Width    string      `mapstructure:"width"`
	Height   string      `mapstructure:"height"`
	Children []ChildSpec `mapstructure:"children"`

	dir string
}

// ChildSpec is one child of a scene. Spans left at zero cover one track.
// Width and Height are size hints: "match_parent", "wrap_content" (the
// default) or a dimension such as "40dp".
type ChildSpec struct {
	Name          string `mapstructure:"name"`
	Row           int    `mapstructure:"row"`
	RowSpan       int    `mapstructure:"row_span"`
	Column        int    `mapstructure:"column"`
	ColumnSpan    int    `mapstructure:"column_span"`
	ContentWidth  int    `mapstructure:"content_width"`
	ContentHeight int    `mapstructure:"content_height"`
	Width         string `mapstructure:"width"`
	Height        string `mapstructure:"height"`
}

// LoadScene reads a scene file. The format follows the file extension.
func LoadScene(path string) (*Scene, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading scene %s: %w", path, err)
	}
	s, err := decodeScene(v)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	s.dir = filepath.Dir(path)
	return s, nil
}

// ReadScene reads a scene from r in the given format ("yaml", "json", ...).
// A relative markup path is resolved against the working directory.
func ReadScene(r io.Reader, format string) (*Scene, error) {
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	return decodeScene(v)
}

func decodeScene(v *viper.Viper) (*Scene, error) {
	v.SetDefault("width", "unconstrained")
	v.SetDefault("height", "unconstrained")

	var s Scene
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error unmarshaling scene: %w", err)
	}
	for i := range s.Children {
		c := &s.Children[i]
		if c.RowSpan == 0 {
			c.RowSpan = 1
		}
		if c.ColumnSpan == 0 {
			c.ColumnSpan = 1
		}
		if c.Name == "" {
			c.Name = fmt.Sprintf("child%d", i)
		}
	}
	return &s, nil
}

// Definitions returns the scene's rows and columns.
func (s *Scene) Definitions(m dimension.Metrics) (rows, columns []layout.Definition, err error) {
	if s.Markup != "" {
		path := s.Markup
		if !filepath.IsAbs(path) && s.dir != "" {
			path = filepath.Join(s.dir, path)
		}
		g, err := markup.ParseFile(path, m)
		if err != nil {
			return nil, nil, err
		}
		return g.Rows, g.Columns, nil
	}

	if rows, err = parseLengths("rows", s.Rows, m); err != nil {
		return nil, nil, err
	}
	if columns, err = parseLengths("columns", s.Columns, m); err != nil {
		return nil, nil, err
	}
	return rows, columns, nil
}

// Constraints returns the width and height measurement requests.
func (s *Scene) Constraints() (width, height layout.Constraint, err error) {
	if width, err = ParseConstraint(s.Width); err != nil {
		return width, height, fmt.Errorf("width: %w", err)
	}
	if height, err = ParseConstraint(s.Height); err != nil {
		return width, height, fmt.Errorf("height: %w", err)
	}
	return width, height, nil
}

// Params returns the child's validated placement and size hints.
func (c ChildSpec) Params(m dimension.Metrics) (layout.Params, error) {
	p, err := layout.NewParams(c.Row, c.RowSpan, c.Column, c.ColumnSpan)
	if err != nil {
		return layout.Params{}, fmt.Errorf("%s: %w", c.Name, err)
	}
	if p.Width, err = ParseSizeHint(c.Width, m); err != nil {
		return layout.Params{}, fmt.Errorf("%s width: %w", c.Name, err)
	}
	if p.Height, err = ParseSizeHint(c.Height, m); err != nil {
		return layout.Params{}, fmt.Errorf("%s height: %w", c.Name, err)
	}
	return p, nil
}

func parseLengths(key string, texts []string, m dimension.Metrics) ([]layout.Definition, error) {
	lengths := make([]layout.GridLength, 0, len(texts))
	for i, text := range texts {
		l, err := layout.ParseLength(text, m)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		lengths = append(lengths, l)
	}
	return layout.Definitions(lengths...), nil
}

// ParseConstraint parses "exactly:N", "atmost:N" or "unconstrained".
// An empty string is unconstrained.
func ParseConstraint(text string) (layout.Constraint, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" || s == "unconstrained" {
		return layout.None(), nil
	}

	mode, size, ok := strings.Cut(s, ":")
	if !ok {
		return layout.Constraint{}, fmt.Errorf("constraint %q: want mode:size", text)
	}
	n, err := strconv.Atoi(strings.TrimSpace(size))
	if err != nil || n < 0 {
		return layout.Constraint{}, fmt.Errorf("constraint %q: size must be a non-negative integer", text)
	}
	switch strings.TrimSpace(mode) {
	case "exactly":
		return layout.ExactlyOf(n), nil
	case "atmost":
		return layout.AtMostOf(n), nil
	default:
		return layout.Constraint{}, fmt.Errorf("constraint %q: unknown mode %q", text, mode)
	}
}

// ParseSizeHint parses "match_parent", "wrap_content" or a dimension.
// An empty string is wrap_content.
func ParseSizeHint(text string, m dimension.Metrics) (layout.SizeHint, error) {
	switch s := strings.ToLower(strings.TrimSpace(text)); s {
	case "", "wrap_content":
		return layout.WrapContent, nil
	case "match_parent", "fill_parent":
		return layout.MatchParent, nil
	}
	px, err := dimension.PixelSize(text, m)
	if err != nil {
		return 0, err
	}
	return layout.SizeHint(px), nil
}
