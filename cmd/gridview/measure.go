package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true)
	headStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle  = lipgloss.NewStyle().Padding(0, 1)
)

func newMeasureCmd(a *app) *cobra.Command {
	var (
		o      overrides
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "measure SCENE",
		Short: "Measure a scene and report track lengths and child rectangles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := a.runScene(args[0], o)
			if err != nil {
				return err
			}
			a.logger.Info("measured scene",
				zap.String("scene", args[0]),
				zap.Int("width", run.measured.Width),
				zap.Int("height", run.measured.Height))

			r := newReport(args[0], run)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), r)
			}
			return writeReport(cmd.OutOrStdout(), r)
		},
	}

	cmd.Flags().StringVar(&o.width, "width", "", "width constraint, overrides the scene (exactly:N, atmost:N, unconstrained)")
	cmd.Flags().StringVar(&o.height, "height", "", "height constraint, overrides the scene")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}

func writeJSON(w io.Writer, r report) error {
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func writeReport(w io.Writer, r report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n",
		titleStyle.Render(r.Scene),
		labelStyle.Render(fmt.Sprintf("(width %s, height %s)", r.Width, r.Height)))
	fmt.Fprintf(&b, "%s %dx%d\n", labelStyle.Render("measured"), r.Measured.Width, r.Measured.Height)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("columns "), formatLengths(r.Columns))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("rows    "), formatLengths(r.Rows))

	if len(r.Children) > 0 {
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("child", "cell", "measured", "rect").
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headStyle
				}
				return cellStyle
			})
		for _, c := range r.Children {
			t.Row(
				c.Name,
				fmt.Sprintf("r%d+%d c%d+%d", c.Row, c.RowSpan, c.Column, c.ColumnSpan),
				fmt.Sprintf("%dx%d", c.Measured.Width, c.Measured.Height),
				fmt.Sprintf("%d,%d %dx%d", c.Rect.X, c.Rect.Y, c.Rect.Width, c.Rect.Height),
			)
		}
		b.WriteString(t.String())
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func formatLengths(lengths []float64) string {
	parts := make([]string, len(lengths))
	for i, l := range lengths {
		parts[i] = strconv.FormatFloat(l, 'f', -1, 64)
	}
	return strings.Join(parts, " ")
}
