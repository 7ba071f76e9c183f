package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/grindlemire/go-gridview/internal/config"
	"github.com/grindlemire/go-gridview/internal/layout"
)

var frameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())

func newRenderCmd(a *app) *cobra.Command {
	var (
		o          overrides
		cellWidth  int
		cellHeight int
	)

	cmd := &cobra.Command{
		Use:   "render SCENE",
		Short: "Draw the placed children of a scene as text",
		Long: `Draw the placed children of a scene as text. Each character cell
stands for cell-width by cell-height pixels. When the scene leaves the
width unconstrained and the output is a terminal, the width is limited
to the terminal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cellWidth < 1 || cellHeight < 1 {
				return fmt.Errorf("cell size must be positive, got %dx%d", cellWidth, cellHeight)
			}
			if o.width == "" {
				if cols, ok := outputColumns(cmd.OutOrStdout()); ok {
					o.width = terminalWidth(args[0], cols, cellWidth)
				}
			}

			run, err := a.runScene(args[0], o)
			if err != nil {
				return err
			}
			a.logger.Debug("rendering scene",
				zap.String("scene", args[0]),
				zap.Int("cellWidth", cellWidth),
				zap.Int("cellHeight", cellHeight))

			out := frameStyle.Render(drawScene(run, cellWidth, cellHeight))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %dx%d\n%s\n",
				titleStyle.Render(args[0]), run.measured.Width, run.measured.Height, out)
			return err
		},
	}

	cmd.Flags().StringVar(&o.width, "width", "", "width constraint, overrides the scene (exactly:N, atmost:N, unconstrained)")
	cmd.Flags().StringVar(&o.height, "height", "", "height constraint, overrides the scene")
	cmd.Flags().IntVar(&cellWidth, "cell-width", 8, "pixels per character column")
	cmd.Flags().IntVar(&cellHeight, "cell-height", 16, "pixels per character row")
	return cmd
}

// outputColumns returns the width of w in columns if w is a terminal.
func outputColumns(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	cols, _, err := getTerminalSize(int(f.Fd()))
	if err != nil || cols <= 2 {
		return 0, false
	}
	return cols, true
}

// terminalWidth returns an atmost constraint fitting the terminal when the
// scene's own width is unconstrained, or "" to keep the scene's width.
func terminalWidth(path string, cols, cellWidth int) string {
	scene, err := config.LoadScene(path)
	if err != nil {
		return ""
	}
	if w, _, err := scene.Constraints(); err != nil || w.Bounded() {
		return ""
	}
	// The frame takes one column on each side.
	return layout.AtMostOf((cols - 2) * cellWidth).String()
}

// drawScene draws every placed child as a box on a character canvas.
// Adjacent boxes share their edges.
func drawScene(run *sceneRun, cellWidth, cellHeight int) string {
	c := newCanvas(run.measured.Width/cellWidth+1, run.measured.Height/cellHeight+1)
	for _, b := range run.boxes {
		if !b.placed {
			continue
		}
		r := b.bounds
		c.box(r.X/cellWidth, r.Y/cellHeight, r.Right()/cellWidth, r.Bottom()/cellHeight, b.name)
	}
	return c.String()
}

// canvas is a fixed grid of runes.
type canvas struct {
	width, height int
	cells         [][]rune
}

func newCanvas(width, height int) *canvas {
	cells := make([][]rune, height)
	for i := range cells {
		cells[i] = []rune(strings.Repeat(" ", width))
	}
	return &canvas{width: width, height: height, cells: cells}
}

func (c *canvas) set(x, y int, r rune) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y][x] = r
}

// box draws a rectangle with corners at (x0, y0) and (x1, y1) inclusive
// and writes label inside it if there is room.
func (c *canvas) box(x0, y0, x1, y1 int, label string) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	for x := x0 + 1; x < x1; x++ {
		c.set(x, y0, '-')
		c.set(x, y1, '-')
	}
	for y := y0 + 1; y < y1; y++ {
		c.set(x0, y, '|')
		c.set(x1, y, '|')
	}
	for _, p := range [][2]int{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}} {
		c.set(p[0], p[1], '+')
	}

	if y1-y0 < 2 {
		return
	}
	room := x1 - x0 - 1
	for i, r := range []rune(label) {
		if i >= room {
			break
		}
		c.set(x0+1+i, y0+1, r)
	}
}

func (c *canvas) String() string {
	lines := make([]string, c.height)
	for i, row := range c.cells {
		lines[i] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(lines, "\n")
}
