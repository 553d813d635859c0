package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/mazefinder/maze"
)

// Palette, true-color hex values.
const (
	colorWall  lipgloss.Color = "#cdd6f4"
	colorOpen  lipgloss.Color = "#89b4fa"
	colorPath  lipgloss.Color = "#a6e3a1"
	colorStart lipgloss.Color = "#a6e3a1"
	colorEnd   lipgloss.Color = "#f38ba8"
)

// cellKinds is the number of maze.Cell values.
const cellKinds = int(maze.Path) + 1

var plainGlyphs = [cellKinds]string{
	maze.Wall:  "X",
	maze.Empty: " ",
	maze.Open:  ".",
	maze.Start: "S",
	maze.End:   "E",
	maze.Path:  "*",
}

var blockGlyphs = [cellKinds]string{
	maze.Wall:  "██",
	maze.Empty: "  ",
	maze.Open:  "▒▒",
	maze.Start: "ST",
	maze.End:   "EN",
	maze.Path:  "██",
}

// Theme renders cells. The zero value is not usable; use Plain or Color.
type Theme struct {
	cells [cellKinds]string // pre-rendered, styling included
}

// Plain returns the one-character ASCII theme.
func Plain() *Theme {
	return &Theme{cells: plainGlyphs}
}

// Color returns the lipgloss block theme for output written to w. The color
// profile is detected from w; pass a non-nil profile to force one.
func Color(w io.Writer, profile *termenv.Profile) *Theme {
	r := lipgloss.NewRenderer(w)
	if profile != nil {
		r.SetColorProfile(*profile)
	}
	styles := [cellKinds]lipgloss.Style{
		maze.Wall:  r.NewStyle().Foreground(colorWall),
		maze.Empty: r.NewStyle(),
		maze.Open:  r.NewStyle().Foreground(colorOpen).Bold(true),
		maze.Start: r.NewStyle().Foreground(colorStart).Bold(true),
		maze.End:   r.NewStyle().Foreground(colorEnd).Bold(true),
		maze.Path:  r.NewStyle().Foreground(colorPath),
	}

	t := &Theme{}
	for c := range t.cells {
		t.cells[c] = styles[c].Render(blockGlyphs[c])
	}

	return t
}

// Cell returns the rendered glyph for c.
func (t *Theme) Cell(c maze.Cell) string {
	if int(c) >= cellKinds {
		return "?"
	}
	return t.cells[c]
}

// Grid renders g row by row, rows separated by '\n', without a trailing newline.
func (t *Theme) Grid(g *maze.Grid) string {
	var b strings.Builder
	for r, row := range g.Rows() {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			b.WriteString(t.Cell(c))
		}
	}

	return b.String()
}
