// Package text draws a maze as box-drawing text for terminals.
//
// Walls are drawn with '+', '-' and '|'. Cell interiors show the solver's
// marks: highlighted cells carry a bullet, visited cells a dot, and with the
// heat map on every cell's background is tinted by its distance. Colors are
// applied with lipgloss and degrade to plain text when the output is not a
// terminal.
package text

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/mazewalk/pkg/maze"
)

// Options configures text rendering.
type Options struct {
	// CellWidth is the number of columns per cell interior. Values below 1
	// are treated as 1.
	CellWidth int

	// HeatBound enables the heat map when positive: each cell is tinted by
	// Distance / HeatBound.
	HeatBound int

	// Token marks one cell (the manual walker's position) with a distinct glyph.
	Token *maze.Pos
}

const (
	glyphHighlight = "•"
	glyphVisited   = "·"
	glyphToken     = "@"
)

var (
	styleWall      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleHighlight = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	styleVisited   = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	styleToken     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("167"))
)

// HeatColor maps a distance onto the red/blue heat scale: 0 is pure blue and
// bound is pure red. Distances outside [0, bound] are clamped.
func HeatColor(distance, bound int) lipgloss.Color {
	r, g, b := HeatRGB(distance, bound)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// HeatRGB returns the heat scale color components for distance.
func HeatRGB(distance, bound int) (r, g, b uint8) {
	if bound <= 0 {
		return 0, 0, 255
	}
	s := float64(distance) / float64(bound)
	s = min(max(s, 0), 1)
	return uint8(255 * s), 0, uint8(255 * (1 - s))
}

// Render draws r as a multi-line string.
func Render(r maze.Reader, opts Options) string {
	w := max(opts.CellWidth, 1)
	var sb strings.Builder

	for row := 0; row < r.Height(); row++ {
		// Wall line above the row.
		for col := 0; col < r.Width(); col++ {
			st := r.State(maze.Pos{Col: col, Row: row})
			sb.WriteString(styleWall.Render("+"))
			if st.Open[maze.Up] {
				sb.WriteString(strings.Repeat(" ", w))
			} else {
				sb.WriteString(styleWall.Render(strings.Repeat("-", w)))
			}
		}
		sb.WriteString(styleWall.Render("+"))
		sb.WriteByte('\n')

		// Cell line.
		for col := 0; col < r.Width(); col++ {
			st := r.State(maze.Pos{Col: col, Row: row})
			if st.Open[maze.Left] {
				sb.WriteString(" ")
			} else {
				sb.WriteString(styleWall.Render("|"))
			}
			sb.WriteString(cellBody(st, w, opts))
		}
		sb.WriteString(styleWall.Render("|"))
		sb.WriteByte('\n')
	}

	for col := 0; col < r.Width(); col++ {
		sb.WriteString(styleWall.Render("+" + strings.Repeat("-", w)))
	}
	sb.WriteString(styleWall.Render("+"))
	sb.WriteByte('\n')
	return sb.String()
}

func cellBody(st maze.CellState, w int, opts Options) string {
	glyph, style := " ", lipgloss.NewStyle()
	switch {
	case opts.Token != nil && *opts.Token == st.Pos:
		glyph, style = glyphToken, styleToken
	case st.Highlighted:
		glyph, style = glyphHighlight, styleHighlight
	case st.Visited:
		glyph, style = glyphVisited, styleVisited
	}
	body := center(glyph, w)
	if opts.HeatBound > 0 {
		style = style.Background(HeatColor(st.Distance, opts.HeatBound))
	}
	return style.Render(body)
}

func center(glyph string, w int) string {
	left := (w - 1) / 2
	return strings.Repeat(" ", left) + glyph + strings.Repeat(" ", w-1-left)
}
