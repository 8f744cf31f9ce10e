package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/mazewalk/pkg/session"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
)

const (
	iconSuccess = "✓"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// =============================================================================
// Stats Display
// =============================================================================

// statsTable renders a session summary as a bordered two-column table.
func statsTable(st session.Stats) string {
	rows := [][]string{
		{"seed", strconv.FormatInt(st.Seed, 10)},
		{"size", fmt.Sprintf("%d × %d", st.Width, st.Height)},
		{"bias", fmt.Sprintf("h %.2f · v %.2f", st.HBias, st.VBias)},
		{"mode", st.Mode},
		{"passages", fmt.Sprintf("%d open of %d examined / %d", st.Opened, st.Examined, st.Candidates)},
	}
	if st.Discipline != "" {
		rows = append(rows, []string{"solver", st.Discipline})
		if st.Discipline == "manual" {
			rows = append(rows, []string{"moves", strconv.Itoa(st.Moves)})
		} else {
			rows = append(rows, []string{"steps", strconv.Itoa(st.Steps)})
		}
	}
	if st.PathLength > 0 {
		rows = append(rows, []string{"path", fmt.Sprintf("%d cells", st.PathLength)})
	}
	if st.Heat != "off" {
		rows = append(rows, []string{"heat", fmt.Sprintf("from %s (bound %d)", st.Heat, st.HeatBound)})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorGray).PaddingRight(1)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		}).
		Render()
}
