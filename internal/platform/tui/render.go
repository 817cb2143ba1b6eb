package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/eggcatch/internal/core"
)

// colorStyles maps core.Color to lipgloss styles. The palette is the coral
// doodle on a dark terminal.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorPrimary: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
	core.ColorGolden:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
	core.ColorRotten:  lipgloss.NewStyle().Foreground(lipgloss.Color("#8B7D6B")),
	core.ColorBomb:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	core.ColorDim:     lipgloss.NewStyle().Foreground(lipgloss.Color("#C45555")),
	core.ColorFaint:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorBright:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Color

			var run strings.Builder
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != start {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := colorStyles[start]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
