package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CuriAlexity/snake-arcade/internal/core"
)

// colorStyles maps core.Color to lipgloss styles: green snake, red food
// and border, periwinkle obstacles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorSnake:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	core.ColorFood:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	core.ColorObstacle: lipgloss.NewStyle().Foreground(lipgloss.Color("147")),
	core.ColorBorder:   lipgloss.NewStyle().Foreground(lipgloss.Color("167")),
	core.ColorText:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	core.ColorAccent:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	core.ColorDim:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
