package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pallasting/ICE-Climber/internal/core"
)

// colorStyles holds one lipgloss style per palette entry. Bright entries
// are bold so they read against the ice.
var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style)
	for _, c := range core.Colors() {
		style := lipgloss.NewStyle()
		if code := c.Code(); code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		if c.Bright() {
			style = style.Bold(true)
		}
		styles[c] = style
	}
	return styles
}

// spanColor is the color a cell is grouped under. Blank cells look the same
// in any color, so they join the default span.
func spanColor(cell core.Cell) core.Color {
	if cell.Rune == ' ' {
		return core.ColorDefault
	}
	return cell.Color
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one color share a single styled span.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var span strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.Width(); {
			color := spanColor(s.GetCell(x, y))
			span.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if spanColor(cell) != color {
					break
				}
				span.WriteRune(cell.Rune)
			}
			if color == core.ColorDefault {
				sb.WriteString(span.String())
				continue
			}
			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(span.String()))
		}
	}
	return sb.String()
}
