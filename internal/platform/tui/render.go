package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Palette renders screen cells with lipgloss styles.
type Palette struct {
	styles map[core.Color]lipgloss.Style
	plain  lipgloss.Style
}

// NewPalette builds a style for every color the screen can hold.
func NewPalette() *Palette {
	p := &Palette{
		styles: make(map[core.Color]lipgloss.Style),
		plain:  lipgloss.NewStyle(),
	}
	for c := core.ColorDefault; c <= core.ColorDarkGray; c++ {
		if code := c.ANSI(); code != "" {
			p.styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
		}
	}
	return p
}

func (p *Palette) style(c core.Color) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	return p.plain
}

// Render converts a screen buffer to a styled string. Runs of cells with the
// same color share one style so each row carries few escape sequences.
func (p *Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(p.style(color).Render(run.String()))
		}
	}
	return sb.String()
}

var defaultPalette = NewPalette()

// RenderScreen renders s with the default palette.
func RenderScreen(s *core.Screen) string {
	return defaultPalette.Render(s)
}
