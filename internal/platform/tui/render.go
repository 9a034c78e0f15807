package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-mazes/internal/core"
)

// pairStyles caches one lipgloss style per fg/bg pair in use.
// SSH sessions render concurrently, so access is guarded.
var (
	pairStyles   = map[core.Pair]lipgloss.Style{}
	pairStylesMu sync.Mutex
)

// styleFor returns the lipgloss style for a color pair.
// ColorDefault leaves that side of the pair to the terminal.
func styleFor(p core.Pair) lipgloss.Style {
	pairStylesMu.Lock()
	defer pairStylesMu.Unlock()

	if s, ok := pairStyles[p]; ok {
		return s
	}

	s := lipgloss.NewStyle()
	if code := p.Fg.ANSI(); code != "" {
		s = s.Foreground(lipgloss.Color(code))
	}
	if code := p.Bg.ANSI(); code != "" {
		s = s.Background(lipgloss.Color(code))
	}
	pairStyles[p] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color pair to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.Plain() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}

// centerText left-pads text to sit in the middle of width columns.
// Text wider than width is returned as is.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
