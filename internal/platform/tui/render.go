package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/dome-defender/internal/core"
)

type cellColors struct {
	fg, bg core.Color
}

// styleCache keeps one lipgloss style per foreground/background pair.
type styleCache map[cellColors]lipgloss.Style

func (c styleCache) get(fg, bg core.Color) lipgloss.Style {
	key := cellColors{fg, bg}
	if s, ok := c[key]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex()))
	c[key] = s
	return s
}

// Renderer converts cell buffers to styled strings.
type Renderer struct {
	styles styleCache
}

// NewRenderer creates a renderer with an empty style cache.
func NewRenderer() *Renderer {
	return &Renderer{styles: make(styleCache)}
}

// Render converts a cell buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (r *Renderer) Render(b *core.CellBuffer) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(b.Width()*b.Height()*2 + b.Height())

	for y := range b.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < b.Width() {
			start := b.Cell(x, y)

			var run strings.Builder
			for x < b.Width() {
				cell := b.Cell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.styles.get(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
