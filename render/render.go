// Package render draws boards for the terminal.
package render

import (
	"clobber/game"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	blackStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"})
	whiteStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#8A8A8A"})
	emptyStyle     = lipgloss.NewStyle().Faint(true)
	highlightStyle = lipgloss.NewStyle().Reverse(true)
)

// Board renders b with every cell three columns wide. Highlighted cells are
// bracketed, so they stay visible when colours are unavailable.
func Board(b *game.Board, highlight ...game.Position) string {
	marked := make(map[game.Position]bool, len(highlight))
	for _, pos := range highlight {
		marked[pos] = true
	}

	lines := make([]string, 0, b.Rows())
	for r := 0; r < b.Rows(); r++ {
		var sb strings.Builder
		for c := 0; c < b.Cols(); c++ {
			pos := game.Position{Row: r, Col: c}
			sb.WriteString(cell(b.At(pos), marked[pos]))
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

// Move renders the board after move was played, marking where the piece came
// from and where it captured.
func Move(after *game.Board, move game.Move) string {
	return Board(after, move.From, move.To)
}

func cell(c game.Cell, marked bool) string {
	symbol := string(c)
	var style lipgloss.Style
	switch c {
	case game.BlackCell:
		style = blackStyle
	case game.WhiteCell:
		style = whiteStyle
	default:
		style = emptyStyle
	}
	if marked {
		return highlightStyle.Render("[" + style.Render(symbol) + "]")
	}
	return " " + style.Render(symbol) + " "
}
