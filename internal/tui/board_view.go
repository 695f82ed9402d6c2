package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"reversi-tui/internal/domain"
)

var (
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	whiteStyle  = lipgloss.NewStyle().Bold(true)
	blackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// RenderBoard draws b with the same rows and columns as domain.RenderBoard,
// 3 columns per cell so the cursor and hint markers fit.
func RenderBoard(b domain.Board, cursor domain.Square, hints []domain.Square) string {
	hint := make(map[domain.Square]bool, len(hints))
	for _, sq := range hints {
		hint[sq] = true
	}

	var sb strings.Builder
	sb.WriteString("   0  1  2  3  4  5  6  7\n")
	sb.WriteString("  ------------------------\n")

	for r := 0; r < domain.Size; r++ {
		sb.WriteByte(byte('0' + r))
		sb.WriteString("|")
		for c := 0; c < domain.Size; c++ {
			sq := domain.Square{Row: r, Col: c}
			sb.WriteString(cell(b.At(sq), hint[sq], sq == cursor))
		}
		if r < domain.Size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// cell returns a fixed-width 3-char cell.
func cell(c domain.Cell, isHint, isCursor bool) string {
	s := " " + string(c.Symbol()) + " "
	switch c {
	case domain.White:
		s = whiteStyle.Render(s)
	case domain.Black:
		s = blackStyle.Render(s)
	default:
		if isHint {
			s = hintStyle.Render(" · ")
		}
	}
	if isCursor {
		return cursorStyle.Render(s)
	}
	return s
}
