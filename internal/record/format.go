package record

import (
	"fmt"
	"time"

	"reversi-tui/internal/domain"
)

var NowFunc = func() string {
	return time.Now().Format("2006/01/02 15:04:05")
}

func NowYYYYMMDDHHMMSS() string {
	return NowFunc()
}

// SideLabel renders a color as "o (White)".
func SideLabel(c domain.Color) string {
	return fmt.Sprintf("%c (%s)", c.Symbol(), c)
}

// SqToText renders a square as "24 e3": row/col digits then Othello notation.
func SqToText(sq domain.Square) string {
	return fmt.Sprintf("%d%d %s", sq.Row, sq.Col, sq.Notation())
}

// MoveLine renders one numbered record line.
func MoveLine(idx int, mv domain.Move) string {
	if mv.Pass {
		return fmt.Sprintf("%4d %c pass", idx, mv.Color.Symbol())
	}
	return fmt.Sprintf("%4d %c %s (+%d)", idx, mv.Color.Symbol(), SqToText(mv.Square), mv.Captured)
}
