package record

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"reversi-tui/internal/domain"
)

type Options struct {
	HeaderComment string
	GameID        string // random UUID when empty
	Final         bool   // append the result line
}

func DefaultOptions() Options {
	return Options{
		HeaderComment: "# reversi record",
	}
}

// Generate renders the transcript of a game: header, start position, one
// line per move and, for a finished game, the result.
func Generate(start domain.Snapshot, moves []domain.Move, opt Options) string {
	out := make([]string, 0, len(moves)+20)

	id := opt.GameID
	if id == "" {
		id = uuid.NewString()
	}

	first := start.Turn
	if first != domain.White && first != domain.Black {
		first = domain.White
	}

	// --- header ---
	out = append(out, opt.HeaderComment)
	out = append(out, "ID："+id)
	out = append(out, "日時："+NowYYYYMMDDHHMMSS())
	out = append(out, "先手："+SideLabel(first))
	out = append(out, "後手："+SideLabel(domain.Opponent(first)))

	// --- start position ---
	out = append(out, strings.TrimRight(domain.RenderBoard(start.Board), "\n"))

	out = append(out, "手数--着手------取石--")

	board := start.Board
	for i, mv := range moves {
		out = append(out, MoveLine(i+1, mv))
		if mv.Pass {
			continue
		}
		nb, err := domain.ApplyMove(board, mv.Square.Row, mv.Square.Col, mv.Color)
		if err != nil {
			// 手順が壊れている場合はそこで打ち切る
			out = append(out, fmt.Sprintf("# invalid move %d: %v", i+1, err))
			break
		}
		board = nb
	}

	if opt.Final {
		out = append(out, resultLine(board))
	}

	return strings.Join(out, "\n") + "\n"
}

func resultLine(b domain.Board) string {
	w, k := b.Counts()
	line := fmt.Sprintf("結果：o %d - x %d", w, k)
	switch {
	case w > k:
		return line + "  o wins"
	case k > w:
		return line + "  x wins"
	default:
		return line + "  draw"
	}
}
