package domain

import (
	"fmt"
)

// ApplyMove places a stone of color at (row, col) and flips every captured
// run. It returns a new board; b itself is never changed. When the cell
// captures nothing (or lies outside the board) the error wraps ErrIllegalMove
// and the returned board equals b.
func ApplyMove(b Board, row, col int, color Color) (Board, error) {
	nb, _, err := Place(b, Square{Row: row, Col: col}, color)
	return nb, err
}

// Place is ApplyMove that also reports how many stones were flipped.
func Place(b Board, sq Square, color Color) (Board, int, error) {
	mustColor(color)

	// 盤外チェック
	if !sq.InBounds() {
		return b, 0, fmt.Errorf("%w: %v is out of board", ErrIllegalMove, sq)
	}
	if b[sq.Row][sq.Col] != Empty {
		return b, 0, fmt.Errorf("%w: %v is occupied", ErrIllegalMove, sq)
	}

	m := ComputeCaptures(b, color)
	total := m.Total(sq.Row, sq.Col)
	if total == 0 {
		return b, 0, fmt.Errorf("%w: %s captures nothing at %v", ErrIllegalMove, color, sq)
	}

	nb := b
	nb[sq.Row][sq.Col] = color
	for d, dir := range directions {
		if m[sq.Row][sq.Col][d] == 0 {
			continue
		}
		// the anchor found by ComputeCaptures stops the walk
		r, c := sq.Row+dir.DR, sq.Col+dir.DC
		for nb[r][c] != color {
			nb[r][c] = color
			r += dir.DR
			c += dir.DC
		}
	}
	return nb, total, nil
}

type Phase int

const (
	AwaitingMove Phase = iota
	MustPass
	GameOver
)

func (p Phase) String() string {
	switch p {
	case AwaitingMove:
		return "awaiting move"
	case MustPass:
		return "must pass"
	case GameOver:
		return "game over"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Status reports what the side to move can do. The game is over when the
// board is full, one color has no stones left, or neither side can move.
func (g *Game) Status() Phase {
	w, k := g.Board.Counts()
	if w+k == Size*Size || w == 0 || k == 0 {
		return GameOver
	}
	if HasLegalMove(g.Board, g.Turn) {
		return AwaitingMove
	}
	if HasLegalMove(g.Board, Opponent(g.Turn)) {
		return MustPass
	}
	return GameOver
}

// Play places a stone for the side to move. On error the game is unchanged.
func (g *Game) Play(row, col int) (Move, error) {
	if g.Status() == GameOver {
		return Move{}, ErrGameOver
	}

	sq := Square{Row: row, Col: col}
	nb, captured, err := Place(g.Board, sq, g.Turn)
	if err != nil {
		return Move{}, err
	}

	// undo
	g.pushHistory()

	mv := Move{Color: g.Turn, Square: sq, Captured: captured}
	g.Board = nb
	g.Moves = append(g.Moves, mv)
	g.toggleTurn()
	return mv, nil
}

// Pass hands the turn over. It is only allowed when the side to move has no
// legal placement but the opponent does. The pass becomes the rollback point.
func (g *Game) Pass() (Move, error) {
	return g.pass(true)
}

// ForcePass is Pass applied by a driver right after a move. It keeps the
// rollback point of that move, so Undo takes back the move and the pass
// together.
func (g *Game) ForcePass() (Move, error) {
	return g.pass(false)
}

func (g *Game) pass(push bool) (Move, error) {
	switch g.Status() {
	case GameOver:
		return Move{}, ErrGameOver
	case AwaitingMove:
		return Move{}, fmt.Errorf("%w: %s has a legal move", ErrPassNotAllowed, g.Turn)
	}

	if push {
		g.pushHistory()
	}

	mv := Move{Color: g.Turn, Pass: true}
	g.Moves = append(g.Moves, mv)
	g.toggleTurn()
	return mv, nil
}

// Winner returns the color with more stones. ok is false on a draw.
func (g *Game) Winner() (c Color, ok bool) {
	w, k := g.Board.Counts()
	switch {
	case w > k:
		return White, true
	case k > w:
		return Black, true
	default:
		return Empty, false
	}
}

func (g *Game) Score() (white, black int) {
	return g.Board.Counts()
}

// Captures is the capture map for the side to move.
func (g *Game) Captures() CaptureMap {
	return ComputeCaptures(g.Board, g.Turn)
}
