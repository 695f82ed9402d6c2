package domain

import "fmt"

const Size = 8

type Cell byte

const (
	Empty Cell = iota
	White
	Black
)

// Color is the side of a stone or of the player to move. Only White and
// Black are valid colors.
type Color = Cell

func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return fmt.Sprintf("Cell(%d)", byte(c))
	}
}

// Symbol is the single character used by the text renderer.
func (c Cell) Symbol() byte {
	switch c {
	case White:
		return 'o'
	case Black:
		return 'x'
	default:
		return ' '
	}
}

func Opponent(c Color) Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		panic(fmt.Sprintf("domain: invalid color %v", c))
	}
}

func mustColor(c Color) {
	if c != White && c != Black {
		panic(fmt.Sprintf("domain: invalid color %v", c))
	}
}

type Square struct {
	Row int // 0..7
	Col int // 0..7
}

func (sq Square) InBounds() bool {
	return sq.Row >= 0 && sq.Row < Size && sq.Col >= 0 && sq.Col < Size
}

// Notation returns the Othello-style name of sq, e.g. (2,4) -> "e3".
func (sq Square) Notation() string {
	if !sq.InBounds() {
		return "??"
	}
	return string([]byte{byte('a' + sq.Col), byte('1' + sq.Row)})
}

func (sq Square) String() string {
	return fmt.Sprintf("(%d,%d)", sq.Row, sq.Col)
}

type Move struct {
	Color    Color
	Square   Square // zero when Pass
	Captured int
	Pass     bool
}

// Board is indexed [row][col]. It is a value: copying a Board copies the grid.
type Board [Size][Size]Cell

func (b *Board) At(sq Square) Cell {
	if !sq.InBounds() {
		return Empty
	}
	return b[sq.Row][sq.Col]
}

// CountStones returns the number of stones of color c on b.
func CountStones(b Board, c Color) int {
	n := 0
	for r := 0; r < Size; r++ {
		for col := 0; col < Size; col++ {
			if b[r][col] == c {
				n++
			}
		}
	}
	return n
}

// Counts returns the White and Black stone counts in one pass.
func (b *Board) Counts() (white, black int) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch b[r][c] {
			case White:
				white++
			case Black:
				black++
			}
		}
	}
	return white, black
}

type Snapshot struct {
	Board Board
	Turn  Color
	Moves []Move
}

// Game is the whole mutable state of a match. Only the last move or pass
// can be rolled back.
type Game struct {
	Board Board
	Turn  Color
	Moves []Move

	start Snapshot
	prev  *Snapshot
}

func NewGame() *Game {
	g := &Game{
		Board: NewBoardOpening(),
		Turn:  White,
		Moves: make([]Move, 0, Size*Size),
	}
	g.start = g.CloneSnapshot()
	return g
}

func (g *Game) CloneSnapshot() Snapshot {
	mv := make([]Move, len(g.Moves))
	copy(mv, g.Moves)
	return Snapshot{
		Board: g.Board,
		Turn:  g.Turn,
		Moves: mv,
	}
}

func (g *Game) RestoreSnapshot(ss Snapshot) {
	g.Board = ss.Board
	g.Turn = ss.Turn
	g.Moves = make([]Move, len(ss.Moves))
	copy(g.Moves, ss.Moves)
}

// Start returns the position the game began from.
func (g *Game) Start() Snapshot {
	return g.start
}

func (g *Game) pushHistory() {
	ss := g.CloneSnapshot()
	g.prev = &ss
}

// Undo rolls back the last move or pass. It reports false when there is
// nothing to roll back.
func (g *Game) Undo() bool {
	if g.prev == nil {
		return false
	}
	g.RestoreSnapshot(*g.prev)
	g.prev = nil
	return true
}

func (g *Game) CanUndo() bool { return g.prev != nil }

func (g *Game) toggleTurn() {
	g.Turn = Opponent(g.Turn)
}
