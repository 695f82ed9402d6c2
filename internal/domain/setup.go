package domain

// NewBoardOpening returns the standard initial position.
// Coordinates are (row, col), 0-based from the top-left corner:
//
//	(3,3)=White (3,4)=Black
//	(4,3)=Black (4,4)=White
func NewBoardOpening() Board {
	var b Board
	mid := Size / 2
	b[mid-1][mid-1], b[mid][mid] = White, White
	b[mid-1][mid], b[mid][mid-1] = Black, Black
	return b
}

// NewGameFrom starts a game from an arbitrary position with turn to move.
func NewGameFrom(b Board, turn Color) *Game {
	mustColor(turn)
	g := &Game{
		Board: b,
		Turn:  turn,
		Moves: make([]Move, 0, Size*Size),
	}
	g.start = g.CloneSnapshot()
	return g
}
