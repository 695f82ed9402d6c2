package domain

import "errors"

var (
	// ErrIllegalMove is returned when a placement captures nothing: the cell
	// is occupied, no direction is anchored, or it lies outside the board.
	ErrIllegalMove = errors.New("illegal move")
	// ErrPassNotAllowed is returned by Pass while the side to move has a legal move.
	ErrPassNotAllowed = errors.New("pass not allowed")
	// ErrGameOver is returned by Play and Pass once the game has ended.
	ErrGameOver = errors.New("the game is over")
	// ErrBadInput is returned by ParseSquare for unreadable coordinates.
	ErrBadInput = errors.New("bad input")
)
