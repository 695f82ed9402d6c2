package domain

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

var (
	reDigits   = regexp.MustCompile(`^(\d)\s*[, ]?\s*(\d)$`)
	reNotation = regexp.MustCompile(`^([a-hA-H])([1-8])$`)
)

// ParseSquare reads a board coordinate typed by a player:
//   - "24", "2 4", "2,4" => row 2, col 4 (0-based, row first)
//   - "e3"               => col e, row 3 (Othello notation) = (2,4)
//
// Full-width input (IME) such as "２４" is folded to ASCII first.
func ParseSquare(s string) (Square, error) {
	s = strings.TrimSpace(width.Narrow.String(s))
	if s == "" {
		return Square{}, fmt.Errorf("%w: empty coordinate", ErrBadInput)
	}

	if m := reNotation.FindStringSubmatch(s); m != nil {
		col := int(strings.ToLower(m[1])[0] - 'a')
		row := int(m[2][0] - '1')
		return Square{Row: row, Col: col}, nil
	}

	m := reDigits.FindStringSubmatch(s)
	if m == nil {
		return Square{}, fmt.Errorf("%w: %q is not a coordinate (try \"24\" or \"e3\")", ErrBadInput, s)
	}
	sq := Square{Row: int(m[1][0] - '0'), Col: int(m[2][0] - '0')}
	if !sq.InBounds() {
		return Square{}, fmt.Errorf("%w: %v out of range 0..7", ErrBadInput, sq)
	}
	return sq, nil
}

// LooksLikeSquare reports whether s should be handled as a coordinate rather
// than a command word.
func LooksLikeSquare(s string) bool {
	s = strings.TrimSpace(width.Narrow.String(s))
	return reDigits.MatchString(s) || reNotation.MatchString(s)
}
