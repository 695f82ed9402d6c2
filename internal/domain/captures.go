package domain

type Direction struct {
	DR int
	DC int
}

var directions = [8]Direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Directions returns a copy of the 8 compass offsets in the order used to
// index a CaptureMap.
func Directions() [8]Direction {
	return directions
}

// CaptureMap[row][col][dir] is the number of opposing stones a placement at
// (row, col) would flip along directions[dir].
type CaptureMap [Size][Size][8]int

// Total sums the 8 directions of a cell. Out-of-board cells yield 0.
func (m *CaptureMap) Total(row, col int) int {
	if !(Square{Row: row, Col: col}).InBounds() {
		return 0
	}
	n := 0
	for _, v := range m[row][col] {
		n += v
	}
	return n
}

// Candidates lists the cells with a nonzero total in row-major order.
func (m *CaptureMap) Candidates() []Square {
	out := make([]Square, 0, 16)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if m.Total(r, c) > 0 {
				out = append(out, Square{Row: r, Col: c})
			}
		}
	}
	return out
}

// ComputeCaptures evaluates every empty cell of b as a placement for color.
// b is not modified.
func ComputeCaptures(b Board, color Color) CaptureMap {
	mustColor(color)
	var m CaptureMap
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] != Empty {
				continue
			}
			for d, dir := range directions {
				m[r][c][d] = scanRay(&b, r, c, dir, color)
			}
		}
	}
	return m
}

// scanRay walks from (r, c) along dir and returns the run of opposing stones
// closed by a stone of color, or 0 if the run hits an empty cell or the edge.
func scanRay(b *Board, r, c int, dir Direction, color Color) int {
	n := 0
	for {
		r += dir.DR
		c += dir.DC
		if r < 0 || r >= Size || c < 0 || c >= Size {
			return 0
		}
		switch b[r][c] {
		case Empty:
			return 0
		case color:
			return n
		default:
			n++
		}
	}
}

// LegalMoves lists the placements available to color in row-major order.
func LegalMoves(b Board, color Color) []Square {
	m := ComputeCaptures(b, color)
	return m.Candidates()
}

// HasLegalMove reports whether color can place a stone anywhere on b.
func HasLegalMove(b Board, color Color) bool {
	return len(LegalMoves(b, color)) > 0
}
