package domain

import "testing"

// boardFrom builds a board from 8 rows of 'o' (White), 'x' (Black) and '.'.
func boardFrom(t *testing.T, rows ...string) Board {
	t.Helper()
	if len(rows) != Size {
		t.Fatalf("boardFrom: want %d rows, got %d", Size, len(rows))
	}
	var b Board
	for r, line := range rows {
		if len(line) != Size {
			t.Fatalf("boardFrom: row %d has %d cells", r, len(line))
		}
		for c := 0; c < Size; c++ {
			switch line[c] {
			case 'o':
				b[r][c] = White
			case 'x':
				b[r][c] = Black
			case '.':
			default:
				t.Fatalf("boardFrom: bad cell %q at (%d,%d)", line[c], r, c)
			}
		}
	}
	return b
}

func totals(m CaptureMap) map[Square]int {
	out := map[Square]int{}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if n := m.Total(r, c); n != 0 {
				out[Square{Row: r, Col: c}] = n
			}
		}
	}
	return out
}
