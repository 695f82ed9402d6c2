package domain

import "strings"

// RenderBoard draws b in the plain console format:
//
//	   0 1 2 3 4 5 6 7
//	  ----------------
//	0|
//	3|       o x
//
// Every cell is one character (' ', 'o' or 'x') and columns are separated by
// a single space.
func RenderBoard(b Board) string {
	var sb strings.Builder
	sb.WriteString("   0 1 2 3 4 5 6 7\n")
	sb.WriteString("  ----------------\n")
	for r := 0; r < Size; r++ {
		sb.WriteByte(byte('0' + r))
		sb.WriteString("|")
		for c := 0; c < Size; c++ {
			sb.WriteByte(' ')
			sb.WriteByte(b[r][c].Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderCandidates formats hint squares as "(2,4) (3,5)".
func RenderCandidates(sqs []Square) string {
	parts := make([]string, len(sqs))
	for i, sq := range sqs {
		parts[i] = sq.String()
	}
	return strings.Join(parts, " ")
}
