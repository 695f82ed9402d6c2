package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"reversi-tui/internal/domain"
)

func lastLog(m Model) string {
	return m.logLines[len(m.logLines)-1]
}

func hasLog(m Model, sub string) bool {
	for _, ln := range m.logLines {
		if strings.Contains(ln, sub) {
			return true
		}
	}
	return false
}

func TestExecCommand_CoordinatePlays(t *testing.T) {
	m := NewModel(Options{})
	for _, in := range []string{"24", "e3"} {
		m = NewModel(Options{})
		if quit := m.execCommand(in); quit {
			t.Fatalf("%q: unexpected quit", in)
		}
		if got := m.g.Board.At(domain.Square{Row: 3, Col: 4}); got != domain.White {
			t.Fatalf("%q: (3,4) got=%s want=White", in, got)
		}
		if m.g.Turn != domain.Black {
			t.Fatalf("%q: turn got=%s want=Black", in, m.g.Turn)
		}
		if m.cursor != (domain.Square{Row: 2, Col: 4}) {
			t.Fatalf("%q: cursor did not follow the move: %v", in, m.cursor)
		}
	}
}

func TestExecCommand_IllegalMoveIsLogged(t *testing.T) {
	m := NewModel(Options{})
	m.execCommand("00")
	if !strings.HasPrefix(lastLog(m), "move failed: illegal move") {
		t.Fatalf("unexpected log: %q", lastLog(m))
	}
	if len(m.g.Moves) != 0 {
		t.Fatalf("illegal move was recorded")
	}

	m.execCommand("99")
	if !strings.HasPrefix(lastLog(m), "invalid coordinate") {
		t.Fatalf("unexpected log: %q", lastLog(m))
	}
}

func TestExecCommand_UndoPassHintsRecord(t *testing.T) {
	m := NewModel(Options{})
	m.execCommand("undo")
	if lastLog(m) != "nothing to undo" {
		t.Fatalf("unexpected log: %q", lastLog(m))
	}

	m.execCommand("24")
	m.execCommand("undo")
	if m.g.Turn != domain.White || len(m.g.Moves) != 0 {
		t.Fatalf("undo did not restore the opening")
	}

	m.execCommand("pass")
	if !strings.HasPrefix(lastLog(m), "pass failed") {
		t.Fatalf("unexpected log: %q", lastLog(m))
	}

	m.execCommand("hints")
	if !m.hints {
		t.Fatalf("hints not toggled on")
	}

	m.execCommand("24")
	m.execCommand("record")
	if !hasLog(m, "record preview:") || !hasLog(m, "   1 o 24 e3 (+1)") {
		t.Fatalf("record not shown: %v", m.logLines)
	}

	m.execCommand("frobnicate")
	if lastLog(m) != "unknown command: frobnicate" {
		t.Fatalf("unexpected log: %q", lastLog(m))
	}

	if !m.execCommand("quit") {
		t.Fatalf("quit must stop the program")
	}
}

func TestExecCommand_NewResetsGame(t *testing.T) {
	m := NewModel(Options{})
	m.execCommand("24")
	m.execCommand("new")
	if len(m.g.Moves) != 0 || m.g.Board != domain.NewBoardOpening() {
		t.Fatalf("new did not reset the game")
	}
}

func TestAfterMove_ForcedPass(t *testing.T) {
	var b domain.Board
	b[0][0] = domain.Black
	b[0][1] = domain.White

	m := NewModel(Options{})
	m.g = domain.NewGameFrom(b, domain.White)
	m.afterMove()

	if m.g.Turn != domain.Black {
		t.Fatalf("turn got=%s want=Black", m.g.Turn)
	}
	if !hasLog(m, "White has no legal move and passes") {
		t.Fatalf("forced pass not logged: %v", m.logLines)
	}

	m.execCommand("02")
	if !hasLog(m, "game over: o 0 - x 3, Black wins") {
		t.Fatalf("game over not logged: %v", m.logLines)
	}
}

func TestUpdate_KeysDriveCursorAndInput(t *testing.T) {
	var tm tea.Model = NewModel(Options{})

	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m := tm.(Model)
	if got := m.g.Board.At(domain.Square{Row: 2, Col: 4}); got != domain.White {
		t.Fatalf("enter at cursor did not play: %s", got)
	}

	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = tm.(Model)
	if m.cursor != (domain.Square{Row: 2, Col: 3}) {
		t.Fatalf("cursor got=%v", m.cursor)
	}

	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'u'}})
	m = tm.(Model)
	if len(m.g.Moves) != 0 {
		t.Fatalf("u did not undo")
	}

	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'i'}})
	m = tm.(Model)
	if m.m != modeInput {
		t.Fatalf("i did not enter input mode")
	}

	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = tm.(Model)
	if m.m != modeNormal {
		t.Fatalf("esc did not leave input mode")
	}
}

func TestView_ShowsTurnAndScore(t *testing.T) {
	m := NewModel(Options{Hints: true})
	v := m.View()
	if !strings.Contains(v, "White to move") || !strings.Contains(v, "o 2 - x 2") {
		t.Fatalf("unexpected header:\n%s", v)
	}
}

func TestRenderBoard_MarksHints(t *testing.T) {
	b := domain.NewBoardOpening()
	out := RenderBoard(b, domain.Square{Row: 0, Col: 0}, domain.LegalMoves(b, domain.White))
	if got := strings.Count(out, "·"); got != 4 {
		t.Fatalf("hint markers: got=%d want=4\n%s", got, out)
	}
	if lines := strings.Split(out, "\n"); len(lines) != domain.Size+2 {
		t.Fatalf("rows: got=%d want=%d", len(lines), domain.Size+2)
	}
}

func TestExecCommand_UndoAfterForcedPass(t *testing.T) {
	var b domain.Board
	b[0][1] = domain.Black
	b[0][2] = domain.White
	b[7][0] = domain.White
	b[7][1] = domain.Black

	m := NewModel(Options{})
	m.g = domain.NewGameFrom(b, domain.White)

	m.execCommand("00")
	if !hasLog(m, "Black has no legal move and passes") {
		t.Fatalf("forced pass not logged: %v", m.logLines)
	}

	m.execCommand("undo")
	if m.g.Board != b || m.g.Turn != domain.White || len(m.g.Moves) != 0 {
		t.Fatalf("undo must take back the move and the forced pass")
	}
	m.execCommand("undo")
	if lastLog(m) != "nothing to undo" {
		t.Fatalf("unexpected log: %q", lastLog(m))
	}
}
