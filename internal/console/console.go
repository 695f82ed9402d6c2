// Package console is the line-oriented driver: it prints the plain board,
// reads one command per line and feeds it to the game.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"reversi-tui/internal/domain"
	"reversi-tui/internal/record"
)

type Options struct {
	Hints bool
}

type session struct {
	g     *domain.Game
	hints bool
	out   io.Writer
}

// Run plays one session until "quit" or end of input.
func Run(in io.Reader, out io.Writer, opts Options) error {
	s := &session{g: domain.NewGame(), hints: opts.Hints, out: out}
	sc := bufio.NewScanner(in)

	s.show()
	for {
		fmt.Fprintf(out, "%c> ", s.g.Turn.Symbol())
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if quit := s.exec(line); quit {
			return nil
		}
	}
}

func (s *session) exec(line string) bool {
	if domain.LooksLikeSquare(line) {
		sq, err := domain.ParseSquare(line)
		if err != nil {
			fmt.Fprintf(s.out, "invalid coordinate: %v\n", err)
			return false
		}
		mv, err := s.g.Play(sq.Row, sq.Col)
		if err != nil {
			if errors.Is(err, domain.ErrGameOver) {
				fmt.Fprintln(s.out, "game is over (type new to restart)")
			} else {
				fmt.Fprintf(s.out, "move failed: %v\n", err)
			}
			return false
		}
		fmt.Fprintf(s.out, "%s %v captured %d\n", mv.Color, mv.Square, mv.Captured)
		s.advance()
		return false
	}

	switch strings.ToLower(strings.Fields(line)[0]) {
	case "quit", "exit", "q":
		return true
	case "new", "reset":
		s.g = domain.NewGame()
		s.show()
	case "undo", "u":
		if !s.g.Undo() {
			fmt.Fprintln(s.out, "nothing to undo")
			return false
		}
		s.show()
	case "pass":
		if _, err := s.g.Pass(); err != nil {
			fmt.Fprintf(s.out, "pass failed: %v\n", err)
			return false
		}
		s.advance()
	case "hints", "hint":
		s.hints = !s.hints
		fmt.Fprintf(s.out, "hints: %v\n", s.hints)
	case "record", "rec":
		opt := record.DefaultOptions()
		opt.Final = s.g.Status() == domain.GameOver
		fmt.Fprint(s.out, record.Generate(s.g.Start(), s.g.Moves, opt))
	case "board":
		s.show()
	default:
		fmt.Fprintf(s.out, "unknown command: %s\n", line)
	}
	return false
}

// advance applies a forced pass, then shows the position. A finished game
// also prints the result and the record.
func (s *session) advance() {
	if s.g.Status() == domain.MustPass {
		if mv, err := s.g.ForcePass(); err == nil {
			fmt.Fprintf(s.out, "%s has no legal move and passes\n", mv.Color)
		}
	}
	s.show()
	if s.g.Status() != domain.GameOver {
		return
	}

	w, k := s.g.Score()
	if c, ok := s.g.Winner(); ok {
		fmt.Fprintf(s.out, "game over: o %d - x %d, %s wins\n", w, k, c)
	} else {
		fmt.Fprintf(s.out, "game over: o %d - x %d, draw\n", w, k)
	}

	opt := record.DefaultOptions()
	opt.Final = true
	fmt.Fprint(s.out, record.Generate(s.g.Start(), s.g.Moves, opt))
}

func (s *session) show() {
	fmt.Fprint(s.out, domain.RenderBoard(s.g.Board))
	w, k := s.g.Score()
	fmt.Fprintf(s.out, "o %d - x %d, %s to move\n", w, k, s.g.Turn)
	if s.hints {
		fmt.Fprintf(s.out, "candidates: %s\n", domain.RenderCandidates(domain.LegalMoves(s.g.Board, s.g.Turn)))
	}
}
