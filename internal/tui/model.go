package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"reversi-tui/internal/domain"
	"reversi-tui/internal/record"
)

type mode int

const (
	modeNormal mode = iota
	modeInput
)

type Options struct {
	Hints bool
}

type Model struct {
	g      *domain.Game
	cursor domain.Square
	hints  bool

	m        mode
	input    textinput.Model
	logLines []string

	width  int
	height int
}

func NewModel(opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "24 / e3 / undo / pass / hints / record / new"
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Width = 60

	return Model{
		g:      domain.NewGame(),
		cursor: domain.Square{Row: 2, Col: 4},
		hints:  opts.Hints,
		m:      modeNormal,
		input:  ti,
		logLines: []string{
			"ready (arrows to move, enter to place, i for commands)",
		},
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = min(80, max(30, m.width-4))
		return m, nil

	case tea.KeyMsg:
		switch m.m {
		case modeNormal:
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "i", ":":
				m.m = modeInput
				m.input.SetValue("")
				m.input.Focus()
				return m, textinput.Blink
			case "up", "k":
				m.moveCursor(-1, 0)
			case "down", "j":
				m.moveCursor(1, 0)
			case "left", "h":
				m.moveCursor(0, -1)
			case "right", "l":
				m.moveCursor(0, 1)
			case "enter", " ":
				m.play(m.cursor)
			case "u":
				m.undo()
			case "p":
				m.pass()
			case "?":
				m.toggleHints()
			}
			return m, nil

		case modeInput:
			switch msg.String() {
			case "esc":
				m.m = modeNormal
				m.input.Blur()
				return m, nil
			case "enter":
				cmdline := strings.TrimSpace(m.input.Value())
				m.input.SetValue("")
				m.m = modeNormal
				m.input.Blur()

				if cmdline != "" {
					if quit := m.execCommand(cmdline); quit {
						return m, tea.Quit
					}
				}
				return m, nil
			}

			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// execCommand runs one command line. It reports true when the program
// should quit.
func (m *Model) execCommand(line string) bool {
	m.appendLog("> " + line)

	// 座標入力（24 / 2 4 / e3）はコマンドより先に処理
	if domain.LooksLikeSquare(line) {
		sq, err := domain.ParseSquare(line)
		if err != nil {
			m.appendLog(fmt.Sprintf("invalid coordinate: %v", err))
			return false
		}
		m.cursor = sq
		m.play(sq)
		return false
	}

	parts := strings.Fields(line)
	switch strings.ToLower(parts[0]) {
	case "new", "reset":
		m.g = domain.NewGame()
		m.appendLog("new game, " + m.g.Turn.String() + " to move")

	case "undo":
		m.undo()

	case "pass":
		m.pass()

	case "hints", "hint":
		m.toggleHints()

	case "record", "rec":
		opt := record.DefaultOptions()
		opt.Final = m.g.Status() == domain.GameOver
		out := record.Generate(m.g.Start(), m.g.Moves, opt)

		m.appendLog("record preview:")
		for _, ln := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
			m.appendLog("  " + ln)
		}

	case "quit", "exit":
		return true

	default:
		m.appendLog(fmt.Sprintf("unknown command: %s", parts[0]))
	}
	return false
}

func (m *Model) play(sq domain.Square) {
	mv, err := m.g.Play(sq.Row, sq.Col)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrGameOver):
			m.appendLog("game is over (type new to restart)")
		default:
			m.appendLog(fmt.Sprintf("move failed: %v", err))
		}
		return
	}
	m.appendLog(fmt.Sprintf("%s %v %s captured %d", mv.Color, mv.Square, mv.Square.Notation(), mv.Captured))
	m.afterMove()
}

func (m *Model) pass() {
	mv, err := m.g.Pass()
	if err != nil {
		m.appendLog(fmt.Sprintf("pass failed: %v", err))
		return
	}
	m.appendLog(fmt.Sprintf("%s passes", mv.Color))
	m.afterMove()
}

// afterMove applies forced passes and announces the end of the game.
func (m *Model) afterMove() {
	if m.g.Status() == domain.MustPass {
		if mv, err := m.g.ForcePass(); err == nil {
			m.appendLog(fmt.Sprintf("%s has no legal move and passes", mv.Color))
		}
	}
	if m.g.Status() == domain.GameOver {
		w, k := m.g.Score()
		if c, ok := m.g.Winner(); ok {
			m.appendLog(fmt.Sprintf("game over: o %d - x %d, %s wins", w, k, c))
		} else {
			m.appendLog(fmt.Sprintf("game over: o %d - x %d, draw", w, k))
		}
	}
}

func (m *Model) undo() {
	if !m.g.Undo() {
		m.appendLog("nothing to undo")
		return
	}
	m.appendLog("undone, " + m.g.Turn.String() + " to move")
}

func (m *Model) toggleHints() {
	m.hints = !m.hints
	m.appendLog(fmt.Sprintf("hints: %v", m.hints))
}

func (m *Model) moveCursor(dr, dc int) {
	m.cursor.Row = (m.cursor.Row + dr + domain.Size) % domain.Size
	m.cursor.Col = (m.cursor.Col + dc + domain.Size) % domain.Size
}

func (m *Model) appendLog(s string) {
	m.logLines = append(m.logLines, s)
	if len(m.logLines) > 200 {
		m.logLines = m.logLines[len(m.logLines)-200:]
	}
}

func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	modeStr := "NORMAL"
	if m.m == modeInput {
		modeStr = "INPUT"
	}
	w, k := m.g.Score()
	header := titleStyle.Render(fmt.Sprintf("reversi  [%s to move]  o %d - x %d  mode:%s",
		m.g.Turn, w, k, modeStr))

	var hints []domain.Square
	if m.hints {
		cm := m.g.Captures()
		hints = cm.Candidates()
	}
	board := boxStyle.Render(RenderBoard(m.g.Board, m.cursor, hints))

	// ログ領域
	logHeight := max(5, m.height-domain.Size-10)
	logStart := max(0, len(m.logLines)-logHeight)
	logBody := strings.Join(m.logLines[logStart:], "\n")
	logBox := boxStyle.Width(max(20, m.width-2)).Height(logHeight).Render(logBody)

	// 入力領域
	var inputLine string
	if m.m == modeInput {
		inputLine = m.input.View()
	} else {
		inputLine = "enter: place  u: undo  p: pass  ?: hints  i: command  q: quit"
	}
	inputBox := boxStyle.Width(max(20, m.width-2)).Render(inputLine)

	return header + "\n" + board + "\n" + logBox + "\n" + inputBox + "\n"
}
