package main

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Arnthorny/SimlCalc/internal/calculator"
	"github.com/Arnthorny/SimlCalc/internal/config"
	"github.com/Arnthorny/SimlCalc/internal/notice"
	"github.com/Arnthorny/SimlCalc/internal/token"
	"github.com/Arnthorny/SimlCalc/internal/ui"
)

// commitDelay is how long the result stays highlighted before it replaces
// the buffer.
const commitDelay = 200 * time.Millisecond

const defaultWidth = 24

// messages
type previewMsg struct {
	text  string
	value float64
	err   error
}

type evaluatedMsg struct {
	text  string
	value float64
	err   error
}

type commitMsg struct {
	result string
}

type noticeHideMsg struct{}

type noticeClearMsg struct{}

type configMsg struct {
	cfg config.Config
	err error
}

type model struct {
	calc     *calculator.Calculator
	watcher  *config.Watcher
	board    notice.Board
	row, col int
	width    int
	// committing is set from the commit key until the result lands or
	// evaluation fails; moving covers only the final swap delay.
	committing bool
	moving     bool
	quitting   bool
}

func initialModel(c *calculator.Calculator, w *config.Watcher) model {
	return model{calc: c, watcher: w}
}

func (m model) Init() tea.Cmd {
	return m.waitForConfig()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case previewMsg:
		m.calc.SetPreview(msg.text, msg.value, msg.err)
		return m, nil
	case evaluatedMsg:
		return m.handleEvaluated(msg)
	case commitMsg:
		m.calc.ApplyCommit(msg.result)
		m.committing = false
		m.moving = false
		return m, nil
	case noticeHideMsg:
		m.board.Hide()
		return m, tea.Tick(notice.Fade, func(time.Time) tea.Msg { return noticeClearMsg{} })
	case noticeClearMsg:
		m.board.Clear()
		return m, nil
	case configMsg:
		if msg.err != nil {
			log.Printf("reload config: %v", msg.err)
		} else {
			ui.ApplyTheme(msg.cfg.Theme)
			log.Printf("config reloaded")
		}
		return m, m.waitForConfig()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		m.moveCursor(-1, 0)
	case "down", "j":
		m.moveCursor(1, 0)
	case "left", "h":
		m.moveCursor(0, -1)
	case "right", "l":
		m.moveCursor(0, 1)
	case " ":
		return m.press(token.ButtonAt(m.row, m.col).Input)
	default:
		if in, ok := token.FromShortcut(key); ok {
			return m.press(in)
		}
	}
	return m, nil
}

func (m *model) moveCursor(dr, dc int) {
	m.row = min(max(m.row+dr, 0), len(token.Keypad)-1)
	m.col = min(max(m.col+dc, 0), len(token.Keypad[m.row])-1)
}

// press feeds one input to the calculator. Evaluation runs in a command so
// a slow evaluator never blocks the program. Input is ignored while a commit
// is in flight.
func (m model) press(in token.Input) (tea.Model, tea.Cmd) {
	if m.committing {
		return m, nil
	}

	if in.Kind == token.KindCommit {
		text := m.calc.Text()
		if text == "" {
			return m, nil
		}
		m.committing = true
		return m, m.evaluate(text, func(v float64, err error) tea.Msg {
			return evaluatedMsg{text: text, value: v, err: err}
		})
	}

	if err := m.calc.Apply(in); err != nil {
		cmd := m.notify(err)
		return m, cmd
	}
	text := m.calc.Text()
	return m, m.evaluate(text, func(v float64, err error) tea.Msg {
		return previewMsg{text: text, value: v, err: err}
	})
}

func (m model) handleEvaluated(msg evaluatedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil || msg.text != m.calc.Text() {
		m.committing = false
		cmd := m.notify(msg.err)
		return m, cmd
	}
	result := m.calc.Result(msg.value)
	m.moving = true
	return m, tea.Tick(commitDelay, func(time.Time) tea.Msg { return commitMsg{result: result} })
}

// notify shows err on the notice board and schedules its hide. Nothing is
// scheduled when the board is busy or err has no message.
func (m *model) notify(err error) tea.Cmd {
	if !m.board.Show(calculator.Message(err)) {
		return nil
	}
	return tea.Tick(notice.Visible, func(time.Time) tea.Msg { return noticeHideMsg{} })
}

// --- Commands ---

func (m model) evaluate(text string, done func(float64, error) tea.Msg) tea.Cmd {
	c := m.calc
	return func() tea.Msg {
		v, err := c.Evaluate(context.Background(), text)
		return done(v, err)
	}
}

func (m model) waitForConfig() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	w := m.watcher
	return func() tea.Msg {
		cfg, err := w.Next()
		if errors.Is(err, config.ErrWatcherClosed) {
			return nil
		}
		return configMsg{cfg: cfg, err: err}
	}
}

// --- Views ---

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(ui.TitleStyle.Render("SimlCalc"))
	b.WriteString("\n\n")

	msg := ""
	if m.board.Visible() {
		msg = m.board.Text()
	}
	b.WriteString(ui.RenderScreen(ui.Screen{
		Text:    m.calc.Text(),
		Preview: m.calc.Preview(),
		Notice:  msg,
		Moving:  m.moving,
		Width:   m.screenWidth(),
	}))
	b.WriteString("\n")
	b.WriteString(ui.RenderKeypad(token.Keypad, m.row, m.col))
	b.WriteString(ui.DimStyle.Render("\n←/↑/↓/→ move • space press • enter = • esc clear • ctrl+c quit"))
	b.WriteString("\n")
	return b.String()
}

func (m model) screenWidth() int {
	if m.width == 0 {
		return defaultWidth
	}
	return max(m.width-2, 1)
}
