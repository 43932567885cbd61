package prompt

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/footprint-tools/clik/internal/ui/style"
)

// footerLines is the height reserved below the transcript: input and help.
const footerLines = 2

type execDoneMsg struct {
	err error
}

// Model is the interactive shell. Lines run one at a time as tea.Cmds so
// long async commands keep the UI responsive; input is refused while a
// line is running.
type Model struct {
	ctx  context.Context
	exec Executor
	out  *Buffer

	input    textinput.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap

	transcript string
	history    []string
	historyPos int

	busy    bool
	cancel  context.CancelFunc
	ready   bool
	width   int
	Quitted bool
}

// NewModel returns a model executing lines with exec. Command output is
// expected to be written to out.
func NewModel(ctx context.Context, exec Executor, out *Buffer) Model {
	input := textinput.New()
	input.Prompt = style.Prompt(exec.Prompt())
	input.Focus()

	return Model{
		ctx:      ctx,
		exec:     exec,
		out:      out,
		input:    input,
		viewport: viewport.New(0, 0),
		help:     help.New(),
		keys:     defaultKeys(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Transcript returns everything shown above the input so far.
func (m Model) Transcript() string {
	return m.transcript
}

// Busy reports whether a line is running.
func (m Model) Busy() bool {
	return m.busy
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-footerLines, 1)
		m.input.Width = max(msg.Width-len(m.exec.Prompt())-1, 1)
		m.help.Width = msg.Width
		m.ready = true
		m.refresh()
		return m, nil

	case execDoneMsg:
		return m.finish(msg.err)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			if m.cancel != nil {
				m.cancel()
			}
			m.Quitted = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Interrupt):
			if m.busy {
				m.cancel()
				return m, nil
			}
			m.input.Reset()
			return m, nil

		case key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd

		case m.busy:
			return m, nil

		case key.Matches(msg, m.keys.Submit):
			return m.submit()

		case key.Matches(msg, m.keys.Prev):
			m.recall(-1)
			return m, nil

		case key.Matches(msg, m.keys.Next):
			m.recall(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	m.transcript += m.input.Prompt + line + "\n"

	if strings.TrimSpace(line) != "" {
		m.history = append(m.history, line)
	}
	m.historyPos = len(m.history)

	ctx, cancel := context.WithCancel(m.ctx)
	m.busy = true
	m.cancel = cancel
	m.refresh()

	exec := m.exec
	return m, func() tea.Msg {
		defer cancel()
		return execDoneMsg{err: exec.Exec(ctx, line)}
	}
}

func (m Model) finish(err error) (tea.Model, tea.Cmd) {
	m.busy = false
	m.cancel = nil

	m.transcript += m.out.Drain()
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		m.transcript += style.Muted("cancelled") + "\n"
	default:
		m.transcript += style.Error(Describe(err)) + "\n"
	}

	m.input.Prompt = style.Prompt(m.exec.Prompt())
	m.refresh()

	if m.exec.Done() {
		m.Quitted = true
		return m, tea.Quit
	}
	return m, nil
}

// recall moves through submitted lines; past the newest it clears input.
func (m *Model) recall(delta int) {
	if len(m.history) == 0 {
		return
	}
	m.historyPos = min(max(m.historyPos+delta, 0), len(m.history))
	if m.historyPos == len(m.history) {
		m.input.Reset()
		return
	}
	m.input.SetValue(m.history[m.historyPos])
	m.input.CursorEnd()
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.transcript)
	m.viewport.GotoBottom()
}

func (m Model) View() string {
	if !m.ready {
		return m.input.View()
	}

	var footer string
	if m.busy {
		footer = style.Muted("running… Ctrl+C to cancel")
	} else {
		footer = m.input.View()
	}

	return m.viewport.View() + "\n" + footer + "\n" + m.help.View(m.keys)
}
