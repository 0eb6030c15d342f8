package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dendrascience/vfsh/shell"
)

type lineKind int

const (
	kindOutput lineKind = iota
	kindCommand
	kindError
	kindBanner
)

type logLine struct {
	text string
	kind lineKind
}

// Model is the bubbletea model of an interactive session: a scrollback log
// above a single input line.
type Model struct {
	shell    *shell.Shell
	input    textinput.Model
	viewport viewport.Model
	keys     KeyMap
	styles   styles

	log      []logLine
	history  []string
	histPos  int
	ready    bool
	quitting bool
}

// NewModel creates the UI for sh. banner lines are shown first in the log.
func NewModel(sh *shell.Shell, banner []string) *Model {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 1024

	m := &Model{
		shell:    sh,
		input:    ti,
		viewport: viewport.New(80, 20),
		keys:     DefaultKeyMap(),
		styles:   defaultStyles(sh.Env().Get("USER")),
	}
	for _, line := range banner {
		m.log = append(m.log, logLine{text: line, kind: kindBanner})
	}
	m.refresh()
	return m
}

// Lines returns the plain text of the scrollback log.
func (m *Model) Lines() []string {
	lines := make([]string, len(m.log))
	for i, l := range m.log {
		lines[i] = l.text
	}
	return lines
}

// Append adds output lines to the log, marking the last one as an error when
// isErr is set.
func (m *Model) Append(lines []string, isErr bool) {
	for i, line := range lines {
		kind := kindOutput
		if isErr && i == len(lines)-1 {
			kind = kindError
		}
		m.log = append(m.log, logLine{text: line, kind: kind})
	}
	m.refresh()
}

// Quitting reports whether the session has ended.
func (m *Model) Quitting() bool {
	return m.quitting
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-1, 1)
		m.input.Width = max(msg.Width-lipgloss.Width(m.input.Prompt)-1, 1)
		m.ready = true
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m, m.submit()
		case key.Matches(msg, m.keys.HistPrev):
			m.recall(-1)
			return m, nil
		case key.Matches(msg, m.keys.HistNext):
			m.recall(1)
			return m, nil
		case key.Matches(msg, m.keys.ScrollUp, m.keys.ScrollDown):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return m.viewport.View() + "\n" + m.input.View()
}

func (m *Model) submit() tea.Cmd {
	line := m.input.Value()
	m.input.Reset()
	if strings.TrimSpace(line) != "" {
		m.history = append(m.history, line)
	}
	m.histPos = len(m.history)

	m.log = append(m.log, logLine{text: m.shell.Prompt() + line, kind: kindCommand})
	res := m.shell.Execute(line)
	if res.Clear {
		m.log = nil
	}
	m.Append(res.Lines, res.Err != nil)

	if res.Exit {
		m.quitting = true
		return tea.Quit
	}
	return nil
}

func (m *Model) recall(step int) {
	if len(m.history) == 0 {
		return
	}
	m.histPos = min(max(m.histPos+step, 0), len(m.history))
	if m.histPos == len(m.history) {
		m.input.SetValue("")
		return
	}
	m.input.SetValue(m.history[m.histPos])
	m.input.CursorEnd()
}

func (m *Model) refresh() {
	m.input.Prompt = m.styles.Prompt.Render(m.shell.Prompt())

	rendered := make([]string, len(m.log))
	for i, l := range m.log {
		rendered[i] = m.style(l.kind).Render(l.text)
	}
	m.viewport.SetContent(strings.Join(rendered, "\n"))
	m.viewport.GotoBottom()
}

func (m *Model) style(kind lineKind) lipgloss.Style {
	switch kind {
	case kindCommand:
		return m.styles.Prompt
	case kindError:
		return m.styles.Error
	case kindBanner:
		return m.styles.Banner
	default:
		return m.styles.Output
	}
}

// Run starts the full-screen UI and blocks until the session ends or ctx is
// cancelled.
func Run(ctx context.Context, m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
