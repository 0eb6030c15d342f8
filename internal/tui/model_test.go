package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dendrascience/vfsh/shell"
	"github.com/dendrascience/vfsh/vfs"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	sh := shell.New(vfs.NewDefault(), shell.NewEnv(map[string]string{"USER": "alice"}), shell.WithPrompt("> "))
	m := NewModel(sh, []string{"banner"})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func typeLine(m *Model, line string) tea.Cmd {
	m.input.SetValue(line)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func TestModel_SubmitAppendsOutput(t *testing.T) {
	m := newTestModel(t)

	cmd := typeLine(m, "echo hi")
	assert.Nil(t, cmd)
	assert.Equal(t, []string{"banner", "> echo hi", "hi"}, m.Lines())
	assert.Empty(t, m.input.Value())
}

func TestModel_ErrorLine(t *testing.T) {
	m := newTestModel(t)

	typeLine(m, "nope")
	require.Len(t, m.log, 3)
	assert.Equal(t, kindError, m.log[2].kind)
	assert.Equal(t, "error: unknown command 'nope'", m.log[2].text)
}

func TestModel_ClsClearsLog(t *testing.T) {
	m := newTestModel(t)

	typeLine(m, "echo a")
	typeLine(m, "cls")
	assert.Empty(t, m.Lines())

	typeLine(m, "pwd")
	assert.Equal(t, []string{"> pwd", "/"}, m.Lines())
}

func TestModel_ExitQuits(t *testing.T) {
	m := newTestModel(t)

	cmd := typeLine(m, "exit")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Quitting())
	assert.Empty(t, m.View())
}

func TestModel_CtrlCQuits(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Quitting())
}

func TestModel_History(t *testing.T) {
	m := newTestModel(t)
	typeLine(m, "echo one")
	typeLine(m, "echo two")

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "echo two", m.input.Value())
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "echo one", m.input.Value())
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "echo one", m.input.Value())

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Empty(t, m.input.Value())
}

func TestModel_PromptFollowsCwd(t *testing.T) {
	sh := shell.New(vfs.NewDefault(), shell.NewEnv(map[string]string{"USER": "alice"}), shell.WithPrompt("$PWD>"))
	m := NewModel(sh, nil)

	typeLine(m, "cd documents")
	assert.Contains(t, m.input.Prompt, "/documents/>")
	assert.Equal(t, []string{"/>cd documents"}, m.Lines())
}

func TestUserColor_Stable(t *testing.T) {
	assert.Equal(t, UserColor("alice"), UserColor("alice"))
	assert.NotEmpty(t, string(UserColor("")))
}
