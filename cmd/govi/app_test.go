package main

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ionut-t/govi/internal/config"
)

func memoryConfig() config.Config {
	cfg := config.Defaults()
	cfg.Clipboard.Provider = config.ClipboardMemory
	return cfg
}

func send(t *testing.T, a app, msgs ...tea.Msg) (app, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = a.Update(msg)
		a = next.(app)
	}
	return a, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewApp_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo"), 0o600))

	a, err := newApp(memoryConfig(), path)
	require.NoError(t, err)

	assert.Equal(t, "one\ntwo", a.editor.Content())
	assert.False(t, a.editor.HasChanges())
}

func TestNewApp_MissingFileStartsEmpty(t *testing.T) {
	a, err := newApp(memoryConfig(), filepath.Join(t.TempDir(), "new.txt"))
	require.NoError(t, err)

	assert.Empty(t, a.editor.Content())
}

func TestNewApp_UnreadablePath(t *testing.T) {
	_, err := newApp(memoryConfig(), t.TempDir())

	assert.Error(t, err)
}

func TestApp_SaveWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o600))
	a, err := newApp(memoryConfig(), path)
	require.NoError(t, err)

	a, _ = send(t, a, runes("x"), tea.KeyMsg{Type: tea.KeyCtrlS})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "bc", string(data))
	assert.False(t, a.editor.HasChanges())
}

func TestApp_SaveWithoutPath(t *testing.T) {
	a, err := newApp(memoryConfig(), "")
	require.NoError(t, err)

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Contains(t, a.View(), errNoFileName.Error())
}

func TestApp_QuitAsksOnceWithUnsavedChanges(t *testing.T) {
	a, err := newApp(memoryConfig(), "")
	require.NoError(t, err)
	a, _ = send(t, a, runes("ix"), tea.KeyMsg{Type: tea.KeyEsc})

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyCtrlQ})
	assert.True(t, a.confirmQuit)

	_, cmd := send(t, a, tea.KeyMsg{Type: tea.KeyCtrlQ})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_OtherKeysCancelQuit(t *testing.T) {
	a, err := newApp(memoryConfig(), "")
	require.NoError(t, err)
	a, _ = send(t, a, runes("ix"), tea.KeyMsg{Type: tea.KeyEsc}, tea.KeyMsg{Type: tea.KeyCtrlQ})

	a, _ = send(t, a, runes("l"))

	assert.False(t, a.confirmQuit)
}

func TestApp_QuitWhenClean(t *testing.T) {
	a, err := newApp(memoryConfig(), "")
	require.NoError(t, err)

	_, cmd := send(t, a, tea.KeyMsg{Type: tea.KeyCtrlQ})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
