package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	adapter "github.com/ionut-t/govi/adapter-bubbletea"
	"github.com/ionut-t/govi/adapter-bubbletea/highlighter"
	"github.com/ionut-t/govi/buffer"
	"github.com/ionut-t/govi/clipboard"
	"github.com/ionut-t/govi/internal/config"
	"github.com/ionut-t/govi/internal/log"
)

const messageDuration = 3 * time.Second

var (
	errNoFileName = errors.New("no file name")
	errUnsaved    = errors.New("unsaved changes, press Ctrl+Q again to quit")
)

// app wraps the editor with the file it edits.
type app struct {
	editor      adapter.Model
	path        string
	confirmQuit bool
}

// newApp opens path in a new editor. A missing file starts an empty buffer
// that is created on the first write.
func newApp(cfg config.Config, path string) (app, error) {
	var content string
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			content = string(data)
		case errors.Is(err, fs.ErrNotExist):
			log.Info(log.CatUI, "new file", "path", path)
		default:
			return app{}, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	buf := buffer.NewFromString(content,
		buffer.WithShiftWidth(cfg.Editor.ShiftWidth),
		buffer.WithExpandTab(cfg.Editor.ExpandTab),
	)
	clip := clipboard.New(cfg.Clipboard.Provider == config.ClipboardSystem)

	editor := adapter.New(buf, clip, cfg.CoreConfig(),
		adapter.WithFileName(path),
		adapter.WithLineNumbers(cfg.UI.LineNumbers),
		adapter.WithRelativeNumbers(cfg.UI.RelativeNumbers),
		adapter.WithHighlighter(highlighter.New(cfg.UI.Language, path, cfg.UI.Theme)),
	)

	return app{editor: editor, path: path}, nil
}

func (a app) Init() tea.Cmd {
	return a.editor.Init()
}

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+s":
			a.confirmQuit = false
			cmd := a.save()
			return a, cmd

		case "ctrl+q":
			if a.editor.HasChanges() && !a.confirmQuit {
				a.confirmQuit = true
				cmd := a.editor.DispatchError(errUnsaved, messageDuration)
				return a, cmd
			}
			return a, tea.Quit
		}
		a.confirmQuit = false
	}

	next, cmd := a.editor.Update(msg)
	a.editor = next.(adapter.Model)
	return a, cmd
}

func (a app) View() string {
	return a.editor.View()
}

func (a *app) save() tea.Cmd {
	if a.path == "" {
		return a.editor.DispatchError(errNoFileName, messageDuration)
	}

	content := a.editor.Content()
	if err := os.WriteFile(a.path, []byte(content), 0o644); err != nil {
		log.ErrorErr(log.CatUI, "write failed", err, "path", a.path)
		return a.editor.DispatchError(fmt.Errorf("writing %s: %w", a.path, err), messageDuration)
	}

	a.editor.MarkSaved()
	log.Info(log.CatUI, "saved", "path", a.path)

	lines := a.editor.Buffer().LineCount()
	return a.editor.DispatchMessage(fmt.Sprintf("%q %dL, %dB written", a.path, lines, len(content)), messageDuration)
}
