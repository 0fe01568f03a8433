// Package adapter hosts the govi interpreter in a Bubble Tea program. The
// model owns a buffer, feeds it keystrokes through the interpreter and draws
// the visible rows with a status line and a command line underneath.
package adapter

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ionut-t/govi/adapter-bubbletea/highlighter"
	"github.com/ionut-t/govi/buffer"
	"github.com/ionut-t/govi/core"
	"github.com/ionut-t/govi/internal/log"
)

const messageDuration = 3 * time.Second

type Model struct {
	editor      core.Editor
	buffer      *buffer.Buffer
	viewport    viewport.Model
	highlighter *highlighter.Highlighter
	theme       Theme

	width  int
	height int
	top    int // first buffer row on screen
	left   int // first display column on screen

	fileName        string
	showLineNumbers bool
	relativeNumbers bool
	showStatusLine  bool
	isFocused       bool

	message string
	err     error
	clearID int
}

type Option func(*Model)

func WithTheme(theme Theme) Option {
	return func(m *Model) {
		m.theme = theme
	}
}

// WithHighlighter enables syntax highlighting. Without it text is drawn
// unstyled.
func WithHighlighter(h *highlighter.Highlighter) Option {
	return func(m *Model) {
		m.highlighter = h
	}
}

func WithLineNumbers(show bool) Option {
	return func(m *Model) {
		m.showLineNumbers = show
	}
}

// WithRelativeNumbers numbers lines by their distance from the caret line.
// It has no effect while line numbers are hidden.
func WithRelativeNumbers(relative bool) Option {
	return func(m *Model) {
		m.relativeNumbers = relative
	}
}

// WithStatusLine controls the status and command lines under the text.
func WithStatusLine(show bool) Option {
	return func(m *Model) {
		m.showStatusLine = show
	}
}

// WithFileName sets the name shown in the status line.
func WithFileName(name string) Option {
	return func(m *Model) {
		m.fileName = name
	}
}

// New creates a focused editor over buf. The default register is mirrored to
// clip.
func New(buf *buffer.Buffer, clip core.Clipboard, config core.Config, opts ...Option) Model {
	m := Model{
		editor:          core.NewWithConfig(buf, clip, config),
		buffer:          buf,
		viewport:        viewport.New(80, 22),
		theme:           DefaultTheme,
		showLineNumbers: true,
		showStatusLine:  true,
		isFocused:       true,
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.SetSize(80, 24)
	return m
}

// SetSize resizes the editor, status and command lines included.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 1)
	m.height = max(height, 1)

	m.viewport.Width = m.width
	m.viewport.Height = m.height
	if m.showStatusLine {
		m.viewport.Height = max(m.height-2, 1)
	}

	log.Debug(log.CatUI, "resize", "width", m.width, "height", m.height)

	m.scrollToCaret()
	m.render()
}

func (m *Model) Editor() core.Editor {
	return m.editor
}

func (m *Model) Buffer() *buffer.Buffer {
	return m.buffer
}

// Content returns the current text of the buffer.
func (m *Model) Content() string {
	return m.buffer.String()
}

// HasChanges reports whether the buffer differs from the last saved text.
func (m *Model) HasChanges() bool {
	return m.buffer.IsModified()
}

// MarkSaved records the current text as saved.
func (m *Model) MarkSaved() {
	m.buffer.MarkSaved()
}

func (m *Model) SetFileName(name string) {
	m.fileName = name
}

func (m *Model) Focus() {
	m.isFocused = true
}

func (m *Model) Blur() {
	m.isFocused = false
}

func (m *Model) IsFocused() bool {
	return m.isFocused
}

// Mode is the mode of the interpreter.
func (m *Model) Mode() core.Mode {
	return m.editor.Mode()
}

type clearMsg struct {
	id int
}

// DispatchMessage shows text in the command line for duration.
func (m *Model) DispatchMessage(text string, duration time.Duration) tea.Cmd {
	m.message = text
	m.err = nil
	return m.dispatchClearMsg(duration)
}

// DispatchError shows err in the command line for duration.
func (m *Model) DispatchError(err error, duration time.Duration) tea.Cmd {
	m.message = ""
	m.err = err
	return m.dispatchClearMsg(duration)
}

// dispatchClearMsg schedules the removal of the current message. A newer
// message cancels older clears.
func (m *Model) dispatchClearMsg(duration time.Duration) tea.Cmd {
	m.clearID++
	id := m.clearID
	return tea.Tick(duration, func(time.Time) tea.Msg {
		return clearMsg{id}
	})
}

func (m Model) Init() tea.Cmd {
	return m.listenForEditorUpdate()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if !m.isFocused {
			break
		}
		for _, key := range convertBubbleKey(msg) {
			m.editor.HandleKey(key)
		}
		m.scrollToCaret()

	case signalMsg:
		cmds = append(cmds, m.handleSignal(msg.signal), m.listenForEditorUpdate())

	case clearMsg:
		if msg.id == m.clearID {
			m.message = ""
			m.err = nil
		}
	}

	m.render()
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	content := m.viewport.View()
	if !m.showStatusLine {
		return content
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		m.statusLine(),
		m.commandLine(),
	)
}
