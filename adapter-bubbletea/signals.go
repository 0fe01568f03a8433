package adapter

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ionut-t/govi/core"
	"github.com/ionut-t/govi/internal/log"
)

// ModeMsg is sent to the host when the interpreter changes mode.
type ModeMsg struct {
	Mode core.Mode
}

type YankMsg struct {
	Content  string
	Linewise bool
}

type DeleteMsg struct {
	Content  string
	Linewise bool
}

type PasteMsg struct {
	Content string
}

// MacroMsg reports the start (Recording true) or end of a macro recording.
type MacroMsg struct {
	Name      rune
	Recording bool
}

type ErrorMsg struct {
	ID    core.ErrorId
	Error error
}

// signalMsg carries one raw interpreter signal into Update.
type signalMsg struct {
	signal core.Signal
}

// listenForEditorUpdate waits for the next interpreter signal. Update starts
// a new listener each time one is delivered, so exactly one is pending.
func (m *Model) listenForEditorUpdate() tea.Cmd {
	ch := m.editor.GetUpdateSignalChan()
	return func() tea.Msg {
		return signalMsg{<-ch}
	}
}

// handleSignal updates the model for a signal and forwards it to the host as
// an exported message.
func (m *Model) handleSignal(signal core.Signal) tea.Cmd {
	var out tea.Msg

	switch signal := signal.(type) {
	case core.ModeSignal:
		out = ModeMsg{signal.Value()}

	case core.MessageSignal:
		// The interpreter has a new status, it replaces any host message.
		if _, text := signal.Value(); text != "" {
			m.message = ""
			m.err = nil
		}
		return nil

	case core.ErrorSignal:
		id, err := signal.Value()
		log.ErrorErr(log.CatUI, "editor error", err, "id", id)
		return tea.Batch(
			m.DispatchError(err, messageDuration),
			emit(ErrorMsg{ID: id, Error: err}),
		)

	case core.YankSignal:
		text, linewise := signal.Value()
		out = YankMsg{Content: text, Linewise: linewise}

	case core.DeleteSignal:
		text, linewise := signal.Value()
		out = DeleteMsg{Content: text, Linewise: linewise}

	case core.PasteSignal:
		out = PasteMsg{signal.Value()}

	case core.MacroSignal:
		name, recording := signal.Value()
		out = MacroMsg{Name: name, Recording: recording}

	default:
		log.Warn(log.CatUI, "unhandled signal", "type", signal)
		return nil
	}

	return emit(out)
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
