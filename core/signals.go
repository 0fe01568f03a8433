package core

type Signal any

type ModeSignal struct {
	mode Mode
}

func (m ModeSignal) Value() Mode {
	return m.mode
}

type YankSignal struct {
	text     string
	linewise bool
}

func (y YankSignal) Value() (text string, linewise bool) {
	return y.text, y.linewise
}

type DeleteSignal struct {
	text     string
	linewise bool
}

func (d DeleteSignal) Value() (text string, linewise bool) {
	return d.text, d.linewise
}

type PasteSignal struct {
	text string
}

func (p PasteSignal) Value() string {
	return p.text
}

type MessageSignal struct {
	id    string
	value string
}

func (m MessageSignal) Value() (id, message string) {
	return m.id, m.value
}

type MacroSignal struct {
	name      rune
	recording bool
}

func (m MacroSignal) Value() (name rune, recording bool) {
	return m.name, m.recording
}

type ErrorSignal Error

func (e ErrorSignal) Value() (id ErrorId, err error) {
	return e.id, e.err
}

func (e *editor) DispatchSignal(signal Signal) {
	select {
	case e.updateSignal <- signal:
	default: // Ignore if the channel is full
	}
}

func (e *editor) GetUpdateSignalChan() <-chan Signal {
	return e.updateSignal
}
