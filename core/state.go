package core

import (
	"fmt"

	"github.com/ionut-t/govi/internal/log"
)

// MotionModifier is set by 'i' or 'a' while an operator waits for its target.
type MotionModifier int

const (
	ModifierNone MotionModifier = iota
	ModifierInner
	ModifierOuter
)

func (m MotionModifier) String() string {
	switch m {
	case ModifierInner:
		return "inner"
	case ModifierOuter:
		return "outer"
	default:
		return "none"
	}
}

// State is the transient state record of the interpreter.
type State struct {
	Mode         Mode           // Current editing mode
	StatusLine   string         // Status text without the recording indicator
	CommandLine  string         // Pending ex text including its ':', '/' or '?'
	PendingCount string         // Digits typed so far
	Modifier     MotionModifier // Pending text object modifier
	Recording    rune           // Name of the macro being recorded, 0 when idle
}

// InitialState creates a default state
func InitialState() State {
	return State{
		Mode: NormalMode,
	}
}

// Concrete implementation of Editor
type editor struct {
	surface   Surface
	clipboard Clipboard
	config    Config

	state   State
	modes   map[Mode]editorMode
	current editorMode

	count    count
	command  []rune
	anchor   int    // Fixed end of the span or visual selection, -1 when none
	origin   int    // Caret offset when the current span started
	linewise bool   // The current span covers whole lines
	lineSpan [2]int // First and last row of a linewise span
	confirm  func(yes bool) string

	insertGroup UndoGroup // Open while an insert or replace session runs

	register Register
	marks    *MarkStore
	macros   *MacroStore
	repeat   *repeatEngine
	search   searchState
	subst    substitution

	macroDepth   int
	macroAborted bool
	updateSignal chan Signal
}

func (e *editor) HandleKey(key KeyEvent) {
	log.Debug(log.CatKeys, "key", "mode", e.state.Mode, "key", key)

	fromPlayback := e.macroDepth > 0

	if key.Key == KeyEscape && !key.hasCommandModifier() {
		if e.macros.IsRecording() && !fromPlayback {
			e.macros.Record(key)
		}
		e.finishInsertSession()
		e.reset(EmptyMessage)
		return
	}

	if key.isCancel() {
		if name, ok := e.macros.Recording(); ok {
			e.macros.Abort()
			e.state.Recording = 0
			log.Debug(log.CatMacro, "recording aborted", "name", string(name))
			e.DispatchSignal(MacroSignal{name, false})
		}
		e.finishInsertSession()
		e.reset(EmptyMessage)
		return
	}

	if e.macros.IsRecording() && !fromPlayback && !(e.state.Mode == NormalMode && key.is('q')) {
		e.macros.Record(key)
	}

	if e.state.Mode.AcceptsCount() && key.isDigit() {
		e.count.Push(key.Rune)
		e.state.PendingCount = e.count.String()
		return
	}

	e.current.HandleKey(e, key)

	if e.state.Mode == NormalMode {
		e.clampCaret()
	}
}

func (e *editor) setMode(name Mode) {
	next, ok := e.modes[name]
	if !ok {
		log.ErrorErr(log.CatMode, "mode change", fmt.Errorf("%w: %s", ErrInvalidMode, name))
		e.DispatchError(ErrInvalidModeId, fmt.Errorf("%w: %s", ErrInvalidMode, name))
		name, next = UnknownMode, e.modes[UnknownMode]
	}

	prev := e.state.Mode
	e.current = next
	e.state.Mode = name
	e.current.Enter(e)

	if prev != name {
		log.Debug(log.CatMode, "mode change", "from", prev, "to", name)
		e.DispatchSignal(ModeSignal{name})
	}
}

// reset returns to Normal mode and clears every transient field.
func (e *editor) reset(status string) {
	e.count.Reset()
	e.state.PendingCount = ""
	e.state.Modifier = ModifierNone
	e.state.CommandLine = ""
	e.command = nil
	e.anchor = -1
	e.linewise = false
	e.confirm = nil
	e.closeInsertGroup()
	e.repeat.discard()
	e.surface.ClearSelection()

	e.setMode(NormalMode)
	e.clampCaret()
	e.setStatus(status)
}

func (e *editor) Reset() {
	e.finishInsertSession()
	e.reset(EmptyMessage)
}

func (e *editor) setStatus(status string) {
	if e.state.StatusLine == status {
		return
	}
	e.state.StatusLine = status
	e.DispatchMessage(status)
}

// clampCaret keeps the Normal mode caret on a character: it never rests after
// the end of a non-empty line.
func (e *editor) clampCaret() {
	pos := e.surface.Position()
	length := e.surface.LineLength(pos.Row)
	if length > 0 && pos.Col >= length {
		e.surface.SetPosition(Position{Row: pos.Row, Col: length - 1})
	}
}

func (e *editor) setContextMark() {
	e.marks.Set(e.config.ContextMark, e.surface.Position())
}

func (e *editor) Mode() Mode {
	return e.state.Mode
}

func (e *editor) GetState() State {
	return e.state
}

func (e *editor) StatusText() string {
	if name, ok := e.macros.Recording(); ok {
		return e.state.StatusLine + fmt.Sprintf(RecordingSuffix, name)
	}
	return e.state.StatusLine
}

func (e *editor) WantsRawInput() bool {
	return e.state.Mode.WantsRawInput()
}

func (e *editor) Mark(name rune) (Position, bool) {
	return e.marks.Get(name)
}

func (e *editor) Macro(name rune) ([]KeyEvent, bool) {
	return e.macros.Get(name)
}

func (e *editor) Recording() (rune, bool) {
	return e.macros.Recording()
}

func (e *editor) Register() Register {
	return e.register
}

// unknownMode is where an unregistered mode name lands. Any key leaves it.
type unknownMode struct{}

func (unknownMode) Name() Mode { return UnknownMode }

func (unknownMode) Enter(e *editor) {
	e.setStatus(UnknownCommandMessage)
}

func (unknownMode) HandleKey(e *editor, _ KeyEvent) {
	e.reset(UnknownCommandMessage)
}
