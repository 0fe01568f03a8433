package core

import (
	"fmt"

	"github.com/ionut-t/govi/internal/log"
)

// awaitMode waits for the single key that completes a two-key command.
type awaitMode struct {
	name   Mode
	prompt string
	handle func(e *editor, key KeyEvent)
}

func (m awaitMode) Name() Mode {
	return m.name
}

func (m awaitMode) Enter(e *editor) {
	e.setStatus(m.prompt)
}

func (m awaitMode) HandleKey(e *editor, key KeyEvent) {
	m.handle(e, key)
}

func awaitGMode() awaitMode {
	return awaitMode{name: AwaitGMode, prompt: "g", handle: func(e *editor, key KeyEvent) {
		if !key.is('g') {
			e.reset(UnknownCommandMessage)
			return
		}
		if e.count.IsSet() {
			e.goToLine(e.count.Value())
		} else {
			e.setContextMark()
			e.surface.Move(MotionDocumentStart)
		}
		e.reset(EmptyMessage)
	}}
}

var foldOperations = map[rune]Operation{
	'a': OpToggleFold,
	'A': OpToggleFoldRecursive,
	'o': OpOpenFold,
	'O': OpOpenFoldRecursive,
	'c': OpCloseFold,
	'C': OpCloseFoldRecursive,
	'R': OpOpenAllFolds,
	'M': OpCloseAllFolds,
}

func awaitFoldMode() awaitMode {
	return awaitMode{name: AwaitFoldMode, prompt: "z", handle: func(e *editor, key KeyEvent) {
		op, ok := foldOperations[key.Rune]
		if !ok || !key.isChar() {
			e.reset(UnknownCommandMessage)
			return
		}
		e.surface.Apply(op)
		e.reset(EmptyMessage)
	}}
}

func awaitMarkMode() awaitMode {
	return awaitMode{name: AwaitMarkMode, prompt: "m", handle: func(e *editor, key KeyEvent) {
		if !key.isChar() || !e.isMarkName(key.Rune) {
			e.reset(InvalidMarkMessage)
			return
		}
		e.marks.Set(key.Rune, e.surface.Position())
		e.reset(EmptyMessage)
	}}
}

func awaitGoToMarkMode() awaitMode {
	return awaitMode{name: AwaitGoToMarkMode, prompt: "`", handle: func(e *editor, key KeyEvent) {
		if !key.isChar() || !e.isMarkName(key.Rune) {
			e.reset(InvalidMarkMessage)
			return
		}
		e.reset(e.jumpToMark(key.Rune))
	}}
}

func awaitMacroNameMode() awaitMode {
	return awaitMode{name: AwaitMacroNameMode, prompt: "q", handle: func(e *editor, key KeyEvent) {
		if !key.isChar() || !isMacroName(key.Rune) {
			e.reset(InvalidMacroNameMessage)
			return
		}
		e.reset(EmptyMessage)
		e.startRecording(key.Rune)
	}}
}

func awaitMacroPlaybackMode() awaitMode {
	return awaitMode{name: AwaitMacroPlaybackMode, prompt: "@", handle: func(e *editor, key KeyEvent) {
		if !key.isChar() {
			e.reset(InvalidMacroNameMessage)
			return
		}
		name := key.Rune
		if name == '@' {
			name = e.macros.LastPlayed()
		}
		if !isMacroName(name) {
			e.reset(fmt.Sprintf("%s '%c'", InvalidMacroNameMessage, name))
			return
		}
		n := e.count.Value()
		e.reset(EmptyMessage)
		e.playMacro(name, n)
	}}
}

func awaitWriteCharMode() awaitMode {
	return awaitMode{name: AwaitWriteCharMode, prompt: "r", handle: func(e *editor, key KeyEvent) {
		r := key.Rune
		if key.Key == KeySpace {
			r = ' '
		}
		if r == 0 || key.hasCommandModifier() {
			e.reset(NotACharacterMessage)
			return
		}
		pos := e.surface.Position()
		if pos.Col < e.surface.LineLength(pos.Row) {
			e.change(writeCharAction(r))
		} else {
			log.Debug(log.CatMode, "nothing to replace", "row", pos.Row)
		}
		e.reset(EmptyMessage)
	}}
}

func writeCharAction(r rune) Action {
	return Action{
		Name: "write.char:" + string(r),
		Do: func(e *editor) {
			pos := e.surface.Position()
			if pos.Col >= e.surface.LineLength(pos.Row) {
				return
			}
			off := e.surface.Offset()
			e.surface.Select(off, off+1)
			e.surface.Replace(off, 1, string(r))
			e.surface.ClearSelection()
			e.surface.SetOffset(off)
		},
	}
}
