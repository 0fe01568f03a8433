package core

import "github.com/ionut-t/govi/internal/log"

// operatorMode waits for the target of d, y, c, > or <.
type operatorMode struct {
	name Mode
	key  rune
}

func newOperatorMode(name Mode, key rune) operatorMode {
	return operatorMode{name: name, key: key}
}

func (m operatorMode) Name() Mode {
	return m.name
}

func (m operatorMode) Enter(e *editor) {
	e.setStatus(string(m.key))
}

func (m operatorMode) HandleKey(e *editor, key KeyEvent) {
	n := e.count.Value()

	if e.state.Modifier == ModifierNone && (key.is('i') || key.is('a')) {
		e.state.Modifier = ModifierOuter
		if key.Rune == 'i' {
			e.state.Modifier = ModifierInner
		}
		e.setStatus(string(m.key) + string(key.Rune))
		return
	}

	actions, ok := m.target(e, key, n)
	if !ok {
		log.Debug(log.CatMode, "unrecognised motion", "mode", m.name, "key", key)
		e.reset(UnrecognisedMotionMessage)
		return
	}

	switch m.name {
	case DeleteMode:
		e.change(append(actions, cutAction)...)
		e.reset(DeletedMessage)
	case YankMode:
		e.run(append(actions, copyAction)...)
		e.reset(YankedMessage)
	case ChangeMode:
		e.count.Reset()
		e.state.Modifier = ModifierNone
		e.beginInsert(false, append(actions, changeCutAction)...)
	case IndentMode:
		e.change(append(actions, applyToSpan(OpIndent))...)
		e.reset(EmptyMessage)
	case UnindentMode:
		e.change(append(actions, applyToSpan(OpUnindent))...)
		e.reset(EmptyMessage)
	}
}

// target resolves the key into the actions that select the operator's span.
func (m operatorMode) target(e *editor, key KeyEvent, n int) ([]Action, bool) {
	if e.state.Modifier != ModifierNone {
		obj, ok := textObjectFor(key)
		if !ok {
			return nil, false
		}
		return []Action{selectObject(obj, e.state.Modifier == ModifierInner)}, true
	}

	switch {
	case key.is(m.key):
		return []Action{selectLines(n, false)}, true
	case key.is('j') || (key.Key == KeyDown && !key.hasCommandModifier()):
		return []Action{selectLines(n+1, false)}, true
	case key.is('k') || (key.Key == KeyUp && !key.hasCommandModifier()):
		return []Action{selectLines(n+1, true)}, true
	}

	motion, ok := resolveMotion(key)
	if !ok {
		return nil, false
	}

	// cw changes to the end of the word, like ce.
	if m.name == ChangeMode {
		pos := e.surface.Position()
		if pos.Col < e.surface.LineLength(pos.Row) && !isBlank(e.surface.Text(e.surface.Offset(), e.surface.Offset()+1)) {
			switch motion {
			case MotionWordForward:
				motion = MotionWordEnd
			case MotionBigWordForward:
				motion = MotionBigWordEnd
			}
		}
	}

	return spanActions(motion, n), true
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' {
			return false
		}
	}
	return true
}
