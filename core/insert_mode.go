package core

// insertMode types text. In replace mode typed characters overwrite the
// characters under the caret instead of pushing them right.
type insertMode struct {
	name      Mode
	overwrite bool
}

func newInsertMode(name Mode) insertMode {
	return insertMode{name: name, overwrite: name == ReplaceMode}
}

func (m insertMode) Name() Mode {
	return m.name
}

func (m insertMode) Enter(e *editor) {
	if m.overwrite {
		e.setStatus(ReplaceBanner)
	} else {
		e.setStatus(InsertBanner)
	}
}

func (m insertMode) HandleKey(e *editor, key KeyEvent) {
	if e.insertKey(key, m.overwrite) {
		e.repeat.pushInsertKey(key)
		return
	}

	// Moving around ends the replayable part of the insertion.
	if motion, ok := directionalMotion(key); ok {
		e.surface.Move(motion)
		e.repeat.resetInsertKeys()
	}
}

// insertKey applies a text producing key and reports whether key was one.
func (e *editor) insertKey(key KeyEvent, overwrite bool) bool {
	s := e.surface
	if key.hasCommandModifier() {
		return false
	}

	switch key.Key {
	case KeyEnter:
		s.Apply(OpNewline)
		return true
	case KeyBackspace:
		if overwrite {
			s.Move(MotionLeft)
		} else {
			s.Apply(OpBackspace)
		}
		return true
	case KeyTab:
		s.Apply(OpTab)
		return true
	case KeyDelete:
		s.Apply(OpDeleteForward)
		return true
	case KeySpace:
		e.typeRune(' ', overwrite)
		return true
	case KeyUnknown:
		if key.Rune == 0 {
			return false
		}
		e.typeRune(key.Rune, overwrite)
		return true
	}
	return false
}

func (e *editor) typeRune(r rune, overwrite bool) {
	s := e.surface
	pos := s.Position()
	if overwrite && pos.Col < s.LineLength(pos.Row) {
		off := s.Offset()
		s.Replace(off, 1, string(r))
		s.SetOffset(off + 1)
		return
	}
	s.InsertAtCaret(string(r))
}
