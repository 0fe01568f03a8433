package core

// visualMode extends a selection with motions and applies operators to it.
// The charwise selection includes the character under the caret; the
// linewise one covers every line between the anchor and the caret.
type visualMode struct {
	name     Mode
	linewise bool
}

func newVisualMode(name Mode) visualMode {
	return visualMode{name: name, linewise: name == VisualLineMode}
}

func (m visualMode) Name() Mode {
	return m.name
}

func (m visualMode) Enter(e *editor) {
	if m.linewise {
		e.setStatus(VisualLineBanner)
	} else {
		e.setStatus(VisualBanner)
	}
	e.updateVisualSelection()
}

func (e *editor) enterVisual(mode Mode) {
	e.count.Reset()
	e.anchor = e.surface.Offset()
	e.origin = e.anchor
	e.setMode(mode)
}

func (e *editor) updateVisualSelection() {
	s := e.surface
	if e.anchor < 0 {
		e.anchor = s.Offset()
	}
	caret := s.Offset()

	if e.state.Mode == VisualLineMode {
		a, c := s.PositionAt(e.anchor).Row, s.PositionAt(caret).Row
		e.selectRows(min(a, c), max(a, c))
		return
	}

	e.linewise = false
	s.Select(min(e.anchor, caret), min(max(e.anchor, caret)+1, s.TextLength()))
}

func (m visualMode) HandleKey(e *editor, key KeyEvent) {
	if e.state.Modifier != ModifierNone {
		m.selectObject(e, key)
		return
	}

	if key.isChar() {
		switch key.Rune {
		case 'i', 'a':
			e.state.Modifier = ModifierOuter
			if key.Rune == 'i' {
				e.state.Modifier = ModifierInner
			}
			return
		case 'v', 'V':
			target := VisualMode
			if key.Rune == 'V' {
				target = VisualLineMode
			}
			if target == m.name {
				e.reset(EmptyMessage)
			} else {
				e.setMode(target)
			}
			return
		case 'o':
			caret := e.surface.Offset()
			e.surface.SetOffset(e.anchor)
			e.anchor = caret
			e.updateVisualSelection()
			return
		case ':':
			e.enterCommand(':')
			return
		}

		if m.operate(e, key.Rune) {
			return
		}
	}

	if motion, ok := resolveMotion(key); ok {
		e.moveBy(motion, 1)
		e.updateVisualSelection()
	}
}

func (m visualMode) selectObject(e *editor, key KeyEvent) {
	inner := e.state.Modifier == ModifierInner
	e.state.Modifier = ModifierNone
	obj, ok := textObjectFor(key)
	if !ok || !e.surface.SelectObject(obj, inner) {
		e.updateVisualSelection()
		return
	}
	start, end, _ := e.surface.Selection()
	e.anchor = start
	e.surface.SetOffset(max(end-1, start))
	e.updateVisualSelection()
}

// operate applies r to the selection and reports whether r was an operator.
func (m visualMode) operate(e *editor, r rune) bool {
	switch r {
	case 'd', 'x':
		e.visualChange(DeletedSelectionMessage, cutAction)
	case 'y':
		e.captureExtent()
		e.run(visualCopyAction)
		e.reset(YankedSelectionMessage)
	case 'c', 's':
		e.visualInsert(changeCutAction)
	case 'S':
		e.linewiseSelection()
		e.visualInsert(changeCutAction)
	case '>':
		e.visualChange(EmptyMessage, applyToSpan(OpIndent))
	case '<':
		e.visualChange(EmptyMessage, applyToSpan(OpUnindent))
	case '=':
		e.visualChange(EmptyMessage, applyToSpan(OpFormat))
	case 'J':
		e.visualChange(EmptyMessage, applyAction(OpJoin))
	case '~':
		e.visualChange(EmptyMessage, applyAction(OpToggleCase))
	case 'p', 'P':
		e.visualChange(EmptyMessage, pasteAction(r == 'p', 1))
	default:
		return false
	}
	return true
}

// visualChange runs verb on the selection. The recorded change starts with a
// step that rebuilds a selection of the same shape at the caret.
func (e *editor) visualChange(status string, verb Action) {
	e.captureExtent()
	e.repeat.begin()
	e.repeat.record(e.extentAction())
	e.run(verb)
	e.repeat.commit()
	e.reset(status)
}

func (e *editor) visualInsert(verb Action) {
	e.captureExtent()
	e.insertGroup = e.surface.OpenUndoGroup()
	e.repeat.begin()
	e.repeat.record(e.extentAction())
	e.run(verb)
	e.repeat.resetInsertKeys()
	e.setMode(InsertMode)
}

// linewiseSelection widens the selection to whole lines.
func (e *editor) linewiseSelection() {
	start, end, ok := e.surface.Selection()
	if !ok {
		return
	}
	first, last := e.lineRows(start, end)
	e.selectRows(first, last)
}

var visualCopyAction = Action{
	Name: "visual.copy",
	Do: func(e *editor) {
		start, end, ok := e.surface.Selection()
		if !ok {
			return
		}
		linewise := e.linewise
		first, _ := e.lineRows(start, end)
		e.copy()
		if linewise {
			e.surface.SetPosition(Position{Row: first})
			e.surface.Move(MotionFirstNonBlank)
		} else {
			e.surface.SetOffset(start)
		}
	},
}
