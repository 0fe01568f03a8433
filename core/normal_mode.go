package core

type normalMode struct{}

func (normalMode) Name() Mode {
	return NormalMode
}

func (normalMode) Enter(e *editor) {
	e.setStatus(EmptyMessage)
}

func (m normalMode) HandleKey(e *editor, key KeyEvent) {
	n := e.count.Value()

	if key.isCtrl('r') {
		e.count.Reset()
		e.history(OpRedo, n)
		return
	}

	if key.isChar() && m.command(e, key.Rune, n) {
		e.state.PendingCount = e.count.String()
		return
	}

	e.count.Reset()
	e.state.PendingCount = ""

	if motion, ok := resolveMotion(key); ok {
		e.moveBy(motion, n)
	}
}

// command handles the keys that are not plain motions and reports whether the
// key was one of them.
func (normalMode) command(e *editor, r rune, n int) bool {
	// Pending operators and await modes read the count when they complete.
	switch r {
	case 'd':
		e.enterOperator(DeleteMode)
		return true
	case 'y':
		e.enterOperator(YankMode)
		return true
	case 'c':
		e.enterOperator(ChangeMode)
		return true
	case '>':
		e.enterOperator(IndentMode)
		return true
	case '<':
		e.enterOperator(UnindentMode)
		return true
	case 'g':
		e.setMode(AwaitGMode)
		return true
	case '@':
		e.setMode(AwaitMacroPlaybackMode)
		return true
	}

	switch r {
	case 'i':
		e.beginInsert(false)
	case 'a':
		e.beginInsert(false, moveAction(MotionRight))
	case 'A':
		e.beginInsert(false, moveAction(MotionLineEnd))
	case 'I':
		e.beginInsert(false, moveAction(MotionFirstNonBlank))
	case 'o':
		e.beginInsert(false, applyAction(OpNewLineBelow))
	case 'O':
		e.beginInsert(false, applyAction(OpNewLineAbove))
	case 's':
		e.beginInsert(false, append(spanActions(MotionRight, n), cutAction)...)
	case 'S':
		e.beginInsert(false, selectLines(n, false), changeCutAction)
	case 'C':
		e.beginInsert(false, append(spanActions(MotionLineEnd, 1), cutAction)...)
	case 'R':
		e.beginInsert(true)
	case 'v':
		e.enterVisual(VisualMode)
	case 'V':
		e.enterVisual(VisualLineMode)
	case 'z':
		e.setMode(AwaitFoldMode)
	case 'm':
		e.setMode(AwaitMarkMode)
	case '`', '\'':
		e.setMode(AwaitGoToMarkMode)
	case 'r':
		e.setMode(AwaitWriteCharMode)
	case 'q':
		if e.macros.IsRecording() {
			e.stopRecording()
		} else {
			e.setMode(AwaitMacroNameMode)
		}
	case ':', '/', '?':
		e.enterCommand(r)
	case 'x':
		e.deleteChars(MotionRight, n)
	case 'X':
		e.deleteChars(MotionLeft, n)
	case 'D':
		e.change(append(spanActions(MotionLineEnd, 1), cutAction)...)
	case 'Y':
		e.run(selectLines(n, false), copyAction)
	case '~':
		e.change(repeatAction(applyAction(OpToggleCase), n)...)
	case 'J':
		e.change(repeatAction(applyAction(OpJoin), n)...)
	case 'p':
		e.change(pasteAction(true, n))
	case 'P':
		e.change(pasteAction(false, n))
	case '.':
		e.repeatLastChange(n)
	case 'u':
		e.history(OpUndo, n)
	case 'n':
		e.setStatus(e.searchAgain(false, n))
	case 'N':
		e.setStatus(e.searchAgain(true, n))
	case '*':
		e.setStatus(e.searchWord(false))
	case '#':
		e.setStatus(e.searchWord(true))
	case 'G':
		if e.count.IsSet() {
			e.goToLine(n)
		} else {
			e.setContextMark()
			e.surface.Move(MotionDocumentEnd)
			e.surface.Move(MotionFirstNonBlank)
		}
	default:
		return false
	}

	e.count.Reset()
	return true
}

// deleteChars is x and X: n characters in one direction, never across the
// line break.
func (e *editor) deleteChars(m Motion, n int) {
	pos := e.surface.Position()
	length := e.surface.LineLength(pos.Row)
	if length == 0 || (m == MotionLeft && pos.Col == 0) {
		return
	}
	e.change(append(spanActions(m, n), cutAction)...)
}

// history runs undo or redo outside any undo group.
func (e *editor) history(op Operation, n int) {
	for range n {
		e.surface.Apply(op)
	}
}

func (e *editor) enterOperator(mode Mode) {
	e.count.Freeze()
	e.setMode(mode)
}
