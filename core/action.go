package core

import "fmt"

// Action is one replayable step of a command. Dot repeat replays the actions
// of the last change in order, so every Do must read the surface afresh
// instead of capturing offsets from the time it was built.
type Action struct {
	Name string
	Do   func(e *editor)
}

// run executes actions as one undo step and adds them to the open change.
func (e *editor) run(actions ...Action) {
	g := e.surface.OpenUndoGroup()
	defer g.Close()

	for _, a := range actions {
		a.Do(e)
		e.repeat.record(a)
	}
}

// change runs a complete mutating command and makes it the last change.
func (e *editor) change(actions ...Action) {
	e.repeat.begin()
	e.run(actions...)
	e.repeat.commit()
}

func moveAction(m Motion) Action {
	return Action{
		Name: "move:" + m.String(),
		Do: func(e *editor) {
			e.surface.Move(m)
		},
	}
}

func applyAction(op Operation) Action {
	return Action{
		Name: "apply:" + op.String(),
		Do: func(e *editor) {
			e.surface.Apply(op)
		},
	}
}

func repeatAction(a Action, n int) []Action {
	actions := make([]Action, n)
	for i := range actions {
		actions[i] = a
	}
	return actions
}

// beginSpan anchors a charwise span at the caret.
var beginSpan = Action{
	Name: "span.begin",
	Do: func(e *editor) {
		off := e.surface.Offset()
		e.anchor = off
		e.origin = off
		e.linewise = false
		e.surface.Select(off, off)
	},
}

// extendSpan moves the caret by m and selects from the anchor to the caret.
// A word motion that crosses a line break stops at the end of the line when
// it is the last one of the span, the way "dw" on the last word behaves.
func extendSpan(m Motion, last bool) Action {
	return Action{
		Name: "span.extend:" + m.String(),
		Do: func(e *editor) {
			if e.anchor < 0 {
				beginSpan.Do(e)
			}
			row := e.surface.Position().Row
			e.surface.Move(m)
			if last && (m == MotionWordForward || m == MotionBigWordForward) {
				if pos := e.surface.Position(); pos.Row > row && e.anchor < e.surface.Offset() {
					e.surface.SetOffset(e.surface.LineOffset(row) + e.surface.LineLength(row))
				}
			}
			e.selectSpan(m.inclusive())
		},
	}
}

func (e *editor) selectSpan(inclusive bool) {
	caret := e.surface.Offset()
	start, end := min(e.anchor, caret), max(e.anchor, caret)
	if inclusive && caret >= e.anchor {
		end = min(end+1, e.surface.TextLength())
	}
	e.surface.Select(start, end)
}

func spanActions(m Motion, n int) []Action {
	actions := []Action{beginSpan}
	for i := range n {
		actions = append(actions, extendSpan(m, i == n-1))
	}
	return actions
}

// selectLines selects n whole lines from the caret line, downward or upward.
func selectLines(n int, up bool) Action {
	name := fmt.Sprintf("lines.select:%d", n)
	if up {
		name = fmt.Sprintf("lines.select.up:%d", n)
	}
	return Action{
		Name: name,
		Do: func(e *editor) {
			row := e.surface.Position().Row
			first, last := row, min(row+n-1, e.surface.LineCount()-1)
			if up {
				first, last = max(row-n+1, 0), row
			}
			e.origin = e.surface.Offset()
			e.selectLineRange(first, last)
		},
	}
}

func (e *editor) selectLineRange(first, last int) {
	e.anchor = e.surface.LineOffset(first)
	e.selectRows(first, last)
}

// selectRows selects rows first..last as a linewise span. The rows are kept
// alongside the selection because an empty last line selects no characters.
func (e *editor) selectRows(first, last int) {
	e.linewise = true
	e.lineSpan = [2]int{first, last}
	e.surface.Select(e.surface.LineOffset(first), e.lineEndWithBreak(last))
}

// lineEndWithBreak is the offset just past the newline ending row, or the end
// of the text for the last line.
func (e *editor) lineEndWithBreak(row int) int {
	if row+1 < e.surface.LineCount() {
		return e.surface.LineOffset(row + 1)
	}
	return e.surface.TextLength()
}

func selectObject(obj TextObject, inner bool) Action {
	kind := "outer"
	if inner {
		kind = "inner"
	}
	return Action{
		Name: "object.select:" + kind + ":" + obj.String(),
		Do: func(e *editor) {
			e.origin = e.surface.Offset()
			if !e.surface.SelectObject(obj, inner) {
				e.surface.ClearSelection()
				return
			}
			start, _, _ := e.surface.Selection()
			e.anchor = start
			e.linewise = false
		},
	}
}

// lineRows returns the rows covered by the selection.
func (e *editor) lineRows(start, end int) (first, last int) {
	if e.linewise {
		return e.lineSpan[0], e.lineSpan[1]
	}
	first = e.surface.PositionAt(start).Row
	last = first
	if end > start {
		last = e.surface.PositionAt(end - 1).Row
	}
	return first, last
}

// linesText returns rows first..last, always newline terminated. The last
// line of the document has no line break of its own, so one is added.
func (e *editor) linesText(first, last int) string {
	text := e.surface.Text(e.surface.LineOffset(first), e.lineEndWithBreak(last))
	if last+1 >= e.surface.LineCount() {
		text += "\n"
	}
	return text
}

var cutAction = Action{
	Name: "cut",
	Do: func(e *editor) {
		e.cut()
	},
}

var copyAction = Action{
	Name: "copy",
	Do: func(e *editor) {
		e.copy()
	},
}

// changeCutAction cuts like cutAction, and leaves an empty line behind when
// whole lines were removed.
var changeCutAction = Action{
	Name: "change.cut",
	Do: func(e *editor) {
		start, end, ok := e.surface.Selection()
		if !ok || !e.linewise {
			e.cut()
			return
		}
		first, _ := e.lineRows(start, end)
		e.cut()
		e.openLineAt(first)
	},
}

// cut removes the selection into the default register.
func (e *editor) cut() {
	start, end, ok := e.surface.Selection()
	defer e.endSpan()
	if !ok || (start == end && !e.linewise) {
		return
	}

	if e.linewise {
		first, last := e.lineRows(start, end)
		text := e.linesText(first, last)
		e.storeRegister(text, true)
		e.deleteLines(first, last)
		e.DispatchSignal(DeleteSignal{text, true})
		return
	}

	text := e.surface.Text(start, end)
	e.storeRegister(text, false)
	e.surface.Replace(start, end-start, "")
	e.surface.SetOffset(start)
	e.DispatchSignal(DeleteSignal{text, false})
}

// copy yanks the selection into the default register. The caret goes back to
// where the span started, or to its start when the span reached above or
// before the caret.
func (e *editor) copy() {
	start, end, ok := e.surface.Selection()
	defer e.endSpan()
	if !ok || (start == end && !e.linewise) {
		return
	}

	var text string
	if e.linewise {
		first, last := e.lineRows(start, end)
		text = e.linesText(first, last)
		if start < e.origin {
			col := e.surface.PositionAt(e.origin).Col
			e.surface.SetPosition(Position{Row: first, Col: col})
		} else {
			e.surface.SetOffset(e.origin)
		}
	} else {
		text = e.surface.Text(start, end)
		e.surface.SetOffset(start)
	}

	e.storeRegister(text, e.linewise)
	e.DispatchSignal(YankSignal{text, e.linewise})
}

func (e *editor) deleteLines(first, last int) {
	s := e.surface
	switch {
	case last+1 < s.LineCount():
		start := s.LineOffset(first)
		s.Replace(start, s.LineOffset(last+1)-start, "")
	case first > 0:
		start := s.LineOffset(first) - 1
		s.Replace(start, s.TextLength()-start, "")
	default:
		s.Replace(0, s.TextLength(), "")
	}

	row := min(first, s.LineCount()-1)
	s.SetPosition(Position{Row: row})
	s.Move(MotionFirstNonBlank)
}

// openLineAt inserts an empty line at row, or below the last line when the
// deletion removed the end of the document.
func (e *editor) openLineAt(row int) {
	s := e.surface
	if s.TextLength() == 0 {
		s.SetOffset(0)
		return
	}
	if row < s.LineCount() {
		off := s.LineOffset(row)
		s.Replace(off, 0, "\n")
		s.SetOffset(off)
		return
	}
	s.Replace(s.TextLength(), 0, "\n")
	s.SetOffset(s.TextLength())
}

func (e *editor) endSpan() {
	e.anchor = -1
	e.linewise = false
	e.surface.ClearSelection()
}

// applyToSpan runs op over the selected lines and leaves the caret on the
// first non-blank of the first line.
func applyToSpan(op Operation) Action {
	return Action{
		Name: "span.apply:" + op.String(),
		Do: func(e *editor) {
			start, end, ok := e.surface.Selection()
			if !ok {
				e.surface.Apply(op)
				return
			}
			first, last := e.lineRows(start, end)
			e.selectRows(first, last)
			e.surface.Apply(op)
			e.endSpan()
			e.surface.SetPosition(Position{Row: first})
			e.surface.Move(MotionFirstNonBlank)
		},
	}
}
