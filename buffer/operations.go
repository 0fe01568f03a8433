package buffer

import (
	"strings"
	"unicode"

	"github.com/ionut-t/govi/core"
	"github.com/ionut-t/govi/internal/log"
)

// Apply runs op on the selection, or on the caret line when nothing is
// selected.
func (b *Buffer) Apply(op core.Operation) {
	log.Debug(log.CatBuffer, "apply", "op", op.String())

	switch op {
	case core.OpIndent:
		b.eachSelectedLine(b.indentLine)
	case core.OpUnindent:
		b.eachSelectedLine(b.unindentLine)
	case core.OpFormat:
		b.eachSelectedLine(b.trimTrailing)
	case core.OpJoin:
		b.join()
	case core.OpToggleCase:
		b.toggleCase()
	case core.OpNewLineBelow:
		b.openLine(true)
	case core.OpNewLineAbove:
		b.openLine(false)
	case core.OpNewline:
		b.InsertAtCaret("\n")
	case core.OpBackspace:
		b.backspace()
	case core.OpDeleteForward:
		b.deleteForward()
	case core.OpTab:
		b.InsertAtCaret(b.indentUnit())
	case core.OpUndo:
		b.undo()
	case core.OpRedo:
		b.redo()
	case core.OpToggleFold, core.OpOpenFold, core.OpCloseFold,
		core.OpToggleFoldRecursive, core.OpOpenFoldRecursive, core.OpCloseFoldRecursive,
		core.OpOpenAllFolds, core.OpCloseAllFolds:
		b.applyFold(op)
	default:
		log.Warn(log.CatBuffer, "unsupported operation", "op", int(op))
	}
}

func (b *Buffer) indentUnit() string {
	if b.expandTab {
		return strings.Repeat(" ", b.shiftWidth)
	}
	return "\t"
}

// selectedRows returns the rows touched by the selection, or the caret row.
func (b *Buffer) selectedRows() (first, last int) {
	start, end, ok := b.Selection()
	if !ok {
		row := b.cursor.Position.Row
		return row, row
	}
	first = b.PositionAt(start).Row
	last = first
	if end > start {
		last = b.PositionAt(end - 1).Row
	}
	return first, last
}

func (b *Buffer) eachSelectedLine(fn func(row int)) {
	first, last := b.selectedRows()
	g := b.OpenUndoGroup()
	defer g.Close()
	for row := first; row <= last; row++ {
		fn(row)
	}
}

func (b *Buffer) setLine(row int, text string) {
	if string(b.lines[row]) == text {
		return
	}
	b.Replace(b.LineOffset(row), len(b.lines[row]), text)
}

func (b *Buffer) indentLine(row int) {
	if len(b.lines[row]) == 0 {
		return
	}
	b.setLine(row, b.indentUnit()+string(b.lines[row]))
}

// unindentLine removes one tab, or up to shiftWidth leading spaces.
func (b *Buffer) unindentLine(row int) {
	line := b.lines[row]
	n := 0
	switch {
	case len(line) > 0 && line[0] == '\t':
		n = 1
	default:
		for n < len(line) && n < b.shiftWidth && line[n] == ' ' {
			n++
		}
	}
	if n > 0 {
		b.setLine(row, string(line[n:]))
	}
}

func (b *Buffer) trimTrailing(row int) {
	b.setLine(row, strings.TrimRightFunc(string(b.lines[row]), unicode.IsSpace))
}

// join merges the selected lines, or the caret line and the next, separated
// by one space. Leading blanks of the joined lines are dropped.
func (b *Buffer) join() {
	first, last := b.selectedRows()
	if last == first {
		last = first + 1
	}
	if last >= len(b.lines) {
		return
	}

	g := b.OpenUndoGroup()
	defer g.Close()

	col := 0
	for range last - first {
		cur := strings.TrimRightFunc(string(b.lines[first]), unicode.IsSpace)
		next := strings.TrimLeftFunc(string(b.lines[first+1]), unicode.IsSpace)
		joined := cur
		if cur != "" && next != "" && !strings.HasPrefix(next, ")") {
			joined += " "
		}
		col = len([]rune(cur))
		if next == "" {
			col = max(col-1, 0)
		}
		start := b.LineOffset(first)
		b.Replace(start, len(b.lines[first])+1+len(b.lines[first+1]), joined+next)
	}
	b.ClearSelection()
	b.SetPosition(core.Position{Row: first, Col: col})
}

// toggleCase flips the selection, or the character under the caret and steps
// past it.
func (b *Buffer) toggleCase() {
	start, end, ok := b.Selection()
	if !ok {
		pos := b.cursor.Position
		if pos.Col >= len(b.lines[pos.Row]) {
			return
		}
		start = b.Offset()
		end = start + 1
	}

	text := []rune(b.Text(start, end))
	for i, r := range text {
		switch {
		case unicode.IsUpper(r):
			text[i] = unicode.ToLower(r)
		case unicode.IsLower(r):
			text[i] = unicode.ToUpper(r)
		}
	}
	b.Replace(start, end-start, string(text))

	if ok {
		b.ClearSelection()
		b.SetOffset(start)
		return
	}
	b.SetOffset(end)
}

// openLine adds a line below or above the caret with the same indentation,
// leaving the caret at its end.
func (b *Buffer) openLine(below bool) {
	row := b.cursor.Position.Row
	line := b.lines[row]
	indent := string(line[:leadingBlanks(line)])

	if below {
		off := b.LineOffset(row) + len(line)
		b.Replace(off, 0, "\n"+indent)
		b.SetPosition(core.Position{Row: row + 1, Col: len([]rune(indent))})
		return
	}
	off := b.LineOffset(row)
	b.Replace(off, 0, indent+"\n")
	b.SetPosition(core.Position{Row: row, Col: len([]rune(indent))})
}

func leadingBlanks(line []rune) int {
	n := 0
	for n < len(line) && isWhiteSpace(line[n]) {
		n++
	}
	return n
}

// backspace deletes before the caret; at column 0 it joins with the line
// above.
func (b *Buffer) backspace() {
	off := b.Offset()
	if off == 0 {
		return
	}
	b.Replace(off-1, 1, "")
	b.SetOffset(off - 1)
}

func (b *Buffer) deleteForward() {
	off := b.Offset()
	if off >= b.TextLength() {
		return
	}
	b.Replace(off, 1, "")
	b.SetOffset(off)
}
