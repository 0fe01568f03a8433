package buffer

import (
	"math"
	"unicode"

	"github.com/ionut-t/govi/core"
)

// Move runs one step of motion m and reports whether the caret moved.
func (b *Buffer) Move(m core.Motion) bool {
	before := b.cursor.Position

	switch m {
	case core.MotionLeft:
		b.moveLeft()
	case core.MotionRight:
		b.moveRight()
	case core.MotionUp:
		b.moveVertical(-1)
	case core.MotionDown:
		b.moveVertical(1)
	case core.MotionWordForward:
		b.moveWordForward(wordClass)
	case core.MotionBigWordForward:
		b.moveWordForward(bigWordClass)
	case core.MotionWordBackward:
		b.moveWordBackward(wordClass)
	case core.MotionBigWordBackward:
		b.moveWordBackward(bigWordClass)
	case core.MotionWordEnd:
		b.moveWordToEnd(wordClass)
	case core.MotionBigWordEnd:
		b.moveWordToEnd(bigWordClass)
	case core.MotionLineStart:
		b.moveToLineStart()
	case core.MotionLineEnd:
		b.moveToAfterLineEnd()
	case core.MotionFirstNonBlank:
		b.moveToFirstNonBlank()
	case core.MotionNextLineStart:
		if b.cursor.Position.Row < len(b.lines)-1 {
			b.cursor.Position.Row = b.nextVisibleRow(b.cursor.Position.Row, 1)
			b.moveToFirstNonBlank()
		}
	case core.MotionPrevLineStart:
		if b.cursor.Position.Row > 0 {
			b.cursor.Position.Row = b.nextVisibleRow(b.cursor.Position.Row, -1)
			b.moveToFirstNonBlank()
		}
	case core.MotionDocumentStart:
		b.cursor.Position.Row = 0
		b.moveToFirstNonBlank()
	case core.MotionDocumentEnd:
		b.cursor.Position.Row = len(b.lines) - 1
		b.moveToAfterLineEnd()
	case core.MotionMatchingBracket:
		b.moveToMatchingBracket()
	case core.MotionParagraphForward:
		b.moveParagraph(1)
	case core.MotionParagraphBackward:
		b.moveParagraph(-1)
	case core.MotionScreenTop:
		b.moveToScreenRow(b.viewportTop)
	case core.MotionScreenMiddle:
		last := min(b.viewportTop+b.viewportHeight, len(b.lines)) - 1
		b.moveToScreenRow(b.viewportTop + (last-b.viewportTop)/2)
	case core.MotionScreenBottom:
		b.moveToScreenRow(b.viewportTop + b.viewportHeight - 1)
	case core.MotionPageUp:
		b.page(-1)
	case core.MotionPageDown:
		b.page(1)
	default:
		return false
	}

	return b.cursor.Position != before
}

func (b *Buffer) line() []rune {
	return b.lines[b.cursor.Position.Row]
}

// --- Cursor Movement ---

func (b *Buffer) moveLeft() {
	if b.cursor.Position.Col > 0 {
		b.cursor.Position.Col--
	}
	b.cursor.Preferred = b.cursor.Position.Col
}

// moveRight allows the column one past the last character, for insertion.
func (b *Buffer) moveRight() {
	if b.cursor.Position.Col < len(b.line()) {
		b.cursor.Position.Col++
	}
	b.cursor.Preferred = b.cursor.Position.Col
}

// moveVertical moves one visible row up or down and restores the sticky
// column where the new line is long enough.
func (b *Buffer) moveVertical(dir int) {
	row := b.nextVisibleRow(b.cursor.Position.Row, dir)
	if row == b.cursor.Position.Row {
		return
	}
	b.cursor.Position.Row = row
	b.cursor.Position.Col = min(b.cursor.Preferred, len(b.line()))
}

// nextVisibleRow steps from row in dir, skipping rows inside closed folds.
func (b *Buffer) nextVisibleRow(row, dir int) int {
	next := row + dir
	for next >= 0 && next < len(b.lines) && b.IsHidden(next) {
		next += dir
	}
	if next < 0 || next >= len(b.lines) {
		return row
	}
	return next
}

func (b *Buffer) moveToLineStart() {
	b.cursor.Position.Col = 0
	b.cursor.Preferred = 0
}

// moveToAfterLineEnd moves the cursor *after* the last character and makes
// vertical moves stick to line ends.
func (b *Buffer) moveToAfterLineEnd() {
	b.cursor.Position.Col = len(b.line())
	b.cursor.Preferred = math.MaxInt
}

func (b *Buffer) moveToFirstNonBlank() {
	b.cursor.Position.Col = firstNonBlank(b.line())
	b.cursor.Preferred = b.cursor.Position.Col
}

func firstNonBlank(line []rune) int {
	for i, r := range line {
		if !unicode.IsSpace(r) {
			return i
		}
	}
	return 0
}

// --- Word Movement ---

// A charClass splits runes into blank (0) and runs of equal non-zero classes.
type charClass func(r rune) int

func wordClass(r rune) int {
	switch {
	case isWhiteSpace(r):
		return 0
	case isWordChar(r):
		return 2
	default:
		return 1
	}
}

func bigWordClass(r rune) int {
	if isWhiteSpace(r) {
		return 0
	}
	return 1
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

func isWhiteSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// moveWordForward is w and W: skip the current run, then blanks. Reaching the
// end of a line continues on the next one, where an empty line is a stop.
func (b *Buffer) moveWordForward(class charClass) {
	pos := b.cursor.Position
	line := b.lines[pos.Row]
	col := pos.Col

	if col < len(line) {
		if c := class(line[col]); c != 0 {
			for col < len(line) && class(line[col]) == c {
				col++
			}
		}
		for col < len(line) && class(line[col]) == 0 {
			col++
		}
		if col < len(line) {
			b.cursor.Position.Col = col
			b.cursor.Preferred = col
			return
		}
	}

	if pos.Row >= len(b.lines)-1 {
		b.cursor.Position.Col = len(line)
		b.cursor.Preferred = b.cursor.Position.Col
		return
	}
	b.cursor.Position.Row = b.nextVisibleRow(pos.Row, 1)
	next := b.line()
	col = 0
	for col < len(next) && class(next[col]) == 0 {
		col++
	}
	if col == len(next) {
		col = 0
	}
	b.cursor.Position.Col = col
	b.cursor.Preferred = col
}

// moveWordToEnd is e and E: the last character of the next run, looking
// across lines.
func (b *Buffer) moveWordToEnd(class charClass) {
	row, col := b.cursor.Position.Row, b.cursor.Position.Col+1

	for {
		line := b.lines[row]
		for col < len(line) && class(line[col]) == 0 {
			col++
		}
		if col < len(line) {
			c := class(line[col])
			for col+1 < len(line) && class(line[col+1]) == c {
				col++
			}
			b.cursor.Position = core.Position{Row: row, Col: col}
			b.cursor.Preferred = col
			return
		}
		if row >= len(b.lines)-1 {
			return
		}
		row++
		col = 0
	}
}

// moveWordBackward is b and B. Empty lines are stops.
func (b *Buffer) moveWordBackward(class charClass) {
	row, col := b.cursor.Position.Row, b.cursor.Position.Col-1

	for {
		line := b.lines[row]
		if col >= len(line) {
			col = len(line) - 1
		}
		for col >= 0 && class(line[col]) == 0 {
			col--
		}
		if col >= 0 {
			c := class(line[col])
			for col > 0 && class(line[col-1]) == c {
				col--
			}
			b.cursor.Position = core.Position{Row: row, Col: col}
			b.cursor.Preferred = col
			return
		}
		if row == 0 {
			b.cursor.Position.Col = 0
			b.cursor.Preferred = 0
			return
		}
		row--
		if len(b.lines[row]) == 0 {
			b.cursor.Position = core.Position{Row: row}
			b.cursor.Preferred = 0
			return
		}
		col = len(b.lines[row]) - 1
	}
}

// --- Larger jumps ---

var bracketPairs = map[rune]rune{
	'(': ')', '[': ']', '{': '}',
	')': '(', ']': '[', '}': '{',
}

// moveToMatchingBracket is %: the first bracket at or after the caret on its
// line jumps to its partner.
func (b *Buffer) moveToMatchingBracket() {
	line := b.line()
	col := b.cursor.Position.Col
	for col < len(line) {
		if _, ok := bracketPairs[line[col]]; ok {
			break
		}
		col++
	}
	if col >= len(line) {
		return
	}

	start := b.LineOffset(b.cursor.Position.Row) + col
	if off, ok := b.matchBracket(start); ok {
		b.SetOffset(off)
	}
}

// matchBracket finds the partner of the bracket at offset, counting nesting.
func (b *Buffer) matchBracket(offset int) (int, bool) {
	text := []rune(b.String())
	open := text[offset]
	partner := bracketPairs[open]
	dir := 1
	if open == ')' || open == ']' || open == '}' {
		dir = -1
	}

	depth := 0
	for i := offset; i >= 0 && i < len(text); i += dir {
		switch text[i] {
		case open:
			depth++
		case partner:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

func (b *Buffer) isBlankLine(row int) bool {
	for _, r := range b.lines[row] {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// moveParagraph is { and }: the next blank line that follows text, or the
// edge of the document.
func (b *Buffer) moveParagraph(dir int) {
	row := b.cursor.Position.Row
	for row+dir >= 0 && row+dir < len(b.lines) && b.isBlankLine(row+dir) {
		row += dir
	}
	for {
		row += dir
		if row <= 0 {
			b.cursor.Position = core.Position{}
			break
		}
		if row >= len(b.lines)-1 {
			b.cursor.Position.Row = len(b.lines) - 1
			b.moveToAfterLineEnd()
			return
		}
		if b.isBlankLine(row) {
			b.cursor.Position = core.Position{Row: row}
			break
		}
	}
	b.cursor.Preferred = 0
}

func (b *Buffer) moveToScreenRow(row int) {
	last := min(b.viewportTop+b.viewportHeight, len(b.lines)) - 1
	b.cursor.Position.Row = min(max(row, b.viewportTop), max(last, 0))
	b.moveToFirstNonBlank()
}

// page scrolls the viewport by a screen and carries the caret along.
func (b *Buffer) page(dir int) {
	rows := max(b.viewportHeight, 1)
	maxTop := max(len(b.lines)-rows, 0)
	b.viewportTop = min(max(b.viewportTop+dir*rows, 0), maxTop)

	row := min(max(b.cursor.Position.Row+dir*rows, 0), len(b.lines)-1)
	b.cursor.Position.Row = row
	b.cursor.Position.Col = min(b.cursor.Preferred, len(b.line()))
}
