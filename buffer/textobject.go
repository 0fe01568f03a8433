package buffer

import "github.com/ionut-t/govi/core"

// SelectObject selects the text object around the caret as a half-open range
// and moves the caret to its start. It reports false when there is none.
func (b *Buffer) SelectObject(obj core.TextObject, inner bool) bool {
	var start, end int
	var found bool

	switch obj {
	case core.ObjectWord:
		start, end, found = b.wordBounds(wordClass, inner)
	case core.ObjectBigWord:
		start, end, found = b.wordBounds(bigWordClass, inner)
	case core.ObjectParens:
		start, end, found = b.pairBounds('(', ')', inner)
	case core.ObjectBrackets:
		start, end, found = b.pairBounds('[', ']', inner)
	case core.ObjectBraces:
		start, end, found = b.pairBounds('{', '}', inner)
	case core.ObjectAngles:
		start, end, found = b.pairBounds('<', '>', inner)
	case core.ObjectDoubleQuote:
		start, end, found = b.quoteBounds('"', inner)
	case core.ObjectSingleQuote:
		start, end, found = b.quoteBounds('\'', inner)
	case core.ObjectBacktick:
		start, end, found = b.quoteBounds('`', inner)
	case core.ObjectParagraph:
		start, end, found = b.paragraphBounds(inner)
	}

	if !found {
		return false
	}
	b.Select(start, end)
	b.SetOffset(start)
	return true
}

// wordBounds finds the run of equal class under the caret. The outer object
// adds trailing blanks, or leading blanks when the word ends the line.
func (b *Buffer) wordBounds(class charClass, inner bool) (int, int, bool) {
	line := b.line()
	col := b.cursor.Position.Col
	if len(line) == 0 || col >= len(line) {
		return 0, 0, false
	}

	c := class(line[col])
	start, end := col, col+1
	for start > 0 && class(line[start-1]) == c {
		start--
	}
	for end < len(line) && class(line[end]) == c {
		end++
	}

	if !inner && c != 0 {
		trailing := end
		for trailing < len(line) && class(line[trailing]) == 0 {
			trailing++
		}
		if trailing > end {
			end = trailing
		} else {
			for start > 0 && class(line[start-1]) == 0 {
				start--
			}
		}
	}

	base := b.LineOffset(b.cursor.Position.Row)
	return base + start, base + end, true
}

// pairBounds finds the innermost open/close pair around the caret. Pairs may
// span lines and nest.
func (b *Buffer) pairBounds(open, close rune, inner bool) (int, int, bool) {
	text := []rune(b.String())
	caret := b.Offset()

	var stack []int
	best := [2]int{-1, -1}
	for i, r := range text {
		if isEscaped(text, i) {
			continue
		}
		switch r {
		case open:
			stack = append(stack, i)
		case close:
			if len(stack) == 0 {
				continue
			}
			o := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if caret >= o && caret <= i && (best[0] < 0 || i-o < best[1]-best[0]) {
				best = [2]int{o, i}
			}
		}
	}

	if best[0] < 0 {
		return 0, 0, false
	}
	if inner {
		return best[0] + 1, best[1], true
	}
	return best[0], best[1] + 1, true
}

// quoteBounds pairs unescaped quotes on the caret line from the left, then
// falls back to the nearest quote on each side of the caret.
func (b *Buffer) quoteBounds(quote rune, inner bool) (int, int, bool) {
	line := b.line()
	col := b.cursor.Position.Col
	if len(line) == 0 || col >= len(line) {
		return 0, 0, false
	}

	var positions []int
	for i, r := range line {
		if r == quote && !isEscaped(line, i) {
			positions = append(positions, i)
		}
	}
	if len(positions) < 2 {
		return 0, 0, false
	}

	open, closing := -1, -1
	for i := 0; i+1 < len(positions); i += 2 {
		if col >= positions[i] && col <= positions[i+1] {
			open, closing = positions[i], positions[i+1]
			break
		}
	}
	if open < 0 {
		for _, p := range positions {
			if p < col {
				open = p
			}
			if p > col && closing < 0 {
				closing = p
			}
		}
	}
	if open < 0 || closing < 0 {
		return 0, 0, false
	}

	base := b.LineOffset(b.cursor.Position.Row)
	if inner {
		return base + open + 1, base + closing, true
	}
	return base + open, base + closing + 1, true
}

// isEscaped reports whether text[i] follows an odd run of backslashes.
func isEscaped(text []rune, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && text[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}

// paragraphBounds selects the run of lines that are all blank or all not
// blank around the caret. The outer object takes the blank lines after it.
func (b *Buffer) paragraphBounds(inner bool) (int, int, bool) {
	row := b.cursor.Position.Row
	blank := b.isBlankLine(row)

	first, last := row, row
	for first > 0 && b.isBlankLine(first-1) == blank {
		first--
	}
	for last < len(b.lines)-1 && b.isBlankLine(last+1) == blank {
		last++
	}
	if !inner {
		for last < len(b.lines)-1 && b.isBlankLine(last+1) != blank {
			last++
		}
	}

	end := b.TextLength()
	if last+1 < len(b.lines) {
		end = b.LineOffset(last + 1)
	}
	return b.LineOffset(first), end, true
}
