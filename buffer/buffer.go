// Package buffer is an in-memory editing surface for the interpreter in core.
// Text is stored as lines of runes; offsets count runes and newlines.
package buffer

import (
	"strings"

	"github.com/ionut-t/govi/core"
)

// Cursor represents the current position for editing operations
type Cursor struct {
	Position  core.Position // Current position (row, column)
	Preferred int           // Preferred column for vertical movement (sticky column)
}

type selection struct {
	start, end int
	active     bool
}

// Buffer implements core.Surface.
type Buffer struct {
	lines     [][]rune
	cursor    Cursor
	selection selection

	viewportTop    int
	viewportHeight int

	shiftWidth int
	expandTab  bool

	history      *history
	folds        *folds
	savedContent string
}

type Option func(*Buffer)

// WithShiftWidth sets the indent width used by indent, unindent and tab.
func WithShiftWidth(n int) Option {
	return func(b *Buffer) {
		if n > 0 {
			b.shiftWidth = n
		}
	}
}

// WithExpandTab makes indentation and tab insert spaces.
func WithExpandTab(expand bool) Option {
	return func(b *Buffer) {
		b.expandTab = expand
	}
}

// WithMaxHistory bounds the number of undo steps kept.
func WithMaxHistory(n int) Option {
	return func(b *Buffer) {
		if n > 0 {
			b.history.max = n
		}
	}
}

// New creates a new empty buffer
func New(opts ...Option) *Buffer {
	b := &Buffer{
		lines:          [][]rune{{}}, // Start with one empty line
		viewportHeight: 24,
		shiftWidth:     4,
		expandTab:      true,
		history:        newHistory(1000),
		folds:          newFolds(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewFromString creates a buffer holding text, with the caret at the start.
func NewFromString(text string, opts ...Option) *Buffer {
	b := New(opts...)
	b.SetContent(text)
	b.MarkSaved()
	return b
}

// SetContent replaces the whole text, clearing undo history and folds.
func (b *Buffer) SetContent(text string) {
	b.lines = splitLines(text)
	b.cursor = Cursor{}
	b.selection = selection{}
	b.history.clear()
	b.folds.clear()
}

func splitLines(text string) [][]rune {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(text, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	return lines
}

// String returns the whole text, lines joined by newlines.
func (b *Buffer) String() string {
	lines := make([]string, len(b.lines))
	for i, r := range b.lines {
		lines[i] = string(r)
	}
	return strings.Join(lines, "\n")
}

// Lines returns a copy of every line.
func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.lines))
	for i, r := range b.lines {
		lines[i] = string(r)
	}
	return lines
}

// Line returns one line, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

func (b *Buffer) IsModified() bool {
	return b.savedContent != b.String()
}

func (b *Buffer) MarkSaved() {
	b.savedContent = b.String()
}

// SetViewport tells the buffer which rows are on screen, for H, M, L and
// paging.
func (b *Buffer) SetViewport(top, height int) {
	b.viewportTop = max(top, 0)
	b.viewportHeight = max(height, 1)
}

func (b *Buffer) Viewport() (top, height int) {
	return b.viewportTop, b.viewportHeight
}

// --- Caret ---

func (b *Buffer) Cursor() Cursor {
	return b.cursor
}

func (b *Buffer) Position() core.Position {
	return b.cursor.Position
}

// SetPosition moves the caret, clamping it to the text. The column may be one
// past the last character.
func (b *Buffer) SetPosition(pos core.Position) {
	pos = b.clamp(pos)
	cur := b.cursor.Position
	// Stepping back off the end of the line keeps the sticky column.
	if pos.Row == cur.Row && pos.Col == cur.Col-1 && cur.Col == len(b.lines[cur.Row]) {
		b.cursor.Position = pos
		return
	}
	b.cursor.Position = pos
	b.cursor.Preferred = pos.Col
}

func (b *Buffer) Offset() int {
	return b.OffsetAt(b.cursor.Position)
}

func (b *Buffer) SetOffset(offset int) {
	b.SetPosition(b.PositionAt(offset))
}

func (b *Buffer) clamp(pos core.Position) core.Position {
	pos.Row = min(max(pos.Row, 0), len(b.lines)-1)
	pos.Col = min(max(pos.Col, 0), len(b.lines[pos.Row]))
	return pos
}

// PositionAt converts an offset into a position, clamping to the text.
func (b *Buffer) PositionAt(offset int) core.Position {
	if offset <= 0 {
		return core.Position{}
	}
	for row, line := range b.lines {
		if offset <= len(line) {
			return core.Position{Row: row, Col: offset}
		}
		offset -= len(line) + 1
	}
	last := len(b.lines) - 1
	return core.Position{Row: last, Col: len(b.lines[last])}
}

func (b *Buffer) OffsetAt(pos core.Position) int {
	pos = b.clamp(pos)
	return b.LineOffset(pos.Row) + pos.Col
}

// --- Metrics ---

func (b *Buffer) LineCount() int {
	return len(b.lines)
}

func (b *Buffer) LineLength(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) LineOffset(row int) int {
	row = min(max(row, 0), len(b.lines)-1)
	offset := 0
	for _, line := range b.lines[:row] {
		offset += len(line) + 1
	}
	return offset
}

func (b *Buffer) TextLength() int {
	n := len(b.lines) - 1
	for _, line := range b.lines {
		n += len(line)
	}
	return n
}

// Text returns the runes in [start, end).
func (b *Buffer) Text(start, end int) string {
	total := b.TextLength()
	start = min(max(start, 0), total)
	end = min(max(end, start), total)
	if start == end {
		return ""
	}

	var sb strings.Builder
	from := b.PositionAt(start)
	remaining := end - start
	for row := from.Row; row < len(b.lines) && remaining > 0; row++ {
		line := b.lines[row]
		col := 0
		if row == from.Row {
			col = from.Col
		}
		take := min(len(line)-col, remaining)
		sb.WriteString(string(line[col : col+take]))
		remaining -= take
		if remaining > 0 && row+1 < len(b.lines) {
			sb.WriteByte('\n')
			remaining--
		}
	}
	return sb.String()
}

// --- Selection ---

func (b *Buffer) Selection() (start, end int, ok bool) {
	if !b.selection.active {
		return 0, 0, false
	}
	return b.selection.start, b.selection.end, true
}

func (b *Buffer) Select(start, end int) {
	total := b.TextLength()
	start = min(max(start, 0), total)
	end = min(max(end, 0), total)
	if end < start {
		start, end = end, start
	}
	b.selection = selection{start: start, end: end, active: true}
}

func (b *Buffer) ClearSelection() {
	b.selection = selection{}
}

// IsSelected reports whether the character at pos is inside the selection.
func (b *Buffer) IsSelected(pos core.Position) bool {
	if !b.selection.active {
		return false
	}
	off := b.OffsetAt(pos)
	return off >= b.selection.start && off < b.selection.end
}

// --- Editing ---

// Replace swaps length runes at offset for text. Newlines in text split lines.
func (b *Buffer) Replace(offset, length int, text string) {
	total := b.TextLength()
	offset = min(max(offset, 0), total)
	length = min(max(length, 0), total-offset)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if length == 0 && text == "" {
		return
	}

	b.history.beforeEdit(b)

	from := b.PositionAt(offset)
	to := b.PositionAt(offset + length)

	head := b.lines[from.Row][:from.Col]
	tail := b.lines[to.Row][to.Col:]

	parts := splitLines(text)
	replacement := make([][]rune, len(parts))
	for i, p := range parts {
		replacement[i] = p
	}
	replacement[0] = append(append([]rune{}, head...), replacement[0]...)
	last := len(replacement) - 1
	replacement[last] = append(replacement[last], tail...)

	lines := make([][]rune, 0, len(b.lines)-(to.Row-from.Row)+last)
	lines = append(lines, b.lines[:from.Row]...)
	lines = append(lines, replacement...)
	lines = append(lines, b.lines[to.Row+1:]...)
	b.lines = lines

	b.folds.shift(from.Row, last-(to.Row-from.Row))
	b.cursor.Position = b.clamp(b.cursor.Position)
	if b.selection.active {
		b.Select(b.selection.start, b.selection.end)
	}
}

// InsertAtCaret inserts text and leaves the caret after it.
func (b *Buffer) InsertAtCaret(text string) {
	offset := b.Offset()
	b.Replace(offset, 0, text)
	b.SetOffset(offset + len([]rune(strings.ReplaceAll(text, "\r\n", "\n"))))
}
