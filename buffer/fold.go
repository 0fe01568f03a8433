package buffer

import (
	"sort"

	"github.com/ionut-t/govi/core"
)

// folds records which indentation folds are closed, keyed by the fold's
// first row. A fold at row r covers the rows after r indented deeper than r.
type folds struct {
	closed map[int]bool
}

func newFolds() *folds {
	return &folds{closed: make(map[int]bool)}
}

func (f *folds) clear() {
	f.closed = make(map[int]bool)
}

// shift moves fold keys after row by delta lines, dropping deleted ones.
func (f *folds) shift(row, delta int) {
	if delta == 0 || len(f.closed) == 0 {
		return
	}
	next := make(map[int]bool, len(f.closed))
	for k := range f.closed {
		switch {
		case k <= row:
			next[k] = true
		case delta < 0 && k <= row-delta:
		default:
			next[k+delta] = true
		}
	}
	f.closed = next
}

func (b *Buffer) indentOf(row int) int {
	n := 0
	for _, r := range b.lines[row] {
		switch r {
		case ' ':
			n++
		case '\t':
			n += b.shiftWidth
		default:
			return n
		}
	}
	return n
}

// foldEnd returns the last row of the fold starting at row, or row itself
// when nothing below is indented deeper.
func (b *Buffer) foldEnd(row int) int {
	if b.isBlankLine(row) {
		return row
	}
	indent := b.indentOf(row)
	end := row
	for r := row + 1; r < len(b.lines); r++ {
		if b.isBlankLine(r) {
			continue
		}
		if b.indentOf(r) <= indent {
			break
		}
		end = r
	}
	return end
}

// foldAt returns the innermost fold containing row.
func (b *Buffer) foldAt(row int) (start, end int, ok bool) {
	for s := row; s >= 0; s-- {
		if e := b.foldEnd(s); e > s && e >= row {
			return s, e, true
		}
	}
	return 0, 0, false
}

// IsHidden reports whether row is inside a closed fold, below its first row.
func (b *Buffer) IsHidden(row int) bool {
	for start := range b.folds.closed {
		if row > start && row <= b.foldEnd(start) {
			return true
		}
	}
	return false
}

// IsFolded reports whether row starts a closed fold.
func (b *Buffer) IsFolded(row int) bool {
	return b.folds.closed[row]
}

// ClosedFolds returns the closed folds as start rows, in order.
func (b *Buffer) ClosedFolds() []int {
	rows := make([]int, 0, len(b.folds.closed))
	for r := range b.folds.closed {
		rows = append(rows, r)
	}
	sort.Ints(rows)
	return rows
}

func (b *Buffer) applyFold(op core.Operation) {
	if op == core.OpOpenAllFolds {
		b.folds.clear()
		return
	}
	if op == core.OpCloseAllFolds {
		for r := range b.lines {
			if b.foldEnd(r) > r {
				b.folds.closed[r] = true
			}
		}
		b.moveOutOfFold()
		return
	}

	start, end, ok := b.foldAt(b.cursor.Position.Row)
	if !ok {
		return
	}

	closing := false
	switch op {
	case core.OpCloseFold, core.OpCloseFoldRecursive:
		closing = true
	case core.OpToggleFold, core.OpToggleFoldRecursive:
		closing = !b.folds.closed[start]
	}

	recursive := op == core.OpToggleFoldRecursive || op == core.OpOpenFoldRecursive || op == core.OpCloseFoldRecursive
	last := start
	if recursive {
		last = end
	}
	for r := start; r <= last; r++ {
		if r != start && b.foldEnd(r) == r {
			continue
		}
		if closing {
			b.folds.closed[r] = true
		} else {
			delete(b.folds.closed, r)
		}
	}
	b.moveOutOfFold()
}

// moveOutOfFold puts the caret on the first row of the closed fold hiding it.
func (b *Buffer) moveOutOfFold() {
	row := b.cursor.Position.Row
	for row > 0 && b.IsHidden(row) {
		row--
	}
	if row != b.cursor.Position.Row {
		b.cursor.Position = core.Position{Row: row}
		b.moveToFirstNonBlank()
	}
}
