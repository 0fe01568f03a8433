package buffer

import (
	"github.com/ionut-t/govi/core"
	"github.com/ionut-t/govi/internal/log"
)

// snapshot is the text and caret before an undoable step.
type snapshot struct {
	lines  [][]rune
	cursor Cursor
}

// history keeps whole-buffer snapshots. Every edit inside the outermost open
// group shares the snapshot taken before the first of them.
type history struct {
	undo  []snapshot
	redo  []snapshot
	max   int
	depth int
	taken bool
}

func newHistory(max int) *history {
	return &history{max: max}
}

func (h *history) clear() {
	h.undo = nil
	h.redo = nil
	h.taken = false
}

func (b *Buffer) snapshot() snapshot {
	lines := make([][]rune, len(b.lines))
	for i, l := range b.lines {
		lines[i] = append([]rune(nil), l...)
	}
	return snapshot{lines: lines, cursor: b.cursor}
}

func (b *Buffer) restore(s snapshot) {
	b.lines = s.lines
	b.cursor = s.cursor
	b.cursor.Position = b.clamp(b.cursor.Position)
	b.selection = selection{}
}

// beforeEdit records the state about to change, once per group.
func (h *history) beforeEdit(b *Buffer) {
	if h.depth > 0 && h.taken {
		return
	}
	h.taken = h.depth > 0
	h.undo = append(h.undo, b.snapshot())
	if len(h.undo) > h.max {
		h.undo = h.undo[len(h.undo)-h.max:]
	}
	h.redo = nil
}

type undoGroup struct {
	h      *history
	closed bool
}

func (g *undoGroup) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.h.depth--
	if g.h.depth == 0 {
		g.h.taken = false
	}
}

// OpenUndoGroup starts a group; edits until the matching Close undo together.
func (b *Buffer) OpenUndoGroup() core.UndoGroup {
	b.history.depth++
	return &undoGroup{h: b.history}
}

// CanUndo reports whether there is a step to undo.
func (b *Buffer) CanUndo() bool {
	return len(b.history.undo) > 0
}

func (b *Buffer) CanRedo() bool {
	return len(b.history.redo) > 0
}

func (b *Buffer) undo() {
	h := b.history
	if len(h.undo) == 0 {
		log.Debug(log.CatBuffer, "nothing to undo")
		return
	}
	prev := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, b.snapshot())
	b.restore(prev)
	b.folds.clear()
}

func (b *Buffer) redo() {
	h := b.history
	if len(h.redo) == 0 {
		log.Debug(log.CatBuffer, "nothing to redo")
		return
	}
	next := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, b.snapshot())
	b.restore(next)
	b.folds.clear()
}
