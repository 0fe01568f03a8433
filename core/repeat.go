package core

import (
	"slices"

	"github.com/ionut-t/govi/internal/log"
)

// SelectionExtent is the shape of the last selection a visual command acted
// on, so a repeat can rebuild the same shape at the caret.
type SelectionExtent struct {
	Lines    int // Rows spanned after the first one
	Trailing int // Length for one-line spans, else the end column on the last row
	Linewise bool
}

// repeatEngine keeps the last change and the last insertion. A change is
// recorded into an open scope and only replaces lastChange on commit, so an
// aborted command never leaves a half recorded change behind.
type repeatEngine struct {
	lastChange    []Action
	lastInsertion []KeyEvent
	extent        SelectionExtent

	scope      []Action
	recording  bool
	insertKeys []KeyEvent
	replaying  int
}

func newRepeatEngine() *repeatEngine {
	return &repeatEngine{}
}

func (r *repeatEngine) begin() {
	if r.replaying > 0 {
		return
	}
	r.scope = nil
	r.recording = true
}

func (r *repeatEngine) record(a Action) {
	if !r.recording || r.replaying > 0 {
		return
	}
	r.scope = append(r.scope, a)
}

func (r *repeatEngine) commit() {
	if !r.recording || r.replaying > 0 {
		return
	}
	r.lastChange = r.scope
	r.scope = nil
	r.recording = false
	log.Debug(log.CatRepeat, "change committed", "actions", len(r.lastChange))
}

func (r *repeatEngine) discard() {
	r.scope = nil
	r.recording = false
}

func (r *repeatEngine) pushInsertKey(k KeyEvent) {
	if r.replaying > 0 {
		return
	}
	r.insertKeys = append(r.insertKeys, k)
}

func (r *repeatEngine) resetInsertKeys() {
	r.insertKeys = nil
}

func (e *editor) LastChange() []string {
	names := make([]string, 0, len(e.repeat.lastChange))
	for _, a := range e.repeat.lastChange {
		names = append(names, a.Name)
	}
	return names
}

func (e *editor) LastInsertion() []KeyEvent {
	return slices.Clone(e.repeat.lastInsertion)
}

// repeatLastChange replays the last change n times as one undo step.
func (e *editor) repeatLastChange(n int) {
	actions := e.repeat.lastChange
	if len(actions) == 0 {
		return
	}

	log.Debug(log.CatRepeat, "repeat", "actions", len(actions), "count", n)

	g := e.surface.OpenUndoGroup()
	defer g.Close()

	e.repeat.replaying++
	defer func() { e.repeat.replaying-- }()

	for range n {
		for _, a := range actions {
			a.Do(e)
		}
	}
	e.endSpan()
}

// beginInsert opens an insert or replace session. The priming actions run
// inside the session's undo group and become the start of the last change.
func (e *editor) beginInsert(overwrite bool, priming ...Action) {
	if e.insertGroup == nil {
		e.insertGroup = e.surface.OpenUndoGroup()
	}
	e.repeat.begin()
	e.run(priming...)
	e.repeat.resetInsertKeys()
	if overwrite {
		e.setMode(ReplaceMode)
	} else {
		e.setMode(InsertMode)
	}
}

// finishInsertSession commits the typed keys as the last insertion and ends
// the last change with a step that replays them.
func (e *editor) finishInsertSession() {
	mode := e.state.Mode
	if mode != InsertMode && mode != ReplaceMode {
		return
	}

	keys := slices.Clone(e.repeat.insertKeys)
	e.repeat.lastInsertion = keys
	e.repeat.record(replayInsertion(keys, mode == ReplaceMode))
	e.repeat.commit()
	e.repeat.resetInsertKeys()
	e.closeInsertGroup()

	if pos := e.surface.Position(); pos.Col > 0 {
		e.surface.SetPosition(Position{Row: pos.Row, Col: pos.Col - 1})
	}
}

func (e *editor) closeInsertGroup() {
	if e.insertGroup != nil {
		e.insertGroup.Close()
		e.insertGroup = nil
	}
}

func replayInsertion(keys []KeyEvent, overwrite bool) Action {
	name := "insert.replay"
	if overwrite {
		name = "replace.replay"
	}
	return Action{
		Name: name,
		Do: func(e *editor) {
			for _, k := range keys {
				e.insertKey(k, overwrite)
			}
			if pos := e.surface.Position(); pos.Col > 0 {
				e.surface.SetPosition(Position{Row: pos.Row, Col: pos.Col - 1})
			}
		},
	}
}

// captureExtent records the shape of the current selection.
func (e *editor) captureExtent() {
	start, end, ok := e.surface.Selection()
	if !ok {
		return
	}
	first, last := e.lineRows(start, end)
	ext := SelectionExtent{Lines: last - first, Linewise: e.linewise}
	if ext.Lines == 0 {
		ext.Trailing = end - start
	} else {
		ext.Trailing = end - e.surface.LineOffset(last)
	}
	e.repeat.extent = ext
}

// extentAction rebuilds a selection of the captured shape at the caret.
func (e *editor) extentAction() Action {
	ext := e.repeat.extent
	return Action{
		Name: "selection.extent",
		Do: func(e *editor) {
			s := e.surface
			row := s.Position().Row
			last := min(row+ext.Lines, s.LineCount()-1)
			e.origin = s.Offset()
			if ext.Linewise {
				e.selectLineRange(row, last)
				return
			}
			start := s.Offset()
			end := start + ext.Trailing
			if ext.Lines > 0 {
				end = s.LineOffset(last) + ext.Trailing
			}
			e.anchor = start
			e.linewise = false
			s.Select(start, min(end, s.TextLength()))
		},
	}
}
