package core

import (
	"fmt"
	"slices"
	"strings"
)

// MarkStore maps mark names to positions for the session.
type MarkStore struct {
	marks map[rune]Position
}

func NewMarkStore() *MarkStore {
	return &MarkStore{marks: make(map[rune]Position)}
}

func (s *MarkStore) Set(name rune, pos Position) {
	s.marks[name] = pos
}

func (s *MarkStore) Get(name rune) (Position, bool) {
	pos, ok := s.marks[name]
	return pos, ok
}

func (s *MarkStore) Names() []rune {
	names := make([]rune, 0, len(s.marks))
	for name := range s.marks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (s *MarkStore) Clear() {
	s.marks = make(map[rune]Position)
}

func (e *editor) isMarkName(r rune) bool {
	return isMacroName(r) || r == e.config.ContextMark
}

// jumpToMark moves to a mark. Any jump except one to the context mark itself
// first saves the caret in the context mark.
func (e *editor) jumpToMark(name rune) string {
	target, ok := e.marks.Get(name)
	if !ok {
		return UnknownMarkMessage
	}
	if name != e.config.ContextMark {
		e.setContextMark()
	}

	row := min(max(target.Row, 0), e.surface.LineCount()-1)
	col := min(max(target.Col, 0), e.surface.LineLength(row))
	e.surface.SetPosition(Position{Row: row, Col: col})
	return EmptyMessage
}

func (e *editor) describeMarks() string {
	names := e.marks.Names()
	if len(names) == 0 {
		return NoMarksMessage
	}
	parts := make([]string, 0, len(names))
	for _, name := range names {
		pos, _ := e.marks.Get(name)
		parts = append(parts, fmt.Sprintf("%c %d:%d", name, pos.Row+1, pos.Col))
	}
	return "marks: " + strings.Join(parts, ", ")
}
