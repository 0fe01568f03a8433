package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ionut-t/govi/core"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		caret    core.Position
		sel      []int
		op       core.Operation
		expected string
		caretTo  core.Position
	}{
		{name: "indent caret line", content: "a\nb", op: core.OpIndent, expected: "    a\nb"},
		{name: "indent selected lines", content: "a\nb\nc", sel: []int{0, 3}, op: core.OpIndent, expected: "    a\n    b\nc"},
		{name: "indent skips empty lines", content: "a\n\nb", sel: []int{0, 4}, op: core.OpIndent, expected: "    a\n\n    b"},
		{name: "unindent spaces", content: "      a", op: core.OpUnindent, expected: "  a"},
		{name: "unindent tab", content: "\t\ta", op: core.OpUnindent, expected: "\ta"},
		{name: "format trims trailing blanks", content: "a  \nb\t", sel: []int{0, 6}, op: core.OpFormat, expected: "a\nb"},
		{name: "join with next", content: "foo\n   bar", op: core.OpJoin, expected: "foo bar", caretTo: core.Position{Col: 3}},
		{name: "join on last line", content: "foo", op: core.OpJoin, expected: "foo"},
		{name: "join selected lines", content: "a\nb\nc\nd", sel: []int{0, 5}, op: core.OpJoin, expected: "a b c\nd", caretTo: core.Position{Col: 3}},
		{name: "join before closing paren", content: "f(\n)", op: core.OpJoin, expected: "f()", caretTo: core.Position{Col: 2}},
		{name: "toggle case under caret", content: "abC", caret: core.Position{Col: 2}, op: core.OpToggleCase, expected: "abc", caretTo: core.Position{Col: 3}},
		{name: "toggle case selection", content: "Hello World", sel: []int{0, 5}, op: core.OpToggleCase, expected: "hELLO World"},
		{name: "new line below copies indent", content: "  a\nb", op: core.OpNewLineBelow, expected: "  a\n  \nb", caretTo: core.Position{Row: 1, Col: 2}},
		{name: "new line above copies indent", content: "x\n\tb", caret: core.Position{Row: 1}, op: core.OpNewLineAbove, expected: "x\n\t\n\tb", caretTo: core.Position{Row: 1, Col: 1}},
		{name: "newline splits line", content: "ab", caret: core.Position{Col: 1}, op: core.OpNewline, expected: "a\nb", caretTo: core.Position{Row: 1}},
		{name: "backspace", content: "ab", caret: core.Position{Col: 2}, op: core.OpBackspace, expected: "a", caretTo: core.Position{Col: 1}},
		{name: "backspace joins lines", content: "a\nb", caret: core.Position{Row: 1}, op: core.OpBackspace, expected: "ab", caretTo: core.Position{Col: 1}},
		{name: "backspace at start", content: "a", op: core.OpBackspace, expected: "a"},
		{name: "delete forward", content: "ab", op: core.OpDeleteForward, expected: "b"},
		{name: "tab expands", content: "", op: core.OpTab, expected: "    ", caretTo: core.Position{Col: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromString(tt.content)
			b.SetPosition(tt.caret)
			if tt.sel != nil {
				b.Select(tt.sel[0], tt.sel[1])
			}

			b.Apply(tt.op)

			assert.Equal(t, tt.expected, b.String())
			if tt.caretTo != (core.Position{}) {
				assert.Equal(t, tt.caretTo, b.Position())
			}
		})
	}
}

func TestApply_TabWithoutExpand(t *testing.T) {
	b := NewFromString("a", WithExpandTab(false))

	b.Apply(core.OpTab)
	b.Apply(core.OpIndent)

	assert.Equal(t, "\t\ta", b.String())
}

func TestApply_ShiftWidth(t *testing.T) {
	b := NewFromString("a", WithShiftWidth(2))

	b.Apply(core.OpIndent)

	assert.Equal(t, "  a", b.String())
}

func TestApply_IndentSelectionIsOneUndoStep(t *testing.T) {
	b := NewFromString("a\nb\nc")
	b.Select(0, b.TextLength())

	b.Apply(core.OpIndent)
	b.Apply(core.OpUndo)

	assert.Equal(t, "a\nb\nc", b.String())
}
