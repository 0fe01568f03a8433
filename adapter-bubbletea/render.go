package adapter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/ionut-t/govi/adapter-bubbletea/highlighter"
	"github.com/ionut-t/govi/core"
)

const tabWidth = 4

// expandTabs replaces tabs with spaces up to the next tab stop, counting
// display columns from col.
func expandTabs(s string, col int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += uniseg.StringWidth(string(r))
	}
	return b.String()
}

// displayColumn is the screen column of col on row, tabs expanded.
func (m *Model) displayColumn(row, col int) int {
	runes := []rune(m.buffer.Line(row))
	col = min(col, len(runes))
	return uniseg.StringWidth(expandTabs(string(runes[:col]), 0))
}

func (m *Model) gutterWidth() int {
	if !m.showLineNumbers {
		return 0
	}
	return max(len(strconv.Itoa(m.buffer.LineCount())), 3) + 1
}

func (m *Model) textWidth() int {
	return max(m.viewport.Width-m.gutterWidth(), 1)
}

// nextVisibleRow is the first row after row that is not inside a closed fold.
func (m *Model) nextVisibleRow(row int) int {
	row++
	for row < m.buffer.LineCount() && m.buffer.IsHidden(row) {
		row++
	}
	return row
}

// scrollToCaret moves the window so the caret row and column are on screen
// and tells the buffer which rows that is.
func (m *Model) scrollToCaret() {
	height := max(m.viewport.Height, 1)
	caret := m.buffer.Position()

	top, _ := m.buffer.Viewport()
	for top > 0 && m.buffer.IsHidden(top) {
		top--
	}
	if caret.Row < top {
		top = caret.Row
	}
	for {
		visible, row := 0, top
		for row <= caret.Row && row < m.buffer.LineCount() {
			visible++
			row = m.nextVisibleRow(row)
		}
		if visible <= height {
			break
		}
		top = m.nextVisibleRow(top)
	}
	m.top = top
	m.buffer.SetViewport(top, height)

	width := m.textWidth()
	col := m.displayColumn(caret.Row, caret.Col)
	if col < m.left {
		m.left = col
	} else if col >= m.left+width {
		m.left = col - width + 1
	}
}

// render draws the visible rows into the viewport.
func (m *Model) render() {
	mode := m.editor.Mode()
	caret := m.buffer.Position()
	gutter := m.gutterWidth()
	selStart, selEnd, selected := m.buffer.Selection()

	if m.highlighter != nil {
		m.highlighter.Tokenise(m.buffer.String())
	}

	lines := make([]string, 0, m.viewport.Height)
	row := m.top
	for len(lines) < m.viewport.Height && row < m.buffer.LineCount() {
		var b strings.Builder
		if gutter > 0 {
			b.WriteString(m.lineNumber(row, caret.Row, gutter))
		}

		rowStart := m.buffer.LineOffset(row)
		inSelection := func(col int) bool {
			off := rowStart + col
			return selected && off >= selStart && off < selEnd
		}

		text := m.renderText(row, caret, mode, inSelection)
		if m.buffer.IsFolded(row) {
			text += m.foldSummary(row)
		}
		b.WriteString(ansi.Truncate(ansi.TruncateLeft(text, m.left, ""), m.textWidth(), ""))

		lines = append(lines, b.String())
		row = m.nextVisibleRow(row)
	}

	for len(lines) < m.viewport.Height {
		lines = append(lines, m.theme.TildeStyle.Render("~"))
	}

	m.viewport.SetContent(strings.Join(lines, "\n"))
}

func (m *Model) lineNumber(row, caretRow, width int) string {
	style := m.theme.LineNumberStyle
	n := row + 1
	if row == caretRow {
		style = m.theme.CurrentLineNumberStyle
	} else if m.relativeNumbers {
		n = row - caretRow
		if n < 0 {
			n = -n
		}
	}
	return style.Width(width-1).Render(strconv.Itoa(n)) + " "
}

// renderText styles every character of row: syntax colour first, the
// selection background over it and the caret block on top.
func (m *Model) renderText(row int, caret core.Position, mode core.Mode, inSelection func(int) bool) string {
	var spans []highlighter.Span
	if m.highlighter != nil {
		spans = m.highlighter.Line(row)
	}
	caretStyle := m.theme.modeStyle(mode)
	selection := m.theme.SelectionStyle.GetBackground()

	var b strings.Builder
	runes := []rune(m.buffer.Line(row))
	display := 0
	for col, r := range runes {
		style := lipgloss.NewStyle()
		if m.highlighter != nil {
			style = m.highlighter.StyleAt(spans, col)
		}
		if inSelection(col) {
			style = style.Background(selection)
		}
		if m.isFocused && caret.Row == row && caret.Col == col {
			style = caretStyle
		}

		text := expandTabs(string(r), display)
		display += uniseg.StringWidth(text)
		b.WriteString(style.Render(text))
	}

	// Insert mode and empty lines put the caret after the last character.
	if m.isFocused && caret.Row == row && caret.Col >= len(runes) {
		b.WriteString(caretStyle.Render(" "))
	}

	return b.String()
}

func (m *Model) foldSummary(row int) string {
	hidden := 0
	for r := row + 1; r < m.buffer.LineCount() && m.buffer.IsHidden(r); r++ {
		hidden++
	}
	return m.theme.FoldStyle.Render(fmt.Sprintf("  +-- %d lines", hidden))
}

// modeLabel is the status line badge text, " NORMAL ", " VISUAL LINE " and so on.
func modeLabel(mode core.Mode) string {
	return " " + strings.ToUpper(strings.ReplaceAll(mode.String(), "-", " ")) + " "
}

func (m *Model) statusLine() string {
	state := m.editor.GetState()

	left := m.theme.modeStyle(state.Mode).Render(modeLabel(state.Mode))
	if name, ok := m.editor.Recording(); ok {
		left += m.theme.RecordingStyle.Render(fmt.Sprintf(" REC @%c ", name))
	}

	caret := m.buffer.Position()
	right := fmt.Sprintf("%s %d:%d ", state.PendingCount, caret.Row+1, caret.Col+1)

	name := m.fileName
	if name == "" {
		name = "[No Name]"
	}
	if m.buffer.IsModified() {
		name += " [+]"
	}
	room := m.width - lipgloss.Width(left) - runewidth.StringWidth(right) - 2
	name = runewidth.Truncate(name, max(room, 0), "…")

	gap := max(m.width-lipgloss.Width(left)-runewidth.StringWidth(name)-runewidth.StringWidth(right)-1, 0)
	return left + m.theme.StatusLineStyle.Render(" "+name+strings.Repeat(" ", gap)+right)
}

// commandLine shows the ex text being typed, then host errors and messages,
// then the interpreter status.
func (m *Model) commandLine() string {
	state := m.editor.GetState()

	var text string
	style := m.theme.CommandLineStyle
	switch {
	case state.Mode == core.CommandMode:
		text = state.CommandLine
	case m.err != nil:
		text = m.err.Error()
		style = m.theme.ErrorStyle.Inherit(style)
	case m.message != "":
		text = m.message
		style = m.theme.MessageStyle.Inherit(style)
	default:
		text = m.editor.StatusText()
	}

	text = runewidth.Truncate(text, m.width, "…")
	return style.Render(runewidth.FillRight(text, m.width))
}
