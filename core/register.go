package core

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ionut-t/govi/internal/log"
)

// Register is the default register. It mirrors what was last written to the
// clipboard together with its shape.
type Register struct {
	Text     string
	Linewise bool
}

func (e *editor) storeRegister(text string, linewise bool) {
	e.register = Register{Text: text, Linewise: linewise}
	if e.clipboard == nil {
		return
	}
	if err := e.clipboard.Write(text); err != nil {
		e.DispatchError(ErrClipboardWriteId, fmt.Errorf("%w: %w", ErrClipboardWrite, err))
	}
}

// readRegister waits for the clipboard and returns its text and shape. Text
// copied by another program is linewise when it ends with a line break.
func (e *editor) readRegister() (string, bool, bool) {
	text := e.register.Text
	if e.clipboard != nil {
		clip, err := e.clipboard.Read()
		if err != nil {
			e.DispatchError(ErrClipboardReadId, fmt.Errorf("%w: %w", ErrClipboardRead, err))
			return "", false, false
		}
		text = clip
	}
	if text == "" {
		log.Debug(log.CatClipboard, "nothing to paste")
		return "", false, false
	}
	if text == e.register.Text {
		return text, e.register.Linewise, true
	}
	return text, strings.HasSuffix(text, "\n") || strings.HasSuffix(text, "\r"), true
}

func pasteAction(after bool, n int) Action {
	name := "paste.before"
	if after {
		name = "paste.after"
	}
	return Action{
		Name: fmt.Sprintf("%s:%d", name, n),
		Do: func(e *editor) {
			e.paste(after, n)
		},
	}
}

func (e *editor) paste(after bool, n int) {
	text, linewise, ok := e.readRegister()
	if !ok {
		return
	}
	if linewise && !strings.HasSuffix(text, "\n") {
		text = strings.TrimSuffix(text, "\r") + "\n"
	}
	text = strings.Repeat(text, max(n, 1))

	if _, _, selected := e.surface.Selection(); selected {
		e.pasteOverSelection(text, linewise)
	} else if linewise {
		e.pasteLines(text, after)
	} else {
		e.pasteChars(text, after)
	}
	e.DispatchSignal(PasteSignal{text})
}

func (e *editor) pasteLines(text string, after bool) {
	s := e.surface
	row := s.Position().Row
	if after {
		row++
	}
	if row < s.LineCount() {
		s.Replace(s.LineOffset(row), 0, text)
	} else {
		s.Replace(s.TextLength(), 0, "\n"+strings.TrimSuffix(text, "\n"))
	}
	s.SetPosition(Position{Row: row})
	s.Move(MotionFirstNonBlank)
}

func (e *editor) pasteChars(text string, after bool) {
	s := e.surface
	off := s.Offset()
	pos := s.Position()
	if after && pos.Col < s.LineLength(pos.Row) {
		off++
	}
	s.Replace(off, 0, text)
	s.SetOffset(off + utf8.RuneCountInString(text) - 1)
}

// pasteOverSelection replaces the selection with text. The replaced text
// goes to the register, as a cut would.
func (e *editor) pasteOverSelection(text string, linewise bool) {
	start, end, _ := e.surface.Selection()
	wasLinewise := e.linewise
	first, _ := e.lineRows(start, end)
	e.cut()

	s := e.surface
	switch {
	case wasLinewise && linewise:
		if first < s.LineCount() && s.TextLength() > 0 {
			s.Replace(s.LineOffset(first), 0, text)
			s.SetPosition(Position{Row: first})
		} else if s.TextLength() == 0 {
			s.Replace(0, 0, strings.TrimSuffix(text, "\n"))
			s.SetOffset(0)
		} else {
			s.Replace(s.TextLength(), 0, "\n"+strings.TrimSuffix(text, "\n"))
			s.SetPosition(Position{Row: first})
		}
		s.Move(MotionFirstNonBlank)
	case wasLinewise:
		off := s.LineOffset(min(first, s.LineCount()-1))
		s.Replace(off, 0, text+"\n")
		s.SetOffset(off)
	case linewise:
		off := s.Offset()
		s.Replace(off, 0, "\n"+text)
		s.SetPosition(Position{Row: s.PositionAt(off).Row + 1})
	default:
		off := s.Offset()
		s.Replace(off, 0, text)
		s.SetOffset(off + utf8.RuneCountInString(text) - 1)
	}
}
