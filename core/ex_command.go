package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/ionut-t/govi/internal/log"
)

// substitutionGrammar splits "s/pattern/replacement/flags". The separator is
// any character that is not a letter or a digit and must be used every time.
var substitutionGrammar = regexp2.MustCompile(
	`^s(?<sep>[^\p{L}\p{N}])(?<pattern>.+?)\k<sep>(?<replacement>.*?)(?:\k<sep>(?<flags>[gi]*))?$`,
	regexp2.None,
)

// substitution is the last successful pattern and replacement, as typed.
type substitution struct {
	pattern     string
	replacement string
	stored      bool
}

// execute dispatches on the leading character of text and returns a status.
func (e *editor) execute(text string) string {
	log.Debug(log.CatEx, "execute", "text", text)

	switch {
	case strings.HasPrefix(text, "/"):
		return e.searchCommand(text[1:], false)
	case strings.HasPrefix(text, "?"):
		return e.searchCommand(text[1:], true)
	case strings.HasPrefix(text, ":"):
		return e.exCommand(strings.TrimSpace(text[1:]))
	default:
		return e.exCommand(strings.TrimSpace(text))
	}
}

func (e *editor) exCommand(cmd string) string {
	switch {
	case cmd == "":
		return EmptyMessage
	case isLineNumber(cmd):
		return e.jumpToLine(cmd)
	case cmd == "$":
		e.setContextMark()
		e.surface.Move(MotionDocumentEnd)
		e.surface.Move(MotionFirstNonBlank)
		return JumpedToEndMessage
	case cmd == "s":
		if !e.subst.stored {
			return NoStoredPatternMessage
		}
		return e.substitute(e.subst.pattern, e.subst.replacement, "")
	case cmd == "noh" || cmd == "nohlsearch":
		e.search = searchState{}
		return EmptyMessage
	case cmd == "marks":
		return e.describeMarks()
	case cmd == "reset":
		return e.askConfirmation(ConfirmResetMessage, func(yes bool) string {
			if !yes {
				return CancelledMessage
			}
			e.marks.Clear()
			e.macros.Clear()
			return ResetDoneMessage
		})
	}

	if m, err := substitutionGrammar.FindStringMatch(cmd); err == nil && m != nil {
		return e.substitute(
			m.GroupByName("pattern").String(),
			m.GroupByName("replacement").String(),
			m.GroupByName("flags").String(),
		)
	}

	log.Debug(log.CatEx, "not recognised", "cmd", cmd)
	return CommandNotRecognisedMessage
}

func isLineNumber(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func (e *editor) jumpToLine(digits string) string {
	line, err := strconv.Atoi(digits)
	if err != nil {
		// Too large for an int, which clamps to the last line anyway.
		line = e.surface.LineCount()
	}
	if line == 0 {
		e.goToLine(1)
		return JumpedToStartMessage
	}
	row := e.goToLine(line)
	return fmt.Sprintf(JumpedToLineMessage, row+1)
}

// substitute replaces pattern in the selection, or in the caret line when
// nothing is selected. flags may hold g (every match) and i (ignore case).
func (e *editor) substitute(pattern, replacement, flags string) string {
	opts := regexp2.RegexOptions(regexp2.Multiline)
	if strings.ContainsRune(flags, 'i') {
		opts |= regexp2.IgnoreCase
	}
	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		e.DispatchError(ErrInvalidPatternId, fmt.Errorf("%w: %w", ErrInvalidPattern, err))
		return fmt.Sprintf(ReplacementErrorMessage, err.Error())
	}

	s := e.surface
	start, end, ok := s.Selection()
	if !ok {
		row := s.Position().Row
		start = s.LineOffset(row)
		end = start + s.LineLength(row)
	}

	limit := 1
	if strings.ContainsRune(flags, 'g') {
		limit = -1
	}

	text := s.Text(start, end)
	out, err := re.Replace(text, convertReplacement(replacement), -1, limit)
	if err != nil {
		return fmt.Sprintf(ReplacementErrorMessage, err.Error())
	}

	e.subst = substitution{pattern: pattern, replacement: replacement, stored: true}

	if out != text {
		g := s.OpenUndoGroup()
		s.Replace(start, end-start, out)
		g.Close()
	}
	s.ClearSelection()
	s.SetPosition(Position{Row: s.PositionAt(start).Row})
	s.Move(MotionFirstNonBlank)

	log.Debug(log.CatSearch, "substituted", "pattern", pattern, "flags", flags, "changed", out != text)
	return PerformedReplacementMessage
}

// convertReplacement turns vi replacement syntax into the .NET syntax the
// regex engine expects: \N is group N, & the whole match, and $ is literal.
func convertReplacement(repl string) string {
	var b strings.Builder
	runes := []rune(repl)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\\' && i+1 < len(runes):
			next := runes[i+1]
			i++
			switch {
			case next >= '0' && next <= '9':
				b.WriteString("${" + string(next) + "}")
			case next == '$':
				b.WriteString("$$")
			case next == 'n':
				b.WriteRune('\n')
			case next == 't':
				b.WriteRune('\t')
			default:
				b.WriteRune(next)
			}
		case r == '&':
			b.WriteString("$0")
		case r == '$':
			b.WriteString("$$")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
