package core

import (
	"fmt"
	"unicode"

	"github.com/dlclark/regexp2"

	"github.com/ionut-t/govi/internal/log"
)

type searchState struct {
	pattern       string
	backward      bool
	caseSensitive bool
}

// searchCommand handles a typed "/pattern" or "?pattern". An empty pattern
// reuses the previous one.
func (e *editor) searchCommand(pattern string, backward bool) string {
	if pattern == "" {
		pattern = e.search.pattern
	}
	if pattern == "" {
		return NoPreviousSearchMessage
	}
	e.search = searchState{pattern: pattern, backward: backward, caseSensitive: hasUpper(pattern)}
	return e.find(e.search, backward)
}

// searchAgain is n and N; reverse flips the direction of the last search.
func (e *editor) searchAgain(reverse bool, n int) string {
	if e.search.pattern == "" {
		return NoPreviousSearchMessage
	}
	backward := e.search.backward != reverse
	for range n {
		if status := e.find(e.search, backward); status != EmptyMessage {
			return status
		}
	}
	return EmptyMessage
}

// searchWord is * and #: the word under the caret, matched whole and with
// its exact case.
func (e *editor) searchWord(backward bool) string {
	word := e.wordUnderCaret()
	if word == "" {
		return NoWordUnderCaretMessage
	}
	pattern := `(?<!\w)` + regexp2.Escape(word) + `(?!\w)`
	e.search = searchState{pattern: pattern, backward: backward, caseSensitive: true}
	return e.find(e.search, backward)
}

func (e *editor) find(search searchState, backward bool) string {
	query := SearchQuery{
		Pattern:    search.pattern,
		Backward:   backward,
		IgnoreCase: !search.caseSensitive,
	}
	off, found, err := e.surface.Search(query, e.surface.Offset())
	if err != nil {
		e.DispatchError(ErrInvalidPatternId, fmt.Errorf("%w: %w", ErrInvalidPattern, err))
		return fmt.Sprintf(SearchErrorMessage, err.Error())
	}
	if !found {
		log.Debug(log.CatSearch, "no match", "pattern", search.pattern, "backward", backward)
		return fmt.Sprintf(PatternNotFoundMessage, search.pattern)
	}

	e.setContextMark()
	e.surface.SetOffset(off)
	return EmptyMessage
}

// hasUpper reports whether pattern asks for a case-sensitive search.
func hasUpper(pattern string) bool {
	for _, r := range pattern {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

// wordUnderCaret returns the word at or after the caret on its line.
func (e *editor) wordUnderCaret() string {
	s := e.surface
	pos := s.Position()
	start := s.LineOffset(pos.Row)
	line := []rune(s.Text(start, start+s.LineLength(pos.Row)))

	col := pos.Col
	for col < len(line) && !isWordRune(line[col]) {
		col++
	}
	if col >= len(line) {
		return ""
	}

	from, to := col, col
	for from > 0 && isWordRune(line[from-1]) {
		from--
	}
	for to < len(line) && isWordRune(line[to]) {
		to++
	}
	return string(line[from:to])
}
