// Package highlighter colours editor lines with chroma lexers and styles.
package highlighter

import (
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/ionut-t/govi/internal/log"
)

// Span is a run of runes on one line sharing a token type.
type Span struct {
	Type  chroma.TokenType
	Start int // first rune column
	End   int // column after the last rune
}

// Highlighter tokenises a whole document and serves the spans line by line.
// The document is only lexed again when its text changes.
type Highlighter struct {
	lexer chroma.Lexer
	style *chroma.Style

	mu         sync.RWMutex
	source     string
	lines      [][]Span
	styleCache map[chroma.TokenType]lipgloss.Style
}

// New picks the lexer by language name, then by filename, and falls back to
// plain text. Unknown themes fall back to chroma's default style.
func New(language, filename, theme string) *Highlighter {
	var lexer chroma.Lexer
	if language != "" {
		lexer = lexers.Get(language)
	}
	if lexer == nil && filename != "" {
		lexer = lexers.Match(filename)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}

	log.Debug(log.CatUI, "highlighter", "lexer", lexer.Config().Name, "theme", theme)

	return &Highlighter{
		lexer:      chroma.Coalesce(lexer),
		style:      styles.Get(theme),
		styleCache: make(map[chroma.TokenType]lipgloss.Style),
	}
}

// Language is the name of the lexer in use.
func (h *Highlighter) Language() string {
	return h.lexer.Config().Name
}

// Tokenise lexes text unless it is the text lexed last time.
func (h *Highlighter) Tokenise(text string) {
	h.mu.RLock()
	fresh := h.lines != nil && h.source == text
	h.mu.RUnlock()
	if fresh {
		return
	}

	lines := tokenise(h.lexer, text)

	h.mu.Lock()
	h.source = text
	h.lines = lines
	h.mu.Unlock()
}

func tokenise(lexer chroma.Lexer, text string) [][]Span {
	lines := [][]Span{nil}

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		log.ErrorErr(log.CatUI, "tokenise failed", err)
		return lines
	}

	row, col := 0, 0
	for _, token := range iterator.Tokens() {
		value := token.Value
		for {
			before, after, found := strings.Cut(value, "\n")
			if n := len([]rune(before)); n > 0 {
				lines[row] = append(lines[row], Span{Type: token.Type, Start: col, End: col + n})
				col += n
			}
			if !found {
				break
			}
			lines = append(lines, nil)
			row++
			col = 0
			value = after
		}
	}
	return lines
}

// Line returns the spans of row from the last Tokenise call.
func (h *Highlighter) Line(row int) []Span {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if row < 0 || row >= len(h.lines) {
		return nil
	}
	return h.lines[row]
}

// Style converts a chroma token type to a lipgloss style.
func (h *Highlighter) Style(t chroma.TokenType) lipgloss.Style {
	h.mu.RLock()
	style, ok := h.styleCache[t]
	h.mu.RUnlock()
	if ok {
		return style
	}

	entry := h.style.Get(t)

	style = lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		style = style.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}

	h.mu.Lock()
	h.styleCache[t] = style
	h.mu.Unlock()

	return style
}

// StyleAt is the style of the span covering col, or the zero style.
func (h *Highlighter) StyleAt(spans []Span, col int) lipgloss.Style {
	for _, span := range spans {
		if col >= span.Start && col < span.End {
			return h.Style(span.Type)
		}
		if span.Start > col {
			break
		}
	}
	return lipgloss.NewStyle()
}
