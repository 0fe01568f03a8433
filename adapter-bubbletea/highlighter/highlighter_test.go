package highlighter

import (
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coverage(spans []Span) int {
	n := 0
	for _, s := range spans {
		n += s.End - s.Start
	}
	return n
}

func TestNew_PicksLexer(t *testing.T) {
	assert.Equal(t, "Go", New("go", "", "monokai").Language())
	assert.Equal(t, "Go", New("", "main.go", "monokai").Language())
	assert.Equal(t, "Go", New("no-such-language", "main.go", "monokai").Language())
	assert.Equal(t, lexers.Fallback.Config().Name, New("", "", "monokai").Language())
}

func TestTokenise_SplitsSpansAtNewlines(t *testing.T) {
	h := New("go", "", "monokai")
	text := "package main\n\nvar s = `a\nbc`"

	h.Tokenise(text)

	assert.Equal(t, len("package main"), coverage(h.Line(0)))
	assert.Empty(t, h.Line(1))
	assert.Equal(t, len("var s = `a"), coverage(h.Line(2)))
	assert.Equal(t, len("bc`"), coverage(h.Line(3)))
	assert.Nil(t, h.Line(99))
	assert.Nil(t, h.Line(-1))

	for _, line := range [][]Span{h.Line(0), h.Line(2), h.Line(3)} {
		col := 0
		for _, s := range line {
			require.Equal(t, col, s.Start, "spans are contiguous")
			col = s.End
		}
	}
}

func TestTokenise_KeywordsGetTheirType(t *testing.T) {
	h := New("go", "", "monokai")

	h.Tokenise("func f() {}")

	spans := h.Line(0)
	require.NotEmpty(t, spans)
	assert.Equal(t, 0, spans[0].Start)
	assert.Equal(t, 4, spans[0].End)
	assert.Equal(t, chroma.KeywordDeclaration, spans[0].Type)
}

func TestTokenise_CountsRunes(t *testing.T) {
	h := New("", "", "monokai")

	h.Tokenise("héllo\nwörld")

	assert.Equal(t, 5, coverage(h.Line(0)))
	assert.Equal(t, 5, coverage(h.Line(1)))
}

func TestTokenise_FollowsTextChanges(t *testing.T) {
	h := New("go", "", "monokai")

	h.Tokenise("var a int")
	first := coverage(h.Line(0))
	h.Tokenise("var a int")
	assert.Equal(t, first, coverage(h.Line(0)))

	h.Tokenise("var abc int")
	assert.Equal(t, len("var abc int"), coverage(h.Line(0)))
}

func TestStyleAt(t *testing.T) {
	h := New("go", "", "monokai")
	h.Tokenise("func f() {}")
	spans := h.Line(0)

	keyword := h.StyleAt(spans, 1)
	assert.Equal(t, h.Style(chroma.KeywordDeclaration).Render("x"), keyword.Render("x"))

	plain := h.StyleAt(spans, 100)
	assert.Equal(t, "x", plain.Render("x"))
}
