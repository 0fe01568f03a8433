package core_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/ionut-t/govi/buffer"
	"github.com/ionut-t/govi/clipboard"
	"github.com/ionut-t/govi/core"
)

// commandKeys excludes digits, macros and Enter so random input stays small
// and never runs an ex command.
var commandKeys = []core.KeyEvent{
	core.Rune('h'), core.Rune('j'), core.Rune('k'), core.Rune('l'),
	core.Rune('w'), core.Rune('b'), core.Rune('e'), core.Rune('$'),
	core.Rune('x'), core.Rune('X'), core.Rune('d'), core.Rune('c'),
	core.Rune('y'), core.Rune('p'), core.Rune('P'), core.Rune('u'),
	core.Rune('i'), core.Rune('a'), core.Rune('o'), core.Rune('O'),
	core.Rune('A'), core.Rune('v'), core.Rune('V'), core.Rune('J'),
	core.Rune('~'), core.Rune('.'), core.Rune('>'), core.Rune('<'),
	core.Rune('g'), core.Rune('G'), core.Rune('m'), core.Rune('`'),
	core.Rune('r'), core.Rune('z'), core.Rune(':'), core.Rune('/'),
	core.Rune(' '), core.Key(core.KeyEscape), core.Key(core.KeyBackspace),
}

func drawText(t *rapid.T) string {
	lines := rapid.SliceOfN(rapid.StringMatching(`[a-z ]{0,8}`), 1, 4).Draw(t, "lines")
	return strings.Join(lines, "\n")
}

func drawKeys(t *rapid.T) []core.KeyEvent {
	return rapid.SliceOfN(rapid.SampledFrom(commandKeys), 0, 20).Draw(t, "keys")
}

func TestProperty_CountRepeatsDelete(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-z]{1,12}`).Draw(t, "text")
		n := rapid.IntRange(1, 15).Draw(t, "n")

		counted := buffer.NewFromString(text)
		typeKeys(core.New(counted, clipboard.NewMemory()), strconv.Itoa(n)+"x")

		repeated := buffer.NewFromString(text)
		typeKeys(core.New(repeated, clipboard.NewMemory()), strings.Repeat("x", n))

		require.Equal(t, repeated.String(), counted.String())
		require.Equal(t, text[min(n, len(text)):], counted.String())
	})
}

var cancelKeys = []core.KeyEvent{esc, core.Ctrl('c'), core.Ctrl('[')}

func TestProperty_CancelKeysAgree(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := drawText(t)
		keys := drawKeys(t)
		digits := rapid.StringMatching(`[1-9]?[0-9]?`).Draw(t, "digits")
		cancel := rapid.SampledFrom(cancelKeys).Draw(t, "cancel")

		escBuf := buffer.NewFromString(text)
		escaped := core.New(escBuf, clipboard.NewMemory())
		press(escaped, keys...)
		typeKeys(escaped, digits)
		press(escaped, esc)

		cancelBuf := buffer.NewFromString(text)
		cancelled := core.New(cancelBuf, clipboard.NewMemory())
		press(cancelled, keys...)
		typeKeys(cancelled, digits)
		press(cancelled, cancel)

		resetBuf := buffer.NewFromString(text)
		reset := core.New(resetBuf, clipboard.NewMemory())
		press(reset, keys...)
		typeKeys(reset, digits)
		reset.Reset()

		for _, other := range []struct {
			e   core.Editor
			buf *buffer.Buffer
		}{{cancelled, cancelBuf}, {reset, resetBuf}} {
			require.Equal(t, core.NormalMode, other.e.Mode())
			require.Empty(t, other.e.GetState().PendingCount)
			require.Equal(t, escaped.GetState(), other.e.GetState())
			require.Equal(t, escBuf.String(), other.buf.String())
			require.Equal(t, escBuf.Position(), other.buf.Position())
			require.Equal(t, escaped.LastChange(), other.e.LastChange())
			require.Equal(t, escaped.LastInsertion(), other.e.LastInsertion())
		}
	})
}

func TestProperty_UndoRestoresText(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := drawText(t)
		keys := drawKeys(t)

		buf := buffer.NewFromString(text)
		e := core.New(buf, clipboard.NewMemory())
		press(e, keys...)
		press(e, esc)

		for range len(keys) + 1 {
			typeKeys(e, "u")
		}

		require.Equal(t, text, buf.String())
	})
}

func TestProperty_YankPasteDuplicatesLine(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-z ]{0,8}`), 1, 5).Draw(t, "lines")
		row := rapid.IntRange(0, len(lines)-1).Draw(t, "row")

		buf := buffer.NewFromString(strings.Join(lines, "\n"))
		e := core.New(buf, clipboard.NewMemory())
		if row > 0 {
			typeKeys(e, strconv.Itoa(row)+"j")
		}
		typeKeys(e, "yyp")

		require.Equal(t, len(lines)+1, buf.LineCount())
		require.Equal(t, lines[row], buf.Line(row+1))
		require.Equal(t, row+1, buf.Position().Row)
		require.Equal(t, core.Register{Text: lines[row] + "\n", Linewise: true}, e.Register())
	})
}

func TestProperty_NormalModeCaretStaysOnText(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := drawText(t)
		keys := drawKeys(t)

		buf := buffer.NewFromString(text)
		e := core.New(buf, clipboard.NewMemory())
		press(e, keys...)
		press(e, esc)

		p := buf.Position()
		require.Less(t, p.Row, buf.LineCount())
		if n := buf.LineLength(p.Row); n > 0 {
			require.Less(t, p.Col, n)
		}
	})
}
