package core_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ionut-t/govi/core"
)

func TestCommandLine_TypingAndBackspace(t *testing.T) {
	e, _ := newEditor(t, "abc")

	typeKeys(e, ":ab")
	assert.Equal(t, core.CommandMode, e.Mode())
	assert.Equal(t, ":ab", e.GetState().CommandLine)
	assert.Equal(t, ":ab", e.StatusText())

	press(e, core.Key(core.KeyBackspace))
	assert.Equal(t, ":a", e.GetState().CommandLine)

	press(e, core.Key(core.KeySpace))
	assert.Equal(t, ":a ", e.GetState().CommandLine)

	press(e, core.Key(core.KeyBackspace), core.Key(core.KeyBackspace), core.Key(core.KeyBackspace))
	assert.Equal(t, core.NormalMode, e.Mode())
	assert.Empty(t, e.GetState().CommandLine)
}

func TestCommandLine_DigitsAreText(t *testing.T) {
	e, buf := newEditor(t, "a\nb\nc")

	typeKeys(e, ":3")
	assert.Equal(t, ":3", e.GetState().CommandLine)
	assert.Empty(t, e.GetState().PendingCount)

	press(e, enter)
	assert.Equal(t, pos(2, 0), buf.Position())
	assert.Equal(t, fmt.Sprintf(core.JumpedToLineMessage, 3), e.GetState().StatusLine)
	assert.Equal(t, core.NormalMode, e.Mode())
}

func TestExecuteCommand_Jumps(t *testing.T) {
	tests := []struct {
		cmd    string
		status string
		caret  core.Position
	}{
		{cmd: ":2", status: fmt.Sprintf(core.JumpedToLineMessage, 2), caret: pos(1, 0)},
		{cmd: ":99", status: fmt.Sprintf(core.JumpedToLineMessage, 3), caret: pos(2, 2)},
		{cmd: ":99999999999999999999999", status: fmt.Sprintf(core.JumpedToLineMessage, 3), caret: pos(2, 2)},
		{cmd: ":0", status: core.JumpedToStartMessage, caret: pos(0, 0)},
		{cmd: ":$", status: core.JumpedToEndMessage, caret: pos(2, 2)},
		{cmd: ": 2 ", status: fmt.Sprintf(core.JumpedToLineMessage, 2), caret: pos(1, 0)},
		{cmd: "2", status: fmt.Sprintf(core.JumpedToLineMessage, 2), caret: pos(1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			e, buf := newEditor(t, "one\ntwo\n  three")
			typeKeys(e, "l")

			status := e.ExecuteCommand(tt.cmd)

			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.status, e.GetState().StatusLine)
			assert.Equal(t, tt.caret, buf.Position())

			mark, ok := e.Mark('`')
			require.True(t, ok)
			assert.Equal(t, pos(0, 1), mark)
		})
	}
}

func TestExecuteCommand_NotRecognised(t *testing.T) {
	e, buf := newEditor(t, "abc")

	status := e.ExecuteCommand(":frobnicate")

	assert.Equal(t, core.CommandNotRecognisedMessage, status)
	assert.Equal(t, "abc", buf.String())
	assert.Equal(t, core.NormalMode, e.Mode())
}

func TestExecuteCommand_Empty(t *testing.T) {
	e, _ := newEditor(t, "abc")

	assert.Empty(t, e.ExecuteCommand(":"))
}

func TestExecuteCommand_FinishesInsertSession(t *testing.T) {
	e, buf := newEditor(t, "a\nb")

	typeKeys(e, "ix")
	e.ExecuteCommand(":2")

	assert.Equal(t, core.NormalMode, e.Mode())
	assert.Equal(t, "xa\nb", buf.String())
	assert.Equal(t, core.Keys("x"), e.LastInsertion())
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		cmd      string
		expected string
	}{
		{name: "first match", text: "foo foo\nfoo", cmd: ":s/foo/bar/", expected: "bar foo\nfoo"},
		{name: "no trailing separator", text: "foo foo", cmd: ":s/foo/bar", expected: "bar foo"},
		{name: "global", text: "foo foo\nfoo", cmd: ":s/foo/bar/g", expected: "bar bar\nfoo"},
		{name: "ignore case", text: "FOO", cmd: ":s/foo/bar/i", expected: "bar"},
		{name: "case sensitive", text: "FOO", cmd: ":s/foo/bar/", expected: "FOO"},
		{name: "other separator", text: "a/b", cmd: ":s#/#-#", expected: "a-b"},
		{name: "groups", text: "hello world", cmd: `:s/(\w+) (\w+)/\2 \1/`, expected: "world hello"},
		{name: "whole match", text: "foo", cmd: ":s/o/<&>/g", expected: "f<o><o>"},
		{name: "literal dollar", text: "cost", cmd: ":s/cost/$5/", expected: "$5"},
		{name: "escaped ampersand", text: "a", cmd: `:s/a/\&/`, expected: "&"},
		{name: "empty replacement", text: "abc", cmd: ":s/b//", expected: "ac"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, buf := newEditor(t, tt.text)

			status := e.ExecuteCommand(tt.cmd)

			assert.Equal(t, core.PerformedReplacementMessage, status)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestSubstitute_OnCaretLineOnly(t *testing.T) {
	e, buf := newEditor(t, "foo\nfoo\nfoo")

	typeKeys(e, "j")
	e.ExecuteCommand(":s/foo/bar/")

	assert.Equal(t, "foo\nbar\nfoo", buf.String())
	assert.Equal(t, pos(1, 0), buf.Position())
}

func TestSubstitute_RepeatStored(t *testing.T) {
	e, buf := newEditor(t, "foo\nfoo")

	assert.Equal(t, core.NoStoredPatternMessage, e.ExecuteCommand(":s"))

	e.ExecuteCommand(":s/foo/bar/")
	typeKeys(e, "j")
	status := e.ExecuteCommand(":s")

	assert.Equal(t, core.PerformedReplacementMessage, status)
	assert.Equal(t, "bar\nbar", buf.String())
}

func TestSubstitute_InvalidPatternLeavesBuffer(t *testing.T) {
	e, buf := newEditor(t, "a(b")

	status := e.ExecuteCommand(":s/(/x/")

	assert.True(t, strings.HasPrefix(status, "Replacement error: "), status)
	assert.Equal(t, "a(b", buf.String())
	assert.Equal(t, core.NoStoredPatternMessage, e.ExecuteCommand(":s"))
}

func TestSubstitute_UndoesAsOneStep(t *testing.T) {
	e, buf := newEditor(t, "a a a")

	e.ExecuteCommand(":s/a/b/g")
	require.Equal(t, "b b b", buf.String())

	typeKeys(e, "u")
	assert.Equal(t, "a a a", buf.String())
}

func TestMarksCommand(t *testing.T) {
	e, _ := newEditor(t, "one\ntwo")

	assert.Equal(t, core.NoMarksMessage, e.ExecuteCommand(":marks"))

	typeKeys(e, "jlmbkhma")
	assert.Equal(t, "marks: a 1:0, b 2:1", e.ExecuteCommand(":marks"))

	typeKeys(e, "G")
	assert.Equal(t, "marks: ` 1:0, a 1:0, b 2:1", e.ExecuteCommand(":marks"))
}

func TestResetCommand(t *testing.T) {
	e, _ := newEditor(t, "abc")
	typeKeys(e, "maqaxq")

	typeKeys(e, ":reset")
	press(e, enter)
	assert.Equal(t, core.ConfirmMode, e.Mode())
	assert.Equal(t, core.ConfirmResetMessage, e.StatusText())

	typeKeys(e, "n")
	assert.Equal(t, core.CancelledMessage, e.GetState().StatusLine)
	_, ok := e.Mark('a')
	assert.True(t, ok)

	assert.Equal(t, core.ConfirmResetMessage, e.ExecuteCommand(":reset"))
	typeKeys(e, "y")
	assert.Equal(t, core.ResetDoneMessage, e.GetState().StatusLine)
	assert.Equal(t, core.NormalMode, e.Mode())

	_, ok = e.Mark('a')
	assert.False(t, ok)
	_, ok = e.Macro('a')
	assert.False(t, ok)
}

func TestResetCommand_OtherKeysCancel(t *testing.T) {
	e, _ := newEditor(t, "abc")
	typeKeys(e, "ma")

	e.ExecuteCommand(":reset")
	typeKeys(e, "x")

	assert.Equal(t, core.CancelledMessage, e.GetState().StatusLine)
	_, ok := e.Mark('a')
	assert.True(t, ok)
}

func TestSearch_ForwardAndAgain(t *testing.T) {
	e, buf := newEditor(t, "foo bar\nbaz foo\nFoo")

	typeKeys(e, "/foo")
	assert.Equal(t, "/foo", e.GetState().CommandLine)
	press(e, enter)
	assert.Equal(t, pos(1, 4), buf.Position())
	assert.Empty(t, e.GetState().StatusLine)

	typeKeys(e, "n")
	assert.Equal(t, pos(2, 0), buf.Position(), "lower case patterns ignore case")

	typeKeys(e, "n")
	assert.Equal(t, pos(0, 0), buf.Position(), "search wraps around")

	typeKeys(e, "N")
	assert.Equal(t, pos(2, 0), buf.Position())

	typeKeys(e, "2n")
	assert.Equal(t, pos(1, 4), buf.Position())
}

func TestSearch_Backward(t *testing.T) {
	e, buf := newEditor(t, "foo\nbar\nfoo")

	e.ExecuteCommand("?foo")
	assert.Equal(t, pos(2, 0), buf.Position())

	typeKeys(e, "n")
	assert.Equal(t, pos(0, 0), buf.Position())

	typeKeys(e, "N")
	assert.Equal(t, pos(2, 0), buf.Position())
}

func TestSearch_UpperCaseIsCaseSensitive(t *testing.T) {
	e, buf := newEditor(t, "foo\nFoo")

	e.ExecuteCommand("/Foo")

	assert.Equal(t, pos(1, 0), buf.Position())
}

func TestSearch_SavesContextMark(t *testing.T) {
	e, _ := newEditor(t, "abc\nabc")

	typeKeys(e, "l")
	e.ExecuteCommand("/abc")

	mark, ok := e.Mark('`')
	require.True(t, ok)
	assert.Equal(t, pos(0, 1), mark)
}

func TestSearch_Failures(t *testing.T) {
	e, buf := newEditor(t, "abc")

	assert.Equal(t, core.NoPreviousSearchMessage, e.ExecuteCommand("/"))

	typeKeys(e, "n")
	assert.Equal(t, core.NoPreviousSearchMessage, e.GetState().StatusLine)

	assert.Equal(t, fmt.Sprintf(core.PatternNotFoundMessage, "zzz"), e.ExecuteCommand("/zzz"))
	assert.Equal(t, pos(0, 0), buf.Position())
	_, ok := e.Mark('`')
	assert.False(t, ok, "a failed search does not move the context mark")

	status := e.ExecuteCommand("/(")
	assert.True(t, strings.HasPrefix(status, "Search error: "), status)
}

func TestSearch_EmptyPatternReusesLast(t *testing.T) {
	e, buf := newEditor(t, "x a x a")

	e.ExecuteCommand("/a")
	require.Equal(t, pos(0, 2), buf.Position())

	e.ExecuteCommand("/")
	assert.Equal(t, pos(0, 6), buf.Position())
}

func TestSearch_WordUnderCaret(t *testing.T) {
	e, buf := newEditor(t, "foo bar\nfoobar foo\nfoo")

	typeKeys(e, "*")
	assert.Equal(t, pos(1, 7), buf.Position(), "whole words only")

	typeKeys(e, "n")
	assert.Equal(t, pos(2, 0), buf.Position())

	typeKeys(e, "#")
	assert.Equal(t, pos(1, 7), buf.Position())
}

func TestSearch_WordUnderCaretMatchesCase(t *testing.T) {
	e, buf := newEditor(t, "foo Foo foo")

	typeKeys(e, "*")
	assert.Equal(t, pos(0, 8), buf.Position())

	typeKeys(e, "n")
	assert.Equal(t, pos(0, 0), buf.Position(), "n keeps the exact case")

	typeKeys(e, "w#")
	assert.Equal(t, pos(0, 4), buf.Position(), "Foo is its only match")
}

func TestSearch_TypedPatternIgnoresCaseAfterWordSearch(t *testing.T) {
	e, buf := newEditor(t, "foo Foo foo")

	typeKeys(e, "*")
	require.Equal(t, pos(0, 8), buf.Position())

	e.ExecuteCommand("?foo")
	assert.Equal(t, pos(0, 4), buf.Position())
}

func TestSearch_NoWordUnderCaret(t *testing.T) {
	e, _ := newEditor(t, "   \nabc")

	typeKeys(e, "*")

	assert.Equal(t, core.NoWordUnderCaretMessage, e.GetState().StatusLine)
}

func TestNohClearsSearch(t *testing.T) {
	e, _ := newEditor(t, "abc abc")

	e.ExecuteCommand("/abc")
	assert.Empty(t, e.ExecuteCommand(":noh"))

	typeKeys(e, "n")
	assert.Equal(t, core.NoPreviousSearchMessage, e.GetState().StatusLine)
}
