package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_NoopWithoutOutput(t *testing.T) {
	SetOutput(nil)
	assert.NotPanics(t, func() {
		Debug(CatMode, "ignored", "k", "v")
	})
}

func TestLog_Format(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	Info(CatMacro, "macro recorded", "name", "a", "keys", 3)

	line := buf.String()
	assert.Contains(t, line, "[INFO] [macro] macro recorded name=a keys=3")
	assert.True(t, line[len(line)-1] == '\n')
}

func TestLog_OrphanField(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	Warn(CatEx, "odd", "lonely")

	assert.Contains(t, buf.String(), "lonely=<missing>")
}

func TestLog_MinLevelAndEnabled(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	SetMinLevel(LevelWarn)
	Debug(CatKeys, "hidden")
	Info(CatKeys, "hidden")
	Error(CatKeys, "shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[ERROR] [keys] shown")

	buf.Reset()
	SetEnabled(false)
	Error(CatKeys, "muted")
	assert.Empty(t, buf.String())
}

func TestLog_ErrorErr(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	ErrorErr(CatClipboard, "read failed", os.ErrNotExist)
	ErrorErr(CatClipboard, "read failed", nil)

	assert.Contains(t, buf.String(), "error=file does not exist")
	assert.Contains(t, buf.String(), "error=<nil>")
}

func TestLog_InitWithTeaLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := InitWithTeaLog(path, "govi")
	require.NoError(t, err)
	t.Cleanup(func() { SetOutput(nil) })

	Debug(CatUI, "resized", "width", 80)
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBUG] [ui] resized width=80")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		" warn ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelDebug,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}
