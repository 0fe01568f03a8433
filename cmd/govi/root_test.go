package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ionut-t/govi/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConfigInit_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "govi", "config.yaml")

	out, err := execute(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), cfg)
}

func TestConfigInit_UsesConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")

	_, err := execute(t, "--config", path, "config", "init")
	require.NoError(t, err)

	assert.FileExists(t, path)
}

func TestConfigInit_KeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme: github\n"), 0o600))

	_, err := execute(t, "config", "init", path)
	assert.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "github")

	_, err = execute(t, "config", "init", "--force", path)
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "github")
}

func TestRoot_RejectsExtraArguments(t *testing.T) {
	_, err := execute(t, "a.txt", "b.txt")

	assert.Error(t, err)
}

func TestRoot_HelpMentionsKeys(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "Ctrl+S writes the file")
	assert.Contains(t, out, "--no-line-numbers")
}
