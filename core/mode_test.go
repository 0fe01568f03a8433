package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMode_Classification(t *testing.T) {
	assert.True(t, NormalMode.AcceptsCount())
	assert.True(t, ChangeMode.AcceptsCount())
	assert.False(t, VisualMode.AcceptsCount())
	assert.False(t, CommandMode.AcceptsCount())

	assert.False(t, InsertMode.WantsRawInput())
	assert.False(t, ReplaceMode.WantsRawInput())
	assert.True(t, VisualLineMode.WantsRawInput())

	assert.True(t, VisualLineMode.isVisual())
	assert.True(t, UnindentMode.isOperatorPending())
}
