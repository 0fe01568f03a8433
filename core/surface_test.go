package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNames(t *testing.T) {
	assert.Equal(t, "word-forward", MotionWordForward.String())
	assert.Equal(t, "unknown", Motion(-1).String())
	assert.Equal(t, "close-all-folds", OpCloseAllFolds.String())
	assert.Equal(t, "double-quote", ObjectDoubleQuote.String())
	assert.Equal(t, "inner", ModifierInner.String())
	assert.Equal(t, "none", ModifierNone.String())
}
