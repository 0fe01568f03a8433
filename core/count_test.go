package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func push(c *count, digits string) {
	for _, r := range digits {
		c.Push(r)
	}
}

func TestCount(t *testing.T) {
	c := newCount(99999)
	assert.False(t, c.IsSet())
	assert.Equal(t, 1, c.Value())
	assert.Empty(t, c.String())

	push(&c, "12")
	assert.True(t, c.IsSet())
	assert.Equal(t, 12, c.Value())
	assert.Equal(t, "12", c.String())

	c.Freeze()
	assert.Equal(t, "12", c.String())
	assert.Equal(t, 12, c.Value())

	push(&c, "3")
	assert.Equal(t, 36, c.Value())
	assert.Equal(t, "12*3", c.String())

	c.Reset()
	assert.False(t, c.IsSet())
	assert.Equal(t, 1, c.Value())
}

func TestCount_ZeroCountsAsOne(t *testing.T) {
	c := newCount(99999)
	push(&c, "0")

	assert.True(t, c.IsSet())
	assert.Equal(t, 1, c.Value())
}

func TestCount_Capped(t *testing.T) {
	c := newCount(100)

	push(&c, "99999999999999999999999")
	assert.Equal(t, 100, c.Value())

	c.Freeze()
	push(&c, "50")
	assert.Equal(t, 100, c.Value())
}

func TestCount_IgnoresNonDigits(t *testing.T) {
	c := newCount(99999)

	push(&c, "4x")

	assert.Equal(t, "4", c.String())
}

func TestCombineCounts(t *testing.T) {
	assert.Equal(t, 6, combineCounts(2, 3, 100))
	assert.Equal(t, 3, combineCounts(0, 3, 100))
	assert.Equal(t, 100, combineCounts(50, 50, 100))
}
