package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkStore_NamesAreSorted(t *testing.T) {
	s := NewMarkStore()
	s.Set('b', Position{Row: 1})
	s.Set('`', Position{})
	s.Set('a', Position{Row: 2})

	assert.Equal(t, []rune{'`', 'a', 'b'}, s.Names())

	s.Clear()
	assert.Empty(t, s.Names())
}
