package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ionut-t/govi/core"
)

func TestSearch(t *testing.T) {
	const text = "foo bar\nbar foo\nbaz"

	tests := []struct {
		name     string
		query    core.SearchQuery
		from     int
		expected int
		found    bool
	}{
		{name: "forward skips match at caret", query: core.SearchQuery{Pattern: "foo"}, from: 0, expected: 12, found: true},
		{name: "forward wraps", query: core.SearchQuery{Pattern: "foo"}, from: 13, expected: 0, found: true},
		{name: "backward", query: core.SearchQuery{Pattern: "bar", Backward: true}, from: 12, expected: 8, found: true},
		{name: "backward wraps to last match", query: core.SearchQuery{Pattern: "bar", Backward: true}, from: 2, expected: 8, found: true},
		{name: "case sensitive miss", query: core.SearchQuery{Pattern: "BAZ"}, from: 0, found: false},
		{name: "ignore case", query: core.SearchQuery{Pattern: "BAZ", IgnoreCase: true}, from: 0, expected: 16, found: true},
		{name: "anchored to line start", query: core.SearchQuery{Pattern: "^bar"}, from: 0, expected: 8, found: true},
		{name: "no match", query: core.SearchQuery{Pattern: "qux"}, from: 0, found: false},
		{name: "empty pattern", query: core.SearchQuery{}, from: 0, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromString(text)

			off, found, err := b.Search(tt.query, tt.from)

			require.NoError(t, err)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.expected, off)
			}
		})
	}
}

func TestSearch_OffsetsCountRunes(t *testing.T) {
	b := NewFromString("ünïcode\nmatch")

	off, found, err := b.Search(core.SearchQuery{Pattern: "match"}, 0)

	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, core.Position{Row: 1, Col: 0}, b.PositionAt(off))
}

func TestSearch_InvalidPattern(t *testing.T) {
	b := NewFromString("abc")

	_, found, err := b.Search(core.SearchQuery{Pattern: "(unclosed"}, 0)

	assert.Error(t, err)
	assert.False(t, found)
}
