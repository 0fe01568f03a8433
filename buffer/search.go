package buffer

import (
	"github.com/dlclark/regexp2"

	"github.com/ionut-t/govi/core"
)

// Search finds the next match of query after from, or the previous one before
// it, wrapping around the document. Offsets from regexp2 count runes, as the
// buffer does.
func (b *Buffer) Search(query core.SearchQuery, from int) (int, bool, error) {
	if query.Pattern == "" {
		return 0, false, nil
	}

	opts := regexp2.RegexOptions(regexp2.Multiline)
	if query.IgnoreCase {
		opts |= regexp2.IgnoreCase
	}
	re, err := regexp2.Compile(query.Pattern, opts)
	if err != nil {
		return 0, false, err
	}

	text := []rune(b.String())
	m, err := re.FindRunesMatch(text)
	if err != nil {
		return 0, false, err
	}

	first, before, after := -1, -1, -1
	for m != nil {
		idx := m.Index
		if first < 0 {
			first = idx
		}
		if idx < from {
			before = idx
		}
		if idx > from && after < 0 {
			after = idx
			if !query.Backward {
				break
			}
		}
		last := idx
		if m, err = re.FindNextMatch(m); err != nil {
			return 0, false, err
		}
		if m == nil && query.Backward && before < 0 {
			// Wrap to the last match in the document.
			before = last
		}
	}

	switch {
	case first < 0:
		return 0, false, nil
	case query.Backward:
		return before, before >= 0, nil
	case after >= 0:
		return after, true, nil
	default:
		return first, true, nil
	}
}
