package core

import (
	"fmt"
	"strings"
)

// KeyCode represents non-character keys
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape
	KeySpace

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Navigation keys
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Editing keys
	KeyDelete
	KeyInsert
)

// KeyModifiers represents modifier keys held during a keystroke
type KeyModifiers uint8

const (
	ModNone KeyModifiers = 0
	ModCtrl KeyModifiers = 1 << iota
	ModAlt
	ModShift
)

// KeyEvent is a single raw keystroke. It is what macros and insert replay store,
// so it must carry everything needed to dispatch the key again.
type KeyEvent struct {
	Rune      rune
	Key       KeyCode
	Modifiers KeyModifiers
}

// Rune builds the keystroke for a plain character.
func Rune(r rune) KeyEvent {
	return KeyEvent{Rune: r}
}

// Key builds the keystroke for a special key.
func Key(code KeyCode) KeyEvent {
	return KeyEvent{Key: code}
}

// Ctrl builds a control chord such as Ctrl-C.
func Ctrl(r rune) KeyEvent {
	return KeyEvent{Rune: r, Modifiers: ModCtrl}
}

// Keys converts every rune of s into a plain keystroke.
func Keys(s string) []KeyEvent {
	keys := make([]KeyEvent, 0, len(s))
	for _, r := range s {
		keys = append(keys, Rune(r))
	}
	return keys
}

func (k KeyEvent) hasCommandModifier() bool {
	return k.Modifiers&(ModCtrl|ModAlt) != 0
}

// isChar reports whether the key produced a printable character with no Ctrl or Alt.
func (k KeyEvent) isChar() bool {
	return k.Key == KeyUnknown && k.Rune != 0 && !k.hasCommandModifier()
}

func (k KeyEvent) is(r rune) bool {
	return k.isChar() && k.Rune == r
}

func (k KeyEvent) isCtrl(r rune) bool {
	return k.Modifiers&ModCtrl != 0 && k.Modifiers&ModAlt == 0 && (k.Rune == r || k.Rune == r-'a'+'A')
}

func (k KeyEvent) isCancel() bool {
	return k.isCtrl('c') || (k.Modifiers&ModCtrl != 0 && k.Rune == '[')
}

func (k KeyEvent) isDigit() bool {
	return k.isChar() && k.Rune >= '0' && k.Rune <= '9'
}

// String returns a string representation of a Key
func (k KeyEvent) String() string {
	var parts []string

	if k.Modifiers&ModCtrl != 0 {
		parts = append(parts, "Ctrl")
	}
	if k.Modifiers&ModAlt != 0 {
		parts = append(parts, "Alt")
	}
	if k.Modifiers&ModShift != 0 {
		parts = append(parts, "Shift")
	}

	if k.Rune != 0 {
		parts = append(parts, string(k.Rune))
	} else {
		parts = append(parts, k.Key.String())
	}

	return strings.Join(parts, "+")
}

func (c KeyCode) String() string {
	switch c {
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyEscape:
		return "Escape"
	case KeySpace:
		return "Space"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyDelete:
		return "Delete"
	case KeyInsert:
		return "Insert"
	case KeyUnknown:
		return "Unknown"
	default:
		return fmt.Sprintf("SpecialKey(%d)", int(c))
	}
}
