package adapter

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ionut-t/govi/core"
)

var specialKeys = map[tea.KeyType]core.KeyCode{
	tea.KeyEnter:     core.KeyEnter,
	tea.KeyTab:       core.KeyTab,
	tea.KeyBackspace: core.KeyBackspace,
	tea.KeyEsc:       core.KeyEscape,
	tea.KeyUp:        core.KeyUp,
	tea.KeyDown:      core.KeyDown,
	tea.KeyLeft:      core.KeyLeft,
	tea.KeyRight:     core.KeyRight,
	tea.KeyHome:      core.KeyHome,
	tea.KeyEnd:       core.KeyEnd,
	tea.KeyPgUp:      core.KeyPageUp,
	tea.KeyPgDown:    core.KeyPageDown,
	tea.KeyDelete:    core.KeyDelete,
	tea.KeyInsert:    core.KeyInsert,
}

// convertBubbleKey turns one Bubble Tea key message into keystrokes. Pasted
// or buffered input can carry several runes, each becomes its own keystroke.
func convertBubbleKey(msg tea.KeyMsg) []core.KeyEvent {
	var mods core.KeyModifiers
	if msg.Alt {
		mods |= core.ModAlt
	}

	if code, ok := specialKeys[msg.Type]; ok {
		key := core.Key(code)
		key.Modifiers = mods
		return []core.KeyEvent{key}
	}

	switch msg.Type {
	case tea.KeyRunes:
		keys := make([]core.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, core.KeyEvent{Rune: r, Modifiers: mods})
		}
		return keys

	case tea.KeySpace:
		return []core.KeyEvent{{Rune: ' ', Modifiers: mods}}

	case tea.KeyShiftTab:
		return []core.KeyEvent{{Key: core.KeyTab, Modifiers: mods | core.ModShift}}
	}

	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		r := 'a' + rune(msg.Type-tea.KeyCtrlA)
		return []core.KeyEvent{{Rune: r, Modifiers: mods | core.ModCtrl}}
	}

	return nil
}
