package core

import (
	"fmt"
	"slices"

	"github.com/ionut-t/govi/internal/log"
)

// MacroStore holds recorded macros for the session. One macro at most is
// being recorded at a time.
type MacroStore struct {
	macros     map[rune][]KeyEvent
	recording  rune
	events     []KeyEvent
	lastPlayed rune
}

func NewMacroStore() *MacroStore {
	return &MacroStore{
		macros:     make(map[rune][]KeyEvent),
		lastPlayed: '@',
	}
}

func isMacroName(r rune) bool {
	return r < 128 && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
}

// Start begins recording under name, dropping any unfinished recording.
func (s *MacroStore) Start(name rune) {
	s.recording = name
	s.events = nil
}

func (s *MacroStore) IsRecording() bool {
	return s.recording != 0
}

func (s *MacroStore) Recording() (rune, bool) {
	return s.recording, s.recording != 0
}

func (s *MacroStore) Record(k KeyEvent) {
	if s.recording != 0 {
		s.events = append(s.events, k)
	}
}

// Stop saves the recording, replacing whatever the name held before.
func (s *MacroStore) Stop() (rune, []KeyEvent) {
	name := s.recording
	if name == 0 {
		return 0, nil
	}
	s.macros[name] = slices.Clone(s.events)
	s.recording = 0
	s.events = nil
	return name, s.macros[name]
}

// Abort drops the recording without saving it.
func (s *MacroStore) Abort() {
	s.recording = 0
	s.events = nil
}

func (s *MacroStore) Get(name rune) ([]KeyEvent, bool) {
	keys, ok := s.macros[name]
	return slices.Clone(keys), ok
}

func (s *MacroStore) Set(name rune, keys []KeyEvent) error {
	if !isMacroName(name) {
		return fmt.Errorf("invalid macro name %q", name)
	}
	s.macros[name] = slices.Clone(keys)
	return nil
}

func (s *MacroStore) LastPlayed() rune {
	return s.lastPlayed
}

func (s *MacroStore) Clear() {
	s.macros = make(map[rune][]KeyEvent)
	s.lastPlayed = '@'
}

func (e *editor) startRecording(name rune) {
	e.macros.Start(name)
	e.state.Recording = name
	log.Debug(log.CatMacro, "recording started", "name", string(name))
	e.DispatchSignal(MacroSignal{name, true})
}

func (e *editor) stopRecording() {
	name, keys := e.macros.Stop()
	e.state.Recording = 0
	log.Debug(log.CatMacro, "recording stopped", "name", string(name), "keys", len(keys))
	e.DispatchSignal(MacroSignal{name, false})
	e.reset(MacroRecordedMessage)
}

// playMacro feeds the macro's keys back through HandleKey n times. Nested
// playback is bounded by MaxMacroDepth; hitting the bound stops every
// playback still running.
func (e *editor) playMacro(name rune, n int) {
	keys, ok := e.macros.Get(name)
	if !ok {
		e.reset(fmt.Sprintf(UnknownMacroMessage, name))
		return
	}

	if e.macroDepth >= e.config.MaxMacroDepth {
		e.macroAborted = true
		log.Warn(log.CatMacro, "macro depth exceeded", "name", string(name), "depth", e.macroDepth)
		e.DispatchError(ErrMacroDepthId, fmt.Errorf("%w: @%c", ErrMacroDepth, name))
		e.finishInsertSession()
		e.reset(MacroDepthMessage)
		return
	}

	if e.macroDepth == 0 {
		e.macroAborted = false
	}
	e.macros.lastPlayed = name
	e.setContextMark()
	log.Debug(log.CatMacro, "playing", "name", string(name), "count", n, "depth", e.macroDepth)

	g := e.surface.OpenUndoGroup()
	defer g.Close()

	e.macroDepth++
	defer func() { e.macroDepth-- }()

	for range n {
		for _, k := range keys {
			if e.macroAborted {
				return
			}
			e.HandleKey(k)
		}
	}
}
