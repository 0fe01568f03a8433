package core

// Position represents a specific location in the text buffer
type Position struct {
	Row int // Zero-indexed row (line number)
	Col int // Zero-indexed column (character position in the line)
}

// Editor is the keystroke interpreter a host drives one key at a time.
type Editor interface {
	// Event handling
	HandleKey(key KeyEvent) // Process a key press

	// State
	Mode() Mode
	GetState() State
	StatusText() string  // Status line including the recording indicator
	WantsRawInput() bool // False while typing text in insert or replace mode
	Reset()              // Same as pressing escape, without recording it

	// Command execution, the text carries its leading ':', '/' or '?'
	ExecuteCommand(cmd string) string

	// Session stores
	Mark(name rune) (Position, bool)
	Macro(name rune) ([]KeyEvent, bool)
	Recording() (rune, bool)
	Register() Register
	LastChange() []string
	LastInsertion() []KeyEvent

	GetUpdateSignalChan() <-chan Signal // For UI updates
}

type Clipboard interface {
	Write(text string) error
	Read() (string, error)
}

// Config tunes the interpreter.
type Config struct {
	ContextMark   rune // Mark set automatically before big jumps
	MaxMacroDepth int  // Nested macro playbacks allowed before aborting
	MaxCount      int  // Upper bound for a typed count
}

func DefaultConfig() Config {
	return Config{
		ContextMark:   '`',
		MaxMacroDepth: 100,
		MaxCount:      99999,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.ContextMark == 0 {
		c.ContextMark = d.ContextMark
	}
	if c.MaxMacroDepth <= 0 {
		c.MaxMacroDepth = d.MaxMacroDepth
	}
	if c.MaxCount <= 0 {
		c.MaxCount = d.MaxCount
	}
	return c
}

// New creates an interpreter over surface using the default configuration.
func New(surface Surface, clipboard Clipboard) Editor {
	return NewWithConfig(surface, clipboard, DefaultConfig())
}

// NewWithConfig creates an interpreter over surface.
func NewWithConfig(surface Surface, clipboard Clipboard, config Config) Editor {
	config = config.withDefaults()
	e := &editor{
		surface:      surface,
		clipboard:    clipboard,
		config:       config,
		modes:        make(map[Mode]editorMode),
		state:        InitialState(),
		count:        newCount(config.MaxCount),
		anchor:       -1,
		marks:        NewMarkStore(),
		macros:       NewMacroStore(),
		repeat:       newRepeatEngine(),
		updateSignal: make(chan Signal, 100), // Buffered channel for updates
	}

	for _, m := range []editorMode{
		normalMode{},
		newInsertMode(InsertMode),
		newInsertMode(ReplaceMode),
		newVisualMode(VisualMode),
		newVisualMode(VisualLineMode),
		commandMode{},
		newOperatorMode(DeleteMode, 'd'),
		newOperatorMode(YankMode, 'y'),
		newOperatorMode(ChangeMode, 'c'),
		newOperatorMode(IndentMode, '>'),
		newOperatorMode(UnindentMode, '<'),
		awaitGMode(),
		awaitFoldMode(),
		awaitMarkMode(),
		awaitGoToMarkMode(),
		awaitMacroNameMode(),
		awaitMacroPlaybackMode(),
		awaitWriteCharMode(),
		confirmMode{},
		unknownMode{},
	} {
		e.modes[m.Name()] = m
	}

	e.current = e.modes[NormalMode]
	e.current.Enter(e)

	return e
}
