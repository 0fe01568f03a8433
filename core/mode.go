package core

type Mode string

const (
	NormalMode             Mode = "normal"
	InsertMode             Mode = "insert"
	ReplaceMode            Mode = "replace"
	VisualMode             Mode = "visual"
	VisualLineMode         Mode = "visual-line"
	CommandMode            Mode = "command"
	DeleteMode             Mode = "delete"
	YankMode               Mode = "yank"
	ChangeMode             Mode = "change"
	IndentMode             Mode = "indent"
	UnindentMode           Mode = "unindent"
	AwaitGMode             Mode = "await-g"
	AwaitFoldMode          Mode = "await-fold"
	AwaitMarkMode          Mode = "await-mark"
	AwaitGoToMarkMode      Mode = "await-goto-mark"
	AwaitMacroNameMode     Mode = "await-macro-name"
	AwaitMacroPlaybackMode Mode = "await-macro-playback"
	AwaitWriteCharMode     Mode = "await-write-char"
	ConfirmMode            Mode = "confirm"
	UnknownMode            Mode = "unknown"
)

func (m Mode) String() string {
	return string(m)
}

// AcceptsCount reports whether digits typed in this mode feed the pending count.
func (m Mode) AcceptsCount() bool {
	switch m {
	case NormalMode, DeleteMode, ChangeMode, YankMode, IndentMode, UnindentMode:
		return true
	}
	return false
}

// WantsRawInput reports whether the host should deliver raw keystrokes instead of
// composed text. Only the text entry modes want composition.
func (m Mode) WantsRawInput() bool {
	return m != InsertMode && m != ReplaceMode
}

func (m Mode) isVisual() bool {
	return m == VisualMode || m == VisualLineMode
}

func (m Mode) isOperatorPending() bool {
	switch m {
	case DeleteMode, ChangeMode, YankMode, IndentMode, UnindentMode:
		return true
	}
	return false
}

// editorMode represents a Vim editing mode
type editorMode interface {
	Name() Mode
	// Enter is called when the mode becomes active.
	Enter(e *editor)
	// HandleKey processes a key press after the global keys (escape, cancel,
	// macro capture and count digits) have been filtered out.
	HandleKey(e *editor, key KeyEvent)
}
