package core

import (
	"github.com/ionut-t/govi/internal/log"
)

const (
	EmptyMessage = ""

	InsertBanner     = "-- INSERT --"
	ReplaceBanner    = "-- REPLACE --"
	VisualBanner     = "-- VISUAL --"
	VisualLineBanner = "-- VISUAL LINE --"

	UnrecognisedMotionMessage = "Unrecognised motion"
	InvalidMarkMessage        = "Invalid Mark"
	UnknownMarkMessage        = "Unknown Mark"
	InvalidMacroNameMessage   = "Invalid Macro Name"
	UnknownMacroMessage       = "Unknown Macro '%c'"
	MacroRecordedMessage      = "Macro Recorded"
	MacroDepthMessage         = "Macro recursion limit reached"
	NotACharacterMessage      = "Keystroke was not a character"
	UnknownCommandMessage     = "Unknown command"
	DeletedMessage            = "Deleted"
	YankedMessage             = "Yanked"
	DeletedSelectionMessage   = "Deleted selection"
	YankedSelectionMessage    = "Yanked selection"
	RecordingSuffix           = " recording @%c"

	CommandNotRecognisedMessage = "Command not recognised"
	JumpedToStartMessage        = "Jumped to beginning of document."
	JumpedToEndMessage          = "Jumped to end of document."
	JumpedToLineMessage         = "Jumped to line %d."
	PerformedReplacementMessage = "Performed replacement."
	ReplacementErrorMessage     = "Replacement error: %s"
	NoStoredPatternMessage      = "No stored pattern."
	PatternNotFoundMessage      = "Pattern not found: '%s'"
	SearchErrorMessage          = "Search error: %s"
	NoPreviousSearchMessage     = "No previous search pattern."
	NoWordUnderCaretMessage     = "No word under cursor"
	NoMarksMessage              = "No marks set."
	ConfirmResetMessage         = "Clear all marks and macros? (y/n)"
	ResetDoneMessage            = "Marks and macros cleared."
	CancelledMessage            = "Cancelled."
)

// DispatchMessage publishes a status change. The first argument is the id,
// the optional second one the text when it differs from the id.
func (e *editor) DispatchMessage(args ...string) {
	id := args[0]
	value := id
	if len(args) > 1 {
		value = args[1]
	}
	select {
	case e.updateSignal <- MessageSignal{id, value}:
	default:
		log.Warn(log.CatCore, "signal channel is full, dropping message", "id", id)
	}
}
