package core

// Surface is the editing surface the interpreter drives. It owns the text, the
// caret, the selection and undo storage; the interpreter only selects and
// sequences its primitives.
//
// Offsets count runes from the start of the document, newlines included.
// Out of range offsets and positions are clamped by the implementation.
type Surface interface {
	Offset() int
	SetOffset(offset int)
	Position() Position
	SetPosition(pos Position)
	PositionAt(offset int) Position
	OffsetAt(pos Position) int

	// Selection returns the half-open range [start, end). The caret is
	// independent of the selection.
	Selection() (start, end int, ok bool)
	Select(start, end int)
	ClearSelection()

	LineCount() int
	// LineLength is the rune count of a line without its newline.
	LineLength(row int) int
	LineOffset(row int) int
	TextLength() int
	Text(start, end int) string

	Replace(offset, length int, text string)
	InsertAtCaret(text string)

	// Move runs a motion primitive and reports whether the caret moved.
	Move(motion Motion) bool
	// Apply runs an operator primitive on the selection, or on the caret line
	// when nothing is selected.
	Apply(op Operation)
	// SelectObject selects the text object around the caret and places the
	// caret at its start.
	SelectObject(obj TextObject, inner bool) bool

	// OpenUndoGroup starts a group that undoes as one step. Groups nest.
	OpenUndoGroup() UndoGroup

	// Search finds the next match of query after from (or before it when
	// searching backward), wrapping around the document.
	Search(query SearchQuery, from int) (offset int, found bool, err error)
}

type UndoGroup interface {
	Close()
}

type SearchQuery struct {
	Pattern    string
	Backward   bool
	IgnoreCase bool
}

type Motion int

const (
	MotionLeft Motion = iota
	MotionRight
	MotionUp
	MotionDown
	MotionWordForward
	MotionWordBackward
	MotionWordEnd
	MotionBigWordForward
	MotionBigWordBackward
	MotionBigWordEnd
	MotionLineStart
	MotionLineEnd // after the last character
	MotionFirstNonBlank
	MotionNextLineStart
	MotionPrevLineStart
	MotionDocumentStart
	MotionDocumentEnd
	MotionMatchingBracket
	MotionParagraphForward
	MotionParagraphBackward
	MotionScreenTop
	MotionScreenMiddle
	MotionScreenBottom
	MotionPageUp
	MotionPageDown
)

var motionNames = map[Motion]string{
	MotionLeft:              "left",
	MotionRight:             "right",
	MotionUp:                "up",
	MotionDown:              "down",
	MotionWordForward:       "word-forward",
	MotionWordBackward:      "word-backward",
	MotionWordEnd:           "word-end",
	MotionBigWordForward:    "big-word-forward",
	MotionBigWordBackward:   "big-word-backward",
	MotionBigWordEnd:        "big-word-end",
	MotionLineStart:         "line-start",
	MotionLineEnd:           "line-end",
	MotionFirstNonBlank:     "first-non-blank",
	MotionNextLineStart:     "next-line-start",
	MotionPrevLineStart:     "prev-line-start",
	MotionDocumentStart:     "document-start",
	MotionDocumentEnd:       "document-end",
	MotionMatchingBracket:   "matching-bracket",
	MotionParagraphForward:  "paragraph-forward",
	MotionParagraphBackward: "paragraph-backward",
	MotionScreenTop:         "screen-top",
	MotionScreenMiddle:      "screen-middle",
	MotionScreenBottom:      "screen-bottom",
	MotionPageUp:            "page-up",
	MotionPageDown:          "page-down",
}

func (m Motion) String() string {
	if name, ok := motionNames[m]; ok {
		return name
	}
	return "unknown"
}

// inclusive motions land on the last character an operator should consume.
func (m Motion) inclusive() bool {
	return m == MotionWordEnd || m == MotionBigWordEnd || m == MotionMatchingBracket
}

// bigJump motions overwrite the context mark before they move.
func (m Motion) bigJump() bool {
	switch m {
	case MotionDocumentStart, MotionDocumentEnd, MotionMatchingBracket:
		return true
	}
	return false
}

type Operation int

const (
	OpIndent Operation = iota
	OpUnindent
	OpJoin
	OpToggleCase
	OpFormat
	OpNewLineBelow
	OpNewLineAbove
	OpNewline
	OpBackspace
	OpDeleteForward
	OpTab
	OpUndo
	OpRedo
	OpToggleFold
	OpOpenFold
	OpCloseFold
	OpToggleFoldRecursive
	OpOpenFoldRecursive
	OpCloseFoldRecursive
	OpOpenAllFolds
	OpCloseAllFolds
)

var operationNames = map[Operation]string{
	OpIndent:              "indent",
	OpUnindent:            "unindent",
	OpJoin:                "join",
	OpToggleCase:          "toggle-case",
	OpFormat:              "format",
	OpNewLineBelow:        "new-line-below",
	OpNewLineAbove:        "new-line-above",
	OpNewline:             "newline",
	OpBackspace:           "backspace",
	OpDeleteForward:       "delete-forward",
	OpTab:                 "tab",
	OpUndo:                "undo",
	OpRedo:                "redo",
	OpToggleFold:          "toggle-fold",
	OpOpenFold:            "open-fold",
	OpCloseFold:           "close-fold",
	OpToggleFoldRecursive: "toggle-fold-recursive",
	OpOpenFoldRecursive:   "open-fold-recursive",
	OpCloseFoldRecursive:  "close-fold-recursive",
	OpOpenAllFolds:        "open-all-folds",
	OpCloseAllFolds:       "close-all-folds",
}

func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return "unknown"
}

type TextObject int

const (
	ObjectWord TextObject = iota
	ObjectBigWord
	ObjectParens
	ObjectBrackets
	ObjectBraces
	ObjectAngles
	ObjectDoubleQuote
	ObjectSingleQuote
	ObjectBacktick
	ObjectParagraph
)

var objectNames = map[TextObject]string{
	ObjectWord:        "word",
	ObjectBigWord:     "big-word",
	ObjectParens:      "parens",
	ObjectBrackets:    "brackets",
	ObjectBraces:      "braces",
	ObjectAngles:      "angles",
	ObjectDoubleQuote: "double-quote",
	ObjectSingleQuote: "single-quote",
	ObjectBacktick:    "backtick",
	ObjectParagraph:   "paragraph",
}

func (o TextObject) String() string {
	if name, ok := objectNames[o]; ok {
		return name
	}
	return "unknown"
}
