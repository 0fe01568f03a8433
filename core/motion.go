package core

// navigationMotions maps the plain character keys that move the caret.
var navigationMotions = map[rune]Motion{
	'h': MotionLeft,
	'l': MotionRight,
	' ': MotionRight,
	'j': MotionDown,
	'k': MotionUp,
	'w': MotionWordForward,
	'b': MotionWordBackward,
	'e': MotionWordEnd,
	'W': MotionBigWordForward,
	'B': MotionBigWordBackward,
	'E': MotionBigWordEnd,
	'^': MotionFirstNonBlank,
	'_': MotionFirstNonBlank,
	'$': MotionLineEnd,
	'+': MotionNextLineStart,
	'-': MotionPrevLineStart,
	'{': MotionParagraphBackward,
	'}': MotionParagraphForward,
	'%': MotionMatchingBracket,
	'H': MotionScreenTop,
	'M': MotionScreenMiddle,
	'L': MotionScreenBottom,
}

// directionalMotions maps the special keys that move the caret.
var directionalMotions = map[KeyCode]Motion{
	KeyLeft:      MotionLeft,
	KeyRight:     MotionRight,
	KeyUp:        MotionUp,
	KeyDown:      MotionDown,
	KeyHome:      MotionLineStart,
	KeyEnd:       MotionLineEnd,
	KeyPageUp:    MotionPageUp,
	KeyPageDown:  MotionPageDown,
	KeyEnter:     MotionNextLineStart,
	KeyBackspace: MotionLeft,
}

var textObjects = map[rune]TextObject{
	'w':  ObjectWord,
	'W':  ObjectBigWord,
	'(':  ObjectParens,
	')':  ObjectParens,
	'b':  ObjectParens,
	'[':  ObjectBrackets,
	']':  ObjectBrackets,
	'{':  ObjectBraces,
	'}':  ObjectBraces,
	'B':  ObjectBraces,
	'<':  ObjectAngles,
	'>':  ObjectAngles,
	'"':  ObjectDoubleQuote,
	'\'': ObjectSingleQuote,
	'`':  ObjectBacktick,
	'p':  ObjectParagraph,
}

func navigationMotion(key KeyEvent) (Motion, bool) {
	if !key.isChar() {
		return 0, false
	}
	m, ok := navigationMotions[key.Rune]
	return m, ok
}

func directionalMotion(key KeyEvent) (Motion, bool) {
	if key.Rune != 0 || key.hasCommandModifier() {
		return 0, false
	}
	m, ok := directionalMotions[key.Key]
	return m, ok
}

// resolveMotion tries the navigation characters first, then the special keys.
func resolveMotion(key KeyEvent) (Motion, bool) {
	if m, ok := navigationMotion(key); ok {
		return m, true
	}
	return directionalMotion(key)
}

func textObjectFor(key KeyEvent) (TextObject, bool) {
	if !key.isChar() {
		return 0, false
	}
	obj, ok := textObjects[key.Rune]
	return obj, ok
}

// moveBy runs m n times from Normal or Visual mode, saving the context mark
// first for the big jumps.
func (e *editor) moveBy(m Motion, n int) {
	if m.bigJump() {
		e.setContextMark()
	}
	for range n {
		if !e.surface.Move(m) {
			break
		}
	}
}

// goToLine jumps to a 1-based line number, clamped to the document, and
// returns the row it landed on.
func (e *editor) goToLine(line int) int {
	e.setContextMark()
	row := min(max(line-1, 0), e.surface.LineCount()-1)
	e.surface.SetPosition(Position{Row: row})
	e.surface.Move(MotionFirstNonBlank)
	return row
}
