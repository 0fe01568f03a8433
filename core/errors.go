package core

import (
	"errors"

	"github.com/ionut-t/govi/internal/log"
)

var (
	ErrInvalidMode    = errors.New("invalid mode")
	ErrClipboardRead  = errors.New("cannot read clipboard")
	ErrClipboardWrite = errors.New("cannot write clipboard")
	ErrMacroDepth     = errors.New("macro recursion limit reached")
	ErrInvalidPattern = errors.New("invalid pattern")
)

type ErrorId int

const (
	ErrInvalidModeId ErrorId = iota
	ErrClipboardReadId
	ErrClipboardWriteId
	ErrMacroDepthId
	ErrInvalidPatternId
)

type Error struct {
	id  ErrorId
	err error
}

func (e Error) Error() string {
	return e.err.Error()
}

func (e Error) Unwrap() error {
	return e.err
}

// DispatchError reports a collaborator failure or a bad regex to the host.
// Grammar errors never come through here, they end up in the status line.
func (e *editor) DispatchError(id ErrorId, err error) {
	log.Error(log.CatCore, "editor error", "id", id, "err", err)
	select {
	case e.updateSignal <- ErrorSignal{id, err}:
	default:
		log.Warn(log.CatCore, "signal channel is full, dropping error")
	}
}
