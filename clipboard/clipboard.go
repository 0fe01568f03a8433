// Package clipboard provides the clipboards the editor reads and writes its
// default register through.
package clipboard

import (
	"sync"

	sysclip "github.com/atotto/clipboard"

	"github.com/ionut-t/govi/core"
	"github.com/ionut-t/govi/internal/log"
)

// System uses the operating system clipboard.
type System struct{}

func NewSystem() *System {
	return &System{}
}

func (*System) Write(text string) error {
	if err := sysclip.WriteAll(text); err != nil {
		log.ErrorErr(log.CatClipboard, "write failed", err)
		return err
	}
	return nil
}

func (*System) Read() (string, error) {
	text, err := sysclip.ReadAll()
	if err != nil {
		log.ErrorErr(log.CatClipboard, "read failed", err)
		return "", err
	}
	return text, nil
}

// Available reports whether the system clipboard can be used here.
func Available() bool {
	return !sysclip.Unsupported
}

// Memory is a process-local clipboard, safe for concurrent use.
type Memory struct {
	mu   sync.Mutex
	text string
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Write(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

func (m *Memory) Read() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

// New returns the system clipboard when requested and available, and a
// Memory clipboard otherwise.
func New(useSystem bool) core.Clipboard {
	if useSystem && Available() {
		return NewSystem()
	}
	log.Info(log.CatClipboard, "using in-memory clipboard", "requested_system", useSystem)
	return NewMemory()
}
