package core

// commandMode collects an ex command or a search pattern. The buffer keeps the
// leading ':', '/' or '?' that opened it.
type commandMode struct{}

func (commandMode) Name() Mode {
	return CommandMode
}

func (commandMode) Enter(e *editor) {
	e.syncCommandLine()
}

func (e *editor) enterCommand(prefix rune) {
	e.count.Reset()
	e.command = []rune{prefix}
	e.setMode(CommandMode)
}

func (e *editor) syncCommandLine() {
	e.state.CommandLine = string(e.command)
	e.setStatus(e.state.CommandLine)
}

func (commandMode) HandleKey(e *editor, key KeyEvent) {
	switch {
	case key.Key == KeyEnter && !key.hasCommandModifier():
		text := string(e.command)
		e.command = nil
		e.state.CommandLine = ""
		status := e.execute(text)
		if e.state.Mode != ConfirmMode {
			e.reset(status)
		}
	case key.Key == KeyBackspace && !key.hasCommandModifier():
		if len(e.command) > 0 {
			e.command = e.command[:len(e.command)-1]
		}
		if len(e.command) == 0 {
			e.reset(EmptyMessage)
			return
		}
		e.syncCommandLine()
	case key.Key == KeySpace:
		e.command = append(e.command, ' ')
		e.syncCommandLine()
	case key.isChar():
		e.command = append(e.command, key.Rune)
		e.syncCommandLine()
	}
}

// ExecuteCommand runs an ex command or search as if it had been typed on the
// command line and returns the status it produced.
func (e *editor) ExecuteCommand(cmd string) string {
	e.finishInsertSession()
	status := e.execute(cmd)
	if e.state.Mode != ConfirmMode {
		e.reset(status)
	}
	return status
}

// confirmMode waits for y or n after a command asked for confirmation.
type confirmMode struct{}

func (confirmMode) Name() Mode {
	return ConfirmMode
}

func (confirmMode) Enter(e *editor) {}

func (confirmMode) HandleKey(e *editor, key KeyEvent) {
	answer := e.confirm
	e.confirm = nil
	switch {
	case answer == nil:
		e.reset(CancelledMessage)
	case key.is('y') || key.is('Y'):
		e.reset(answer(true))
	case key.is('n') || key.is('N'):
		e.reset(answer(false))
	default:
		e.reset(CancelledMessage)
	}
}

func (e *editor) askConfirmation(prompt string, answer func(yes bool) string) string {
	e.setMode(ConfirmMode)
	e.confirm = answer
	e.setStatus(prompt)
	return prompt
}
