package adapter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ionut-t/govi/core"
)

type Theme struct {
	NormalModeStyle        lipgloss.Style
	InsertModeStyle        lipgloss.Style
	VisualModeStyle        lipgloss.Style
	CommandModeStyle       lipgloss.Style
	PendingModeStyle       lipgloss.Style
	StatusLineStyle        lipgloss.Style
	CommandLineStyle       lipgloss.Style
	MessageStyle           lipgloss.Style
	ErrorStyle             lipgloss.Style
	RecordingStyle         lipgloss.Style
	LineNumberStyle        lipgloss.Style
	CurrentLineNumberStyle lipgloss.Style
	SelectionStyle         lipgloss.Style
	FoldStyle              lipgloss.Style
	TildeStyle             lipgloss.Style
}

var DefaultTheme = Theme{
	NormalModeStyle:        lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("255")),
	InsertModeStyle:        lipgloss.NewStyle().Background(lipgloss.Color("26")).Foreground(lipgloss.Color("255")),
	VisualModeStyle:        lipgloss.NewStyle().Background(lipgloss.Color("127")).Foreground(lipgloss.Color("255")),
	CommandModeStyle:       lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("255")),
	PendingModeStyle:       lipgloss.NewStyle().Background(lipgloss.Color("240")).Foreground(lipgloss.Color("255")),
	CommandLineStyle:       lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("255")),
	StatusLineStyle:        lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")),
	MessageStyle:           lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	ErrorStyle:             lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	RecordingStyle:         lipgloss.NewStyle().Background(lipgloss.Color("160")).Foreground(lipgloss.Color("255")),
	LineNumberStyle:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Right),
	CurrentLineNumberStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Align(lipgloss.Right),
	SelectionStyle:         lipgloss.NewStyle().Background(lipgloss.Color("237")),
	FoldStyle:              lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
	TildeStyle:             lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// modeStyle picks the status line badge for a mode. Operator and await modes
// share one style.
func (t Theme) modeStyle(mode core.Mode) lipgloss.Style {
	switch mode {
	case core.NormalMode:
		return t.NormalModeStyle
	case core.InsertMode, core.ReplaceMode:
		return t.InsertModeStyle
	case core.VisualMode, core.VisualLineMode:
		return t.VisualModeStyle
	case core.CommandMode, core.ConfirmMode:
		return t.CommandModeStyle
	default:
		return t.PendingModeStyle
	}
}
