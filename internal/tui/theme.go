package tui

import (
	"github.com/akyairhashvil/tock/internal/models"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name     string
	Border   lipgloss.Style
	Title    lipgloss.Style
	Running  lipgloss.Style
	Paused   lipgloss.Style
	Finished lipgloss.Style
	Stopped  lipgloss.Style
	Dim      lipgloss.Style
	Help     lipgloss.Style
	Counter  lipgloss.Style
}

var DefaultTheme = Theme{
	Name:     "Default",
	Border:   lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
	Running:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
	Paused:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	Finished: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	Stopped:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	Counter:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// StateStyle picks the body style for a timer state.
func (t Theme) StateStyle(kind models.StateKind) lipgloss.Style {
	switch kind {
	case models.KindRunning:
		return t.Running
	case models.KindPaused:
		return t.Paused
	case models.KindFinished:
		return t.Finished
	default:
		return t.Stopped
	}
}
