package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifedash/internal/tui/theme"
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(theme.Accent).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(theme.Muted).
				Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Padding(0, 1)

	statStyle = lipgloss.NewStyle().
			Foreground(theme.Text).
			Padding(0, 1)

	quoteStyle = lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true).
			Padding(0, 1)

	dangerStyle = lipgloss.NewStyle().
			Foreground(theme.Danger).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(theme.Warn).
			Italic(true)

	celebrationStyle = lipgloss.NewStyle().
				Foreground(theme.Good).
				Bold(true).
				Padding(1, 4).
				Border(lipgloss.DoubleBorder()).
				BorderForeground(theme.Accent).
				Align(lipgloss.Center)

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)
