// Package events holds the messages components send up to the root model.
package events

import tea "github.com/charmbracelet/bubbletea"

// TaskCompletedMsg is sent whenever a task is completed or toggled.
type TaskCompletedMsg struct {
	AreaID    string
	Text      string
	Completed bool
}

type GoHomeMsg struct{}

type CloseDetailMsg struct{}

type TimerCompletedMsg struct{}

// Send wraps msg in a command.
func Send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
