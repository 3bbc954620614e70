package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifedash/internal/constants"
	"github.com/julianstephens/lifedash/internal/models"
)

func requireText(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

func positiveInt(s string) error {
	i, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if i <= 0 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}

func nonNegativeInt(s string) error {
	i, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if i < 0 {
		return fmt.Errorf("cannot be negative")
	}
	return nil
}

func NewSubGoalForm(fm *SubGoalFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New sub-goal").
				Placeholder("e.g. Sleep eight hours a night").
				Value(&fm.Text).
				Validate(requireText),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewTaskForm(fm *TaskFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New task").
				Placeholder("e.g. Walk 20 minutes").
				Value(&fm.Text).
				Validate(requireText),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewSettingsForm(fm *SettingsFormModel, blocks int) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Session length (minutes)").
				Value(&fm.SessionMin).
				Validate(func(s string) error {
					if err := positiveInt(s); err != nil {
						return err
					}
					n, _ := strconv.Atoi(s)
					if blocks > 0 && (n*60)%blocks != 0 {
						return fmt.Errorf("must split evenly across %d areas", blocks)
					}
					return nil
				}),
			huh.NewInput().
				Title("Points per completed task").
				Value(&fm.TaskAwardPoints).
				Validate(nonNegativeInt),
			huh.NewInput().
				Title("Mood confirmation (seconds)").
				Value(&fm.MoodDisplaySec).
				Validate(positiveInt),
			huh.NewInput().
				Title("Celebration (seconds)").
				Value(&fm.CelebrationSec).
				Validate(positiveInt),
			huh.NewConfirm().
				Title("Notify when a session completes?").
				Value(&fm.NotificationsEnabled),
		),
	).WithTheme(huh.ThemeDracula())
}

func settingsFormFrom(s models.Settings) *SettingsFormModel {
	return &SettingsFormModel{
		SessionMin:           strconv.Itoa(s.SessionMin),
		TaskAwardPoints:      strconv.Itoa(s.TaskAwardPoints),
		MoodDisplaySec:       strconv.Itoa(s.MoodDisplaySec),
		CelebrationSec:       strconv.Itoa(s.CelebrationSec),
		NotificationsEnabled: s.NotificationsEnabled,
	}
}

func (fm SettingsFormModel) settings() (models.Settings, error) {
	var s models.Settings
	var err error
	if s.SessionMin, err = strconv.Atoi(fm.SessionMin); err != nil {
		return s, fmt.Errorf("session length: %w", err)
	}
	if s.TaskAwardPoints, err = strconv.Atoi(fm.TaskAwardPoints); err != nil {
		return s, fmt.Errorf("points per task: %w", err)
	}
	if s.MoodDisplaySec, err = strconv.Atoi(fm.MoodDisplaySec); err != nil {
		return s, fmt.Errorf("mood confirmation: %w", err)
	}
	if s.CelebrationSec, err = strconv.Atoi(fm.CelebrationSec); err != nil {
		return s, fmt.Errorf("celebration: %w", err)
	}
	s.NotificationsEnabled = fm.NotificationsEnabled
	return s, nil
}

// updateForm feeds msg to the active form and reports its state. Esc
// aborts the form.
func (m *Model) updateForm(msg tea.Msg) (huh.FormState, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		return huh.StateAborted, nil
	}
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	return m.form.State, cmd
}

func (m *Model) handleAddSubGoalState(msg tea.Msg) tea.Cmd {
	state, cmd := m.updateForm(msg)
	switch state {
	case huh.StateCompleted:
		m.detail.AddSubGoal(m.subGoalForm.GoalID, m.subGoalForm.Text)
		m.closeForm(constants.StateDetail)
	case huh.StateAborted:
		m.closeForm(constants.StateDetail)
	}
	return cmd
}

func (m *Model) handleAddTaskState(msg tea.Msg) tea.Cmd {
	state, cmd := m.updateForm(msg)
	switch state {
	case huh.StateCompleted:
		m.detail.AddTask(m.taskForm.GoalID, m.taskForm.SubGoalID, m.taskForm.Text)
		m.closeForm(constants.StateDetail)
	case huh.StateAborted:
		m.closeForm(constants.StateDetail)
	}
	return cmd
}

func (m *Model) handleEditSettingsState(msg tea.Msg) tea.Cmd {
	state, cmd := m.updateForm(msg)
	switch state {
	case huh.StateCompleted:
		if err := m.saveSettings(*m.settingsForm); err != nil {
			// stay in the form so the user can correct the value
			m.formError = "Failed to update settings: " + err.Error()
			m.form.State = huh.StateNormal
			return cmd
		}
		m.closeForm(constants.StateSettings)
	case huh.StateAborted:
		m.closeForm(constants.StateSettings)
	}
	return cmd
}

func (m *Model) closeForm(next constants.SessionState) {
	m.form = nil
	m.subGoalForm = nil
	m.taskForm = nil
	m.settingsForm = nil
	m.formError = ""
	m.state = next
}

// saveSettings validates and persists the form values and applies them to
// the running dashboard.
func (m *Model) saveSettings(fm SettingsFormModel) error {
	s, err := fm.settings()
	if err != nil {
		return err
	}
	if err := s.Validate(len(m.areas)); err != nil {
		return err
	}
	if m.store != nil {
		if err := m.store.SaveSettings(s); err != nil {
			return err
		}
	}
	m.settings = s
	m.dash.Award = s.TaskAwardPoints
	m.mood.SetDelay(s.MoodDisplayDelay())
	m.settingsModel.SetSettings(s)
	return nil
}
