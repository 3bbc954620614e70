package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lifedash/internal/constants"
	"github.com/julianstephens/lifedash/internal/daytimer"
	"github.com/julianstephens/lifedash/internal/dashboard"
	"github.com/julianstephens/lifedash/internal/logger"
	"github.com/julianstephens/lifedash/internal/tui/components/cards"
	"github.com/julianstephens/lifedash/internal/tui/components/detail"
	"github.com/julianstephens/lifedash/internal/tui/components/moodcheck"
	"github.com/julianstephens/lifedash/internal/tui/components/settings"
	"github.com/julianstephens/lifedash/internal/tui/components/timer"
	"github.com/julianstephens/lifedash/internal/tui/components/wheelchart"
	"github.com/julianstephens/lifedash/internal/tui/events"
)

const notifyTimeout = 5 * time.Second

type celebrationDoneMsg struct {
	gen int
}

type notifyResultMsg struct {
	err error
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.resize(msg.Width, msg.Height)
		return m, nil
	}

	if isFormState(m.state) {
		cmd := m.handleFormState(msg)
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, cmd
		}
		// timers keep running while a form is open
		next, more := m.route(msg)
		return next, tea.Batch(cmd, more)
	}
	return m.route(msg)
}

func isFormState(s constants.SessionState) bool {
	switch s {
	case constants.StateAddSubGoal, constants.StateAddTask, constants.StateEditSettings:
		return true
	}
	return false
}

func (m *Model) handleFormState(msg tea.Msg) tea.Cmd {
	switch m.state {
	case constants.StateAddSubGoal:
		return m.handleAddSubGoalState(msg)
	case constants.StateAddTask:
		return m.handleAddTaskState(msg)
	case constants.StateEditSettings:
		return m.handleEditSettingsState(msg)
	}
	return nil
}

func (m Model) route(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case events.TaskCompletedMsg:
		m.dash = dashboard.Reduce(m.dash, dashboard.TaskCompleted)
		if _, err := m.recorder.Task(msg.AreaID, msg.Text, msg.Completed, m.dash.Award); err != nil {
			logger.Warn("failed to record task event", "area", msg.AreaID, "error", err)
		}
		return m, nil

	case events.GoHomeMsg:
		m.closeTimer()
		return m, nil

	case events.TimerCompletedMsg:
		m.dash = dashboard.Reduce(m.dash, dashboard.TimerCompleted)
		m.recordSession()
		m.celebrationGen++
		return m, tea.Batch(m.completionCmds()...)

	case celebrationDoneMsg:
		if msg.gen != m.celebrationGen || !m.dash.Celebrating {
			return m, nil
		}
		m.dash = dashboard.Reduce(m.dash, dashboard.CelebrationFinished)
		if m.state == constants.StateTimer {
			m.closeTimer()
		}
		return m, nil

	case notifyResultMsg:
		if msg.err != nil {
			logger.Warn("failed to send notification", "error", msg.err)
		}
		return m, nil

	case timer.TickMsg:
		if !m.timerOpen {
			return m, nil
		}
		var cmd tea.Cmd
		m.timer, cmd = m.timer.Update(msg)
		return m, cmd

	case timer.BlockChangedMsg:
		logger.Debug("session block changed", "block", msg.Block, "area", msg.Area.ID)
		return m, nil

	case cards.OpenDetailMsg:
		card := m.cards.Card(m.cards.Cursor())
		if card == nil || card.Area.ID != msg.Area.ID {
			return m, nil
		}
		m.detail = detail.New(card, m.treeFor(card.Area), m.width, m.contentHeight())
		m.state = constants.StateDetail
		return m, nil

	case events.CloseDetailMsg:
		m.trees[m.detail.Area().ID] = m.detail.Tree()
		m.state = constants.StateDashboard
		return m, nil

	case detail.AddSubGoalMsg:
		m.subGoalForm = &SubGoalFormModel{GoalID: msg.GoalID}
		m.form = NewSubGoalForm(m.subGoalForm)
		m.state = constants.StateAddSubGoal
		return m, m.form.Init()

	case detail.AddTaskMsg:
		m.taskForm = &TaskFormModel{GoalID: msg.GoalID, SubGoalID: msg.SubGoalID}
		m.form = NewTaskForm(m.taskForm)
		m.state = constants.StateAddTask
		return m, m.form.Init()

	case moodcheck.SubmittedMsg:
		if _, err := m.recorder.Mood(msg.Value); err != nil {
			logger.Warn("failed to record mood check-in", "error", err)
		}
		return m, nil

	case wheelchart.SaveMsg:
		snap, err := m.recorder.Wheel(m.wheel.Wheel())
		if err != nil {
			logger.Warn("failed to record wheel snapshot", "error", err)
			m.wheel.SetStatus("Could not save snapshot")
		} else {
			m.wheel.SetStatus(fmt.Sprintf("Saved snapshot (%s)", snap.Balance))
		}
		return m, nil

	case settings.EditSettingsMsg:
		m.settingsForm = settingsFormFrom(m.settings)
		m.form = NewSettingsForm(m.settingsForm, len(m.areas))
		m.formError = ""
		m.state = constants.StateEditSettings
		return m, m.form.Init()
	}

	// Timed component messages (flash and mood dismissal).
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.cards, cmd = m.cards.Update(msg)
	cmds = append(cmds, cmd)
	m.mood, cmd = m.mood.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quit()
		return m, tea.Quit
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateTimer:
		m.timer, cmd = m.timer.Update(msg)
		return m, cmd
	case constants.StateDetail:
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quit()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Tab):
		m.state = nextTab(m.state, 1)
		return m, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.state = nextTab(m.state, -1)
		return m, nil
	}

	switch m.state {
	case constants.StateDashboard:
		switch {
		case key.Matches(msg, m.keys.Start):
			return m, m.openTimer()
		case key.Matches(msg, m.keys.Mood):
			m.mood, cmd = m.mood.Update(msg)
		default:
			m.cards, cmd = m.cards.Update(msg)
		}
	case constants.StateWheel:
		m.wheel, cmd = m.wheel.Update(msg)
	case constants.StateSettings:
		m.settingsModel, cmd = m.settingsModel.Update(msg)
	}
	return m, cmd
}

var tabs = []constants.SessionState{
	constants.StateDashboard,
	constants.StateWheel,
	constants.StateSettings,
}

func nextTab(current constants.SessionState, step int) constants.SessionState {
	for i, s := range tabs {
		if s == current {
			return tabs[(i+step+len(tabs))%len(tabs)]
		}
	}
	return current
}

func (m *Model) openTimer() tea.Cmd {
	cfg := daytimer.Config{Total: m.settings.SessionDuration(), Blocks: len(m.areas)}
	t, err := timer.New(m.areas, cfg)
	if err != nil {
		m.status = "Cannot start session: " + err.Error()
		return nil
	}
	t.SetSize(m.width, m.contentHeight())
	m.timer = t
	m.timerOpen = true
	m.status = ""
	m.dash = dashboard.Reduce(m.dash, dashboard.OpenTimer)
	m.state = constants.StateTimer
	return nil
}

// closeTimer journals an unfinished session and returns to the dashboard.
func (m *Model) closeTimer() {
	if m.timerOpen {
		m.timer.Stop()
		m.recordSession()
	}
	m.timerOpen = false
	m.dash = dashboard.Reduce(m.dash, dashboard.GoHome)
	m.state = constants.StateDashboard
}

func (m *Model) recordSession() {
	if !m.timerOpen || m.timer.Recorded() || m.timer.Started().IsZero() {
		return
	}
	if _, err := m.recorder.Session(m.timer.Timer(), m.timer.Started()); err != nil {
		logger.Warn("failed to record session", "error", err)
	}
	m.timer.MarkRecorded()
}

func (m *Model) quit() {
	if m.timerOpen {
		m.timer.Stop()
		m.recordSession()
	}
	m.quitting = true
}

// completionCmds schedules the end of the celebration and, when enabled,
// the desktop notification.
func (m Model) completionCmds() []tea.Cmd {
	gen := m.celebrationGen
	cmds := []tea.Cmd{
		tea.Tick(m.settings.CelebrationDelay(), func(time.Time) tea.Msg {
			return celebrationDoneMsg{gen: gen}
		}),
	}
	if m.settings.NotificationsEnabled {
		cmds = append(cmds, m.notify(fmt.Sprintf("Start My Day complete! %d minutes across every area of your life.", m.settings.SessionMin)))
	}
	return cmds
}

func (m Model) notify(text string) tea.Cmd {
	n := m.notifier
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		return notifyResultMsg{err: n.Notify(ctx, text)}
	}
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.cards.SetSize(width, height)
	m.settingsModel.SetSize(width, m.contentHeight())
	if m.timerOpen {
		m.timer.SetSize(width, m.contentHeight())
	}
	if m.state == constants.StateDetail {
		m.detail.SetSize(width, m.contentHeight())
	}
}

// contentHeight is the space left under the header and above the footer.
func (m Model) contentHeight() int {
	return max(0, m.height-6)
}
