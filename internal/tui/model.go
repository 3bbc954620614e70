package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifedash/internal/constants"
	"github.com/julianstephens/lifedash/internal/content"
	"github.com/julianstephens/lifedash/internal/dashboard"
	"github.com/julianstephens/lifedash/internal/goals"
	"github.com/julianstephens/lifedash/internal/journal"
	"github.com/julianstephens/lifedash/internal/logger"
	"github.com/julianstephens/lifedash/internal/models"
	"github.com/julianstephens/lifedash/internal/notifier"
	"github.com/julianstephens/lifedash/internal/storage"
	"github.com/julianstephens/lifedash/internal/tui/components/cards"
	"github.com/julianstephens/lifedash/internal/tui/components/detail"
	"github.com/julianstephens/lifedash/internal/tui/components/moodcheck"
	"github.com/julianstephens/lifedash/internal/tui/components/settings"
	"github.com/julianstephens/lifedash/internal/tui/components/timer"
	"github.com/julianstephens/lifedash/internal/tui/components/wheelchart"
)

// Config carries everything the dashboard needs from the command line.
type Config struct {
	Store    storage.Provider
	Recorder *journal.Recorder
	Notifier notifier.Sender
	Settings models.Settings
	Areas    []models.LifeArea
	Quote    string
}

type SubGoalFormModel struct {
	GoalID string
	Text   string
}

type TaskFormModel struct {
	GoalID    string
	SubGoalID string
	Text      string
}

type SettingsFormModel struct {
	SessionMin           string
	TaskAwardPoints      string
	MoodDisplaySec       string
	CelebrationSec       string
	NotificationsEnabled bool
}

type Model struct {
	store          storage.Provider
	recorder       *journal.Recorder
	notifier       notifier.Sender
	settings       models.Settings
	areas          []models.LifeArea
	quote          string
	dash           dashboard.State
	state          constants.SessionState
	keys           KeyMap
	help           help.Model
	cards          cards.Model
	mood           moodcheck.Model
	wheel          wheelchart.Model
	timer          timer.Model
	timerOpen      bool
	detail         detail.Model
	settingsModel  settings.Model
	trees          map[string]goals.Tree
	form           *huh.Form
	subGoalForm    *SubGoalFormModel
	taskForm       *TaskFormModel
	settingsForm   *SettingsFormModel
	celebrationGen int
	formError      string
	status         string
	quitting       bool
	width          int
	height         int
}

func NewModel(cfg Config) Model {
	areas := cfg.Areas
	if len(areas) == 0 {
		areas = content.LifeAreas()
	}
	if cfg.Notifier == nil {
		cfg.Notifier = notifier.Nop{}
	}
	if cfg.Quote == "" {
		cfg.Quote = content.RandomQuote(nil)
	}
	if cfg.Recorder == nil {
		cfg.Recorder = journal.New(cfg.Store)
	}

	location := ""
	if cfg.Store != nil {
		location = cfg.Store.GetConfigPath()
	}

	return Model{
		store:         cfg.Store,
		recorder:      cfg.Recorder,
		notifier:      cfg.Notifier,
		settings:      cfg.Settings,
		areas:         areas,
		quote:         cfg.Quote,
		dash:          dashboard.NewState(areas, cfg.Settings.TaskAwardPoints),
		state:         constants.StateDashboard,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		cards:         cards.New(areas),
		mood:          moodcheck.New(cfg.Settings.MoodDisplayDelay()),
		wheel:         wheelchart.New(areas),
		settingsModel: settings.New(cfg.Settings, location),
		trees:         map[string]goals.Tree{},
	}
}

// Dashboard exposes the orchestrator state.
func (m Model) Dashboard() dashboard.State { return m.dash }

func (m Model) State() constants.SessionState { return m.state }

// treeFor returns the goal tree for an area, seeding it on first use.
func (m Model) treeFor(area models.LifeArea) goals.Tree {
	if t, ok := m.trees[area.ID]; ok {
		return t
	}
	return goals.Seed(area, goals.WithToggleHandler(func(goalID, subGoalID, taskID string) {
		logger.Debug("task toggled", "area", area.ID, "goal", goalID, "subgoal", subGoalID, "task", taskID)
	}))
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateDashboard:
		ck := m.cards.Keys()
		keys = append(keys, m.keys.Start, m.keys.Mood, ck.Done, ck.NextIdea, ck.Open)
	case constants.StateTimer:
		tk := m.timer.Keys()
		keys = []key.Binding{tk.Toggle, tk.Reset, tk.Back}
	case constants.StateWheel:
		wk := m.wheel.Keys()
		keys = append(keys, wk.Lower, wk.Raise, wk.Save)
	case constants.StateDetail:
		dk := m.detail.Keys()
		keys = []key.Binding{dk.Toggle, dk.Priority, dk.AddTask, dk.QuickAdd, dk.Close}
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}

	var actions []key.Binding
	switch m.state {
	case constants.StateDashboard:
		ck := m.cards.Keys()
		actions = []key.Binding{m.keys.Start, m.keys.Mood, ck.Up, ck.Down, ck.Left, ck.Right, ck.Done, ck.NextIdea, ck.Open}
	case constants.StateTimer:
		tk := m.timer.Keys()
		actions = []key.Binding{tk.Toggle, tk.Reset, tk.Again, tk.Back}
	case constants.StateWheel:
		wk := m.wheel.Keys()
		actions = []key.Binding{wk.Up, wk.Down, wk.Lower, wk.Raise, wk.Reset, wk.Save}
	case constants.StateDetail:
		dk := m.detail.Keys()
		actions = []key.Binding{dk.Up, dk.Down, dk.Toggle, dk.Priority, dk.AddTask, dk.QuickAdd, dk.NextIdea, dk.Close}
	}

	return [][]key.Binding{global, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
