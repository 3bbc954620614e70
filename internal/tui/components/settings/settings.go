package settings

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifedash/internal/models"
	"github.com/julianstephens/lifedash/internal/tui/theme"
)

type EditSettingsMsg struct{}

type Model struct {
	settings models.Settings
	location string
	width    int
	height   int
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(theme.Muted).
			Width(25)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			MarginTop(1).
			MarginBottom(1)
)

// New builds the settings panel. location is where the journal lives.
func New(settings models.Settings, location string) Model {
	return Model{settings: settings, location: location}
}

func (m *Model) SetSettings(settings models.Settings) {
	m.settings = settings
}

func (m Model) Settings() models.Settings { return m.settings }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "e":
			return m, func() tea.Msg { return EditSettingsMsg{} }
		}
	}
	return m, nil
}

func row(label string, value any) string {
	return fmt.Sprintf("%s %s", labelStyle.Render(label), valueStyle.Render(fmt.Sprint(value)))
}

func (m Model) View() string {
	var sections []string

	sessionTitle := titleStyle.Render("Start My Day")
	sessionContent := lipgloss.JoinVertical(
		lipgloss.Left,
		row("Session length (min):", m.settings.SessionMin),
		row("Celebration (sec):", m.settings.CelebrationSec),
		row("Notify on completion:", m.settings.NotificationsEnabled),
	)
	sections = append(sections, sectionStyle.Render(sessionTitle+"\n"+sessionContent))

	dashTitle := titleStyle.Render("Dashboard")
	dashContent := lipgloss.JoinVertical(
		lipgloss.Left,
		row("Points per task:", m.settings.TaskAwardPoints),
		row("Mood confirmation (sec):", m.settings.MoodDisplaySec),
	)
	sections = append(sections, sectionStyle.Render(dashTitle+"\n"+dashContent))

	if m.location != "" {
		sections = append(sections, row("Journal:", m.location))
	}

	helpText := lipgloss.NewStyle().
		Foreground(theme.Muted).
		Italic(true).
		MarginTop(2).
		Render("Press 'e' to edit settings")
	sections = append(sections, helpText)

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width == 0 {
		return content
	}
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Left,
		lipgloss.Top,
		lipgloss.NewStyle().Padding(1, 4).Render(content),
	)
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
