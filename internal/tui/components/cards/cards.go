package cards

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifedash/internal/constants"
	"github.com/julianstephens/lifedash/internal/dashboard"
	"github.com/julianstephens/lifedash/internal/models"
	"github.com/julianstephens/lifedash/internal/tui/events"
	"github.com/julianstephens/lifedash/internal/tui/theme"
)

const columns = 3

// OpenDetailMsg asks the root model to open the goal view for an area.
type OpenDetailMsg struct {
	Area models.LifeArea
}

type flashDoneMsg struct {
	index int
	token int
}

type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	NextIdea key.Binding
	Done     key.Binding
	Open     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		NextIdea: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next idea")),
		Done:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "done")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "goals")),
	}
}

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(34)

	titleStyle = lipgloss.NewStyle().Bold(true)

	labelStyle = lipgloss.NewStyle().Foreground(theme.Muted)

	ideaStyle = lipgloss.NewStyle().Foreground(theme.Text).Italic(true)

	doneStyle = lipgloss.NewStyle().Foreground(theme.Good).Bold(true)
)

type Model struct {
	cards  []*dashboard.Card
	cursor int
	keys   KeyMap
	flash  time.Duration
	width  int
}

func New(areas []models.LifeArea) Model {
	cards := make([]*dashboard.Card, len(areas))
	for i, a := range areas {
		cards[i] = dashboard.NewCard(a)
	}
	return Model{
		cards: cards,
		keys:  DefaultKeyMap(),
		flash: constants.CardFlashDuration,
	}
}

func (m Model) Cursor() int { return m.cursor }

// Card returns the card at index i, or nil.
func (m Model) Card(i int) *dashboard.Card {
	if i < 0 || i >= len(m.cards) {
		return nil
	}
	return m.cards[i]
}

func (m Model) Keys() KeyMap { return m.keys }

func (m *Model) SetSize(width, _ int) {
	m.width = width
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case flashDoneMsg:
		if c := m.Card(msg.index); c != nil {
			c.EndFlash(msg.token)
		}
		return m, nil
	case tea.KeyMsg:
		if len(m.cards) == 0 {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Left):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Right):
			if m.cursor < len(m.cards)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Up):
			if m.cursor-columns >= 0 {
				m.cursor -= columns
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor+columns < len(m.cards) {
				m.cursor += columns
			}
		case key.Matches(msg, m.keys.NextIdea):
			m.cards[m.cursor].NextIdea()
		case key.Matches(msg, m.keys.Done):
			return m, m.completeTask(m.cursor)
		case key.Matches(msg, m.keys.Open):
			area := m.cards[m.cursor].Area
			return m, events.Send(OpenDetailMsg{Area: area})
		}
	}
	return m, nil
}

func (m Model) completeTask(i int) tea.Cmd {
	c := m.cards[i]
	token, ok := c.CompleteTask()
	if !ok {
		return nil
	}
	return tea.Batch(
		events.Send(events.TaskCompletedMsg{AreaID: c.Area.ID, Text: c.Area.CurrentTask, Completed: true}),
		tea.Tick(m.flash, func(time.Time) tea.Msg {
			return flashDoneMsg{index: i, token: token}
		}),
	)
}

func (m Model) View() string {
	var rows []string
	for start := 0; start < len(m.cards); start += columns {
		end := min(start+columns, len(m.cards))
		var row []string
		for i := start; i < end; i++ {
			row = append(row, m.renderCard(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderCard(i int) string {
	c := m.cards[i]
	a := c.Area
	color := theme.AreaColor(a.Color)

	style := cardStyle.BorderForeground(theme.Muted)
	if i == m.cursor {
		style = cardStyle.BorderForeground(color)
	}

	challenge := "[d] Done"
	if c.Flashing() {
		challenge = doneStyle.Render("✓ Done!")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", titleStyle.Foreground(color).Render(a.Emoji+" "+a.Title))
	fmt.Fprintf(&b, "%s\n", labelStyle.Render(fmt.Sprintf("Lv %d · 🔥 %d days · ⭐ %d", a.Level, a.Streak, a.Points)))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Goal:"), a.Goal)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Today's Challenge:"), a.CurrentTask)
	fmt.Fprintf(&b, "%s\n", challenge)
	if idea := c.Idea(); idea != "" {
		fmt.Fprintf(&b, "%s %s", labelStyle.Render("💡"), ideaStyle.Render(idea))
	}
	return style.Render(b.String())
}
