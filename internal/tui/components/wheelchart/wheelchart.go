package wheelchart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifedash/internal/models"
	"github.com/julianstephens/lifedash/internal/tui/events"
	"github.com/julianstephens/lifedash/internal/tui/theme"
	"github.com/julianstephens/lifedash/internal/wheel"
)

// SaveMsg asks the root model to journal the current ratings.
type SaveMsg struct {
	Snapshot models.WheelSnapshot
}

type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Lower key.Binding
	Raise key.Binding
	Reset key.Binding
	Save  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Lower: key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←/-", "lower")),
		Raise: key.NewBinding(key.WithKeys("right", "l", "+", "="), key.WithHelp("→/+", "raise")),
		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Save:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save snapshot")),
	}
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(theme.Accent).MarginBottom(1)
	labelStyle    = lipgloss.NewStyle().Width(10)
	selectedStyle = lipgloss.NewStyle().Width(10).Foreground(theme.Accent).Bold(true)
	emptyStyle    = lipgloss.NewStyle().Foreground(theme.Muted)
	insightStyle  = lipgloss.NewStyle().Italic(true).Foreground(theme.Text).Width(70)
)

var balanceColors = map[models.BalanceStatus]lipgloss.Color{
	models.BalanceWell:     theme.Good,
	models.BalanceSlightly: theme.Warn,
	models.BalanceNeeds:    theme.Danger,
}

type Model struct {
	wheel  *wheel.Wheel
	colors []lipgloss.Color
	cursor int
	keys   KeyMap
	status string
}

func New(areas []models.LifeArea) Model {
	colors := make([]lipgloss.Color, len(areas))
	for i, a := range areas {
		colors[i] = theme.AreaColor(a.Color)
	}
	return Model{
		wheel:  wheel.New(areas),
		colors: colors,
		keys:   DefaultKeyMap(),
	}
}

func (m Model) Wheel() *wheel.Wheel { return m.wheel }

func (m Model) Cursor() int { return m.cursor }

func (m Model) Keys() KeyMap { return m.keys }

// SetStatus shows a one-line note under the chart, e.g. after saving.
func (m *Model) SetStatus(s string) {
	m.status = s
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	ratings := m.wheel.Ratings()
	if len(ratings) == 0 {
		return m, nil
	}
	m.status = ""

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(ratings)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Lower):
		m.wheel.Update(m.cursor, ratings[m.cursor].Value-1)
	case key.Matches(keyMsg, m.keys.Raise):
		m.wheel.Update(m.cursor, ratings[m.cursor].Value+1)
	case key.Matches(keyMsg, m.keys.Reset):
		m.wheel.Reset()
	case key.Matches(keyMsg, m.keys.Save):
		return m, events.Send(SaveMsg{Snapshot: m.wheel.Snapshot()})
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Wheel of Life"))
	b.WriteString("\n")

	for i, p := range m.wheel.Series() {
		label := labelStyle.Render(p.Area)
		if i == m.cursor {
			label = selectedStyle.Render("▸ " + p.Area)
		}
		bar := lipgloss.NewStyle().Foreground(m.colors[i]).Render(strings.Repeat("█", p.Rating*2))
		rest := emptyStyle.Render(strings.Repeat("░", (p.FullMark-p.Rating)*2))
		fmt.Fprintf(&b, "%s %s%s %2d/%d\n", label, bar, rest, p.Rating, p.FullMark)
	}

	s := m.wheel.Stats()
	balance := lipgloss.NewStyle().Foreground(balanceColors[s.Balance]).Bold(true).Render(string(s.Balance))
	fmt.Fprintf(&b, "\nAverage: %.1f/10   Balance: %s\n\n", s.Mean, balance)
	b.WriteString(insightStyle.Render(m.wheel.Insight()))
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(emptyStyle.Render(m.status))
	}
	return b.String()
}
