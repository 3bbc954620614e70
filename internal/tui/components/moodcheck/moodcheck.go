package moodcheck

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifedash/internal/constants"
	"github.com/julianstephens/lifedash/internal/content"
	"github.com/julianstephens/lifedash/internal/mood"
	"github.com/julianstephens/lifedash/internal/tui/events"
	"github.com/julianstephens/lifedash/internal/tui/theme"
)

// SubmittedMsg reports a mood selection so it can be journaled.
type SubmittedMsg struct {
	Value int
}

type dismissMsg struct {
	token int
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(theme.Accent)
	mutedStyle  = lipgloss.NewStyle().Foreground(theme.Muted)
	barStyle    = lipgloss.NewStyle().Foreground(theme.Border)
	thanksStyle = lipgloss.NewStyle().Foreground(theme.Good).Bold(true)
)

const barHeight = 5

type Model struct {
	widget *mood.Widget
	delay  time.Duration
}

func New(delay time.Duration) Model {
	if delay <= 0 {
		delay = time.Duration(constants.DefaultMoodDisplaySec) * time.Second
	}
	return Model{widget: mood.New(nil), delay: delay}
}

func (m Model) Widget() *mood.Widget { return m.widget }

// SetDelay changes how long future confirmations stay up.
func (m *Model) SetDelay(d time.Duration) {
	if d > 0 {
		m.delay = d
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles digit keys 1-5 and the delayed dismissal of the
// confirmation.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dismissMsg:
		m.widget.Dismiss(msg.token)
	case tea.KeyMsg:
		v, err := strconv.Atoi(msg.String())
		if err != nil {
			return m, nil
		}
		token, err := m.widget.Submit(v)
		if err != nil {
			return m, nil
		}
		return m, tea.Batch(
			events.Send(SubmittedMsg{Value: v}),
			tea.Tick(m.delay, func(time.Time) tea.Msg { return dismissMsg{token: token} }),
		)
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("How are you feeling today?"))
	b.WriteString("\n")

	if m.widget.Submitted() {
		opt, _ := mood.Option(m.widget.Selected())
		b.WriteString(thanksStyle.Render(fmt.Sprintf("%s Thanks for checking in! Feeling %s.", opt.Emoji, opt.Label)))
		b.WriteString("\n")
	} else {
		var opts []string
		for _, o := range content.MoodOptions() {
			opts = append(opts, fmt.Sprintf("[%d] %s %s", o.Value, o.Emoji, o.Label))
		}
		b.WriteString(strings.Join(opts, "  "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.historyBars())
	b.WriteString("\n")
	b.WriteString(mood.TrendMessage(m.widget.Trend()))
	return b.String()
}

func (m Model) historyBars() string {
	history := m.widget.History()
	cols := make([]string, len(history))
	for i, v := range history {
		var col strings.Builder
		for level := barHeight; level >= 1; level-- {
			if v >= level {
				col.WriteString(barStyle.Render("██"))
			} else {
				col.WriteString("  ")
			}
			col.WriteString("\n")
		}
		label := mutedStyle.Render(mood.DayLabel(i))
		cols[i] = lipgloss.NewStyle().Width(8).Align(lipgloss.Center).Render(col.String() + label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, cols...)
}
