package timer

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifedash/internal/constants"
	"github.com/julianstephens/lifedash/internal/daytimer"
	"github.com/julianstephens/lifedash/internal/models"
	"github.com/julianstephens/lifedash/internal/tui/events"
	"github.com/julianstephens/lifedash/internal/tui/theme"
)

// TickMsg drives the countdown. Ticks whose id or generation do not match
// the current timer are dropped.
type TickMsg struct {
	id  int64
	gen int
}

// BlockChangedMsg is sent when the session moves to a new life area.
type BlockChangedMsg struct {
	Block int
	Area  models.LifeArea
}

var instances atomic.Int64

type KeyMap struct {
	Toggle key.Binding
	Reset  key.Binding
	Again  key.Binding
	Back   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "start/pause")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Again:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start another session")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
	}
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Padding(1, 2).
			Align(lipgloss.Center)

	clockStyle = lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Padding(1, 4).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Align(lipgloss.Center)

	mutedStyle   = lipgloss.NewStyle().Foreground(theme.Muted)
	reflectStyle = lipgloss.NewStyle().Foreground(theme.Text).Italic(true)
	doneStyle    = lipgloss.NewStyle().Foreground(theme.Good).Bold(true)
)

type Model struct {
	timer    *daytimer.Timer
	areas    []models.LifeArea
	id       int64
	gen      int
	started  time.Time
	recorded bool
	bar      progress.Model
	keys     KeyMap
	now      func() time.Time
	width    int
	height   int
}

func New(areas []models.LifeArea, cfg daytimer.Config) (Model, error) {
	t, err := daytimer.New(cfg, nil)
	if err != nil {
		return Model{}, err
	}
	return Model{
		timer: t,
		areas: areas,
		id:    instances.Add(1),
		bar:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(50)),
		keys:  DefaultKeyMap(),
		now:   time.Now,
	}, nil
}

func (m Model) Timer() *daytimer.Timer { return m.timer }

// Started is when the countdown first started, zero if it never ran.
func (m Model) Started() time.Time { return m.started }

func (m Model) Keys() KeyMap { return m.keys }

// Recorded reports whether the current session has been journaled.
func (m Model) Recorded() bool { return m.recorded }

func (m *Model) MarkRecorded() { m.recorded = true }

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.bar.Width = min(60, max(20, width-10))
}

// Stop pauses the countdown and orphans any pending tick.
func (m *Model) Stop() {
	m.gen++
	if m.timer.Status() == daytimer.Running {
		m.timer.Pause()
	}
}

func (m Model) tick() tea.Cmd {
	id, gen := m.id, m.gen
	return tea.Tick(constants.TickInterval, func(time.Time) tea.Msg {
		return TickMsg{id: id, gen: gen}
	})
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if msg.id != m.id || msg.gen != m.gen || m.timer.Status() != daytimer.Running {
			return m, nil
		}
		res := m.timer.Tick()
		var cmds []tea.Cmd
		if res.BlockChanged {
			area, _ := m.timer.ActiveArea(m.areas)
			cmds = append(cmds, events.Send(BlockChangedMsg{Block: res.Block, Area: area}))
		}
		if res.Completed {
			m.gen++
			cmds = append(cmds, events.Send(events.TimerCompletedMsg{}))
		} else {
			cmds = append(cmds, m.tick())
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			m.Stop()
			return m, events.Send(events.GoHomeMsg{})
		case key.Matches(msg, m.keys.Again):
			if m.timer.Status() == daytimer.Completed {
				m.restart()
			}
		case key.Matches(msg, m.keys.Reset):
			m.restart()
		case key.Matches(msg, m.keys.Toggle):
			if m.timer.Status() == daytimer.Completed {
				return m, nil
			}
			m.gen++
			if m.timer.Status() == daytimer.Idle {
				m.started = m.now()
			}
			m.timer.Toggle()
			if m.timer.Status() == daytimer.Running {
				return m, m.tick()
			}
		}
	}
	return m, nil
}

func (m *Model) restart() {
	m.gen++
	m.timer.Reset()
	m.started = time.Time{}
	m.recorded = false
}

func (m Model) View() string {
	if m.timer.Status() == daytimer.Completed {
		return m.place(lipgloss.JoinVertical(lipgloss.Center,
			titleStyle.Render("Start My Day"),
			doneStyle.Render("🎉 Session complete!"),
			"",
			mutedStyle.Render("You spent time on every area of your life today."),
			"",
			"[enter] Start Another Session   [esc] Back",
		))
	}

	area, _ := m.timer.ActiveArea(m.areas)
	focus := fmt.Sprintf("%s %s", area.Emoji, area.Title)

	lines := []string{
		titleStyle.Render("Start My Day"),
		mutedStyle.Render(fmt.Sprintf("Block %d of %d · %s each", m.timer.CurrentBlock()+1, m.timer.Blocks(), daytimer.FormatClock(m.timer.BlockDuration()))),
		lipgloss.NewStyle().Bold(true).Foreground(theme.AreaColor(area.Color)).Render("Focus: " + focus),
		clockStyle.Render(daytimer.FormatClock(m.timer.Remaining())),
		m.bar.ViewAs(m.timer.Progress()),
		"",
		m.blockStrip(),
	}
	if m.timer.Status() != daytimer.Idle && area.Goal != "" {
		lines = append(lines, "", reflectStyle.Render("Reflect on: "+area.Goal))
	}

	button := m.timer.StartLabel()
	if m.timer.Status() == daytimer.Running {
		button = "Pause"
	}
	lines = append(lines, "", fmt.Sprintf("[space] %s   [r] Reset   [esc] Back", button))
	return m.place(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// blockStrip renders one cell per block: done, current, or pending.
func (m Model) blockStrip() string {
	cells := make([]string, m.timer.Blocks())
	for i := range cells {
		label := fmt.Sprintf(" %d ", i+1)
		if i < len(m.areas) {
			label = " " + m.areas[i].Emoji + " "
		}
		style := lipgloss.NewStyle().Padding(0, 1)
		switch {
		case i < m.timer.CurrentBlock():
			style = style.Foreground(theme.Good)
			label = " ✓ "
		case i == m.timer.CurrentBlock():
			style = style.Reverse(true).Bold(true)
		default:
			style = style.Foreground(theme.Muted)
		}
		cells[i] = style.Render(label)
	}
	return strings.Join(cells, "")
}

func (m Model) place(content string) string {
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
