package detail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifedash/internal/dashboard"
	"github.com/julianstephens/lifedash/internal/goals"
	"github.com/julianstephens/lifedash/internal/models"
	"github.com/julianstephens/lifedash/internal/tui/events"
	"github.com/julianstephens/lifedash/internal/tui/theme"
)

// AddSubGoalMsg asks the root model for a sub-goal form.
type AddSubGoalMsg struct {
	GoalID string
}

// AddTaskMsg asks the root model for a task form.
type AddTaskMsg struct {
	GoalID    string
	SubGoalID string
}

type rowKind int

const (
	rowGoal rowKind = iota
	rowSubGoal
	rowTask
)

type row struct {
	kind      rowKind
	goalID    string
	subGoalID string
	taskID    string
}

type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Priority key.Binding
	AddTask  key.Binding
	QuickAdd key.Binding
	NextIdea key.Binding
	Close    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "toggle")),
		Priority: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "priority")),
		AddTask:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
		QuickAdd: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "add sub-goal")),
		NextIdea: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next idea")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(theme.Muted)
	cursorStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	doneStyle   = lipgloss.NewStyle().Foreground(theme.Muted).Strikethrough(true)
	mainStyle   = lipgloss.NewStyle().Bold(true).Foreground(theme.Text)
)

var priorityColors = map[models.Priority]lipgloss.Color{
	models.PriorityHigh:   theme.Danger,
	models.PriorityMedium: theme.Warn,
	models.PriorityLow:    theme.Good,
}

type Model struct {
	card     *dashboard.Card
	tree     goals.Tree
	rows     []row
	cursor   int
	keys     KeyMap
	viewport viewport.Model
	width    int
	height   int
}

// New opens the goal view for a card. The card is shared with the
// dashboard so idea cycling carries over.
func New(card *dashboard.Card, tree goals.Tree, width, height int) Model {
	m := Model{
		card:     card,
		tree:     tree,
		keys:     DefaultKeyMap(),
		viewport: viewport.New(width, max(1, height)),
	}
	m.SetSize(width, height)
	m.refresh()
	return m
}

func (m Model) Tree() goals.Tree { return m.tree }

func (m Model) Area() models.LifeArea { return m.card.Area }

func (m Model) Keys() KeyMap { return m.keys }

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(1, height-headerLines)
	m.sync()
}

func (m *Model) AddSubGoal(goalID, text string) {
	m.tree = m.tree.AddSubGoal(goalID, text)
	m.refresh()
}

func (m *Model) AddTask(goalID, subGoalID, text string) {
	m.tree = m.tree.AddTask(goalID, subGoalID, text)
	m.refresh()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(keyMsg, m.keys.Close):
		return m, events.Send(events.CloseDetailMsg{})
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.NextIdea):
		m.card.NextIdea()
	case key.Matches(keyMsg, m.keys.QuickAdd):
		if gs := m.tree.Goals(); len(gs) > 0 {
			cmd = events.Send(AddSubGoalMsg{GoalID: gs[0].ID})
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		cmd = m.toggle()
	case key.Matches(keyMsg, m.keys.Priority):
		if r, ok := m.selected(); ok && r.kind == rowTask {
			if t, ok := m.tree.Task(r.goalID, r.subGoalID, r.taskID); ok {
				m.tree = m.tree.UpdatePriority(r.goalID, r.subGoalID, r.taskID, t.Priority.Next())
			}
		}
	case key.Matches(keyMsg, m.keys.AddTask):
		if r, ok := m.selected(); ok && r.kind != rowGoal {
			cmd = events.Send(AddTaskMsg{GoalID: r.goalID, SubGoalID: r.subGoalID})
		}
	}
	m.refresh()
	return m, cmd
}

func (m *Model) toggle() tea.Cmd {
	r, ok := m.selected()
	if !ok {
		return nil
	}
	switch r.kind {
	case rowGoal:
		m.tree = m.tree.ToggleGoalExpansion(r.goalID)
	case rowTask:
		m.tree = m.tree.ToggleTask(r.goalID, r.subGoalID, r.taskID)
		t, _ := m.tree.Task(r.goalID, r.subGoalID, r.taskID)
		return events.Send(events.TaskCompletedMsg{
			AreaID:    m.card.Area.ID,
			Text:      t.Text,
			Completed: t.Completed,
		})
	}
	return nil
}

func (m Model) selected() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

// refresh rebuilds the visible rows after the tree changed.
func (m *Model) refresh() {
	var rows []row
	for _, g := range m.tree.Goals() {
		rows = append(rows, row{kind: rowGoal, goalID: g.ID})
		if !m.tree.IsExpanded(g.ID) {
			continue
		}
		for _, sg := range g.SubGoals {
			rows = append(rows, row{kind: rowSubGoal, goalID: g.ID, subGoalID: sg.ID})
			for _, t := range sg.Tasks {
				rows = append(rows, row{kind: rowTask, goalID: g.ID, subGoalID: sg.ID, taskID: t.ID})
			}
		}
	}
	m.rows = rows
	if m.cursor >= len(m.rows) {
		m.cursor = max(0, len(m.rows)-1)
	}
	m.sync()
}

// sync renders the tree into the viewport and keeps the cursor visible.
func (m *Model) sync() {
	m.viewport.SetContent(m.renderTree())
	switch {
	case m.cursor < m.viewport.YOffset:
		m.viewport.SetYOffset(m.cursor)
	case m.cursor >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

const headerLines = 6

func (m Model) View() string {
	a := m.card.Area
	done, total := m.tree.Progress()
	header := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Foreground(theme.AreaColor(a.Color)).Render(a.Emoji+" "+a.Title),
		mutedStyle.Render(fmt.Sprintf(" Level %d · 🔥 %d day streak · ⭐ %d points", a.Level, a.Streak, a.Points)),
		fmt.Sprintf(" %d/%d tasks complete", done, total),
		mutedStyle.Render(" 💡 "+m.card.Idea()),
		"",
	)
	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View())
}

func (m Model) renderTree() string {
	goalsByID := map[string]models.Goal{}
	for _, g := range m.tree.Goals() {
		goalsByID[g.ID] = g
	}

	lines := make([]string, len(m.rows))
	for i, r := range m.rows {
		g := goalsByID[r.goalID]
		var line string
		switch r.kind {
		case rowGoal:
			arrow := "▸"
			if m.tree.IsExpanded(g.ID) {
				arrow = "▾"
			}
			text := g.Text
			if g.IsMain {
				text = mainStyle.Render("🎯 " + text)
			}
			line = fmt.Sprintf("%s %s %s", arrow, text, badge(g.Priority))
		case rowSubGoal:
			sg := findSubGoal(g, r.subGoalID)
			line = fmt.Sprintf("   %s %s", sg.Text, badge(sg.Priority))
		case rowTask:
			t, _ := m.tree.Task(r.goalID, r.subGoalID, r.taskID)
			box, text := "[ ]", t.Text
			if t.Completed {
				box, text = "[x]", doneStyle.Render(t.Text)
			}
			line = fmt.Sprintf("      %s %s %s", box, text, badge(t.Priority))
		}
		if i == m.cursor {
			line = cursorStyle.Render("›") + line
		} else {
			line = " " + line
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func findSubGoal(g models.Goal, id string) models.SubGoal {
	for _, sg := range g.SubGoals {
		if sg.ID == id {
			return sg
		}
	}
	return models.SubGoal{}
}

func badge(p models.Priority) string {
	return lipgloss.NewStyle().Foreground(priorityColors[p]).Render("(" + string(p) + ")")
}
