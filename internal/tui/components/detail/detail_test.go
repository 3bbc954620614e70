package detail

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lifedash/internal/content"
	"github.com/julianstephens/lifedash/internal/dashboard"
	"github.com/julianstephens/lifedash/internal/goals"
	"github.com/julianstephens/lifedash/internal/models"
	"github.com/julianstephens/lifedash/internal/tui/events"
)

var (
	down  = tea.KeyMsg{Type: tea.KeyDown}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newModel() Model {
	area := content.LifeAreas()[0]
	tree := goals.Seed(area, goals.WithIDSource(goals.Sequence("n")))
	return New(dashboard.NewCard(area), tree, 80, 30)
}

func press(m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(k)
	}
	return m, cmd
}

func TestRows(t *testing.T) {
	m := newModel()
	// goal, two sub-goals, four tasks
	if len(m.rows) != 7 {
		t.Fatalf("rows = %d, want 7", len(m.rows))
	}
	m, _ = press(m, enter)
	if len(m.rows) != 1 {
		t.Errorf("collapsed rows = %d, want 1", len(m.rows))
	}
}

func TestToggleTaskSendsEveryTime(t *testing.T) {
	m := newModel()
	m, cmd := press(m, down, down, enter)
	msg, ok := cmd().(events.TaskCompletedMsg)
	if !ok || !msg.Completed || msg.AreaID != "health" || msg.Text != "Drink 8 glasses of water today" {
		t.Fatalf("msg = %#v", msg)
	}

	m, cmd = press(m, enter)
	msg, ok = cmd().(events.TaskCompletedMsg)
	if !ok || msg.Completed {
		t.Errorf("un-completing should still send, got %#v", msg)
	}
	if task, _ := m.Tree().Task("1", "11", "111"); task.Completed {
		t.Error("double toggle should restore the task")
	}
}

func TestPriorityCycle(t *testing.T) {
	m := newModel()
	m, _ = press(m, down, down, runes("p"))
	task, _ := m.Tree().Task("1", "11", "111")
	if task.Priority != models.PriorityMedium {
		t.Errorf("priority = %s, want medium", task.Priority)
	}
}

func TestAddRequests(t *testing.T) {
	m := newModel()
	_, cmd := press(m, runes("g"))
	if msg, ok := cmd().(AddSubGoalMsg); !ok || msg.GoalID != "1" {
		t.Errorf("quick add = %#v", msg)
	}

	if _, cmd := press(m, runes("a")); cmd != nil {
		t.Error("add task on a goal row should do nothing")
	}

	m, _ = press(m, down)
	_, cmd = press(m, runes("a"))
	if msg, ok := cmd().(AddTaskMsg); !ok || msg.GoalID != "1" || msg.SubGoalID != "11" {
		t.Errorf("add task = %#v", msg)
	}

	m.AddSubGoal("1", "Sleep by 11pm")
	m.AddTask("1", "11", "Log meals")
	if len(m.rows) != 9 {
		t.Errorf("rows = %d, want 9", len(m.rows))
	}
	if !strings.Contains(m.View(), "Sleep by 11pm") {
		t.Error("view missing new sub-goal")
	}
}

func TestCloseAndIdea(t *testing.T) {
	m := newModel()
	first := m.card.Idea()
	m, _ = press(m, runes("n"))
	if m.card.Idea() == first {
		t.Error("idea should advance")
	}
	_, cmd := press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := cmd().(events.CloseDetailMsg); !ok {
		t.Error("esc should close")
	}
}

func TestView(t *testing.T) {
	view := newModel().View()
	for _, want := range []string{"Health", "Level 3", "1/4 tasks complete", "Lose 10 pounds", "[x] "} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
