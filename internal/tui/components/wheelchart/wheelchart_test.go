package wheelchart

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lifedash/internal/content"
	"github.com/julianstephens/lifedash/internal/models"
)

func press(m Model, keys ...tea.KeyMsg) Model {
	for _, k := range keys {
		m, _ = m.Update(k)
	}
	return m
}

var (
	up    = tea.KeyMsg{Type: tea.KeyUp}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	left  = tea.KeyMsg{Type: tea.KeyLeft}
	right = tea.KeyMsg{Type: tea.KeyRight}
)

func TestRatingKeys(t *testing.T) {
	m := New(content.LifeAreas())
	m = press(m, down, right, right, right)
	if got := m.Wheel().Ratings()[1].Value; got != 8 {
		t.Errorf("rating[1] = %d, want 8", got)
	}
	m = press(m, up, left, left, left, left, left, left, left)
	if got := m.Wheel().Ratings()[0].Value; got != 0 {
		t.Errorf("rating[0] = %d, want clamped 0", got)
	}
	m = press(m, up)
	if m.Cursor() != 0 {
		t.Errorf("cursor moved above first row")
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	for _, r := range m.Wheel().Ratings() {
		if r.Value != 5 {
			t.Fatalf("after reset %s = %d", r.Area.ID, r.Value)
		}
	}
}

func TestSave(t *testing.T) {
	m := New(content.LifeAreas())
	m = press(m, right, right, right, right, right)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	if cmd == nil {
		t.Fatal("expected save command")
	}
	msg, ok := cmd().(SaveMsg)
	if !ok {
		t.Fatal("expected SaveMsg")
	}
	if msg.Snapshot.Ratings["health"] != 10 || msg.Snapshot.Balance != models.BalanceSlightly {
		t.Errorf("snapshot = %+v", msg.Snapshot)
	}
}

func TestView(t *testing.T) {
	m := New(content.LifeAreas())
	m = press(m, left, left, left)
	view := m.View()
	for _, want := range []string{"Wheel of Life", "Health", "2/10", "Average: 4.5/10", "Consider focusing on Health"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
