package dashboard

import (
	"testing"

	"github.com/julianstephens/lifedash/internal/content"
)

func TestNewState(t *testing.T) {
	s := NewState(content.LifeAreas(), 50)
	if s.TotalPoints != 2390 || s.CompletedTasks != 0 || s.View != ViewDashboard || s.Celebrating {
		t.Errorf("NewState() = %+v", s)
	}
}

func TestReduce(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		want    State
	}{
		{
			name:    "task completed adds award",
			actions: []Action{TaskCompleted, TaskCompleted},
			want:    State{View: ViewDashboard, TotalPoints: 200, CompletedTasks: 2, Award: 50},
		},
		{
			name:    "open timer",
			actions: []Action{OpenTimer},
			want:    State{View: ViewTimer, TotalPoints: 100, Award: 50},
		},
		{
			name:    "go home",
			actions: []Action{OpenTimer, GoHome},
			want:    State{View: ViewDashboard, TotalPoints: 100, Award: 50},
		},
		{
			name:    "timer completed celebrates on timer view",
			actions: []Action{OpenTimer, TimerCompleted},
			want:    State{View: ViewTimer, TotalPoints: 100, Celebrating: true, Award: 50},
		},
		{
			name:    "celebration returns home",
			actions: []Action{OpenTimer, TimerCompleted, CelebrationFinished},
			want:    State{View: ViewDashboard, TotalPoints: 100, Award: 50},
		},
		{
			name:    "tasks during timer keep counting",
			actions: []Action{OpenTimer, TaskCompleted, GoHome},
			want:    State{View: ViewDashboard, TotalPoints: 150, CompletedTasks: 1, Award: 50},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := State{View: ViewDashboard, TotalPoints: 100, Award: 50}
			for _, a := range tt.actions {
				s = Reduce(s, a)
			}
			if s != tt.want {
				t.Errorf("got %+v, want %+v", s, tt.want)
			}
		})
	}
}

func TestCountersNeverDecrease(t *testing.T) {
	s := NewState(content.LifeAreas(), 50)
	prevPoints, prevTasks := s.TotalPoints, s.CompletedTasks
	for _, a := range []Action{TaskCompleted, OpenTimer, TimerCompleted, CelebrationFinished, GoHome, TaskCompleted} {
		s = Reduce(s, a)
		if s.TotalPoints < prevPoints || s.CompletedTasks < prevTasks {
			t.Fatalf("counters decreased after %v: %+v", a, s)
		}
		prevPoints, prevTasks = s.TotalPoints, s.CompletedTasks
	}
}

func TestCardIdeasCycleIndependently(t *testing.T) {
	areas := content.LifeAreas()
	a := NewCard(areas[0])
	b := NewCard(areas[1])

	if a.Idea() != areas[0].Ideas[0] {
		t.Fatalf("Idea() = %q", a.Idea())
	}
	for i := 0; i < len(areas[0].Ideas); i++ {
		a.NextIdea()
	}
	if a.Idea() != areas[0].Ideas[0] {
		t.Errorf("ideas should wrap around, got %q", a.Idea())
	}
	a.NextIdea()
	if b.Idea() != areas[1].Ideas[0] {
		t.Error("cycling one card moved another")
	}
}

func TestCardCompleteTaskFlash(t *testing.T) {
	c := NewCard(content.LifeAreas()[0])

	token, ok := c.CompleteTask()
	if !ok || !c.Flashing() {
		t.Fatal("first completion should start the flash")
	}
	if _, ok := c.CompleteTask(); ok {
		t.Error("button should be disabled while flashing")
	}

	c.EndFlash(token + 1)
	if !c.Flashing() {
		t.Error("stale token should not end the flash")
	}
	c.EndFlash(token)
	if c.Flashing() {
		t.Error("flash should end")
	}
	if _, ok := c.CompleteTask(); !ok {
		t.Error("button should be enabled again")
	}
}

func TestCardWithoutIdeas(t *testing.T) {
	c := NewCard(content.LifeAreas()[0])
	c.Area.Ideas = nil
	if c.Idea() != "" || c.NextIdea() != "" {
		t.Error("card without ideas should show nothing")
	}
}
