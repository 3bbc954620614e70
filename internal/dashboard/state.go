// Package dashboard holds the page-level application state: which view is
// showing, the running points and task counters, and the celebration flag.
package dashboard

import (
	"github.com/julianstephens/lifedash/internal/content"
	"github.com/julianstephens/lifedash/internal/models"
)

type View int

const (
	ViewDashboard View = iota
	ViewTimer
)

func (v View) String() string {
	if v == ViewTimer {
		return "timer"
	}
	return "dashboard"
}

type State struct {
	View           View
	TotalPoints    int
	CompletedTasks int
	Celebrating    bool
	Award          int // points per completed task
}

// NewState seeds the points total from the areas' points.
func NewState(areas []models.LifeArea, award int) State {
	return State{
		View:        ViewDashboard,
		TotalPoints: content.TotalPoints(areas),
		Award:       award,
	}
}

type Action int

const (
	TaskCompleted Action = iota
	OpenTimer
	GoHome
	TimerCompleted
	CelebrationFinished
)

func (a Action) String() string {
	switch a {
	case TaskCompleted:
		return "task-completed"
	case OpenTimer:
		return "open-timer"
	case GoHome:
		return "go-home"
	case TimerCompleted:
		return "timer-completed"
	case CelebrationFinished:
		return "celebration-finished"
	}
	return "unknown"
}

// Reduce applies an action and returns the new state. Counters never
// decrease.
func Reduce(s State, a Action) State {
	switch a {
	case TaskCompleted:
		s.TotalPoints += s.Award
		s.CompletedTasks++
	case OpenTimer:
		s.View = ViewTimer
	case GoHome:
		s.View = ViewDashboard
	case TimerCompleted:
		s.Celebrating = true
	case CelebrationFinished:
		s.Celebrating = false
		s.View = ViewDashboard
	}
	return s
}
