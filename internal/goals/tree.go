// Package goals manages the goal / sub-goal / task hierarchy shown in a
// life area's detail view.
package goals

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/julianstephens/lifedash/internal/models"
)

// IDSource produces identifiers for new sub-goals and tasks.
type IDSource func() string

// Sequence returns an IDSource yielding prefix1, prefix2, ...
func Sequence(prefix string) IDSource {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("%s%d", prefix, n.Add(1))
	}
}

// ToggleHandler is called on every ToggleTask.
type ToggleHandler func(goalID, subGoalID, taskID string)

type Option func(*Tree)

func WithIDSource(src IDSource) Option {
	return func(t *Tree) {
		if src != nil {
			t.newID = src
		}
	}
}

func WithToggleHandler(h ToggleHandler) Option {
	return func(t *Tree) {
		t.onToggle = h
	}
}

// Tree is an immutable goal hierarchy. Mutating methods return a new Tree
// and leave the receiver untouched.
type Tree struct {
	goals    []models.Goal
	expanded map[string]bool
	newID    IDSource
	onToggle ToggleHandler
}

func New(goals []models.Goal, opts ...Option) Tree {
	t := Tree{
		goals:    goals,
		expanded: map[string]bool{},
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// Seed builds the starting tree for a life area.
func Seed(area models.LifeArea, opts ...Option) Tree {
	goals := []models.Goal{
		{
			ID:       "1",
			Text:     area.Goal,
			IsMain:   true,
			Priority: models.PriorityHigh,
			SubGoals: []models.SubGoal{
				{
					ID:       "11",
					Text:     "Establish consistent daily routine",
					Priority: models.PriorityHigh,
					Tasks: []models.Task{
						{ID: "111", Text: area.CurrentTask, Priority: models.PriorityHigh},
						{ID: "112", Text: "Track progress weekly", Priority: models.PriorityMedium},
					},
				},
				{
					ID:       "12",
					Text:     "Set measurable targets",
					Priority: models.PriorityMedium,
					Tasks: []models.Task{
						{ID: "121", Text: "Define specific metrics", Completed: true, Priority: models.PriorityHigh},
						{ID: "122", Text: "Create milestone timeline", Priority: models.PriorityLow},
					},
				},
			},
		},
	}
	t := New(goals, opts...)
	t.expanded["1"] = true
	return t
}

func (t Tree) Goals() []models.Goal { return t.goals }

func (t Tree) IsExpanded(goalID string) bool { return t.expanded[goalID] }

// Task looks up a task by its full path.
func (t Tree) Task(goalID, subGoalID, taskID string) (models.Task, bool) {
	gi, si, ti := t.locate(goalID, subGoalID, taskID)
	if ti < 0 {
		return models.Task{}, false
	}
	return t.goals[gi].SubGoals[si].Tasks[ti], true
}

// Progress counts completed and total tasks across the tree.
func (t Tree) Progress() (done, total int) {
	for _, g := range t.goals {
		for _, sg := range g.SubGoals {
			for _, task := range sg.Tasks {
				total++
				if task.Completed {
					done++
				}
			}
		}
	}
	return done, total
}

func (t Tree) AddSubGoal(goalID, text string) Tree {
	text = strings.TrimSpace(text)
	if text == "" {
		return t
	}
	gi := t.goalIndex(goalID)
	if gi < 0 {
		return t
	}

	out := t.withGoals()
	g := out.goals[gi]
	subs := make([]models.SubGoal, len(g.SubGoals), len(g.SubGoals)+1)
	copy(subs, g.SubGoals)
	g.SubGoals = append(subs, models.SubGoal{
		ID:       t.newID(),
		Text:     text,
		Priority: models.PriorityMedium,
		Tasks:    []models.Task{},
	})
	out.goals[gi] = g
	return out
}

func (t Tree) AddTask(goalID, subGoalID, text string) Tree {
	text = strings.TrimSpace(text)
	if text == "" {
		return t
	}
	gi, si := t.subGoalIndex(goalID, subGoalID)
	if si < 0 {
		return t
	}

	out := t.withSubGoals(gi)
	sg := out.goals[gi].SubGoals[si]
	tasks := make([]models.Task, len(sg.Tasks), len(sg.Tasks)+1)
	copy(tasks, sg.Tasks)
	sg.Tasks = append(tasks, models.Task{
		ID:       t.newID(),
		Text:     text,
		Priority: models.PriorityMedium,
	})
	out.goals[gi].SubGoals[si] = sg
	return out
}

// ToggleTask flips a task's completion. The toggle handler runs on every
// call, whether or not the task was found.
func (t Tree) ToggleTask(goalID, subGoalID, taskID string) Tree {
	out := t.updateTask(goalID, subGoalID, taskID, func(task *models.Task) {
		task.Completed = !task.Completed
	})
	if t.onToggle != nil {
		t.onToggle(goalID, subGoalID, taskID)
	}
	return out
}

func (t Tree) UpdatePriority(goalID, subGoalID, taskID string, p models.Priority) Tree {
	if !p.Valid() {
		return t
	}
	return t.updateTask(goalID, subGoalID, taskID, func(task *models.Task) {
		task.Priority = p
	})
}

func (t Tree) ToggleGoalExpansion(goalID string) Tree {
	out := t
	out.expanded = make(map[string]bool, len(t.expanded)+1)
	for id := range t.expanded {
		out.expanded[id] = true
	}
	if t.expanded[goalID] {
		delete(out.expanded, goalID)
	} else {
		out.expanded[goalID] = true
	}
	return out
}

func (t Tree) updateTask(goalID, subGoalID, taskID string, fn func(*models.Task)) Tree {
	gi, si, ti := t.locate(goalID, subGoalID, taskID)
	if ti < 0 {
		return t
	}
	out := t.withSubGoals(gi)
	sg := out.goals[gi].SubGoals[si]
	tasks := make([]models.Task, len(sg.Tasks))
	copy(tasks, sg.Tasks)
	fn(&tasks[ti])
	sg.Tasks = tasks
	out.goals[gi].SubGoals[si] = sg
	return out
}

// withGoals copies the top-level goal slice.
func (t Tree) withGoals() Tree {
	out := t
	out.goals = make([]models.Goal, len(t.goals))
	copy(out.goals, t.goals)
	return out
}

// withSubGoals copies the goal slice and the sub-goal slice of goal gi.
func (t Tree) withSubGoals(gi int) Tree {
	out := t.withGoals()
	subs := make([]models.SubGoal, len(t.goals[gi].SubGoals))
	copy(subs, t.goals[gi].SubGoals)
	out.goals[gi].SubGoals = subs
	return out
}

func (t Tree) goalIndex(goalID string) int {
	for i, g := range t.goals {
		if g.ID == goalID {
			return i
		}
	}
	return -1
}

func (t Tree) subGoalIndex(goalID, subGoalID string) (int, int) {
	gi := t.goalIndex(goalID)
	if gi < 0 {
		return -1, -1
	}
	for i, sg := range t.goals[gi].SubGoals {
		if sg.ID == subGoalID {
			return gi, i
		}
	}
	return gi, -1
}

func (t Tree) locate(goalID, subGoalID, taskID string) (int, int, int) {
	gi, si := t.subGoalIndex(goalID, subGoalID)
	if si < 0 {
		return gi, si, -1
	}
	for i, task := range t.goals[gi].SubGoals[si].Tasks {
		if task.ID == taskID {
			return gi, si, i
		}
	}
	return gi, si, -1
}
