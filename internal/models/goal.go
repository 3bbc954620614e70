package models

import "fmt"

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is one of the enumerated priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Next cycles high -> medium -> low -> high.
func (p Priority) Next() Priority {
	switch p {
	case PriorityHigh:
		return PriorityMedium
	case PriorityMedium:
		return PriorityLow
	default:
		return PriorityHigh
	}
}

func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.Valid() {
		return "", fmt.Errorf("invalid priority %q (expected high, medium or low)", s)
	}
	return p, nil
}

type Task struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	Completed bool     `json:"completed"`
	Priority  Priority `json:"priority"`
}

type SubGoal struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Priority Priority `json:"priority"`
	Tasks    []Task   `json:"tasks"`
}

type Goal struct {
	ID       string    `json:"id"`
	Text     string    `json:"text"`
	IsMain   bool      `json:"is_main"`
	Priority Priority  `json:"priority"`
	SubGoals []SubGoal `json:"sub_goals"`
}
