package models

import "strings"

// LifeArea is the record shared by every view that shows a life area:
// dashboard cards, the detail view, the timer block strip and the wheel.
type LifeArea struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Emoji       string   `json:"emoji"`
	Color       string   `json:"color"`
	Goal        string   `json:"goal"`
	CurrentTask string   `json:"current_task"`
	Level       int      `json:"level"`
	Streak      int      `json:"streak"` // days
	Points      int      `json:"points"`
	Ideas       []string `json:"ideas"`
}

// ShortName returns the first word of the title, used as a chart label.
func (a LifeArea) ShortName() string {
	fields := strings.Fields(a.Title)
	if len(fields) == 0 {
		return a.ID
	}
	return fields[0]
}

// MoodOption is one selectable mood in the check-in widget.
type MoodOption struct {
	Emoji string `json:"emoji"`
	Label string `json:"label"`
	Value int    `json:"value"`
}
