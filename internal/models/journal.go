package models

import "time"

// SessionRecord is a finished or abandoned Start My Day session.
type SessionRecord struct {
	ID         string    `json:"id" db:"id"`
	StartedAt  time.Time `json:"started_at" db:"started_at"`
	EndedAt    time.Time `json:"ended_at" db:"ended_at"`
	PlannedSec int       `json:"planned_sec" db:"planned_sec"`
	ElapsedSec int       `json:"elapsed_sec" db:"elapsed_sec"`
	Blocks     int       `json:"blocks" db:"blocks"`
	Completed  bool      `json:"completed" db:"completed"`
}

type MoodRecord struct {
	ID         string    `json:"id" db:"id"`
	Value      int       `json:"value" db:"value"`
	Label      string    `json:"label" db:"label"`
	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"`
}

type WheelSnapshot struct {
	ID        string         `json:"id"`
	Ratings   map[string]int `json:"ratings"` // area ID -> rating
	Mean      float64        `json:"mean"`
	StdDev    float64        `json:"std_dev"`
	Balance   BalanceStatus  `json:"balance"`
	CreatedAt time.Time      `json:"created_at"`
}

// TaskEvent records one task-completed notification and the points it awarded.
type TaskEvent struct {
	ID        string    `json:"id" db:"id"`
	AreaID    string    `json:"area_id" db:"area_id"`
	TaskText  string    `json:"task_text" db:"task_text"`
	Completed bool      `json:"completed" db:"completed"`
	Points    int       `json:"points" db:"points"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
