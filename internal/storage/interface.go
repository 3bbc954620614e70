package storage

import (
	"errors"
	"time"

	"github.com/julianstephens/lifedash/internal/models"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrNotInitialized = errors.New("storage not initialized, run 'lifedash init' first")
)

// Provider is the journal backend. Widget state never reads from it.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Sessions
	AddSession(models.SessionRecord) error
	GetSessions(limit int) ([]models.SessionRecord, error)

	// Mood
	AddMoodCheckIn(models.MoodRecord) error
	GetMoodCheckIns(limit int) ([]models.MoodRecord, error)

	// Wheel
	AddWheelSnapshot(models.WheelSnapshot) error
	GetWheelSnapshots(limit int) ([]models.WheelSnapshot, error)
	GetLatestWheelSnapshot() (models.WheelSnapshot, error)

	// Task events
	AddTaskEvent(models.TaskEvent) error
	// CountTaskEvents counts completions recorded on the calendar day of
	// day, in day's location.
	CountTaskEvents(day time.Time) (int, error)

	// Utils
	GetConfigPath() string
}
