package models

import (
	"fmt"
	"time"
)

// Settings represents application-wide settings
type Settings struct {
	SessionMin           int  `json:"session_min"`           // length of a Start My Day session in minutes
	TaskAwardPoints      int  `json:"task_award_points"`     // points added per completed task
	MoodDisplaySec       int  `json:"mood_display_sec"`      // how long the mood confirmation stays up
	CelebrationSec       int  `json:"celebration_sec"`       // how long the completion overlay stays up
	NotificationsEnabled bool `json:"notifications_enabled"` // whether to send a tray notification on session completion
}

func (s Settings) SessionDuration() time.Duration {
	return time.Duration(s.SessionMin) * time.Minute
}

func (s Settings) MoodDisplayDelay() time.Duration {
	return time.Duration(s.MoodDisplaySec) * time.Second
}

func (s Settings) CelebrationDelay() time.Duration {
	return time.Duration(s.CelebrationSec) * time.Second
}

// Validate checks the settings against the number of life areas the
// session is split across.
func (s Settings) Validate(blocks int) error {
	if s.SessionMin <= 0 {
		return fmt.Errorf("session length must be a positive number of minutes")
	}
	if blocks > 0 && (s.SessionMin*60)%blocks != 0 {
		return fmt.Errorf("session length of %d min cannot be split evenly across %d areas", s.SessionMin, blocks)
	}
	if s.TaskAwardPoints < 0 {
		return fmt.Errorf("task award points cannot be negative")
	}
	if s.MoodDisplaySec <= 0 {
		return fmt.Errorf("mood display delay must be a positive number of seconds")
	}
	if s.CelebrationSec <= 0 {
		return fmt.Errorf("celebration delay must be a positive number of seconds")
	}
	return nil
}
