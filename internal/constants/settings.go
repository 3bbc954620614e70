package constants

const (
	SettingSessionMin           = "session_min"
	SettingTaskAwardPoints      = "task_award_points"
	SettingMoodDisplaySec       = "mood_display_sec"
	SettingCelebrationSec       = "celebration_sec"
	SettingNotificationsEnabled = "notifications_enabled"
)
