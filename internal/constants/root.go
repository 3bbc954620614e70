package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "lifedash"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/lifedash/lifedash.db"
	EnvDBConnection    = "LIFEDASH_DB_CONNECTION"
	Version            = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Notify constants
	NotifierLockfileName   = "lifedash-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.lifedash"
	TrayAppExecutable      = "lifedash-tray"

	// Start My Day session
	DefaultSessionMin = 30
	TickInterval      = time.Second

	// Points awarded per task-completed event
	DefaultTaskAwardPoints = 50

	// Display delays
	DefaultMoodDisplaySec  = 3
	DefaultCelebrationSec  = 5
	CardFlashDuration      = 2 * time.Second
	DefaultHistoryLimit    = 10
	DefaultNotificationsOn = true

	// Wheel of Life bounds
	WheelMinRating     = 0
	WheelMaxRating     = 10
	WheelDefaultRating = 5

	// Mood bounds
	MoodMin = 1
	MoodMax = 5
)

// Session States
const (
	StateDashboard SessionState = iota
	StateTimer
	StateWheel
	StateDetail
	StateSettings
	StateAddSubGoal
	StateAddTask
	StateEditSettings
)
