package settings

import (
	"fmt"

	"github.com/julianstephens/lifedash/internal/cli"
	"github.com/julianstephens/lifedash/internal/content"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	SessionMin           *int  `help:"Start My Day length in minutes."`
	TaskAwardPoints      *int  `help:"Points awarded per completed task."`
	MoodDisplaySec       *int  `help:"Seconds the mood confirmation stays visible."`
	CelebrationSec       *int  `help:"Seconds the completion celebration stays visible."`
	NotificationsEnabled *bool `help:"Enable or disable the completion notification."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		ctx.Println("Current Settings:")
		ctx.Printf("  Session Length:        %d min\n", settings.SessionMin)
		ctx.Printf("  Points Per Task:       %d\n", settings.TaskAwardPoints)
		ctx.Printf("  Mood Confirmation:     %d s\n", settings.MoodDisplaySec)
		ctx.Printf("  Celebration:           %d s\n", settings.CelebrationSec)
		ctx.Println("\nNotification Settings:")
		ctx.Printf("  Notifications Enabled: %v\n", settings.NotificationsEnabled)
		ctx.Printf("\nJournal: %s\n", ctx.Store.GetConfigPath())
		return nil
	}

	updated := false
	if c.SessionMin != nil {
		settings.SessionMin = *c.SessionMin
		updated = true
	}
	if c.TaskAwardPoints != nil {
		settings.TaskAwardPoints = *c.TaskAwardPoints
		updated = true
	}
	if c.MoodDisplaySec != nil {
		settings.MoodDisplaySec = *c.MoodDisplaySec
		updated = true
	}
	if c.CelebrationSec != nil {
		settings.CelebrationSec = *c.CelebrationSec
		updated = true
	}
	if c.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *c.NotificationsEnabled
		updated = true
	}

	if !updated {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	if err := settings.Validate(len(content.LifeAreas())); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	ctx.Println("Settings updated successfully.")
	return nil
}
