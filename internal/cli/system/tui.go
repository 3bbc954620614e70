package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lifedash/internal/cli"
	"github.com/julianstephens/lifedash/internal/content"
	"github.com/julianstephens/lifedash/internal/logger"
	"github.com/julianstephens/lifedash/internal/notifier"
	"github.com/julianstephens/lifedash/internal/storage"
	"github.com/julianstephens/lifedash/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		logger.Warn("failed to read settings, using defaults", "error", err)
		settings = storage.DefaultSettings()
	}

	var sender notifier.Sender = notifier.Nop{}
	if settings.NotificationsEnabled {
		sender = ctx.Notifier
	}

	model := tui.NewModel(tui.Config{
		Store:    ctx.Store,
		Recorder: ctx.Recorder(),
		Notifier: sender,
		Settings: settings,
		Areas:    content.LifeAreas(),
		Quote:    content.RandomQuote(nil),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard exited with an error: %w", err)
	}
	return nil
}
